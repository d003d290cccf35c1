package sampler

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Bounds is a closed real interval [Min, Max].
type Bounds struct {
	Min float64
	Max float64
}

// Unit is the interval [0, 1].
var Unit = Bounds{Min: 0, Max: 1}

// Validate rejects an inverted interval. A degenerate one is fine.
func (b Bounds) Validate() error {
	if b.Min > b.Max {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, b.Min, b.Max)
	}
	return nil
}

// draw maps one uniform variate onto the interval
func (b Bounds) draw(rng *rand.Rand) float64 {
	return b.Min + rng.Float64()*(b.Max-b.Min)
}

type Point struct {
	X float64
	Y float64
}

// Rectangle is a validated sampling region x × y.
type Rectangle struct {
	x Bounds
	y Bounds
}

// UnitSquare is [0, 1] × [0, 1].
var UnitSquare = Rectangle{x: Unit, y: Unit}

func NewRectangle(x, y Bounds) (Rectangle, error) {
	if err := x.Validate(); err != nil {
		return Rectangle{}, fmt.Errorf("x: %w", err)
	}
	if err := y.Validate(); err != nil {
		return Rectangle{}, fmt.Errorf("y: %w", err)
	}
	return Rectangle{x: x, y: y}, nil
}

// MustRectangle is NewRectangle for fixed regions; it panics on inverted bounds.
func MustRectangle(x, y Bounds) Rectangle {
	r, err := NewRectangle(x, y)
	if err != nil {
		panic(err)
	}
	return r
}

// Choose draws a uniform random point, consuming exactly one variate per
// coordinate. A degenerate interval yields its single value.
func (r Rectangle) Choose(rng *rand.Rand) Point {
	return Point{X: r.x.draw(rng), Y: r.y.draw(rng)}
}

// ChoosePoint draws a uniform random point from x × y. Inverted bounds fail
// with ErrInvalidBounds before any variate is consumed.
func ChoosePoint(rng *rand.Rand, x, y Bounds) (Point, error) {
	r, err := NewRectangle(x, y)
	if err != nil {
		return Point{}, err
	}
	return r.Choose(rng), nil
}

// ChooseUnitPoint draws a uniform random point from the unit square.
func ChooseUnitPoint(rng *rand.Rand) Point {
	return UnitSquare.Choose(rng)
}
