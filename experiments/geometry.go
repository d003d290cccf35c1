package experiments

import (
	"math"

	"probsim/sampler"

	"golang.org/x/exp/rand"
)

// NeedleLength is the needle used on Laplace's grid.
const NeedleLength = 1.0

var (
	halfUnit    = sampler.Bounds{Min: 0, Max: 0.5}
	quarterTurn = sampler.Bounds{Min: 0, Max: math.Pi / 2}

	buffonRegion  = sampler.MustRectangle(halfUnit, quarterTurn)
	laplaceRegion = sampler.MustRectangle(halfUnit, halfUnit)
)

// InCircle hits the circle of radius 1/2 centered in the unit square, with
// probability pi/4.
func InCircle(rng *rand.Rand) bool {
	p := sampler.ChooseUnitPoint(rng)
	dx, dy := p.X-0.5, p.Y-0.5
	return dx*dx+dy*dy < 0.25
}

// UnderSine falls under y = sin(pi x) on the unit square, with probability 2/pi.
func UnderSine(rng *rand.Rand) bool {
	p := sampler.ChooseUnitPoint(rng)
	return p.Y < math.Sin(math.Pi*p.X)
}

// BuffonNeedle drops a unit needle on lines one unit apart; it crosses with
// probability 2/pi.
func BuffonNeedle(rng *rand.Rand) bool {
	// X is the distance from the center to the nearest line, Y the angle
	p := buffonRegion.Choose(rng)
	return p.X <= 0.5*math.Sin(p.Y)
}

// LaplaceNeedle drops a needle of the given length, at most 1, on a grid of
// unit squares. It crosses a line with probability (4L - L^2) / pi.
func LaplaceNeedle(length float64) sampler.Trial {
	return func(rng *rand.Rand) bool {
		d := laplaceRegion.Choose(rng)
		theta := rng.Float64() * math.Pi / 2
		return d.X <= length/2*math.Sin(theta) || d.Y <= length/2*math.Cos(theta)
	}
}
