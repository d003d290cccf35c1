package search

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStateLimit is returned when more states are discovered than allowed.
	ErrStateLimit = errors.New("search: state limit exceeded")
)

// Step is one transition: the state reached, the move taken to reach it and
// the amount the move carried. The first step of a Path holds the start state
// with the zero Move and Amount 0.
type Step[S comparable, M any] struct {
	State  S
	Move   M
	Amount int
}

// Path lists the steps from the start state to a target, both inclusive.
type Path[S comparable, M any] []Step[S, M]

// Transitions is the number of moves along the path.
func (p Path[S, M]) Transitions() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Final returns the last state of the path, if any.
func (p Path[S, M]) Final() (S, bool) {
	if len(p) == 0 {
		var zero S
		return zero, false
	}
	return p[len(p)-1].State, true
}

// Result is the outcome of one search.
type Result[S comparable, M any] struct {
	Path    Path[S, M]
	Found   bool
	Visited int // Distinct states discovered, start included
}

type Option func(*Options)

type Options struct {
	// Ctx allows cancellation; checked once per dequeued state.
	Ctx context.Context

	// MaxStates, if > 0, fails the search with ErrStateLimit once more
	// distinct states than this have been discovered.
	MaxStates int

	// MaxDepth, if > 0, does not expand paths beyond this many transitions.
	MaxDepth int

	err error
}

func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates bounds the number of discovered states; 0 disables the bound.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithMaxDepth bounds the path length in transitions; 0 disables the bound.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
