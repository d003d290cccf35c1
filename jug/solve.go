package jug

import (
	"fmt"
	"io"

	"probsim/search"
)

// Target decides whether a state solves the puzzle.
type Target func(State) bool

// VesselsHold matches states whose first len(amounts) vessels hold exactly
// those amounts, in order.
func VesselsHold(amounts ...int) Target {
	return func(s State) bool {
		if len(amounts) >= s.Len() {
			return false
		}
		for i, amount := range amounts {
			if s.Vessel(i+1).Amount != amount {
				return false
			}
		}
		return true
	}
}

// BarrelHolds matches states whose barrel holds exactly amount.
func BarrelHolds(amount int) Target {
	return func(s State) bool {
		return s.Barrel().Amount == amount
	}
}

// Solve finds a shortest sequence of pours from start to a state matching target.
func Solve(start State, target Target, opts ...search.Option) (*search.Result[State, Move], error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil target", search.ErrOptionViolation)
	}
	return search.BFS(start, State.Neighbors, target, opts...)
}

// FormatPath writes one line per step followed by the number of transitions.
func FormatPath(w io.Writer, path search.Path[State, Move]) error {
	for _, step := range path {
		if _, err := fmt.Fprintf(w, "%s: pour %d -> %s\n", step.Move, step.Amount, step.State); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "num steps: %d\n", path.Transitions())
	return err
}
