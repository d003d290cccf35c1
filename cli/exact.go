package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"probsim/exact"

	"github.com/spf13/cobra"
)

type exactAnswer struct {
	name  string
	solve func(w io.Writer) error
}

// exactAnswers are the closed-form exercises, with the parameters they were posed with.
var exactAnswers = []exactAnswer{
	{"egg-drop", func(w io.Writer) error {
		plan, err := exact.MinEggDrops(3, 130)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "3 eggs, 130 floors -> drop from %d, worst-case drops = %d\n", plan.FirstFloor, plan.Drops)
		return err
	}},
	{"ruin", func(w io.Writer) error {
		p, err := exact.RuinAtStep(5, 3, 1.0/3)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "start 5, p=1/3 -> ruin at exactly step 11 = %v\n", p)
		return err
	}},
	{"ballot", func(w io.Writer) error {
		paths, err := exact.BallotPaths(20, 13)
		if err != nil {
			return err
		}
		closed, err := exact.BallotClosedForm(20, 13)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "20 votes to 13 -> %s counts never behind (closed form %s)\n", paths, closed)
		return err
	}},
	{"six-card", func(w io.Writer) error {
		e, err := exact.SixCardExpectation(3, 3)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "3 aces, 3 jacks -> expected correct guesses = %s (%s)\n", e.RatString(), e.FloatString(6))
		return err
	}},
	{"racquetball", func(w io.Writer) error {
		p, err := exact.RacquetballWin(21, 0.6, 0.5)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "to 21 serving first, .6/.5 -> win = %v\n", p)
		return err
	}},
	{"cube", func(w io.Writer) error {
		c, err := exact.CubeColorings(6)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "6 colors -> paintings with a same-colored edge = %s\n", c)
		return err
	}},
	{"turtle", func(w io.Writer) error {
		const moves = 10
		c, err := exact.DominatedTurtle(0, 4, moves)
		if err != nil {
			return err
		}
		all := new(big.Int).Lsh(big.NewInt(1), 2*moves)
		p := new(big.Rat).SetFrac(big.NewInt(int64(c.Hits)), all)
		_, err = fmt.Fprintf(w, "starts 0 and 4, 10 steps -> returning pairs always behind = %s, probability = %s\n", c, p.RatString())
		return err
	}},
	{"seating", func(w io.Writer) error {
		c, err := exact.SeatingNoRepeatNeighbors(10)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "10 seats -> second seatings without a repeated neighbor = %s\n", c)
		return err
	}},
}

func newExactCommand() *cobra.Command {
	names := make([]string, 0, len(exactAnswers))
	for _, a := range exactAnswers {
		names = append(names, a.name)
	}

	return &cobra.Command{
		Use:       "exact [name...]",
		Short:     "Print exact answers computed by recurrence or enumeration",
		Long:      "Print the named exact answers, or all of them when none is named.\nKnown names: " + strings.Join(names, ", "),
		ValidArgs: names,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExact(cmd.OutOrStdout(), args)
		},
	}
}

func runExact(out io.Writer, names []string) error {
	if len(names) == 0 {
		for _, a := range exactAnswers {
			names = append(names, a.name)
		}
	}
	for _, name := range names {
		for _, a := range exactAnswers {
			if a.name != name {
				continue
			}
			if _, err := fmt.Fprintf(out, "%s: ", name); err != nil {
				return err
			}
			if err := a.solve(out); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}
