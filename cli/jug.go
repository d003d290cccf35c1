package cli

import (
	"fmt"

	"probsim/jug"
	"probsim/meta"
	"probsim/search"

	"github.com/spf13/cobra"
)

type jugFlags struct {
	barrel    int
	vessels   []int
	target    []int
	maxStates int
}

func newJugCommand() *cobra.Command {
	flags := &jugFlags{}
	cmd := &cobra.Command{
		Use:   "jug",
		Short: "Solve a pouring puzzle with the fewest transfers",
		Long: "Start from a full barrel and empty vessels and search breadth-first for\n" +
			"the shortest sequence of pours leaving the target amounts in the vessels.\n" +
			"Any container may also be emptied onto the ground.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJug(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.barrel, "barrel", meta.BARREL_CAPACITY, "Barrel capacity, starting full")
	f.IntSliceVar(&flags.vessels, "vessels", []int{meta.SMALL_VESSEL, meta.LARGE_VESSEL}, "Vessel capacities, starting empty")
	f.IntSliceVar(&flags.target, "target", []int{meta.TARGET_AMOUNT, meta.TARGET_AMOUNT}, "Wanted amount in each vessel, in order")
	f.IntVar(&flags.maxStates, "max-states", meta.MAX_STATES, "Give up after this many distinct states (0 for no limit)")
	return cmd
}

func runJug(cmd *cobra.Command, flags *jugFlags) error {
	if len(flags.target) > len(flags.vessels) {
		return fmt.Errorf("%d target amounts for %d vessels", len(flags.target), len(flags.vessels))
	}

	barrel, err := jug.NewContainer(flags.barrel, flags.barrel)
	if err != nil {
		return err
	}
	vessels := make([]jug.Container, 0, len(flags.vessels))
	for _, capacity := range flags.vessels {
		v, err := jug.NewContainer(0, capacity)
		if err != nil {
			return err
		}
		vessels = append(vessels, v)
	}
	start, err := jug.NewState(barrel, vessels...)
	if err != nil {
		return err
	}

	res, err := jug.Solve(start, jug.VesselsHold(flags.target...),
		search.WithContext(cmd.Context()),
		search.WithMaxStates(flags.maxStates),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		_, err := fmt.Fprintf(out, "no solution (visited %d states)\n", res.Visited)
		return err
	}
	return jug.FormatPath(out, res.Path)
}
