package cli

import (
	"fmt"
	"io"
	"math"

	"probsim/experiments"
	"probsim/experiments/metrics"

	"github.com/spf13/cobra"
)

type simFlags struct {
	all     bool
	samples int
	trials  int
	format  string
}

func newSimCommand(root *rootFlags) *cobra.Command {
	flags := &simFlags{}
	cmd := &cobra.Command{
		Use:   "sim [experiment...]",
		Short: "Estimate catalogued probabilities by simulation",
		Long: "Run the named experiments, or every experiment with --all, and report the\n" +
			"mean and sample standard deviation of the per-sample results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd, args, root, flags)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.all, "all", false, "Run every catalogued experiment")
	f.IntVar(&flags.samples, "samples", 0, "Samples per experiment (0 keeps each experiment's own)")
	f.IntVar(&flags.trials, "trials", 0, "Trials per sample (0 keeps each experiment's own)")
	f.StringVar(&flags.format, "format", "text", "Output format: text, csv or yaml")
	return cmd
}

func runSim(cmd *cobra.Command, args []string, root *rootFlags, flags *simFlags) error {
	out := cmd.OutOrStdout()
	var write func([]metrics.RunRecord) error
	switch flags.format {
	case "text":
		write = func(records []metrics.RunRecord) error { return writeRecords(out, records) }
	case "csv":
		write = metrics.NewWriter(out).WriteRunRecords
	case "yaml":
		write = metrics.NewWriter(out).WriteRunRecordsYAML
	default:
		return fmt.Errorf("unknown format %q, want text, csv or yaml", flags.format)
	}

	var exps []experiments.Experiment
	switch {
	case flags.all && len(args) > 0:
		return fmt.Errorf("name experiments or pass --all, not both")
	case flags.all:
		exps = experiments.Catalogue()
	case len(args) == 0:
		return fmt.Errorf("no experiment named; see 'probsim list' or pass --all")
	default:
		var err error
		if exps, err = experiments.Lookup(args...); err != nil {
			return err
		}
	}

	records, err := experiments.Run(exps, experiments.Config{
		Samples: flags.samples,
		Trials:  flags.trials,
		Seed:    root.seed,
	})
	if err != nil {
		return err
	}
	return write(records)
}

func writeRecords(out io.Writer, records []metrics.RunRecord) error {
	for _, r := range records {
		line := fmt.Sprintf("%-16s mean=%v, stdev=%v", r.Experiment, r.Mean, r.StdDev)
		if !math.IsNaN(r.Expected) {
			line += fmt.Sprintf(" (exact %v)", r.Expected)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
