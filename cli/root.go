package cli

import (
	"fmt"
	"os"

	"probsim/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	logLevel string
	seed     uint64
}

// NewRootCommand builds the probsim command tree with fresh flag state.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "probsim",
		Short: "Monte Carlo probability exercises and the beer barrel puzzle",
		Long: "probsim estimates probabilities by repeated simulation, reporting the mean\n" +
			"and sample standard deviation over independent samples, and solves\n" +
			"liquid pouring puzzles by breadth-first search.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd, flags.logLevel)
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	pf.Uint64Var(&flags.seed, "seed", meta.DEFAULT_SEED, "Seed for the random source")

	root.AddCommand(newSimCommand(flags))
	root.AddCommand(newJugCommand())
	root.AddCommand(newExactCommand())
	root.AddCommand(newListCommand())
	return root
}

// setupLogging sends human readable logs to stderr so stdout carries results only.
func setupLogging(cmd *cobra.Command, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	return nil
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
