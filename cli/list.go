package cli

import (
	"fmt"
	"text/tabwriter"

	"probsim/experiments"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalogued experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSAMPLES\tTRIALS\tDESCRIPTION")
			for _, e := range experiments.Catalogue() {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", e.Name, e.Samples, e.Trials, e.Description)
			}
			return w.Flush()
		},
	}
}
