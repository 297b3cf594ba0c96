package cli

import (
	"fmt"

	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/spf13/cobra"
)

func newCompetitionsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "competitions",
		Short: "List the supported competition codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := models.DefaultCatalog().All()
			out := cmd.OutOrStdout()

			if opts.output == outputJSON {
				return writeJSON(out, items)
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "CODE\tNAME")
			for _, c := range items {
				fmt.Fprintf(tw, "%s\t%s\n", c.Code, c.Name)
			}
			return tw.Flush()
		},
	}
}
