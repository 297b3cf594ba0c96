package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStandingsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "standings <league>",
		Short:   "Show the league table of a competition",
		Example: "  footdash-cli standings BSA",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.app.Standings.GetStandings(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				return writeJSON(out, result)
			}

			headerColor.Fprintln(out, result.Competition.Name)
			if len(result.Table) == 0 {
				_, err := fmt.Fprintln(out, "No standings available.")
				return err
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "#\tTEAM\tP\tW\tD\tL\tGF\tGA\tGD\tPTS")
			for _, row := range result.Table {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
					row.Position,
					row.Team.Name,
					row.PlayedGames,
					row.Won,
					row.Draw,
					row.Lost,
					row.GoalsFor,
					row.GoalsAgainst,
					row.GoalDifference,
					row.Points,
				)
			}
			return tw.Flush()
		},
	}
}
