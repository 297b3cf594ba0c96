package cli

import (
	"fmt"
	"strings"

	"github.com/ozzus/footdash/internal/application/service"
	"github.com/spf13/cobra"
)

func newMatchesCommand(opts *rootOptions) *cobra.Command {
	var (
		leagues []string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List the matches of one day",
		Example: `  footdash-cli matches
  footdash-cli matches --league PL --date 2024-03-01
  footdash-cli matches --league PL,SA -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := opts.app
			result, err := app.Matches.FetchMatches(cmd.Context(), service.MatchQuery{
				Date:  date,
				Codes: leagues,
				Now:   app.Now(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				return writeJSON(out, result)
			}

			printWarnings(cmd.ErrOrStderr(), result.Warnings)
			if len(result.Matches) == 0 {
				_, err := fmt.Fprintf(out, "No matches found for %s.\n", result.Date)
				return err
			}

			tw := newTable(out)
			headerColor.Fprintln(tw, "KICKOFF\tCOMPETITION\tHOME\tSCORE\tAWAY\tSTATUS")
			for _, m := range result.Matches {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.LocalTime,
					m.CompetitionName,
					m.HomeTeam.Name,
					scoreText(m.Score.FullTime),
					m.AwayTeam.Name,
					strings.ReplaceAll(m.Status, "_", " "),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVarP(&leagues, "league", "l", nil, "competition code(s), e.g. PL or PL,SA")
	cmd.Flags().StringVarP(&date, "date", "d", "", "day as YYYY-MM-DD (default today)")

	return cmd
}
