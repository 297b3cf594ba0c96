package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ozzus/footdash/internal/application/localtime"
	"github.com/ozzus/footdash/internal/application/service"
	"github.com/ozzus/footdash/internal/config"
	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/ozzus/footdash/internal/infrastructures/footballdata"
	fdclient "github.com/ozzus/footdash/internal/infrastructures/footballdata/http/client"
	"github.com/ozzus/footdash/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// App holds what the commands need once configuration is resolved.
type App struct {
	Matches   *service.MatchService
	Standings *service.StandingsService
	Now       func() time.Time
}

// Builder resolves an App from a config path and the verbose flag.
type Builder func(configPath string, verbose bool) (*App, error)

type rootOptions struct {
	configPath string
	verbose    bool
	output     string
	app        *App
}

func NewRootCommand(build Builder) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "footdash-cli",
		Short:         "Browse football matches and standings from football-data.org",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != outputTable && opts.output != outputJSON {
				return fmt.Errorf("unsupported output %q, use %s or %s", opts.output, outputTable, outputJSON)
			}
			if cmd.Name() == "competitions" {
				return nil
			}

			app, err := build(opts.configPath, opts.verbose)
			if err != nil {
				return err
			}
			opts.app = app
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default $CONFIG_PATH or config/local.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write structured logs to stderr")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table or json")

	cmd.AddCommand(
		newMatchesCommand(opts),
		newStandingsCommand(opts),
		newCompetitionsCommand(opts),
	)

	return cmd
}

// Bootstrap is the production Builder backed by the football-data API.
func Bootstrap(configPath string, verbose bool) (*App, error) {
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.LoadByPath(configPath)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.FootballData.Token) == "" {
		return nil, errors.New("football_data.token (FOOTBALL_DATA_TOKEN) is required")
	}

	log := zap.NewNop()
	if verbose {
		if log, err = logging.New(cfg.Log); err != nil {
			return nil, fmt.Errorf("setup logger: %w", err)
		}
	}

	formatter, err := localtime.NewFormatter(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	catalog := models.DefaultCatalog()
	client := fdclient.NewClient(cfg.FootballData.BaseURL, cfg.FootballData.Token, &http.Client{Timeout: cfg.FootballData.Timeout}, nil)
	source := footballdata.NewSource(client)

	return &App{
		Matches:   service.NewMatchService(log, source, catalog, formatter),
		Standings: service.NewStandingsService(log, source, catalog),
		Now:       time.Now,
	}, nil
}

func scoreText(line models.ScoreLine) string {
	if line.Home == nil || line.Away == nil {
		return "-"
	}
	return fmt.Sprintf("%d - %d", *line.Home, *line.Away)
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		warnColor.Fprintln(w, "warning: "+msg)
	}
}
