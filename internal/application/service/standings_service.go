package service

import (
	"context"
	"fmt"
	"strings"

	derr "github.com/ozzus/footdash/internal/domain/errors"
	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/ozzus/footdash/internal/domain/ports"
	"go.uber.org/zap"
)

type StandingsResult struct {
	Competition models.Competition    `json:"competition"`
	Season      models.Season         `json:"season"`
	Table       []models.StandingsRow `json:"table"`
}

type StandingsService struct {
	log     *zap.Logger
	source  ports.FootballSource
	catalog *models.Catalog
}

func NewStandingsService(log *zap.Logger, source ports.FootballSource, catalog *models.Catalog) *StandingsService {
	return &StandingsService{
		log:     log,
		source:  source,
		catalog: catalog,
	}
}

func (s *StandingsService) GetStandings(ctx context.Context, code string) (StandingsResult, error) {
	const op = "service.GetStandings"

	code = strings.TrimSpace(code)
	if code == "" {
		return StandingsResult{}, fmt.Errorf("%s: %w", op, derr.ErrMissingCompetition)
	}

	comp, ok := s.catalog.Lookup(code)
	if !ok {
		return StandingsResult{}, fmt.Errorf("%s: %w: %q", op, derr.ErrUnknownCompetition, code)
	}

	standings, err := s.source.FetchStandings(ctx, comp.Code)
	if err != nil {
		return StandingsResult{}, fmt.Errorf("%s: fetch standings from source: %w", op, err)
	}

	table := models.SelectStandingsTable(standings.Blocks)
	s.log.Debug("standings selected",
		zap.String("op", op),
		zap.String("competition", comp.Code),
		zap.Int("blocks", len(standings.Blocks)),
		zap.Int("rows", len(table)),
	)

	return StandingsResult{
		Competition: comp,
		Season:      standings.Season,
		Table:       table,
	}, nil
}
