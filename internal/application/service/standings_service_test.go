package service

import (
	"context"
	"errors"
	"testing"

	derr "github.com/ozzus/footdash/internal/domain/errors"
	"github.com/ozzus/footdash/internal/domain/models"
	"go.uber.org/zap"
)

func TestGetStandings_SelectsTotalTable(t *testing.T) {
	matchday := 27
	source := &sourceMock{
		standings: models.Standings{
			Season: models.Season{StartDate: "2023-08-11", CurrentMatchday: &matchday},
			Blocks: []models.StandingsBlock{
				{Type: "HOME", Table: []models.StandingsRow{{Position: 1, Team: models.Team{Name: "Liverpool FC"}}}},
				{Type: "TOTAL", Table: []models.StandingsRow{{Position: 1, Team: models.Team{Name: "Arsenal FC"}}}},
			},
		},
	}

	svc := NewStandingsService(zap.NewNop(), source, models.DefaultCatalog())
	got, err := svc.GetStandings(context.Background(), "pl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if source.stCalls != 1 || source.stCodes[0] != "PL" {
		t.Fatalf("expected one PL call, got %v", source.stCodes)
	}
	if got.Competition.Name != "Premier League" {
		t.Fatalf("unexpected competition: %+v", got.Competition)
	}
	if len(got.Table) != 1 || got.Table[0].Team.Name != "Arsenal FC" {
		t.Fatalf("expected TOTAL table, got %+v", got.Table)
	}
	if got.Season.CurrentMatchday == nil || *got.Season.CurrentMatchday != 27 {
		t.Fatalf("unexpected season: %+v", got.Season)
	}
}

func TestGetStandings_Errors(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		sourceErr error
		wantErr   error
		wantCalls int
	}{
		{name: "missing code", code: "  ", wantErr: derr.ErrMissingCompetition},
		{name: "unknown code", code: "XYZ", wantErr: derr.ErrUnknownCompetition},
		{name: "source unavailable", code: "SA", sourceErr: derr.ErrSourceUnavailable, wantErr: derr.ErrSourceUnavailable, wantCalls: 1},
		{name: "source not found", code: "SA", sourceErr: derr.ErrCompetitionNotFound, wantErr: derr.ErrCompetitionNotFound, wantCalls: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := &sourceMock{stErr: tc.sourceErr}
			svc := NewStandingsService(zap.NewNop(), source, models.DefaultCatalog())

			_, err := svc.GetStandings(context.Background(), tc.code)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if source.stCalls != tc.wantCalls {
				t.Fatalf("expected %d source calls, got %d", tc.wantCalls, source.stCalls)
			}
		})
	}
}

func TestGetStandings_NoBlocksGivesEmptyTable(t *testing.T) {
	source := &sourceMock{}
	svc := NewStandingsService(zap.NewNop(), source, models.DefaultCatalog())

	got, err := svc.GetStandings(context.Background(), "WC")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Table == nil || len(got.Table) != 0 {
		t.Fatalf("expected empty non-nil table, got %#v", got.Table)
	}
}
