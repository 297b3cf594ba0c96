package footballdata

import (
	"context"
	"fmt"

	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/ozzus/footdash/internal/infrastructures/footballdata/http/client"
	"github.com/ozzus/footdash/internal/infrastructures/footballdata/mappers"
)

type Source struct {
	client *client.Client
}

func NewSource(client *client.Client) *Source {
	return &Source{
		client: client,
	}
}

// FetchMatches loads a single calendar day for one competition.
func (s *Source) FetchMatches(ctx context.Context, competitionCode, day string) ([]models.Match, error) {
	resp, err := s.client.GetMatches(ctx, competitionCode, day, day)
	if err != nil {
		return nil, fmt.Errorf("get matches for %s on %s: %w", competitionCode, day, err)
	}

	return mappers.ToDomainMatches(resp), nil
}

func (s *Source) FetchStandings(ctx context.Context, competitionCode string) (models.Standings, error) {
	resp, err := s.client.GetStandings(ctx, competitionCode)
	if err != nil {
		return models.Standings{}, fmt.Errorf("get standings for %s: %w", competitionCode, err)
	}

	return mappers.ToDomainStandings(resp), nil
}
