package mappers

import (
	"strings"

	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/ozzus/footdash/internal/infrastructures/footballdata/dto"
)

func ToDomainMatches(resp dto.GetMatchesResponse) []models.Match {
	matches := make([]models.Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, ToDomainMatch(m))
	}
	return matches
}

func ToDomainMatch(in dto.Match) models.Match {
	return models.Match{
		ID:          in.ID,
		UTCDate:     strings.TrimSpace(in.UTCDate),
		Status:      in.Status,
		Matchday:    in.Matchday,
		Stage:       in.Stage,
		Group:       derefString(in.Group),
		LastUpdated: in.LastUpdated,
		HomeTeam:    toDomainTeam(in.HomeTeam),
		AwayTeam:    toDomainTeam(in.AwayTeam),
		Score: models.Score{
			Winner:   derefString(in.Score.Winner),
			Duration: in.Score.Duration,
			FullTime: models.ScoreLine{Home: in.Score.FullTime.Home, Away: in.Score.FullTime.Away},
			HalfTime: models.ScoreLine{Home: in.Score.HalfTime.Home, Away: in.Score.HalfTime.Away},
		},
	}
}

func toDomainTeam(in dto.Team) models.Team {
	return models.Team{
		ID:        in.ID,
		Name:      in.Name,
		ShortName: in.ShortName,
		TLA:       in.TLA,
		Crest:     in.Crest,
	}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
