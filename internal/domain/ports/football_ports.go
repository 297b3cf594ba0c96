package ports

import (
	"context"
	"time"

	"github.com/ozzus/footdash/internal/domain/models"
)

// FootballSource is the read-only upstream feed. Returned matches carry only
// upstream fields; LocalTime and competition labels are filled by services.
type FootballSource interface {
	FetchMatches(ctx context.Context, competitionCode, day string) ([]models.Match, error)
	FetchStandings(ctx context.Context, competitionCode string) (models.Standings, error)
}

type TimeFormatter interface {
	ToLocalDisplay(isoUTC string) (string, error)
	Today(now time.Time) string
}
