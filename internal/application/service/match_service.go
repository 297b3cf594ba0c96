package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ozzus/footdash/internal/application/localtime"
	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/ozzus/footdash/internal/domain/ports"
	"go.uber.org/zap"
)

type MatchQuery struct {
	// Date is YYYY-MM-DD; empty means the local calendar day of Now.
	Date  string
	Codes []string
	Now   time.Time
}

type MatchesResult struct {
	Date     string         `json:"date"`
	Selected string         `json:"selected,omitempty"`
	Matches  []models.Match `json:"matches"`
	Warnings []string       `json:"warnings"`
}

type MatchService struct {
	log       *zap.Logger
	source    ports.FootballSource
	catalog   *models.Catalog
	formatter ports.TimeFormatter
}

func NewMatchService(log *zap.Logger, source ports.FootballSource, catalog *models.Catalog, formatter ports.TimeFormatter) *MatchService {
	return &MatchService{
		log:       log,
		source:    source,
		catalog:   catalog,
		formatter: formatter,
	}
}

func (s *MatchService) Catalog() *models.Catalog {
	return s.catalog
}

// FetchMatches aggregates one day of matches across competitions, sorted by
// the upstream UTC timestamp. Per-competition failures become warnings.
func (s *MatchService) FetchMatches(ctx context.Context, q MatchQuery) (MatchesResult, error) {
	const op = "service.FetchMatches"

	day := strings.TrimSpace(q.Date)
	if day == "" {
		day = s.formatter.Today(q.Now)
	} else if _, err := localtime.ParseDay(day); err != nil {
		return MatchesResult{}, fmt.Errorf("%s: %w", op, err)
	}

	codes := normalizeCodes(q.Codes)
	explicit := len(codes) == 1
	if len(codes) == 0 {
		codes = s.catalog.Codes()
	}

	logger := s.log.With(
		zap.String("op", op),
		zap.String("date", day),
	)

	result := MatchesResult{
		Date:     day,
		Matches:  make([]models.Match, 0),
		Warnings: make([]string, 0),
	}
	if explicit {
		result.Selected = codes[0]
	}

	for _, code := range codes {
		comp, ok := s.catalog.Lookup(code)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown competition %q.", code))
			continue
		}

		items, err := s.source.FetchMatches(ctx, comp.Code, day)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return MatchesResult{}, fmt.Errorf("%s: %w", op, ctxErr)
			}
			logger.Warn("fetch competition matches failed", zap.String("competition", comp.Code), zap.Error(err))
			if explicit {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Could not fetch matches for %s.", comp.Name))
			}
			continue
		}

		if explicit && len(items) == 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s has no matches on the selected date.", comp.Name))
		}

		skipped := 0
		for _, m := range items {
			local, err := s.formatter.ToLocalDisplay(m.UTCDate)
			if err != nil {
				logger.Warn("skip match with malformed kickoff",
					zap.String("competition", comp.Code),
					zap.Int64("match_id", m.ID),
					zap.Error(err),
				)
				skipped++
				continue
			}

			m.LocalTime = local
			m.CompetitionCode = comp.Code
			m.CompetitionName = comp.Name
			result.Matches = append(result.Matches, m)
		}

		if skipped > 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%d %s match(es) skipped: invalid kickoff time.", skipped, comp.Name))
		}
	}

	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].UTCDate < result.Matches[j].UTCDate
	})

	logger.Debug("matches aggregated",
		zap.Int("competitions", len(codes)),
		zap.Int("matches", len(result.Matches)),
		zap.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		code := strings.ToUpper(strings.TrimSpace(c))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
