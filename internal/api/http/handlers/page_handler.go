package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ozzus/footdash/internal/api/http/views"
	"github.com/ozzus/footdash/internal/application/service"
	derr "github.com/ozzus/footdash/internal/domain/errors"
	"github.com/ozzus/footdash/internal/infrastructures/metrics"
	"go.uber.org/zap"
)

const missingLeagueMessage = "Select a competition before viewing standings."

type PageHandler struct {
	log       *zap.Logger
	matches   *service.MatchService
	standings *service.StandingsService
	renderer  *views.Renderer
	flash     *FlashStore
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewPageHandler(
	log *zap.Logger,
	matches *service.MatchService,
	standings *service.StandingsService,
	renderer *views.Renderer,
	flash *FlashStore,
	m *metrics.Metrics,
) *PageHandler {
	return &PageHandler{
		log:       log,
		matches:   matches,
		standings: standings,
		renderer:  renderer,
		flash:     flash,
		metrics:   m,
		now:       time.Now,
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	alerts := h.flash.Pop(w, r)

	league := parseLeague(r)
	date, valid := parseDate(r)
	if !valid {
		alerts = append(alerts, views.Alert{
			Level:   views.LevelWarning,
			Message: fmt.Sprintf("Invalid date %q, showing today instead.", date),
		})
		date = ""
	}

	query := service.MatchQuery{Date: date, Now: h.now()}
	if league != "" {
		query.Codes = []string{league}
	}

	page := views.IndexPage{
		Competitions: h.matches.Catalog().All(),
		Selected:     league,
	}

	result, err := h.matches.FetchMatches(r.Context(), query)
	if err != nil {
		h.log.Error("fetch matches failed", zap.Error(err), zap.String("league", league))
		alerts = append(alerts, views.Alert{Level: views.LevelDanger, Message: "Could not load matches. Please try again later."})
	} else {
		page.Date = result.Date
		page.Matches = result.Matches
		for _, msg := range result.Warnings {
			alerts = append(alerts, views.Alert{Level: views.LevelWarning, Message: msg})
		}
		h.metrics.AddWarnings("index", len(result.Warnings))
	}

	page.Alerts = alerts
	writeHTML(h.log, h.renderer, w, views.PageIndex, page)
}

func (h *PageHandler) Standings(w http.ResponseWriter, r *http.Request) {
	league := parseLeague(r)

	result, err := h.standings.GetStandings(r.Context(), league)
	if err != nil {
		level, message := standingsFailure(league, err)
		h.log.Warn("standings unavailable", zap.Error(err), zap.String("league", league))
		h.redirectWithFlash(w, r, level, message)
		return
	}

	writeHTML(h.log, h.renderer, w, views.PageStandings, views.StandingsPage{
		Competition: result.Competition,
		Season:      result.Season,
		Table:       result.Table,
		Alerts:      h.flash.Pop(w, r),
	})
}

func (h *PageHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	h.metrics.AddWarnings("standings", 1)
	if err := h.flash.Add(w, r, level, message); err != nil {
		h.log.Error("store flash failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func standingsFailure(league string, err error) (level, message string) {
	switch {
	case errors.Is(err, derr.ErrMissingCompetition):
		return views.LevelWarning, missingLeagueMessage
	case errors.Is(err, derr.ErrUnknownCompetition):
		return views.LevelWarning, fmt.Sprintf("Unknown competition %q.", league)
	case errors.Is(err, derr.ErrCompetitionNotFound):
		return views.LevelWarning, fmt.Sprintf("No standings available for %s.", league)
	default:
		return views.LevelDanger, "Could not load standings. Please try again later."
	}
}
