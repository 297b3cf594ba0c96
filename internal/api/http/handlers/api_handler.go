package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ozzus/footdash/internal/application/service"
	derr "github.com/ozzus/footdash/internal/domain/errors"
	"github.com/ozzus/footdash/internal/infrastructures/metrics"
	"go.uber.org/zap"
)

type APIHandler struct {
	log       *zap.Logger
	matches   *service.MatchService
	standings *service.StandingsService
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewAPIHandler(log *zap.Logger, matches *service.MatchService, standings *service.StandingsService, m *metrics.Metrics) *APIHandler {
	return &APIHandler{
		log:       log,
		matches:   matches,
		standings: standings,
		metrics:   m,
		now:       time.Now,
	}
}

func (h *APIHandler) Competitions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"competitions": h.matches.Catalog().All(),
	})
}

func (h *APIHandler) Matches(w http.ResponseWriter, r *http.Request) {
	date, valid := parseDate(r)
	if !valid {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	result, err := h.matches.FetchMatches(r.Context(), service.MatchQuery{
		Date:  date,
		Codes: parseCodes(r.URL.Query().Get("league")),
		Now:   h.now(),
	})
	if err != nil {
		if errors.Is(err, derr.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		h.log.Error("api fetch matches failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "football data error")
		return
	}

	h.metrics.AddWarnings("api_matches", len(result.Warnings))
	writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) Standings(w http.ResponseWriter, r *http.Request) {
	result, err := h.standings.GetStandings(r.Context(), parseLeague(r))
	if err != nil {
		switch {
		case errors.Is(err, derr.ErrMissingCompetition):
			writeError(w, http.StatusBadRequest, "league query is required, example: /api/v1/standings?league=PL")
		case errors.Is(err, derr.ErrUnknownCompetition), errors.Is(err, derr.ErrCompetitionNotFound):
			writeError(w, http.StatusNotFound, "competition not found")
		default:
			h.log.Error("api get standings failed", zap.Error(err))
			writeError(w, http.StatusBadGateway, "football data error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
