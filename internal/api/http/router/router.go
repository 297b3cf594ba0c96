package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ozzus/footdash/internal/api/http/handlers"
	"github.com/ozzus/footdash/internal/api/http/middleware"
	"github.com/ozzus/footdash/internal/infrastructures/metrics"
	"go.uber.org/zap"
)

func New(log *zap.Logger, m *metrics.Metrics, pages *handlers.PageHandler, api *handlers.APIHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.Logging(log, m))

	r.HandleFunc("/", pages.Index).Methods(http.MethodGet)
	r.HandleFunc("/standings", pages.Standings).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/competitions", api.Competitions).Methods(http.MethodGet)
	v1.HandleFunc("/matches", api.Matches).Methods(http.MethodGet)
	v1.HandleFunc("/standings", api.Standings).Methods(http.MethodGet)

	r.HandleFunc("/healthz", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	return r
}
