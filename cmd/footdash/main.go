package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ozzus/footdash/internal/api/http/handlers"
	"github.com/ozzus/footdash/internal/api/http/router"
	"github.com/ozzus/footdash/internal/api/http/views"
	"github.com/ozzus/footdash/internal/application/localtime"
	"github.com/ozzus/footdash/internal/application/service"
	"github.com/ozzus/footdash/internal/config"
	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/ozzus/footdash/internal/infrastructures/footballdata"
	fdclient "github.com/ozzus/footdash/internal/infrastructures/footballdata/http/client"
	"github.com/ozzus/footdash/internal/infrastructures/metrics"
	"github.com/ozzus/footdash/internal/infrastructures/tracing"
	"github.com/ozzus/footdash/internal/logging"
	"go.uber.org/zap"
)

const serviceName = "footdash"

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log, err := logging.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	tp, err := tracing.InitTracer(serviceName, cfg.Jaeger)
	if err != nil {
		log.Fatal("init tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("tracer shutdown error", zap.Error(err))
		}
	}()

	formatter, err := localtime.NewFormatter(cfg.Timezone)
	if err != nil {
		log.Fatal("load timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal("parse templates", zap.Error(err))
	}

	m := metrics.New()
	catalog := models.DefaultCatalog()
	client := fdclient.NewClient(cfg.FootballData.BaseURL, cfg.FootballData.Token, &http.Client{Timeout: cfg.FootballData.Timeout}, m)
	source := footballdata.NewSource(client)

	matches := service.NewMatchService(log, source, catalog, formatter)
	standings := service.NewStandingsService(log, source, catalog)

	flash := handlers.NewFlashStore(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.Secure)
	pages := handlers.NewPageHandler(log, matches, standings, renderer, flash, m)
	api := handlers.NewAPIHandler(log, matches, standings, m)

	addr := cfg.HTTP.Address()
	log.Info("footdash starting",
		zap.String("env", cfg.Env),
		zap.String("http_addr", addr),
		zap.String("timezone", formatter.Location().String()),
		zap.Int("competitions", len(catalog.Codes())),
	)

	server := &http.Server{
		Addr:         addr,
		Handler:      router.New(log, m, pages, api),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("http shutdown error", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", zap.Error(err))
		}
	}
}
