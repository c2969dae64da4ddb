package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/brandpulse/influence-api/internal/config"
	"github.com/brandpulse/influence-api/internal/httpx"
	"github.com/brandpulse/influence-api/internal/service"
	"github.com/brandpulse/influence-api/internal/store"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	st, err := newStore(cfg)
	if err != nil {
		logger.Error("store init failed", slog.String("backend", cfg.DataBackend), slog.String("err", err.Error()))
		os.Exit(1)
	}

	svc := service.New(st, logger)
	r := httpx.NewRouter(logger, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port), slog.String("backend", cfg.DataBackend))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func newStore(cfg config.Config) (store.ViewStore, error) {
	switch cfg.DataBackend {
	case "postgrest":
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, errors.New("SUPABASE_URL and SUPABASE_KEY must be set for the postgrest backend")
		}
		return store.NewPostgREST(store.NewHTTPClient(cfg.HTTPTimeout), cfg.SupabaseURL, cfg.SupabaseKey), nil
	case "sqlite":
		if err := store.RunMigrations(cfg.SQLitePath); err != nil {
			return nil, err
		}
		return store.OpenSQLite(cfg.SQLitePath)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown DATA_BACKEND %q", cfg.DataBackend)
	}
}
