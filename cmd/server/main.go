package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/networth-app/networth/internal/api"
	"github.com/networth-app/networth/internal/infrastructure/config"
	"github.com/networth-app/networth/internal/infrastructure/db/postgres"
	"github.com/networth-app/networth/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Fail fast: DATABASE_URL and SESSION_SECRET are required.
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logg.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("database migration failed")
	}

	e := api.NewRouter(db, cfg, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("starting net worth tracker")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
	logg.Info().Msg("server stopped")
}
