package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ad-fanout/internal/adapter/google"
	httpadapter "ad-fanout/internal/adapter/http"
	"ad-fanout/internal/adapter/linkedin"
	"ad-fanout/internal/adapter/memory"
	"ad-fanout/internal/adapter/meta"
	"ad-fanout/internal/adapter/postgres"
	"ad-fanout/internal/adapter/tiktok"
	"ad-fanout/internal/adapter/usecase"
	"ad-fanout/internal/config"
	"ad-fanout/internal/core/port"
	"ad-fanout/internal/db"
)

// main is the entry point of the distribution service. It loads
// configuration, sets up the attempt ledger (Postgres when enabled, memory
// otherwise), registers one distributor per platform and serves the HTTP
// API until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var attempts port.AttemptRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		attempts = postgres.NewAttemptRepository(pool)
	} else {
		logger.Warn("postgres disabled, distribution attempts are kept in memory")
		attempts = memory.NewAttemptStore()
	}

	// A nil *http.Client makes every platform build its own with the
	// configured timeout.
	svc := usecase.NewDistributionUseCase(attempts, port.SystemClock{}, logger,
		meta.NewDistributor(meta.ClientFactory(cfg.Meta, nil, logger), nil, logger),
		google.NewDistributor(google.ClientFactory(cfg.Google, nil, logger), nil, logger),
		linkedin.NewDistributor(linkedin.ClientFactory(cfg.LinkedIn, nil, logger), nil, logger),
		tiktok.NewDistributor(tiktok.ClientFactory(cfg.TikTok, nil, logger), nil, logger),
	)

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		DistributeTimeout: cfg.HTTP.DistributeTimeout,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
