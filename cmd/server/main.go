// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/auth/token"
	"github.com/festy23/matchday/internal/config"
	"github.com/festy23/matchday/internal/database/database"
	"github.com/festy23/matchday/internal/database/migrate"
	"github.com/festy23/matchday/internal/server"
	"github.com/festy23/matchday/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "matchday: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.New(log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if stats, err := database.GetStats(db); err == nil {
			log.Infow("database pool at shutdown",
				"open_connections", stats.OpenConnections,
				"in_use", stats.InUse,
				"wait_count", stats.WaitCount,
				"wait_duration", stats.WaitDuration,
			)
		}
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, migrate.GetMigrationsPath(), log); err != nil {
		return err
	}

	tokens := token.NewManager(cfg.Auth, clockwork.NewRealClock())
	router, err := server.New(cfg, db, tokens, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return serve(srv, cfg.Server, log)
}

// serve runs srv until SIGINT or SIGTERM, then drains in-flight requests.
func serve(srv *http.Server, cfg config.ServerConfig, log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
