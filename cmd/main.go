// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shivanand-hulikatti/activity-signup/internal/config"
	"github.com/Shivanand-hulikatti/activity-signup/internal/handler"
	"github.com/Shivanand-hulikatti/activity-signup/internal/journal"
	"github.com/Shivanand-hulikatti/activity-signup/internal/logger"
	"github.com/Shivanand-hulikatti/activity-signup/internal/registry"
	"github.com/Shivanand-hulikatti/activity-signup/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "activity-signup: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Configuration and logging ─────────────────────────────────────
	cfg, err := config.Load(config.Options{})
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// ── 2. Registration journal ──────────────────────────────────────────
	j, err := journal.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	defer func() {
		if err := j.Close(); err != nil {
			log.WithError(err).Warn("journal close failed", nil)
		}
	}()
	log.Info("journal ready", map[string]interface{}{"driver": cfg.Journal.Driver})

	// ── 3. Wire up layers ────────────────────────────────────────────────
	activities := registry.New(registry.Seed(), registry.WithCapacityEnforcement(cfg.Registry.EnforceCapacity))
	svc := service.NewActivityService(activities, j, log)
	activityHandler := handler.NewActivityHandler(svc, log)

	staticDir := cfg.Server.StaticDir
	if _, err := os.Stat(staticDir); err != nil {
		log.Warn("static directory unavailable, front-end disabled", map[string]interface{}{"dir": staticDir})
		staticDir = ""
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.NewRouter(activityHandler, log, staticDir),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// ── 4. Serve until signalled, then shut down gracefully ──────────────
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", map[string]interface{}{
			"addr":       srv.Addr,
			"activities": activities.Names(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}
