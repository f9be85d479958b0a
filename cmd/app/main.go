package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/petworks/tamacore/internal/clock"
	"github.com/petworks/tamacore/internal/config"
	"github.com/petworks/tamacore/internal/item"
	"github.com/petworks/tamacore/internal/logger"
	"github.com/petworks/tamacore/internal/metrics"
	"github.com/petworks/tamacore/internal/server"
	"github.com/petworks/tamacore/internal/session"
	"github.com/petworks/tamacore/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logCfg := logger.DevelopmentConfig()
	if cfg.Environment == "prod" {
		logCfg = logger.ProductionConfig()
	}
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	catalog, err := item.LoadEmbedded()
	if err != nil {
		return err
	}
	slog.Info("Loaded item catalog", "items", catalog.Len())

	sess, err := session.New(ctx, clock.System{}, store, catalog)
	if err != nil {
		return err
	}
	prometheus.MustRegister(metrics.NewEventCollector(sess.EventCounts))

	srv := server.NewServer(cfg.Port, sess, store)

	// Tick loop drives the simulation independently of HTTP traffic.
	tickCtx, stopTicks := context.WithCancel(ctx)
	tickDone := make(chan struct{})
	go func() {
		defer close(tickDone)
		ticker := time.NewTicker(cfg.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-tickCtx.Done():
				return
			case <-ticker.C:
				sess.Tick(tickCtx)
			}
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port, "backend", cfg.StorageBackend)
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		stopTicks()
		<-tickDone
		return err
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}
	stopTicks()
	<-tickDone

	// Final save so nothing since the last autosave window is lost.
	if err := sess.Close(shutdownCtx); err != nil {
		slog.Error("Final save failed", "error", err)
	}
	return nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		return storage.OpenSQLite(cfg.DBPath)
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
