package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/FynnK/FestivalInventory/internal/config"
	"github.com/FynnK/FestivalInventory/internal/notify"
	"github.com/FynnK/FestivalInventory/internal/router"
	"github.com/FynnK/FestivalInventory/internal/scanner"
	"github.com/FynnK/FestivalInventory/internal/service"
	"github.com/FynnK/FestivalInventory/internal/store"
	"github.com/FynnK/FestivalInventory/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func newStore(cfg *config.Config) (store.SnapshotStore, error) {
	switch cfg.SnapshotBackend {
	case "file":
		return store.NewFileStore(cfg.SnapshotPath), nil
	case "sqlite":
		return store.NewSQLiteStore(cfg.SQLitePath)
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		return store.NewRedisStore(rdb, cfg.RedisKey), nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
}

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	st, err := newStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SnapshotBackend).Msg("failed to open snapshot store")
	}

	sink := notify.NewLogSink(log.Logger)
	svc := service.NewInventoryService(st, sink, cfg.PDFStoragePath)

	if err := svc.Restore(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to restore snapshot")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Import mode is owned here and read on every hardware scan.
	var importMode atomic.Bool

	// Optional hardware scanner — the HTTP scan endpoint works without it.
	if cfg.ScannerDevice != "" {
		source := scanner.NewDeviceSource(cfg.ScannerDevice)
		pump := worker.NewScanPump(source, svc, importMode.Load, sink)
		if err := pump.Start(ctx); err != nil {
			log.Fatal().Err(err).Str("device", cfg.ScannerDevice).Msg("failed to start scanner")
		}
	}

	r := router.New(cfg, svc, st, &importMode)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("festival inventory listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel() // stops the scan pump and releases the scanner device
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
