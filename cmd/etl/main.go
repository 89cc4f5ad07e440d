package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/ish-observation-etl/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/ish-observation-etl/internal/adapter/kafka"
	"github.com/couchcryptid/ish-observation-etl/internal/adapter/mapbox"
	"github.com/couchcryptid/ish-observation-etl/internal/adapter/sqlite"
	"github.com/couchcryptid/ish-observation-etl/internal/config"
	"github.com/couchcryptid/ish-observation-etl/internal/domain"
	"github.com/couchcryptid/ish-observation-etl/internal/ish"
	"github.com/couchcryptid/ish-observation-etl/internal/observability"
	"github.com/couchcryptid/ish-observation-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Initialize geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(geocoder, logger)

	opts := httpadapter.Options{
		Decoder:        ish.NewDecoder(ish.DefaultDescriptions()),
		MaxDecodeBytes: cfg.MaxDecodeBytes,
	}

	// The archive is written after Kafka so a replayed batch is never
	// archived without being published.
	var loader pipeline.BatchLoader = writer
	var archive *sqlite.Store
	if cfg.ArchivePath != "" {
		archive, err = sqlite.Open(cfg.ArchivePath, metrics)
		if err != nil {
			logger.Error("failed to open archive", "path", cfg.ArchivePath, "error", err)
			os.Exit(1)
		}
		loader = pipeline.NewFanoutLoader(writer, archive)
		opts.Archive = archive
		logger.Info("sqlite archive enabled", "path", cfg.ArchivePath)
	}

	p := pipeline.New(reader, transformer, loader, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, opts, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	select {
	case <-done:
	case <-shutdownCtx.Done():
		logger.Warn("pipeline did not stop before shutdown timeout")
	}

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
	if archive != nil {
		if err := archive.Close(); err != nil {
			logger.Error("archive close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
