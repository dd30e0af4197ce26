package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/temperature-heatmap-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/temperature-heatmap-service/internal/adapter/kafka"
	s3adapter "github.com/couchcryptid/temperature-heatmap-service/internal/adapter/s3"
	"github.com/couchcryptid/temperature-heatmap-service/internal/adapter/source"
	"github.com/couchcryptid/temperature-heatmap-service/internal/config"
	"github.com/couchcryptid/temperature-heatmap-service/internal/observability"
	"github.com/couchcryptid/temperature-heatmap-service/internal/pipeline"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Publishers are feature-flagged via S3_BUCKET and KAFKA_ENABLED.
	var publishers []pipeline.Publisher
	if cfg.S3Enabled {
		pub, err := s3adapter.NewPublisher(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to create s3 publisher", "error", err)
			os.Exit(1)
		}
		publishers = append(publishers, pub)
		logger.Info("s3 publishing enabled", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
	}
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publishers = append(publishers, writer)
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	client := source.NewClient(cfg.SourceURL, cfg.SourceTimeout, metrics, logger)
	renderer := pipeline.NewRenderer(render.DefaultLayout(), logger)

	p := pipeline.New(client, renderer, publishers, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Fetch and render once. A failure leaves /readyz reporting not ready.
	go func() {
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
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
