package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/typhoon-report/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/typhoon-report/internal/adapter/kafka"
	"github.com/couchcryptid/typhoon-report/internal/adapter/typhoon"
	"github.com/couchcryptid/typhoon-report/internal/config"
	"github.com/couchcryptid/typhoon-report/internal/observability"
	"github.com/couchcryptid/typhoon-report/internal/pipeline"
	"github.com/couchcryptid/typhoon-report/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	source := typhoon.NewClient(cfg.ListURI, cfg.InfoURI, cfg.RequestTimeout, logger)
	renderer, err := report.NewFileRenderer(cfg.OutputDir, logger)
	if err != nil {
		logger.Error("failed to prepare output directory", "dir", cfg.OutputDir, "error", err)
		return 1
	}

	// Summary export is feature-flagged via KAFKA_BROKERS.
	var publisher pipeline.Publisher
	if cfg.KafkaEnabled() {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		publisher = writer
		logger.Info("summary export enabled", "topic", cfg.KafkaSummaryTopic)
	}

	p := pipeline.New(source, renderer, publisher, logger, metrics, cfg.StartYear, cfg.EndYear)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := p.Run(ctx)
	if runErr != nil {
		logger.Error("report run failed", "error", runErr)
	} else {
		logger.Info("reports written", "dir", renderer.Dir())
	}

	if cfg.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		if err := observability.Push(pushCtx, cfg.PushgatewayURL, metrics); err != nil {
			logger.Error("metrics push failed", "error", err)
		}
		cancel()
	}

	if runErr != nil {
		return 1
	}
	if cfg.ServeAddr == "" {
		return 0
	}

	srv := httpadapter.NewServer(cfg.ServeAddr, cfg.OutputDir, p, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
		return 1
	}
	logger.Info("shutdown complete")
	return 0
}
