package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/esg-source-catalog/internal/adapter/jsonfile"
	"github.com/user/esg-source-catalog/internal/catalog"
	"github.com/user/esg-source-catalog/internal/delivery/console"
	"github.com/user/esg-source-catalog/internal/usecase"
	"github.com/user/esg-source-catalog/pkg/config"
	"github.com/user/esg-source-catalog/pkg/logger"
	"github.com/user/esg-source-catalog/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("Catalog update failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// --- Metrics ---
	m := metrics.New(prometheus.NewRegistry())

	// --- Repositories & sinks ---
	catalogRepo := jsonfile.NewCatalogRepo(cfg.CatalogFile, cfg.AtomicWrite)

	sinks, closeSinks := connectSinks(ctx, cfg, m, log)
	defer closeSinks()

	// --- Use Case ---
	updater := usecase.NewCatalogUpdater(catalogRepo, m, log,
		usecase.WithSinks(sinks...),
		usecase.WithSinkTimeout(cfg.SinkTimeout()),
	)

	result, err := updater.Update(ctx, catalog.Sources())
	if err != nil {
		return err
	}

	if err := console.WriteSummary(os.Stdout, catalogRepo.Location(), result.Document.Sources); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	if err := m.Export(ctx, cfg.MetricsTextfile, cfg.PushgatewayURL); err != nil {
		log.Warn("Failed to export metrics", zap.Error(err))
	}
	return nil
}
