package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/user/esg-source-catalog/internal/entity"
	"github.com/user/esg-source-catalog/internal/repository"
	"github.com/user/esg-source-catalog/pkg/metrics"
)

const defaultSinkTimeout = 10 * time.Second

// CatalogUpdater merges a source list into the stored catalog.
type CatalogUpdater interface {
	Update(ctx context.Context, incoming []entity.Source) (*UpdateResult, error)
}

// UpdateResult is the saved document and what the merge did.
type UpdateResult struct {
	Document *entity.Document
	Stats    MergeStats
}

// Option configures a CatalogUpdater.
type Option func(*catalogUpdater)

// WithClock replaces time.Now as the source of updated_at.
func WithClock(now func() time.Time) Option {
	return func(uc *catalogUpdater) {
		uc.now = now
	}
}

// WithSinks publishes every saved catalog to sinks, in order.
func WithSinks(sinks ...Sink) Option {
	return func(uc *catalogUpdater) {
		uc.sinks = append(uc.sinks, sinks...)
	}
}

// WithSinkTimeout bounds the time spent on each sink.
func WithSinkTimeout(d time.Duration) Option {
	return func(uc *catalogUpdater) {
		uc.sinkTimeout = d
	}
}

type catalogUpdater struct {
	catalogRepo repository.CatalogRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	sinks       []Sink
	sinkTimeout time.Duration
	now         func() time.Time
}

// NewCatalogUpdater creates a new instance of the catalog update use case.
func NewCatalogUpdater(
	catalogRepo repository.CatalogRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ...Option,
) CatalogUpdater {
	uc := &catalogUpdater{
		catalogRepo: catalogRepo,
		metrics:     m,
		logger:      logger,
		sinkTimeout: defaultSinkTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Update loads the stored catalog, merges incoming into it, saves the result
// with a fresh updated_at and then hands it to the sinks. Load and save
// failures abort the update; sink failures are only logged.
func (uc *catalogUpdater) Update(ctx context.Context, incoming []entity.Source) (*UpdateResult, error) {
	existing, err := uc.catalogRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", uc.catalogRepo.Location(), err)
	}
	uc.logger.Debug("Loaded catalog",
		zap.String("location", uc.catalogRepo.Location()),
		zap.Int("sources", len(existing.Sources)))

	merged, stats := MergeSources(existing.Sources, incoming)

	savedAt := uc.now()
	updatedAt := entity.FormatUpdatedAt(savedAt)
	doc := &entity.Document{UpdatedAt: &updatedAt, Sources: merged}

	if err := uc.catalogRepo.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save catalog to %s: %w", uc.catalogRepo.Location(), err)
	}

	uc.metrics.ObserveMerge(stats.Added, stats.Replaced, stats.Retained, len(merged), savedAt)
	uc.logger.Info("Catalog updated",
		zap.String("location", uc.catalogRepo.Location()),
		zap.Int("sources", len(merged)),
		zap.Int("added", stats.Added),
		zap.Int("replaced", stats.Replaced),
		zap.Int("retained", stats.Retained))

	uc.publish(ctx, doc)

	return &UpdateResult{Document: doc, Stats: stats}, nil
}

func (uc *catalogUpdater) publish(ctx context.Context, doc *entity.Document) {
	for _, sink := range uc.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, uc.sinkTimeout)
		err := sink.Publish(sinkCtx, doc)
		cancel()

		if err != nil {
			// The file is already saved; a sink can catch up on the next run.
			uc.metrics.IncSinkErrors(sink.Name())
			uc.logger.Warn("Failed to publish catalog", zap.String("sink", sink.Name()), zap.Error(err))
			continue
		}
		uc.logger.Debug("Published catalog", zap.String("sink", sink.Name()))
	}
}
