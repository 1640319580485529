package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/user/esg-source-catalog/internal/entity"
	"github.com/user/esg-source-catalog/internal/repository"
	"github.com/user/esg-source-catalog/pkg/metrics"
	"github.com/user/esg-source-catalog/pkg/utils"
)

// QueueSeeder hands catalog URLs to the crawler service's queue, skipping
// URLs that were seeded within the dedup window.
type QueueSeeder struct {
	queueRepo  repository.QueueRepository
	markerRepo repository.SeedMarkerRepository
	expiry     time.Duration
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewQueueSeeder creates a new QueueSeeder.
func NewQueueSeeder(
	queueRepo repository.QueueRepository,
	markerRepo repository.SeedMarkerRepository,
	expiry time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *QueueSeeder {
	return &QueueSeeder{
		queueRepo:  queueRepo,
		markerRepo: markerRepo,
		expiry:     expiry,
		metrics:    m,
		logger:     logger,
	}
}

// Name identifies the seeder as a sink.
func (s *QueueSeeder) Name() string {
	return "crawl_queue"
}

// Publish seeds the queue with the URLs of doc.
func (s *QueueSeeder) Publish(ctx context.Context, doc *entity.Document) error {
	_, err := s.Seed(ctx, doc.Sources)
	return err
}

// Seed pushes the URL of every source not seeded recently and returns how
// many were pushed. A zero expiry disables deduplication.
func (s *QueueSeeder) Seed(ctx context.Context, sources []entity.Source) (int, error) {
	pushed := 0
	seenThisRun := make(map[string]bool, len(sources))

	for _, src := range sources {
		if src.URL == "" {
			s.logger.Debug("Skipping source without URL", zap.String("name", src.Name))
			continue
		}

		key, err := utils.NormalizeURL(src.URL)
		if err != nil {
			s.logger.Warn("Skipping source with unparsable URL",
				zap.String("name", src.Name), zap.String("url", src.URL), zap.Error(err))
			continue
		}
		if seenThisRun[key] {
			continue
		}
		seenThisRun[key] = true

		if s.expiry > 0 {
			seeded, err := s.markerRepo.IsSeeded(ctx, key)
			if err != nil {
				return pushed, fmt.Errorf("failed to check seed marker for %s: %w", src.URL, err)
			}
			if seeded {
				s.logger.Debug("Skipping recently seeded URL", zap.String("url", src.URL))
				continue
			}
		}

		if err := s.queueRepo.Push(ctx, src.URL); err != nil {
			return pushed, fmt.Errorf("failed to push %s onto crawl queue: %w", src.URL, err)
		}
		pushed++
		s.metrics.URLsSeeded.Inc()

		if s.expiry > 0 {
			if err := s.markerRepo.MarkSeeded(ctx, key, s.expiry); err != nil {
				// The URL is queued; at worst it is queued again next run.
				s.logger.Warn("Failed to mark URL as seeded", zap.String("url", src.URL), zap.Error(err))
			}
		}
	}

	size, err := s.queueRepo.Size(ctx)
	if err != nil {
		return pushed, fmt.Errorf("failed to read crawl queue size: %w", err)
	}
	s.metrics.CrawlQueueLength.Set(float64(size))

	s.logger.Info("Seeded crawl queue", zap.Int("pushed", pushed), zap.Int64("queue_length", size))
	return pushed, nil
}
