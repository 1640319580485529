package repository

import (
	"context"
	"time"
)

// SeedMarkerRepository remembers which URLs were recently handed to the crawl
// queue.
type SeedMarkerRepository interface {
	// MarkSeeded records url as seeded for the given window.
	MarkSeeded(ctx context.Context, url string, expiry time.Duration) error
	// IsSeeded reports whether url was seeded within its window.
	IsSeeded(ctx context.Context, url string) (bool, error)
}
