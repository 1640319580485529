package repository

import "context"

// QueueRepository is the FIFO of URLs consumed by the crawler service.
type QueueRepository interface {
	// Push adds a URL to the end of the queue.
	Push(ctx context.Context, url string) error
	// Size returns the current number of items in the queue.
	Size(ctx context.Context) (int64, error)
}
