package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// DefaultQueueKey is the list the crawler service pops URLs from.
const DefaultQueueKey = "crawler:queue"

// QueueRepoImpl provides a concrete implementation for the QueueRepository interface using Redis Lists.
type QueueRepoImpl struct {
	client *redis.Client
	key    string
}

// NewQueueRepo creates a new instance of QueueRepoImpl on the list at key.
func NewQueueRepo(client *redis.Client, key string) *QueueRepoImpl {
	if key == "" {
		key = DefaultQueueKey
	}
	return &QueueRepoImpl{client: client, key: key}
}

// Push adds a URL to the left side of the Redis list; the crawler pops from the right.
func (r *QueueRepoImpl) Push(ctx context.Context, url string) error {
	return r.client.LPush(ctx, r.key, url).Err()
}

// Size returns the current number of items in the queue.
func (r *QueueRepoImpl) Size(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, r.key).Result()
}
