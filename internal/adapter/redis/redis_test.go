package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient connects to the Redis at TEST_REDIS_ADDR or skips the test.
// To run these:
//
//	docker run --rm -d -p 6379:6379 redis:7
//	TEST_REDIS_ADDR=localhost:6379 go test ./internal/adapter/redis/
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestQueueRepo(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	key := fmt.Sprintf("test:queue:%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	repo := NewQueueRepo(client, key)
	require.NoError(t, repo.Push(ctx, "https://grist.org"))
	require.NoError(t, repo.Push(ctx, "https://www.mongabay.com"))

	size, err := repo.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), size)

	// FIFO for a consumer popping from the right.
	first, err := client.RPop(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, "https://grist.org", first)
}

func TestNewQueueRepoDefaultKey(t *testing.T) {
	repo := NewQueueRepo(nil, "")
	assert.Equal(t, DefaultQueueKey, repo.key)
}

func TestSeedMarkerRepo(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	repo := NewSeedMarkerRepo(client)
	url := fmt.Sprintf("https://example.test/%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(context.Background(), repo.generateKey(url)) })

	seeded, err := repo.IsSeeded(ctx, url)
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, repo.MarkSeeded(ctx, url, time.Minute))

	seeded, err = repo.IsSeeded(ctx, url)
	require.NoError(t, err)
	assert.True(t, seeded)

	ttl, err := client.TTL(ctx, repo.generateKey(url)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSeedMarkerKey(t *testing.T) {
	repo := NewSeedMarkerRepo(nil)
	key := repo.generateKey("https://grist.org")
	assert.Len(t, key, len(seededURLPrefix)+64)
	assert.Equal(t, key, repo.generateKey("https://grist.org"))
}
