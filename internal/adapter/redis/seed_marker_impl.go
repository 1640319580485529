package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/user/esg-source-catalog/pkg/utils"
)

const seededURLPrefix = "esg:seeded:"

// SeedMarkerRepoImpl provides a concrete implementation for the SeedMarkerRepository interface using Redis keys with a TTL.
type SeedMarkerRepoImpl struct {
	client *redis.Client
}

// NewSeedMarkerRepo creates a new instance of SeedMarkerRepoImpl.
func NewSeedMarkerRepo(client *redis.Client) *SeedMarkerRepoImpl {
	return &SeedMarkerRepoImpl{client: client}
}

// generateKey creates a consistent Redis key for a given URL by hashing it.
func (r *SeedMarkerRepoImpl) generateKey(url string) string {
	return fmt.Sprintf("%s%s", seededURLPrefix, utils.HashURL(url))
}

// MarkSeeded sets the URL's key with the given expiry.
func (r *SeedMarkerRepoImpl) MarkSeeded(ctx context.Context, url string, expiry time.Duration) error {
	return r.client.SetEx(ctx, r.generateKey(url), "1", expiry).Err()
}

// IsSeeded checks for the URL's key.
func (r *SeedMarkerRepoImpl) IsSeeded(ctx context.Context, url string) (bool, error) {
	val, err := r.client.Exists(ctx, r.generateKey(url)).Result()
	if err != nil {
		return false, err
	}
	return val == 1, nil
}
