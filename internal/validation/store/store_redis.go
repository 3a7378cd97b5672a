package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cardcheck/internal/validation/models"
	"cardcheck/pkg/platform/sentinel"
)

// Redis key prefix for cached validation results.
const resultKeyPrefix = "vr:fp:"

// RedisCache is a Redis-backed ResultCache. This is the production
// implementation for distributed deployments where instances share one
// cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a Redis-backed result cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, fingerprint string) (*models.Result, error) {
	raw, err := c.client.Get(ctx, resultKeyPrefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get cached result: %v", sentinel.ErrUnavailable, err)
	}

	var result models.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, sentinel.ErrNotFound
	}
	return &result, nil
}

func (c *RedisCache) Set(ctx context.Context, fingerprint string, result *models.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cached result: %w", err)
	}
	if err := c.client.Set(ctx, resultKeyPrefix+fingerprint, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set cached result: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}
