package bucket

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cardcheck/internal/ratelimit/models"
	"cardcheck/pkg/platform/sentinel"
	"cardcheck/pkg/requestcontext"
)

// Redis key prefix for rate limit counters.
const bucketKeyPrefix = "rl:"

// RedisBucketStore is a Redis-backed bucket store using a fixed window
// counter per key. Coarser than the in-memory sliding window but shared
// across instances, which matters more in distributed deployments.
type RedisBucketStore struct {
	client *redis.Client
}

// NewRedisBucketStore constructs a Redis-backed bucket store.
func NewRedisBucketStore(client *redis.Client) *RedisBucketStore {
	return &RedisBucketStore{client: client}
}

// Allow increments the window counter for key and checks it against limit.
func (s *RedisBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	redisKey := bucketKeyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	ttl := pipe.TTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit check: %v", sentinel.ErrUnavailable, err)
	}

	count := int(incr.Val())
	resetAt := requestcontext.Now(ctx).Add(ttl.Val())

	if count <= limit {
		return &models.RateLimitResult{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit - count,
			ResetAt:   resetAt,
		}, nil
	}

	retryAfter := int(ttl.Val().Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	return &models.RateLimitResult{
		Allowed:    false,
		Limit:      limit,
		Remaining:  0,
		ResetAt:    resetAt,
		RetryAfter: retryAfter,
	}, nil
}

// Reset clears the rate limit counter for a key.
func (s *RedisBucketStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, bucketKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: rate limit reset: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}
