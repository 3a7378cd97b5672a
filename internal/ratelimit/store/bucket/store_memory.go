package bucket

import (
	"context"
	"sync"
	"time"

	"cardcheck/internal/ratelimit/models"
	"cardcheck/pkg/requestcontext"
)

// InMemoryBucketStore implements BucketStore with an in-memory sliding
// window. MVP implementation, not shared between instances; distributed
// deployments use RedisBucketStore.
type InMemoryBucketStore struct {
	mu      sync.Mutex
	buckets map[string]*slidingWindow
}

// slidingWindow tracks request timestamps so a burst straddling a window
// boundary cannot double the effective limit.
type slidingWindow struct {
	timestamps []time.Time
	window     time.Duration
}

// NewInMemoryBucketStore creates a new in-memory bucket store.
func NewInMemoryBucketStore() *InMemoryBucketStore {
	return &InMemoryBucketStore{buckets: make(map[string]*slidingWindow)}
}

// Allow checks whether a request under key fits the limit and records it.
func (s *InMemoryBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	now := requestcontext.Now(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	sw := s.getOrCreateBucket(key, window)
	sw.cleanup(now)

	if len(sw.timestamps) < limit {
		sw.timestamps = append(sw.timestamps, now)
		return &models.RateLimitResult{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit - len(sw.timestamps),
			ResetAt:   sw.timestamps[0].Add(window),
		}, nil
	}

	resetAt := sw.timestamps[0].Add(window)
	retryAfter := int(resetAt.Sub(now).Seconds())
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
func (s *InMemoryBucketStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// CurrentCount returns the live request count for a key. Test helper.
func (s *InMemoryBucketStore) CurrentCount(ctx context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sw := s.buckets[key]
	if sw == nil {
		return 0, nil
	}
	sw.cleanup(requestcontext.Now(ctx))
	return len(sw.timestamps), nil
}

// cleanup removes timestamps that fell out of the window.
func (sw *slidingWindow) cleanup(now time.Time) {
	cutoff := now.Add(-sw.window)
	i := 0
	for ; i < len(sw.timestamps); i++ {
		if sw.timestamps[i].After(cutoff) {
			break
		}
	}
	sw.timestamps = sw.timestamps[i:]
}

// getOrCreateBucket must be called while holding s.mu.
func (s *InMemoryBucketStore) getOrCreateBucket(key string, window time.Duration) *slidingWindow {
	if sw := s.buckets[key]; sw != nil {
		return sw
	}
	sw := &slidingWindow{window: window}
	s.buckets[key] = sw
	return sw
}
