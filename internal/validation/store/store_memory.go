package store

import (
	"context"
	"sync"
	"time"

	"cardcheck/internal/validation/models"
	"cardcheck/pkg/platform/sentinel"
	"cardcheck/pkg/requestcontext"
)

// InMemoryCache implements ResultCache with a TTL map. MVP implementation,
// not shared between instances; production deployments use RedisCache.
type InMemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    models.Result
	expiresAt time.Time
}

// NewInMemoryCache creates an in-memory result cache. A zero or negative TTL
// disables expiry.
func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *InMemoryCache) Get(ctx context.Context, fingerprint string) (*models.Result, error) {
	c.mu.RLock()
	entry, ok := c.entries[fingerprint]
	c.mu.RUnlock()

	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !entry.expiresAt.IsZero() && requestcontext.Now(ctx).After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, fingerprint)
		c.mu.Unlock()
		return nil, sentinel.ErrNotFound
	}

	result := entry.result
	return &result, nil
}

func (c *InMemoryCache) Set(ctx context.Context, fingerprint string, result *models.Result) error {
	entry := cacheEntry{result: *result}
	if c.ttl > 0 {
		entry.expiresAt = requestcontext.Now(ctx).Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[fingerprint] = entry
	c.mu.Unlock()
	return nil
}

// Len reports the number of live entries. Test helper.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
