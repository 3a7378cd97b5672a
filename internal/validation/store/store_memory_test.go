package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cardcheck/internal/validation/models"
	"cardcheck/pkg/platform/sentinel"
	"cardcheck/pkg/requestcontext"
)

type InMemoryCacheSuite struct {
	suite.Suite
	ctx context.Context
}

func TestInMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheSuite))
}

func (s *InMemoryCacheSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *InMemoryCacheSuite) TestGetMissing() {
	cache := NewInMemoryCache(time.Minute)
	_, err := cache.Get(s.ctx, "fp-missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryCacheSuite) TestSetAndGet() {
	cache := NewInMemoryCache(time.Minute)
	result := &models.Result{Valid: true, Issuer: "Visa", Fingerprint: "fp-1", Length: 16}

	s.Require().NoError(cache.Set(s.ctx, "fp-1", result))

	got, err := cache.Get(s.ctx, "fp-1")
	s.Require().NoError(err)
	s.Equal(result, got)
	s.Equal(1, cache.Len())
}

func (s *InMemoryCacheSuite) TestGetReturnsCopy() {
	cache := NewInMemoryCache(time.Minute)
	s.Require().NoError(cache.Set(s.ctx, "fp-copy", &models.Result{Valid: true}))

	first, err := cache.Get(s.ctx, "fp-copy")
	s.Require().NoError(err)
	first.Cached = true

	second, err := cache.Get(s.ctx, "fp-copy")
	s.Require().NoError(err)
	s.False(second.Cached, "mutating a returned result must not poison the cache")
}

func (s *InMemoryCacheSuite) TestTTLExpiry() {
	cache := NewInMemoryCache(time.Minute)
	now := time.Now()

	setCtx := requestcontext.WithTime(s.ctx, now)
	s.Require().NoError(cache.Set(setCtx, "fp-ttl", &models.Result{Valid: true}))

	// Still live just inside the TTL.
	liveCtx := requestcontext.WithTime(s.ctx, now.Add(59*time.Second))
	_, err := cache.Get(liveCtx, "fp-ttl")
	s.Require().NoError(err)

	// Expired past the TTL, and the entry is evicted.
	expiredCtx := requestcontext.WithTime(s.ctx, now.Add(2*time.Minute))
	_, err = cache.Get(expiredCtx, "fp-ttl")
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(0, cache.Len())
}

func (s *InMemoryCacheSuite) TestZeroTTLNeverExpires() {
	cache := NewInMemoryCache(0)
	now := time.Now()

	s.Require().NoError(cache.Set(requestcontext.WithTime(s.ctx, now), "fp-forever", &models.Result{Valid: true}))

	farFuture := requestcontext.WithTime(s.ctx, now.Add(1000*time.Hour))
	_, err := cache.Get(farFuture, "fp-forever")
	s.NoError(err)
}
