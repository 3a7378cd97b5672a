//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cardcheck/internal/validation/models"
	"cardcheck/pkg/platform/sentinel"
	"cardcheck/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *RedisCache
	ctx   context.Context
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = NewRedisCache(s.redis.Client, time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisCacheSuite) TestGetMissing() {
	_, err := s.cache.Get(s.ctx, "fp-missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestSetAndGet() {
	result := &models.Result{Valid: true, Issuer: "Visa", Fingerprint: "fp-redis", Length: 16}
	s.Require().NoError(s.cache.Set(s.ctx, "fp-redis", result))

	got, err := s.cache.Get(s.ctx, "fp-redis")
	s.Require().NoError(err)
	s.Equal(result, got)
}

func (s *RedisCacheSuite) TestEntriesCarryTTL() {
	s.Require().NoError(s.cache.Set(s.ctx, "fp-ttl", &models.Result{Valid: false, ErrorCode: models.CodeInvalidLuhn}))

	ttl, err := s.redis.Client.TTL(s.ctx, "vr:fp:fp-ttl").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisCacheSuite) TestCorruptEntryIsAMiss() {
	s.Require().NoError(s.redis.Client.Set(s.ctx, "vr:fp:fp-corrupt", "{not json", 0).Err())

	_, err := s.cache.Get(s.ctx, "fp-corrupt")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
