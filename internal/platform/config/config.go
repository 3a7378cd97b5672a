package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string
	Redis     RedisConfig
	Postgres  PostgresConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// RedisConfig captures connection settings for the shared Redis client.
// An empty URL means Redis is not configured and in-memory fallbacks are used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig captures the audit store connection. An empty DSN means
// audit events stay in the in-memory store.
type PostgresConfig struct {
	DSN string
}

// CacheConfig controls the validation result cache.
type CacheConfig struct {
	TTL time.Duration
}

// RateLimitConfig controls the per-client limit on validation endpoints.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr: getEnv("CARDCHECK_ADDR", ":8080"),
		Redis: RedisConfig{
			URL:          os.Getenv("CARDCHECK_REDIS_URL"),
			PoolSize:     getEnvInt("CARDCHECK_REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("CARDCHECK_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvDuration("CARDCHECK_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("CARDCHECK_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("CARDCHECK_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("CARDCHECK_DATABASE_URL"),
		},
		Cache: CacheConfig{
			TTL: getEnvDuration("CARDCHECK_CACHE_TTL", 15*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvInt("CARDCHECK_RATE_LIMIT", 120),
			Window: getEnvDuration("CARDCHECK_RATE_WINDOW", time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
