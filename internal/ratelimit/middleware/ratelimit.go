package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cardcheck/internal/ratelimit/metrics"
	"cardcheck/internal/ratelimit/models"
	"cardcheck/pkg/platform/httputil"
	"cardcheck/pkg/requestcontext"
)

// BucketStore checks one request under key against limit within window.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

// Middleware throttles requests per client IP.
type Middleware struct {
	store    BucketStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
	limit    int
	window   time.Duration
	disabled bool
}

type Option func(*Middleware)

// WithDisabled disables rate limiting entirely (for testing/demo mode).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

func WithMetrics(met *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = met
	}
}

func New(store BucketStore, logger *slog.Logger, limit int, window time.Duration, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		logger: logger,
		limit:  limit,
		window: window,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit throttles by client IP. A failing store fails open: validation
// itself is cheap, so availability wins over strict enforcement.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, err := m.store.Allow(ctx, "ip:"+ip, m.limit, m.window)
		if err != nil {
			m.logger.ErrorContext(ctx, "rate limit check failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			if m.metrics != nil {
				m.metrics.IncrementCheckFailures()
			}
			next.ServeHTTP(w, r)
			return
		}

		addRateLimitHeaders(w, result)

		if !result.Allowed {
			if m.metrics != nil {
				m.metrics.IncrementThrottled()
			}
			writeRateLimitExceeded(w, result)
			return
		}

		if m.metrics != nil {
			m.metrics.IncrementAllowed()
		}
		next.ServeHTTP(w, r)
	})
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	if result == nil {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.RateLimitExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many requests from this IP address. Please try again later.",
		RetryAfter: result.RetryAfter,
	})
}
