package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"cardcheck/internal/audit"
	"cardcheck/internal/validation/metrics"
	"cardcheck/internal/validation/models"
	"cardcheck/pkg/card"
	dErrors "cardcheck/pkg/domain-errors"
	"cardcheck/pkg/platform/sentinel"
	"cardcheck/pkg/requestcontext"
)

// batchParallelism bounds concurrent validations within one batch request.
const batchParallelism = 8

// ResultCache stores validation results keyed by card fingerprint.
type ResultCache interface {
	Get(ctx context.Context, fingerprint string) (*models.Result, error)
	Set(ctx context.Context, fingerprint string, result *models.Result) error
}

// AuditPublisher records validation activity.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates card validation: fingerprinting, cache lookup, the
// classification pipeline, metrics, and audit.
type Service struct {
	cache   ResultCache
	logger  *slog.Logger
	audit   AuditPublisher
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(cache ResultCache, opts ...Option) (*Service, error) {
	if cache == nil {
		return nil, errors.New("result cache is required")
	}
	s := &Service{cache: cache, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Validate classifies and checks one candidate number. Invalid numbers are
// successful validations with Valid=false; the caller never sees the
// pipeline's sentinel errors directly.
func (s *Service) Validate(ctx context.Context, number string) *models.Result {
	start := time.Now()
	fingerprint := models.Fingerprint(number)

	cached, err := s.cache.Get(ctx, fingerprint)
	switch {
	case err == nil:
		if s.metrics != nil {
			s.metrics.IncrementCacheHit()
		}
		cached.Cached = true
		s.emitAudit(ctx, audit.EventCacheServed, cached)
		return cached
	case !errors.Is(err, sentinel.ErrNotFound):
		// Treat an unreachable cache as a miss; validation itself needs no
		// backing service.
		s.logger.WarnContext(ctx, "result cache get failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementCacheMiss()
	}

	result := &models.Result{
		Fingerprint: fingerprint,
		Length:      len(number),
	}

	parsed, parseErr := card.Parse(number)
	if parseErr == nil {
		result.Valid = true
		result.Issuer = parsed.IssuerName()
	} else {
		result.ErrorCode = errorCode(parseErr)
	}

	if s.metrics != nil {
		s.metrics.ObserveValidation(outcome(result), time.Since(start))
		if result.Valid {
			s.metrics.IncrementIssuer(result.Issuer)
		}
	}

	if err := s.cache.Set(ctx, fingerprint, result); err != nil {
		s.logger.WarnContext(ctx, "result cache set failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}

	action := audit.EventCardValidated
	if !result.Valid {
		action = audit.EventCardRejected
	}
	s.emitAudit(ctx, action, result)

	return result
}

// ValidateBatch validates candidates concurrently, preserving input order.
// Individual failures surface in the results; the only error is early
// cancellation of the request context.
func (s *Service) ValidateBatch(ctx context.Context, numbers []string) ([]*models.Result, error) {
	if len(numbers) > models.MaxBatchSize {
		return nil, dErrors.New(dErrors.CodeValidation, "batch exceeds maximum size")
	}

	results := make([]*models.Result, len(numbers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)
	for i, number := range numbers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Validate(ctx, number)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch validation aborted")
	}

	s.emitAudit(ctx, audit.EventBatchValidated, &models.Result{})
	return results, nil
}

func (s *Service) emitAudit(ctx context.Context, action audit.AuditEvent, result *models.Result) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Timestamp:       requestcontext.Now(ctx),
		Action:          string(action),
		CardFingerprint: result.Fingerprint,
		Issuer:          result.Issuer,
		Outcome:         outcome(result),
		RequestID:       requestcontext.RequestID(ctx),
		ClientIP:        requestcontext.ClientIP(ctx),
		UserAgent:       requestcontext.UserAgent(ctx),
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"request_id", event.RequestID,
			"action", event.Action,
			"error", err,
		)
	}
}

// outcome names the result for metrics and audit: "valid" or the error code.
func outcome(result *models.Result) string {
	if result.ErrorCode != "" {
		return result.ErrorCode
	}
	if result.Valid {
		return "valid"
	}
	return ""
}

// errorCode maps pipeline sentinels to stable API codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, card.ErrInvalidFormat):
		return models.CodeInvalidFormat
	case errors.Is(err, card.ErrUnknownIssuer):
		return models.CodeUnknownIssuer
	case errors.Is(err, card.ErrInvalidLength):
		return models.CodeInvalidLength
	case errors.Is(err, card.ErrInvalidLuhn):
		return models.CodeInvalidLuhn
	default:
		return models.CodeInvalidFormat
	}
}
