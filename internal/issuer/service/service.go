package service

import (
	"context"
	"log/slog"

	"cardcheck/internal/audit"
	"cardcheck/internal/issuer/models"
	"cardcheck/pkg/card"
	dErrors "cardcheck/pkg/domain-errors"
	"cardcheck/pkg/requestcontext"
)

// AuditPublisher records directory access events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service serves the read-only network directory. The directory is built
// once at construction from the compile-time network table; there is no
// store behind it.
type Service struct {
	entries []models.IssuerInfo
	bySlug  map[string]*models.IssuerInfo
	logger  *slog.Logger
	audit   AuditPublisher
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

// New constructs the directory service.
func New(opts ...Option) *Service {
	issuers := card.Issuers()
	s := &Service{
		entries: make([]models.IssuerInfo, 0, len(issuers)),
		bySlug:  make(map[string]*models.IssuerInfo, len(issuers)),
		logger:  slog.Default(),
	}
	for _, issuer := range issuers {
		s.entries = append(s.entries, models.FromIssuer(issuer))
	}
	for i := range s.entries {
		s.bySlug[s.entries[i].Slug] = &s.entries[i]
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every supported network in declaration order.
func (s *Service) List(ctx context.Context) []models.IssuerInfo {
	s.emitAudit(ctx, audit.EventIssuerListed, "")
	return s.entries
}

// Get returns the directory entry for one network slug.
func (s *Service) Get(ctx context.Context, slug string) (*models.IssuerInfo, error) {
	info, ok := s.bySlug[slug]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown issuer")
	}
	s.emitAudit(ctx, audit.EventIssuerFetched, info.Name)
	return info, nil
}

func (s *Service) emitAudit(ctx context.Context, action audit.AuditEvent, issuer string) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    string(action),
		Issuer:    issuer,
		Outcome:   "ok",
		RequestID: requestcontext.RequestID(ctx),
		ClientIP:  requestcontext.ClientIP(ctx),
		UserAgent: requestcontext.UserAgent(ctx),
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"request_id", event.RequestID,
			"action", event.Action,
			"error", err,
		)
	}
}
