package validation

import (
	"log/slog"

	"cardcheck/internal/validation/handler"
	"cardcheck/internal/validation/service"
)

// Service exposes card validation orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the validation service.
type Handler = handler.Handler

// NewService constructs the validation service with required dependencies.
func NewService(cache service.ResultCache, opts ...service.Option) (*Service, error) {
	return service.New(cache, opts...)
}

// NewHandler constructs an HTTP handler for the validation routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
