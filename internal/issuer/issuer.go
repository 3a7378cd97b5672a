// Package issuer serves the read-only directory of supported payment
// networks: display names, accepted PAN lengths, and the IIN prefix ranges
// each network claims. The directory is derived from the same compile-time
// table that drives classification, so it can never disagree with
// validation results.
package issuer

import (
	"log/slog"

	"cardcheck/internal/issuer/handler"
	"cardcheck/internal/issuer/service"
)

// Service exposes network directory lookups.
type Service = service.Service

// Handler wires HTTP endpoints to the issuer service.
type Handler = handler.Handler

// NewService constructs the directory service.
func NewService(opts ...service.Option) *Service {
	return service.New(opts...)
}

// NewHandler constructs an HTTP handler for directory routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
