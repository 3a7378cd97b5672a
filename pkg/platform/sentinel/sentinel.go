package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and cache layers return
// these (optionally wrapped) so services can translate them into domain
// errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entry does not exist in the store or cache
// - ErrExpired: cached validation result has passed its TTL
// - ErrUnavailable: backing service (Redis, Postgres) temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors
// directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrExpired     = errors.New("expired")
	ErrUnavailable = errors.New("unavailable")
)
