package audit

import (
	"time"

	"github.com/google/uuid"
)

// Event is emitted from domain logic to capture validation activity. Keep it
// transport-agnostic so stores and sinks can fan out.
//
// Events never carry a raw PAN. CardFingerprint is the SHA-256 hex digest of
// the candidate number, which is enough to correlate repeated lookups of the
// same card without persisting cardholder data.
type Event struct {
	ID              uuid.UUID
	Timestamp       time.Time
	Action          string
	CardFingerprint string
	Issuer          string
	Outcome         string
	RequestID       string
	ClientIP        string
	UserAgent       string
}

type AuditEvent string

const (
	// Validation events
	EventCardValidated  AuditEvent = "card_validated"
	EventCardRejected   AuditEvent = "card_rejected"
	EventBatchValidated AuditEvent = "batch_validated"
	EventCacheServed    AuditEvent = "cache_served"

	// Directory events
	EventIssuerListed  AuditEvent = "issuer_listed"
	EventIssuerFetched AuditEvent = "issuer_fetched"
)
