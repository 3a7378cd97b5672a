package models

import (
	"crypto/sha256"
	"encoding/hex"
)

// MaxBatchSize bounds one batch validation request.
const MaxBatchSize = 100

// Result captures the outcome of validating one candidate number.
//
// Invariants:
//   - Valid and ErrorCode are mutually exclusive: a valid result has an
//     empty ErrorCode, an invalid one names exactly one failure
//   - Fingerprint is always set and never derived from anything but the
//     candidate string; raw PANs are never stored or logged
type Result struct {
	Valid       bool   `json:"valid"`
	Issuer      string `json:"issuer,omitempty"`
	ErrorCode   string `json:"error_code,omitempty"`
	Length      int    `json:"length"`
	Fingerprint string `json:"fingerprint"`
	Cached      bool   `json:"cached"`
}

// Validation failure codes, in pipeline order.
const (
	CodeInvalidFormat = "invalid_format"
	CodeUnknownIssuer = "unknown_issuer"
	CodeInvalidLength = "invalid_length"
	CodeInvalidLuhn   = "invalid_luhn"
)

// Fingerprint returns the SHA-256 hex digest of a candidate number. It is
// the only representation of the input that leaves the validation service.
func Fingerprint(number string) string {
	sum := sha256.Sum256([]byte(number))
	return hex.EncodeToString(sum[:])
}
