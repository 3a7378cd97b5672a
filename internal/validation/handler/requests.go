package handler

import (
	"strings"

	"cardcheck/internal/validation/models"
	dErrors "cardcheck/pkg/domain-errors"
)

// maxNumberChars bounds a single candidate so oversized payloads are
// rejected before hashing. No supported PAN exceeds 19 digits; the slack
// lets the pipeline report invalid_format/invalid_length itself for inputs
// that are merely wrong rather than abusive.
const maxNumberChars = 64

// ValidateCardRequest is the body of POST /cards/validate.
type ValidateCardRequest struct {
	Number string `json:"number"`
}

func (r *ValidateCardRequest) Validate() error {
	r.Number = strings.TrimSpace(r.Number)
	if r.Number == "" {
		return dErrors.New(dErrors.CodeValidation, "number is required")
	}
	if len(r.Number) > maxNumberChars {
		return dErrors.New(dErrors.CodeValidation, "number is too long")
	}
	return nil
}

// ValidateBatchRequest is the body of POST /cards/validate/batch.
type ValidateBatchRequest struct {
	Numbers []string `json:"numbers"`
}

func (r *ValidateBatchRequest) Validate() error {
	if len(r.Numbers) == 0 {
		return dErrors.New(dErrors.CodeValidation, "numbers is required")
	}
	if len(r.Numbers) > models.MaxBatchSize {
		return dErrors.New(dErrors.CodeValidation, "too many numbers in batch")
	}
	for i, number := range r.Numbers {
		number = strings.TrimSpace(number)
		if number == "" {
			return dErrors.New(dErrors.CodeValidation, "numbers must not contain empty entries")
		}
		if len(number) > maxNumberChars {
			return dErrors.New(dErrors.CodeValidation, "numbers contains an oversized entry")
		}
		r.Numbers[i] = number
	}
	return nil
}
