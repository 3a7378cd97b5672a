package handler

import "cardcheck/internal/validation/models"

// ValidateBatchResponse wraps batch results in input order.
type ValidateBatchResponse struct {
	Results []*models.Result `json:"results"`
}
