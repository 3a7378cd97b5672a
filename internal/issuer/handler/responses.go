package handler

import "cardcheck/internal/issuer/models"

// ListIssuersResponse is the body of GET /issuers.
type ListIssuersResponse struct {
	Issuers []models.IssuerInfo `json:"issuers"`
}
