package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cardcheck/internal/validation/models"
	"cardcheck/pkg/platform/httputil"
	"cardcheck/pkg/requestcontext"
)

// Service defines the interface for validation operations.
type Service interface {
	Validate(ctx context.Context, number string) *models.Result
	ValidateBatch(ctx context.Context, numbers []string) ([]*models.Result, error)
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/cards/validate", h.HandleValidate)
	r.Post("/cards/validate/batch", h.HandleValidateBatch)
}

// HandleValidate handles POST /cards/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateCardRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Validate(ctx, req.Number)

	h.logger.InfoContext(ctx, "card validated",
		"request_id", requestID,
		"fingerprint", result.Fingerprint,
		"outcome", outcomeLabel(result),
		"cached", result.Cached,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleValidateBatch handles POST /cards/validate/batch requests.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateBatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.ValidateBatch(ctx, req.Numbers)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch validation failed",
			"request_id", requestID,
			"batch_size", len(req.Numbers),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "batch validated",
		"request_id", requestID,
		"batch_size", len(req.Numbers),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, ValidateBatchResponse{Results: results})
}

func outcomeLabel(result *models.Result) string {
	if result.Valid {
		return "valid"
	}
	return result.ErrorCode
}
