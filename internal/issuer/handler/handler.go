package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardcheck/internal/issuer/models"
	"cardcheck/pkg/platform/httputil"
	"cardcheck/pkg/requestcontext"
)

// Service defines the interface for directory lookups.
type Service interface {
	List(ctx context.Context) []models.IssuerInfo
	Get(ctx context.Context, slug string) (*models.IssuerInfo, error)
}

// Handler wires directory endpoints to the issuer service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an issuer directory handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts directory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/issuers", h.HandleList)
	r.Get("/issuers/{slug}", h.HandleGet)
}

// HandleList handles GET /issuers requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	issuers := h.service.List(ctx)

	httputil.WriteJSON(w, http.StatusOK, ListIssuersResponse{Issuers: issuers})
}

// HandleGet handles GET /issuers/{slug} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	info, err := h.service.Get(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "issuer lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"slug", slug,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, info)
}
