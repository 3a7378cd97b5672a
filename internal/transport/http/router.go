package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ratelimitmw "cardcheck/internal/ratelimit/middleware"
	"cardcheck/pkg/platform/httputil"
	"cardcheck/pkg/platform/middleware/metadata"
	"cardcheck/pkg/platform/middleware/requestid"
	"cardcheck/pkg/platform/middleware/requesttime"
)

// Registrar mounts a set of routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports the health of one backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts. RateLimit and the health
// checkers are optional; nil entries are skipped.
type Deps struct {
	Validation Registrar
	Issuers    Registrar
	RateLimit  *ratelimitmw.Middleware
	Health     map[string]HealthChecker
}

// NewRouter wires the public API surface. Transport concerns only; domain
// logic stays behind the handlers.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.Middleware)

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.RateLimit)
		}
		if deps.Validation != nil {
			deps.Validation.Register(r)
		}
		if deps.Issuers != nil {
			deps.Issuers.Register(r)
		}
	})

	r.Get("/healthz", handleHealth(deps.Health))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func handleHealth(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for name, checker := range checkers {
			if err := checker.Health(ctx); err != nil {
				deps[name] = "unhealthy"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "ok"
		}
		httputil.WriteJSON(w, status, map[string]any{
			"status":       httpStatusLabel(status),
			"dependencies": deps,
		})
	}
}

func httpStatusLabel(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
