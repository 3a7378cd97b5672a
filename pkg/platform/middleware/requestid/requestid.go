// Package requestid assigns a correlation ID to every request so log lines,
// audit events, and error responses can be tied together.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"cardcheck/pkg/requestcontext"
)

// Header carries the correlation ID on responses and may supply one on
// requests from trusted upstream proxies.
const Header = "X-Request-Id"

// Middleware reuses an inbound X-Request-Id when present, otherwise mints a
// UUID, then stamps both the context and the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		ctx := requestcontext.WithRequestID(r.Context(), id)
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
