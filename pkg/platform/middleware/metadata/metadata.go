// Package metadata resolves client metadata (originating IP, User-Agent)
// early in the middleware chain so rate limiting and audit logging can key
// off the real client rather than an intermediate proxy.
package metadata

import (
	"net"
	"net/http"
	"strings"

	"cardcheck/pkg/requestcontext"
)

// Middleware extracts the client IP and User-Agent from the request and adds
// them to the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientIP(r.Context(), ClientIPFromRequest(r))
		ctx = requestcontext.WithUserAgent(ctx, r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest extracts the real client IP, handling proxies and load
// balancers. X-Forwarded-For may list several hops; the first entry is the
// original client.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := xff
		if idx := strings.Index(xff, ","); idx != -1 {
			first = xff[:idx]
		}
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-Ip"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
