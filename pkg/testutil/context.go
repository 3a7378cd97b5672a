package testutil

import (
	"net/http"

	"cardcheck/pkg/requestcontext"
)

// WithRequestID stamps a correlation ID on the request context.
// This simulates what the requestid middleware would do in the full chain.
func WithRequestID(req *http.Request, id string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), id))
}

// WithClientIP stamps a client address on the request context.
// This simulates what the metadata middleware would do in the full chain.
func WithClientIP(req *http.Request, ip string) *http.Request {
	return req.WithContext(requestcontext.WithClientIP(req.Context(), ip))
}
