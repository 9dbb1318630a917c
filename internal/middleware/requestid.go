// Package middleware provides the HTTP middleware chain for the smart
// server: request IDs, access logging, Prometheus instrumentation and
// response compression. All middleware use the standard
// func(http.Handler) http.Handler shape so they compose with chi.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nineylabs/smart-server/internal/logging"
)

type contextKey string

// RequestIDKey is the context key holding the request ID.
const RequestIDKey contextKey = "request_id"

// RequestIDHeader carries the request ID on requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a unique ID, reusing the inbound
// X-Request-ID header when a proxy already assigned one. The ID is
// echoed on the response and bound to the request-scoped logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		logger := logging.With().Str("request_id", requestID).Logger()
		ctx = logger.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request ID stored in ctx, or "" when the
// request did not pass through RequestID.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
