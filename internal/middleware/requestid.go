package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/avator7/todoapi/internal/interfaces"
)

const requestIDContextKey contextKey = "request_id"

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-Id"

// RequestIDFromContext returns the id assigned to the current request,
// or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// RequestID assigns a UUID to each request, echoes it in the response
// header and logs the request with it.
func RequestID(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)
			logger.Debug("Request received", "request_id", id, "method", r.Method, "path", r.URL.Path)

			ctx := context.WithValue(r.Context(), requestIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
