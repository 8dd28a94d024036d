package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avator7/todoapi/internal/interfaces"
	"github.com/avator7/todoapi/internal/models"
	"github.com/avator7/todoapi/internal/models/dto"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// BasicAuth protects a handler with HTTP Basic authentication. The
// credential pair is verified against the store on every request; there is
// no session continuity. Unknown-username and wrong-password rejections
// produce the identical 401 response with a Basic challenge.
func BasicAuth(userService interfaces.UserService, logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			user, err := userService.AuthenticateUser(r.Context(), username, password)
			if err != nil {
				logger.Error("Authentication check failed", "user", username, "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(dto.ErrorResponseDTO{Message: "Internal server error"})
				return
			}
			if user == nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Basic")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponseDTO{Message: "Invalid username or password"})
}
