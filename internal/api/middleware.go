package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/fprevidi/Blabbo/pkg/utils"

	"github.com/google/uuid"
)

type contextKey string

const userIDContextKey = contextKey("userID")

// AuthMiddleware validates the bearer token and stores the user ID in the
// request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.respondErrorMsg(w, http.StatusUnauthorized, "authorization token missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			h.respondErrorMsg(w, http.StatusUnauthorized, "invalid token format")
			return
		}

		userID, err := utils.ValidateJWTToken(parts[1], h.cfg)
		if err != nil {
			h.respondErrorMsg(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user; uuid.Nil outside the auth
// middleware.
func UserIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(userIDContextKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
