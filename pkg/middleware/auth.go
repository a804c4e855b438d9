package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/arogya/pkg/auth"
	"github.com/shashiranjanraj/arogya/pkg/response"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userNameKey
	roleKey
)

// Auth validates the Bearer token and injects the caller's identity into the
// request context for downstream handlers and role checks.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			response.Unauthorized(w, "Authorization token required")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		rc := r.Context()
		rc = context.WithValue(rc, userIDKey, claims.UserID)
		rc = context.WithValue(rc, userNameKey, claims.Name)
		rc = context.WithValue(rc, roleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(rc))
	})
}

// UserIDFromCtx returns the authenticated user's id, if Auth ran.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(userIDKey).(uint)
	return id, ok
}

// UserNameFromCtx returns the authenticated user's login name, if Auth ran.
func UserNameFromCtx(r *http.Request) (string, bool) {
	name, ok := r.Context().Value(userNameKey).(string)
	return name, ok
}

// RoleFromCtx returns the authenticated user's role, if Auth ran.
func RoleFromCtx(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(roleKey).(string)
	return role, ok
}
