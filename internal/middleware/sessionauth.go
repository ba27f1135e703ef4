// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/atinyakov/oceanview/internal/server/response"
)

type ctxKey string

const (
	userKey  ctxKey = "user"
	tokenKey ctxKey = "token"
)

// SessionResolver maps a session token to its username.
type SessionResolver interface {
	RequireUser(token string) (string, error)
}

// SessionAuth is a middleware that requires a live session.
//
// It reads the bearer token from the Authorization header and resolves it
// through resolver. On success the username and the token are stored in the
// request context; otherwise the request is rejected with 401 and a message
// telling apart a missing token from an expired one.
func SessionAuth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			user, err := resolver.RequireUser(token)
			if err != nil {
				response.FromError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token of an "Authorization: Bearer <token>"
// header. It returns an empty string when the header is absent or uses
// another scheme.
func BearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetUserFromContext returns the username stored by SessionAuth, or an
// empty string if not found.
func GetUserFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
