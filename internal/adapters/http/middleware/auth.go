package middleware

import (
	"context"
	"net/http"
	"strings"

	"academy/internal/application/store"
	"academy/internal/domain/user"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const userContextKey contextKey = "user"

// publicPaths may be called without a signed-in user.
var publicPaths = map[string]bool{
	"/api/login": true,
}

// Auth returns middleware that puts the signed-in user, if any, into the request context.
// It does NOT block anonymous requests; use RequireSession for that.
func Auth(st store.Reader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u := st.Snapshot().CurrentUser; u != nil {
				r = r.WithContext(ContextWithUser(r.Context(), *u))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession blocks mutating /api/ requests when nobody is signed in.
// Reads stay open. Roles are labels only and are not checked here.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isMutating(r.Method) && strings.HasPrefix(r.URL.Path, "/api/") && !publicPaths[r.URL.Path] {
			if _, ok := UserFromContext(r.Context()); !ok {
				http.Error(w, "sign in required", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// UserFromContext extracts the signed-in user from the request context.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userContextKey).(user.User)
	return u, ok
}

// ContextWithUser returns a context carrying u.
func ContextWithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}
