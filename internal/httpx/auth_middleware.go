package httpx

import (
	"context"
	"net/http"
	"strings"

	"mangastore/internal/auth"
)

// RoleResolver answers what role the authenticated user has. Satisfied by
// *profile.Service.
type RoleResolver interface {
	Role(ctx context.Context, userID, email string) (string, error)
}

// GuardConfig is the route-guard allow-list: exact public paths and public
// path prefixes bypass the auth requirement.
type GuardConfig struct {
	PublicPaths    []string
	PublicPrefixes []string
}

func (c GuardConfig) isPublic(path string) bool {
	for _, p := range c.PublicPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range c.PublicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware resolves the bearer token into a user identity. Requests to
// public paths pass through with or without a valid token; everything else
// gets 401 without one.
func AuthMiddleware(secret string, guard GuardConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claims *auth.Claims
			if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
				token := strings.TrimPrefix(header, "Bearer ")
				claims, _ = auth.ParseToken(secret, token)
			}

			if claims == nil {
				if guard.isPublic(r.URL.Path) {
					next.ServeHTTP(w, r)
					return
				}
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a handler on a resolved profile role of "admin". A
// failed role lookup is treated as not-admin; there is no fallback identity.
func RequireAdmin(roles RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserIDFrom(r)
			if userID == "" {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
				return
			}

			role, err := roles.Role(r.Context(), userID, UserEmailFrom(r))
			if err != nil || role != "admin" {
				JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Admin access required", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
