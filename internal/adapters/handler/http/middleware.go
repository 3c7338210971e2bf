package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

type contextKey string

const (
	userKey    contextKey = "user"
	versionKey contextKey = "api_version"
)

const accessTokenCookie = "access_token"

// UserFromContext returns the authenticated user stored by Authenticate.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}

// VersionFromContext returns the negotiated API version, DefaultVersion if
// the request did not pass through APIVersion.
func VersionFromContext(ctx context.Context) domain.APIVersion {
	if v, ok := ctx.Value(versionKey).(domain.APIVersion); ok {
		return v
	}
	return domain.DefaultVersion
}

// Authenticate resolves the caller from an "Authorization: Bearer" header or
// the access_token cookie. Requests without valid credentials get 401.
func Authenticate(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				if cookie, err := r.Cookie(accessTokenCookie); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				writeError(w, r, domain.ErrUnauthenticated)
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequirePermission denies the request with 403 unless the caller's role
// holds the permission mapped to (resource, action).
func RequirePermission(resource domain.Resource, action domain.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				writeError(w, r, domain.ErrUnauthenticated)
				return
			}
			if !domain.Allowed(user.Role, resource, action) {
				writeError(w, r, domain.ErrPermissionDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// APIVersion negotiates the version from the Accept header. Unknown
// versions are rejected with 406 before any other processing.
func APIVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version, err := domain.ParseAcceptVersion(r.Header.Get("Accept"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), versionKey, version)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
