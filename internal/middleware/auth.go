package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/saludml/salud-backend/internal/auth"
	"github.com/saludml/salud-backend/internal/httperr"
)

type contextKey string

const usernameKey contextKey = "username"

// RequireAuth verifies the bearer token and injects the subject into the
// request context. Protected handlers run only after this passes; the model
// adapter and history store are never touched on an unauthenticated request.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				httperr.Write(w, httperr.E(httperr.Auth, "missing authorization token"))
				return
			}

			username, err := tokens.Verify(token)
			if err != nil {
				httperr.Write(w, httperr.E(httperr.Auth, "invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the authenticated subject, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok && username != ""
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
