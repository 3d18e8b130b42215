// AngelaMos | 2026
// auth.go

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/fisherfans/backend/internal/auth"
)

type TokenVerifier interface {
	VerifyToken(token string) (*auth.Identity, error)
}

// OptionalAuth attaches the bearer token's identity to the request context.
// A missing, malformed or expired token leaves the request anonymous; the
// resolvers decide which operations need an identity.
func OptionalAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token != "" {
				identity, err := verifier.VerifyToken(token)
				if err == nil {
					r = r.WithContext(auth.WithIdentity(r.Context(), identity))
				} else {
					slog.DebugContext(r.Context(), "ignoring bearer token",
						"error", err,
					)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetUserID(r *http.Request) string {
	if id := auth.FromContext(r.Context()); id != nil {
		return id.UserID
	}
	return ""
}
