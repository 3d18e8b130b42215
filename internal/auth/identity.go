// AngelaMos | 2026
// identity.go

package auth

import (
	"context"

	"github.com/fisherfans/backend/internal/core"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the verified subject carried by a bearer token.
type Identity struct {
	UserID string
	Email  string
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func FromContext(ctx context.Context) *Identity {
	if id, ok := ctx.Value(identityKey).(*Identity); ok {
		return id
	}
	return nil
}

// RequireAuth fails with an Unauthenticated business error when no identity
// is attached, or when expectedUserID is given and names someone else. Both
// cases report the same code so callers cannot probe for other accounts.
func RequireAuth(id *Identity, expectedUserID ...string) (*Identity, error) {
	if id == nil || id.UserID == "" {
		return nil, core.Unauthenticated("Authentication required")
	}

	if len(expectedUserID) > 0 && expectedUserID[0] != id.UserID {
		return nil, core.Unauthenticated("Authenticated user mismatch")
	}

	return id, nil
}
