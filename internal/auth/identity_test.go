// AngelaMos | 2026
// identity_test.go

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fisherfans/backend/internal/core"
)

func TestRequireAuth(t *testing.T) {
	alice := &Identity{UserID: "alice", Email: "alice@example.com"}

	tests := []struct {
		name     string
		identity *Identity
		expected []string
		wantErr  bool
	}{
		{name: "anonymous", identity: nil, wantErr: true},
		{name: "empty subject", identity: &Identity{}, wantErr: true},
		{name: "any user", identity: alice},
		{name: "matching subject", identity: alice, expected: []string{"alice"}},
		{name: "other subject", identity: alice, expected: []string{"bob"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequireAuth(tt.identity, tt.expected...)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Same(t, tt.identity, got)
				return
			}

			require.ErrorIs(t, err, core.ErrUnauthenticated)
			be, ok := core.AsBusinessError(err)
			require.True(t, ok)
			assert.Equal(t, core.CodeUnauthenticated, be.Code)
		})
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))

	id := &Identity{UserID: "u1"}
	assert.Same(t, id, FromContext(WithIdentity(ctx, id)))
}
