package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ryangandev/CST480-Library/internal/session"
)

func TestRegistryCreateLookup(t *testing.T) {
	r := session.NewMemoryRegistry()

	_, ok := r.Lookup("missing")
	require.False(t, ok)

	want := session.Session{Username: "ryan", UserID: 7}
	r.Create("tok", want)

	got, ok := r.Lookup("tok")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestRegistryRevokeIsIdempotent(t *testing.T) {
	r := session.NewMemoryRegistry()
	r.Create("tok", session.Session{Username: "ryan", UserID: 7})

	r.Revoke("tok")
	_, ok := r.Lookup("tok")
	require.False(t, ok)

	// revoking again, or revoking a token never issued, must not panic
	r.Revoke("tok")
	r.Revoke("never-issued")
}

func TestRegistryAllowsConcurrentSessionsPerUser(t *testing.T) {
	r := session.NewMemoryRegistry()
	sess := session.Session{Username: "ryan", UserID: 7}

	r.Create("tok1", sess)
	r.Create("tok2", sess)

	_, ok1 := r.Lookup("tok1")
	_, ok2 := r.Lookup("tok2")
	require.True(t, ok1)
	require.True(t, ok2)

	r.Revoke("tok1")
	_, ok2 = r.Lookup("tok2")
	require.True(t, ok2)
}

func TestGenerateToken(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		tok, err := session.GenerateToken()
		require.NoError(t, err)
		require.Len(t, tok, 64)

		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
