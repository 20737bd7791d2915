package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/session"
	"github.com/ryangandev/CST480-Library/internal/store"
)

type fakeCredentials map[string]*store.User

func (f fakeCredentials) ByUsername(_ context.Context, username string) (*store.User, error) {
	if u, ok := f[username]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func newTestAuthenticator(t *testing.T) (*Authenticator, *session.MemoryRegistry) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := fakeCredentials{
		"ryan": {ID: 7, Username: "ryan", Password: string(hash), Role: "author"},
	}
	registry := session.NewMemoryRegistry()
	limiter := NewLoginLimiter(100, time.Minute)
	return NewAuthenticator(creds, registry, limiter, zap.NewNop()), registry
}

func kindOf(t *testing.T, err error) apperrors.Kind {
	t.Helper()
	appErr, ok := err.(*apperrors.Error)
	require.True(t, ok, "expected *apperrors.Error, got %T", err)
	return appErr.Kind
}

func TestLoginSuccessRegistersSession(t *testing.T) {
	a, registry := newTestAuthenticator(t)

	token, err := a.Login(context.Background(), "10.0.0.1", "ryan", "hunter2")
	require.NoError(t, err)
	require.Len(t, token, 64)

	sess, ok := registry.Lookup(token)
	require.True(t, ok)
	require.Equal(t, session.Session{Username: "ryan", UserID: 7}, sess)
}

func TestLoginEachCallIssuesFreshToken(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	t1, err := a.Login(context.Background(), "10.0.0.1", "ryan", "hunter2")
	require.NoError(t, err)
	t2, err := a.Login(context.Background(), "10.0.0.1", "ryan", "hunter2")
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)
}

func TestLoginMissingFields(t *testing.T) {
	a, _ := newTestAuthenticator(t)

	_, err := a.Login(context.Background(), "10.0.0.1", "", "hunter2")
	require.Equal(t, apperrors.KindValidation, kindOf(t, err))

	_, err = a.Login(context.Background(), "10.0.0.1", "ryan", "")
	require.Equal(t, apperrors.KindValidation, kindOf(t, err))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	a, registry := newTestAuthenticator(t)

	_, unknownErr := a.Login(context.Background(), "10.0.0.1", "nobody", "hunter2")
	_, wrongPassErr := a.Login(context.Background(), "10.0.0.1", "ryan", "wrong")

	require.Equal(t, apperrors.KindAuthentication, kindOf(t, unknownErr))
	require.Equal(t, apperrors.KindAuthentication, kindOf(t, wrongPassErr))
	// identical message for both, so usernames cannot be enumerated
	require.Equal(t, messages.UsernameOrPasswordInvalid, unknownErr.Error())
	require.Equal(t, unknownErr.Error(), wrongPassErr.Error())

	// no session was created either way
	_, ok := registry.Lookup("")
	require.False(t, ok)
}

func TestLoginRateLimitedRegardlessOfCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	creds := fakeCredentials{"ryan": {ID: 7, Username: "ryan", Password: string(hash)}}
	limiter := NewLoginLimiter(5, time.Minute)
	a := NewAuthenticator(creds, session.NewMemoryRegistry(), limiter, zap.NewNop())

	for i := 0; i < 5; i++ {
		_, err := a.Login(context.Background(), "10.0.0.1", "ryan", "wrong")
		require.Equal(t, apperrors.KindAuthentication, kindOf(t, err))
	}

	// 6th attempt rejected even with valid credentials
	_, err = a.Login(context.Background(), "10.0.0.1", "ryan", "hunter2")
	require.Equal(t, apperrors.KindRateLimited, kindOf(t, err))

	// another client is unaffected
	_, err = a.Login(context.Background(), "10.0.0.2", "ryan", "hunter2")
	require.NoError(t, err)
}

func TestLogoutIsIdempotent(t *testing.T) {
	a, registry := newTestAuthenticator(t)

	token, err := a.Login(context.Background(), "10.0.0.1", "ryan", "hunter2")
	require.NoError(t, err)

	a.Logout(token)
	_, ok := registry.Lookup(token)
	require.False(t, ok)

	a.Logout(token)
	a.Logout("never-issued")
}

func TestOwnership(t *testing.T) {
	sess := session.Session{Username: "ryan", UserID: 7}

	require.Equal(t, Allowed, Ownership(sess, 7))
	require.Equal(t, Forbidden, Ownership(sess, 8))
	require.Equal(t, Forbidden, Ownership(session.Session{}, 7))
}
