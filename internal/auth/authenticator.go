// Package auth implements the authentication and authorization core:
// credential verification and token issuance, the per-address login rate
// limiter, and the ownership verdict consulted before book mutation.
package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ryangandev/CST480-Library/internal/apperrors"
	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/session"
	"github.com/ryangandev/CST480-Library/internal/store"
)

// CredentialStore is the read-only view of the users table the
// authenticator needs. The auth layer never mutates user records.
type CredentialStore interface {
	ByUsername(ctx context.Context, username string) (*store.User, error)
}

type Authenticator struct {
	users    CredentialStore
	registry session.Registry
	limiter  *LoginLimiter
	logger   *zap.Logger
}

func NewAuthenticator(users CredentialStore, registry session.Registry, limiter *LoginLimiter, logger *zap.Logger) *Authenticator {
	logger = logger.With(zap.String("package", "auth"))
	return &Authenticator{users: users, registry: registry, limiter: limiter, logger: logger}
}

// Login verifies the credentials and, on success, issues a session token
// registered for the user. addr is the client address the rate limiter is
// keyed by. Unknown-username and wrong-password failures are deliberately
// indistinguishable to the caller.
func (a *Authenticator) Login(ctx context.Context, addr, username, password string) (string, error) {
	if !a.limiter.Allow(addr) {
		return "", apperrors.RateLimited(messages.TooManyLoginAttempts)
	}

	if username == "" || password == "" {
		return "", apperrors.Validation(messages.MissingCredentials)
	}

	user, err := a.users.ByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.logger.Error("credential lookup failed", zap.Error(err))
			return "", apperrors.Internal(messages.SomethingWentWrong)
		}
		return "", apperrors.Authentication(messages.UsernameOrPasswordInvalid)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Authentication(messages.UsernameOrPasswordInvalid)
	}

	token, err := session.GenerateToken()
	if err != nil {
		a.logger.Error("token generation failed", zap.Error(err))
		return "", apperrors.Internal(messages.SomethingWentWrong)
	}

	a.registry.Create(token, session.Session{Username: user.Username, UserID: user.ID})
	return token, nil
}

// RetryAfter reports how long the client behind addr must wait for the
// rate-limit window to reset.
func (a *Authenticator) RetryAfter(addr string) time.Duration {
	return a.limiter.RetryAfter(addr)
}

// Logout revokes the token. Idempotent: revoking a token that was never
// issued, or was already revoked, succeeds silently.
func (a *Authenticator) Logout(token string) {
	a.registry.Revoke(token)
}
