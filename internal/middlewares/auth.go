package middlewares

import (
	"context"
	"net/http"

	"github.com/ryangandev/CST480-Library/internal/messages"
	"github.com/ryangandev/CST480-Library/internal/session"
	"github.com/ryangandev/CST480-Library/internal/utils"
)

// CookieName is the session cookie the browser carries after login.
const CookieName = "token"

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext returns the session stored by RequireSession.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(session.Session)
	return s, ok
}

// RequireSession rejects requests whose cookie token does not resolve in
// the registry, and stores the session on the request context otherwise.
func (m Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			utils.SendResponse(w, http.StatusUnauthorized, utils.ErrorResponse{Error: messages.NotLoggedIn})
			return
		}

		sess, ok := m.registry.Lookup(cookie.Value)
		if !ok {
			utils.SendResponse(w, http.StatusUnauthorized, utils.ErrorResponse{Error: messages.NotLoggedIn})
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
