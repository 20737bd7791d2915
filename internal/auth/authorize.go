package auth

import "github.com/ryangandev/CST480-Library/internal/session"

// Verdict is the outcome of an ownership check.
type Verdict int

const (
	Allowed Verdict = iota
	Forbidden
)

// Ownership decides whether the session's user owns the author record with
// the given user id. Pure: it inspects no request state, so handlers and
// tests can call it with plain values.
func Ownership(sess session.Session, ownerUserID int64) Verdict {
	if sess.UserID == ownerUserID {
		return Allowed
	}
	return Forbidden
}
