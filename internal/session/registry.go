// Package session holds the in-memory session registry. Sessions live from
// login until explicit logout or process exit; there is deliberately no
// idle or absolute timeout, and the Registry interface exists so a store
// with a real expiry policy (or persistence) can be swapped in later.
package session

import "sync"

// Session identifies the authenticated user behind a token.
type Session struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}

type Registry interface {
	// Create inserts the session unconditionally; tokens are unique by
	// construction (see GenerateToken).
	Create(token string, s Session)
	Lookup(token string) (Session, bool)
	// Revoke removes the session. Revoking an unknown or already-revoked
	// token is a no-op, never an error: logout is idempotent.
	Revoke(token string)
}

type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]Session)}
}

func (r *MemoryRegistry) Create(token string, s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = s
}

func (r *MemoryRegistry) Lookup(token string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}

func (r *MemoryRegistry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}
