package auth

import (
	"sync"
	"time"
)

type attemptWindow struct {
	count int
	start time.Time
}

// LoginLimiter is a fixed-window counter keyed by client address: at most
// max attempts per window, evaluated before credentials are looked at.
type LoginLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	windows map[string]*attemptWindow

	now func() time.Time // overridable in tests
}

func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		max:     max,
		window:  window,
		windows: make(map[string]*attemptWindow),
		now:     time.Now,
	}
}

// Allow records an attempt from addr and reports whether it is within the
// window limit.
func (l *LoginLimiter) Allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[addr]
	if !ok || now.Sub(w.start) >= l.window {
		l.windows[addr] = &attemptWindow{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= l.max
}

// RetryAfter reports how long addr has to wait before the current window
// resets. Zero when no window is active.
func (l *LoginLimiter) RetryAfter(addr string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[addr]
	if !ok {
		return 0
	}

	remaining := l.window - l.now().Sub(w.start)
	if remaining < 0 {
		return 0
	}
	return remaining
}
