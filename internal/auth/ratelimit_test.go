package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterAllowsUpToMaxPerWindow(t *testing.T) {
	now := time.Now()
	l := NewLoginLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("10.0.0.1"), "attempt %d should pass", i+1)
	}
	require.False(t, l.Allow("10.0.0.1"), "6th attempt should be rejected")
	require.False(t, l.Allow("10.0.0.1"))
}

func TestLimiterWindowReset(t *testing.T) {
	now := time.Now()
	l := NewLoginLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 6; i++ {
		l.Allow("10.0.0.1")
	}
	require.False(t, l.Allow("10.0.0.1"))

	now = now.Add(time.Minute)
	require.True(t, l.Allow("10.0.0.1"))
}

func TestLimiterKeysByAddress(t *testing.T) {
	now := time.Now()
	l := NewLoginLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 6; i++ {
		l.Allow("10.0.0.1")
	}
	require.False(t, l.Allow("10.0.0.1"))
	require.True(t, l.Allow("10.0.0.2"))
}

func TestLimiterRetryAfter(t *testing.T) {
	now := time.Now()
	l := NewLoginLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	require.Zero(t, l.RetryAfter("10.0.0.1"))

	l.Allow("10.0.0.1")
	now = now.Add(20 * time.Second)
	require.Equal(t, 40*time.Second, l.RetryAfter("10.0.0.1"))

	now = now.Add(time.Minute)
	require.Zero(t, l.RetryAfter("10.0.0.1"))
}
