package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces a minimum gap between uploads per business user
type Limiter struct {
	mu          sync.Mutex
	users       map[string]time.Time
	minInterval time.Duration
}

// New creates a limiter with the given minimum interval between uploads
func New(minInterval time.Duration) *Limiter {
	return &Limiter{
		users:       make(map[string]time.Time),
		minInterval: minInterval,
	}
}

// Allow reports whether an upload for the user may proceed now.
// The timestamp is only updated when the upload is allowed, so a denied
// attempt does not extend the gap.
func (l *Limiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	last, ok := l.users[userID]
	if ok && now.Sub(last) < l.minInterval {
		return false
	}

	l.users[userID] = now
	return true
}

// Reset clears the recorded timestamp for a user, allowing an immediate
// upload. Called when the user's story leaves the pipeline.
func (l *Limiter) Reset(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.users, userID)
}
