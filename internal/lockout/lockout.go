// Package lockout counts failed logins per client and locks the form for a cool-down.
// It runs in front of, not instead of, the backend's own throttling.
package lockout

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrLocked = errors.New("too many failed attempts")

const (
	DefaultMaxAttempts = 5
	DefaultCooldown    = 300 * time.Second
)

type entry struct {
	failures    int
	lockedUntil time.Time
	lastSeen    time.Time
}

// Guard tracks failures per key (a browser or an email).
type Guard struct {
	mu          sync.Mutex
	entries     map[string]*entry
	maxAttempts int
	cooldown    time.Duration
	now         func() time.Time
}

type Option func(*Guard)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		g.now = now
	}
}

func New(maxAttempts int, cooldown time.Duration, opts ...Option) *Guard {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	g := &Guard{
		entries:     make(map[string]*entry),
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Status is what the login form shows.
type Status struct {
	Locked    bool
	Remaining time.Duration // until unlock
	Attempts  int           // failures so far
	Left      int           // attempts before the lock
}

// Check returns ErrLocked while key is cooling down.
func (g *Guard) Check(key string) (Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.status(key)
	if st.Locked {
		return st, ErrLocked
	}
	return st, nil
}

// Fail records a failed attempt. The attempt that reaches the limit locks the key.
func (g *Guard) Fail(key string) Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	e := g.entry(key, now)
	if e.lockedUntil.After(now) {
		return g.status(key)
	}
	e.failures++
	if e.failures >= g.maxAttempts {
		e.lockedUntil = now.Add(g.cooldown)
	}
	return g.status(key)
}

// Succeed forgets key.
func (g *Guard) Succeed(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
}

func (g *Guard) entry(key string, now time.Time) *entry {
	e, ok := g.entries[key]
	if !ok {
		e = &entry{}
		g.entries[key] = e
	}
	// the lock ran out: start over
	if !e.lockedUntil.IsZero() && !e.lockedUntil.After(now) {
		*e = entry{}
	}
	e.lastSeen = now
	return e
}

// status must be called with mu held.
func (g *Guard) status(key string) Status {
	now := g.now()
	e, ok := g.entries[key]
	if !ok {
		return Status{Left: g.maxAttempts}
	}
	if e.lockedUntil.After(now) {
		return Status{Locked: true, Remaining: e.lockedUntil.Sub(now), Attempts: e.failures}
	}
	if !e.lockedUntil.IsZero() {
		return Status{Left: g.maxAttempts}
	}
	return Status{Attempts: e.failures, Left: g.maxAttempts - e.failures}
}

// Cleanup drops keys that are neither locked nor recently used, until ctx is done.
func (g *Guard) Cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.cleanup()
		}
	}
}

func (g *Guard) cleanup() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	cutoff := now.Add(-g.cooldown * 2)
	for key, e := range g.entries {
		if !e.lockedUntil.After(now) && e.lastSeen.Before(cutoff) {
			delete(g.entries, key)
		}
	}
}

// Len reports how many keys are tracked.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}
