package store

import (
	"context"
	"errors"
	"sync"

	"github.com/Dianagomez24/FrontFilLife/internal/backend"
)

// Error carries the user-facing message next to the cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the copy that can be shown to the user for err.
func UserMessage(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	if err == nil {
		return ""
	}
	return "Ha ocurrido un error. Intenta de nuevo."
}

// Collection holds one resource list as last loaded from the server.
// Loads are numbered: a load that finishes after a newer one has been applied is discarded.
type Collection[T any] struct {
	fetch    func(ctx context.Context) ([]T, error)
	fallback string

	mu      sync.RWMutex
	items   []T
	err     string
	started uint64
	applied uint64
	loading int
}

func NewCollection[T any](fetch func(ctx context.Context) ([]T, error), fallback string) *Collection[T] {
	return &Collection[T]{fetch: fetch, fallback: fallback}
}

// Items returns a copy of the current list.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading > 0
}

// Err returns the message of the last failure, or "" after a successful call.
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Load replaces the list wholesale with the server's.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.started++
	gen := c.started
	c.loading++
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--

	if gen < c.applied {
		// a newer load already landed
		if err != nil {
			return c.wrap(err, c.fallback)
		}
		return nil
	}
	c.applied = gen

	if err != nil {
		wrapped := c.wrap(err, c.fallback)
		c.err = wrapped.Message
		return wrapped
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.err = ""
	return nil
}

// fail records err under fallback and returns it wrapped.
func (c *Collection[T]) fail(err error, fallback string) error {
	wrapped := c.wrap(err, fallback)
	c.mu.Lock()
	c.err = wrapped.Message
	c.mu.Unlock()
	return wrapped
}

func (c *Collection[T]) wrap(err error, fallback string) *Error {
	return &Error{Message: backend.Message(err, fallback), Err: err}
}

func (c *Collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
