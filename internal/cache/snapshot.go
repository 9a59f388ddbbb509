// Package cache keeps a read-through snapshot of a slow-to-build value.
// The HTTP layer uses it to avoid re-reading the whole ledger blob on
// every render; mutations invalidate the snapshot so the next read goes
// back to storage.
package cache

import (
	"sync"
	"time"
)

// Snapshot holds one value with a TTL. The zero value is not usable;
// construct with NewSnapshot.
type Snapshot[T any] struct {
	mu        sync.Mutex
	ttl       time.Duration
	value     T
	expiresAt time.Time
	valid     bool
}

func NewSnapshot[T any](ttl time.Duration) *Snapshot[T] {
	return &Snapshot[T]{ttl: ttl}
}

// Get returns the held value if it is still fresh.
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.valid || time.Now().After(s.expiresAt) {
		var zero T
		s.valid = false
		return zero, false
	}
	return s.value, true
}

// Set replaces the held value and restarts the TTL.
func (s *Snapshot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	s.expiresAt = time.Now().Add(s.ttl)
	s.valid = true
}

// Invalidate drops the held value so the next Get misses.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.valid = false
}
