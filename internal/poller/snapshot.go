package poller

import (
	"sync"
	"time"
)

// Snapshot holds the latest successfully fetched value of one view. Writers
// simply replace the previous value; there is no ordering guarantee between
// overlapping polls, so a slower poll can overwrite a newer value. That
// staleness is accepted, not treated as a bug.
type Snapshot[T any] struct {
	mu        sync.RWMutex
	value     T
	loaded    bool
	updatedAt time.Time
}

// Get returns the current value, when it was stored, and whether any value
// has been stored yet. Callers treat !ok as "not yet loaded".
func (s *Snapshot[T]) Get() (T, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.updatedAt, s.loaded
}

// Set replaces the snapshot with a fresh value.
func (s *Snapshot[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.loaded = true
	s.updatedAt = time.Now()
}

// Age returns how old the snapshot is, or false when nothing is loaded.
func (s *Snapshot[T]) Age() (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return 0, false
	}
	return time.Since(s.updatedAt), true
}
