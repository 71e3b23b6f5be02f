// Package store provides an in-memory, append-only record collection.
// It stands in for a real datastore: collections are seeded at startup,
// grow only through Insert, and reset on restart.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// Store holds an ordered collection of records. All methods are safe for
// concurrent use; id assignment happens under the write lock so concurrent
// inserts cannot collide.
type Store[T any] struct {
	mu      sync.RWMutex
	records []T
}

// New creates a Store seeded with the given records.
func New[T any](seed []T) *Store[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &Store[T]{records: records}
}

// List returns a snapshot of all records in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Find returns the first record matching pred, or ErrNotFound.
func (s *Store[T]) Find(pred func(T) bool) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if pred(rec) {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Insert appends the record produced by build, which receives the next
// sequential id. Records are never updated or deleted.
func (s *Store[T]) Insert(build func(id int) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := build(len(s.records) + 1)
	s.records = append(s.records, rec)
	return rec
}
