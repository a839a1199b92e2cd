package history

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when an entry ID no longer exists in the store.
var ErrNotFound = errors.New("history: entry not found")

// DefaultCapacity bounds the history when no capacity is configured.
const DefaultCapacity = 200

// Op reports what a Capture call did to the history.
type Op int

const (
	// OpSuppressed means the content equalled the current head; nothing changed.
	OpSuppressed Op = iota
	// OpInserted means a new entry was created at the head.
	OpInserted
	// OpPromoted means an existing non-head entry moved to the head.
	OpPromoted
)

// Store is the in-memory clipboard history: ordered head-first, bounded,
// and deduplicated by content. It is safe for concurrent use; the clipboard
// monitor captures from its own goroutine while the UI reads.
type Store struct {
	mu       sync.RWMutex
	entries  []Entry // index 0 is the most recent capture
	capacity int
	dirty    bool
	gen      uint64 // bumped on every mutation
}

// NewStore creates an empty store with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// NewStoreFrom creates a store seeded with previously persisted entries,
// head-first. Entries beyond the capacity are dropped from the tail. The
// store starts clean; loading is not a mutation.
func NewStoreFrom(entries []Entry, capacity int) *Store {
	s := NewStore(capacity)
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	s.entries = append(s.entries, entries...)
	return s
}

// Capture records content at the head of the history.
//
// Content equal to the current head is suppressed (repeated polls of an
// unchanged clipboard create nothing). Content equal to a non-head entry
// promotes that entry to the head, keeping its ID and refreshing its
// capture time. Otherwise a new entry is inserted and, at capacity, the
// oldest entry is evicted.
func (s *Store) Capture(content string) (Entry, Op) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) > 0 && s.entries[0].Content == content {
		return s.entries[0], OpSuppressed
	}

	for i := 1; i < len(s.entries); i++ {
		if s.entries[i].Content == content {
			e := s.entries[i]
			e.CapturedAt = time.Now().UTC()
			copy(s.entries[1:i+1], s.entries[:i])
			s.entries[0] = e
			s.touch()
			return e, OpPromoted
		}
	}

	e := newEntry(content)
	s.entries = append(s.entries, Entry{})
	copy(s.entries[1:], s.entries)
	s.entries[0] = e
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
	s.touch()
	return e, OpInserted
}

// List returns a head-first snapshot of all entries.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Remove deletes the entry with the given ID. The order of the remaining
// entries is unchanged. Returns ErrNotFound for stale IDs.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.touch()
			return nil
		}
	}
	return ErrNotFound
}

// Clear removes all entries and returns how many were removed.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entries)
	if n > 0 {
		s.entries = s.entries[:0]
		s.touch()
	}
	return n
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Capacity returns the configured bound.
func (s *Store) Capacity() int {
	return s.capacity
}

// touch records a mutation. Callers hold the write lock.
func (s *Store) touch() {
	s.dirty = true
	s.gen++
}

// Dirty reports whether the store has mutations not yet persisted.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Snapshot returns a head-first copy of the entries together with the
// store's current generation, for handing to a background save.
func (s *Store) Snapshot() ([]Entry, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, s.gen
}

// MarkSaved clears the dirty flag after a successful save of the
// snapshot taken at gen. Mutations since that snapshot keep the store
// dirty so they are not lost to a stale save.
func (s *Store) MarkSaved(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.dirty = false
	}
}
