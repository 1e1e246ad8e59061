package shiplog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the entry cap shared by every store in the process.
const DefaultCapacity = 2000

// Store is the capacity-bounded, ordered log shared by all requests.
// When the cap is exceeded the oldest entries are dropped; relative order
// of the remainder is preserved. All operations are safe under concurrent
// use; reads hand out copies so exports never block appends for long.
type Store struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

func NewStore() *Store {
	return NewStoreWithCapacity(DefaultCapacity)
}

func NewStoreWithCapacity(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Append stores entry at the end, assigning an id and timestamp when the
// caller omitted them, and trims the front down to capacity. Returns the
// stored entry.
func (s *Store) Append(entry Entry) Entry {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.Type == "" {
		entry.Type = TypeSystem
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if overflow := len(s.entries) - s.capacity; overflow > 0 {
		s.entries = append(s.entries[:0:0], s.entries[overflow:]...)
	}
	return entry
}

// List returns a point-in-time copy of the log in insertion order.
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Clear empties the store and reports how many entries were removed.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := len(s.entries)
	s.entries = nil
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
