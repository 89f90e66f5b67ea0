package stepcontext

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// Store holds shared global data as encoded bytes keyed by identifier.
// Implementations must be safe for concurrent use.
type Store interface {
	// Set stores data under id, replacing any previous value.
	Set(id string, data []byte) error

	// Get returns the data stored under id, or an error wrapping
	// ErrDataNotFound.
	Get(id string) ([]byte, error)

	// Delete removes id. Deleting a missing id returns ErrDataNotFound.
	Delete(id string) error

	// IDs returns the stored identifiers in ascending order.
	IDs() ([]string, error)
}

// MemoryStore is an in-process Store.
// Stored data is copied on the way in and out.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Set stores a copy of data under id.
func (s *MemoryStore) Set(id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = slices.Clone(data)
	return nil
}

// Get returns a copy of the data stored under id.
func (s *MemoryStore) Get(id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDataNotFound, id)
	}
	return slices.Clone(data), nil
}

// Delete removes id.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return fmt.Errorf("%w: %q", ErrDataNotFound, id)
	}
	delete(s.entries, id)
	return nil
}

// IDs returns the stored identifiers in ascending order.
func (s *MemoryStore) IDs() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Compile-time interface satisfaction checks.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
)
