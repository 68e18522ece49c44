package iconstore

import (
	"context"
	"sync"
)

// InMemoryStore is a thread-safe, map-backed store. It is mainly useful in
// tests and for embedding scenarios where no persistence is wanted.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		data: make(map[string][]byte),
	}
}

// Fetch retrieves an entry from the map.
func (s *InMemoryStore) Fetch(_ context.Context, url string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[url]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// Write stores an entry in the map.
func (s *InMemoryStore) Write(_ context.Context, url string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[url] = data
	return nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryStore) Close() error {
	return nil
}

// Len returns the number of stored entries.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
