package cache

import (
	"context"
	"sync"
)

// MemoryViewStore is an in-process ViewStore used in tests and when Redis
// is not configured.
type MemoryViewStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryViewStore builds an empty store.
func NewMemoryViewStore() *MemoryViewStore {
	return &MemoryViewStore{data: make(map[string][]byte)}
}

// Delete removes the given keys; absent keys are ignored.
func (s *MemoryViewStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

// Put stores a snapshot.
func (s *MemoryViewStore) Put(_ context.Context, key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Has reports whether a snapshot exists for the key.
func (s *MemoryViewStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}
