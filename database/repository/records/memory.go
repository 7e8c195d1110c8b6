package recordsRepo

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu        sync.Mutex
	snapshots map[string]Snapshot
}

// NewMemoryStore returns an in-process Store, used in tests and as the
// zero-dependency fallback backend.
func NewMemoryStore() Store {
	return &memoryStore{snapshots: make(map[string]Snapshot)}
}

func (s *memoryStore) Load(_ context.Context, collection string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots[collection], nil
}

func (s *memoryStore) Save(_ context.Context, collection string, data string, expected int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshots[collection].Version != expected {
		return ErrConflict
	}
	s.snapshots[collection] = Snapshot{Data: data, Version: expected + 1}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, collection)
	return nil
}
