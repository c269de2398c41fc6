package storage

import (
	"context"
	"fmt"
	"sync"
)

var _ ObjectStorage = (*StubStorage)(nil)

type stubObject struct {
	data        []byte
	contentType string
}

// StubStorage keeps objects in memory. It is used in tests and when no
// object storage backend is configured.
type StubStorage struct {
	mu      sync.RWMutex
	objects map[string]stubObject
}

// NewStubStorage creates an empty in-memory object storage
func NewStubStorage() *StubStorage {
	return &StubStorage{objects: make(map[string]stubObject)}
}

func (s *StubStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return fmt.Errorf("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[storageKey] = stubObject{data: stored, contentType: contentType}
	return nil
}

func (s *StubStorage) Download(ctx context.Context, storageKey string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[storageKey]
	if !ok {
		return nil, "", fmt.Errorf("object not found: %s", storageKey)
	}
	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	return data, obj.contentType, nil
}

func (s *StubStorage) Delete(ctx context.Context, storageKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// Len reports the number of stored objects
func (s *StubStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
