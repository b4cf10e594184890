package kv

import (
	"context"
	"sync"

	"github.com/chemaware/catalog/internal/domain"
)

// MemoryStore is a thread-safe in-memory key-value store. Values live for the
// lifetime of the process only.
type MemoryStore struct {
	data  map[string]string
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Get retrieves a value from the store
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, exists := s.data[key]
	if !exists {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

// Set stores a value, replacing any previous one
func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes a value from the store
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Exists checks if a key exists in the store
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.data[key]
	return exists, nil
}
