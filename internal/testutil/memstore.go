package testutil

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/workstats/internal/repository"
)

// MemoryStore is an in-memory BlobStore. Writes can be made to fail on a
// given key or on the Nth Save call to exercise persistence-failure paths.
//
// Save calls are counted starting at 1. Loads and deletes are not counted.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte

	saves     atomic.Int32
	FailOnNth int32
	FailKeys  map[string]bool
	Err       error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (m *MemoryStore) failure(key string) error {
	n := m.saves.Add(1)
	if (m.FailOnNth > 0 && n == m.FailOnNth) || m.FailKeys[key] {
		if m.Err != nil {
			return m.Err
		}
		return fmt.Errorf("quota exceeded writing %s", key)
	}
	return nil
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", key, repository.ErrNotFound)
	}
	return slices.Clone(v), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	if err := m.failure(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = slices.Clone(value)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// Put seeds a raw blob without counting as a Save.
func (m *MemoryStore) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = slices.Clone(value)
}

// Has reports whether a blob is stored under key.
func (m *MemoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	return ok
}

// Keys returns the stored keys in sorted order.
func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.blobs))
}

// Saves returns how many Save calls were made.
func (m *MemoryStore) Saves() int {
	return int(m.saves.Load())
}
