// ABOUTME: In-memory KV store.
// ABOUTME: Used by tests and the "memory" backend for throwaway sessions.
package storage

import (
	"context"
	"sync"
)

// MemoryKV keeps values in a map. Safe for concurrent use.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

var _ KV = (*MemoryKV)(nil)

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns the number of Set calls so far.
func (m *MemoryKV) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func (m *MemoryKV) Close() error {
	return nil
}
