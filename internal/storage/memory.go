package storage

import (
	"context"
	"errors"
	"maps"
	"sync"
)

// errSimulated is returned by MemoryStore when failure injection is enabled.
var errSimulated = errors.New("simulated failure")

// MemoryStore implements Store in memory. It is used by tests and by the
// server when no persistent backend is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	values    map[string]string
	failReads bool
	failWrite bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.failReads {
		return "", false, unavailable("get", key, errSimulated)
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrite {
		return unavailable("set", key, errSimulated)
	}
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrite {
		return unavailable("remove", key, errSimulated)
	}
	delete(m.values, key)
	return nil
}

// FailReads makes subsequent reads fail with ErrUnavailable.
func (m *MemoryStore) FailReads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = fail
}

// FailWrites makes subsequent writes fail with ErrUnavailable.
func (m *MemoryStore) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrite = fail
}

// Snapshot returns a copy of all stored values (useful for test assertions).
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.values)
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)
