package store

import (
	"context"
	"sync"
)

type memorySessionStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemorySessionStore returns a process-local [SessionStore]. Values are
// lost when the process exits.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{values: make(map[string]string)}
}

func (m *memorySessionStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrSessionStoreClosed
	}

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memorySessionStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrSessionStoreClosed
	}

	m.values[key] = value
	return nil
}

func (m *memorySessionStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrSessionStoreClosed
	}

	delete(m.values, key)
	return nil
}

func (m *memorySessionStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
