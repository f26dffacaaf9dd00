package kvstore

import (
	"context"
	"sort"
	"sync"
)

// Memory is a process-local Resource used in development and tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Resource = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
	}
}

func (m *Memory) Backend() string { return BackendMemory }

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) List(context.Context) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([][]byte, 0, len(ids))
	for _, id := range ids {
		out = append(out, append([]byte(nil), m.data[id]...))
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrIDMissing
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (m *Memory) Set(_ context.Context, id string, value []byte) error {
	if id == "" {
		return ErrIDMissing
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Remove(_ context.Context, id string) error {
	if id == "" {
		return ErrIDMissing
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

func (m *Memory) RemoveAll(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	return nil
}
