package quota

import (
	"context"
	"sync"
)

// Memory es el contador in-process (modo dev / un solo nodo).
type Memory struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMemory() *Memory {
	return &Memory{counts: make(map[string]int)}
}

func (m *Memory) Incr(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[userID]++
	return m.counts[userID], nil
}

func (m *Memory) Get(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counts[userID], nil
}

func (m *Memory) Reset(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.counts, userID)
	return nil
}
