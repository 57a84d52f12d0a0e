package directory

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process directory used in tests and local development.
type Memory struct {
	mu   sync.Mutex
	next int
	ids  map[string]string // uid → email
}

func NewMemory() *Memory {
	return &Memory{ids: make(map[string]string)}
}

func (m *Memory) CreateIdentity(_ context.Context, email, _, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	uid := fmt.Sprintf("uid-%d", m.next)
	m.ids[uid] = email
	return uid, nil
}

func (m *Memory) DeleteIdentity(_ context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.ids, uid)
	return nil
}
