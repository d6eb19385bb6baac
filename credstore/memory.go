package credstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is the default backend and the one tests
// use.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		slots: make(map[string]string, 3),
	}
}

func (m *Memory) Get(context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Session{
		Token:    m.slots[SlotToken],
		Username: m.slots[SlotUsername],
		Role:     m.slots[SlotRole],
	}, nil
}

func (m *Memory) Set(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[SlotToken] = s.Token
	m.slots[SlotUsername] = s.Username
	m.slots[SlotRole] = s.Role
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, SlotToken)
	delete(m.slots, SlotUsername)
	delete(m.slots, SlotRole)
	return nil
}
