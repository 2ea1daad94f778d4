package settings

import (
	"context"
	"sync"
)

// MemoryStore keeps settings in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	value Settings
	set   bool
}

// NewMemoryStore returns an empty store. Load reports ErrNotFound until Save.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (Settings, error) {
	if err := ctx.Err(); err != nil {
		return Settings{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return Settings{}, ErrNotFound
	}
	return m.value, nil
}

func (m *MemoryStore) Save(ctx context.Context, s Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = s
	m.set = true
	return nil
}
