// Package store persists game snapshots between rounds.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"jest/internal/engine"
)

var ErrNotFound = errors.New("snapshot not found")

// Store keeps the latest snapshot of each game.
type Store interface {
	Save(ctx context.Context, gameID string, s *engine.Snapshot) error
	Load(ctx context.Context, gameID string) (*engine.Snapshot, error)
	Delete(ctx context.Context, gameID string) error
}

// MemoryStore keeps snapshots in process memory, encoded so callers never
// share state with the store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Save(_ context.Context, gameID string, s *engine.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", gameID, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[gameID] = data
	return nil
}

func (m *MemoryStore) Load(_ context.Context, gameID string) (*engine.Snapshot, error) {
	m.mu.Lock()
	data, ok := m.data[gameID]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	return decode(gameID, data)
}

func (m *MemoryStore) Delete(_ context.Context, gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, gameID)
	return nil
}

func decode(gameID string, data []byte) (*engine.Snapshot, error) {
	var s engine.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", gameID, err)
	}
	return &s, nil
}
