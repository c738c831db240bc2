package lobby

import (
	"sync"

	"github.com/google/uuid"
)

// Manager manages multiple lobbies.
type Manager struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby
}

func NewManager() *Manager {
	return &Manager{lobbies: make(map[string]*Lobby)}
}

// Create creates a new lobby and returns its ID.
func (m *Manager) Create() string {
	return m.CreateWithID(uuid.NewString()[:8])
}

// CreateWithID opens a lobby under a known ID, used to resume a stored game.
// An existing lobby with that ID is kept.
func (m *Manager) CreateWithID(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lobbies[id]; !ok {
		m.lobbies[id] = NewLobby(id)
	}
	return id
}

// Get returns a lobby by ID.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

// Remove forgets a lobby.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lobbies, id)
}
