package lobby

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrStarted  = errors.New("game already started")
	ErrFull     = errors.New("lobby is full")
	ErrNotReady = errors.New("not all players ready")
)

const (
	MinPlayers = 3
	MaxPlayers = 4
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
	Bot   string // bot level, empty for humans
}

// Lobby represents a game lobby waiting for players.
type Lobby struct {
	mu      sync.Mutex
	ID      string
	Players []*PlayerInfo
	Started bool
}

// NewLobby creates a new lobby.
func NewLobby(id string) *Lobby {
	return &Lobby{ID: id}
}

// Join adds a player to the lobby.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == "" {
		return fmt.Errorf("missing player id")
	}
	// Rejoining keeps the seat, even after the game started.
	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) >= MaxPlayers {
		return ErrFull
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	return nil
}

// AddBot seats a bot and returns its player ID. Bots are always ready.
func (l *Lobby) AddBot(level string) (string, error) {
	id := "bot-" + uuid.NewString()[:8]
	l.mu.Lock()
	name := fmt.Sprintf("Bot %d (%s)", len(l.Players)+1, level)
	l.mu.Unlock()
	return id, l.SeatBot(id, name, level)
}

// SeatBot seats a bot under a known ID. Seating the same ID twice is a no-op.
func (l *Lobby) SeatBot(id, name, level string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			return nil
		}
	}
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) >= MaxPlayers {
		return ErrFull
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name, Ready: true, Bot: level})
	return nil
}

// Has reports whether a player holds a seat.
func (l *Lobby) Has(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Leave removes a player from the lobby.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return
	}
	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return
		}
	}
}

// SetReady toggles a player's ready state.
func (l *Lobby) SetReady(id string, ready bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return
		}
	}
}

// Seats returns how many bots are needed to reach want seats, never going
// below MinPlayers or above MaxPlayers.
func (l *Lobby) Seats(want int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.Players)
	total := n + want
	if total < MinPlayers {
		total = MinPlayers
	}
	if total > MaxPlayers {
		total = MaxPlayers
	}
	if total < n {
		return 0
	}
	return total - n
}

// CanStart returns true if every seated human is ready and at least one is seated.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	humans := 0
	for _, p := range l.Players {
		if p.Bot == "" {
			humans++
		}
		if !p.Ready {
			return false
		}
	}
	return humans > 0
}

// Start marks the lobby as started.
func (l *Lobby) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return ErrStarted
	}
	if len(l.Players) < MinPlayers {
		return fmt.Errorf("need %d players, have %d", MinPlayers, len(l.Players))
	}
	for _, p := range l.Players {
		if !p.Ready {
			return ErrNotReady
		}
	}
	l.Started = true
	return nil
}

// IsStarted reports whether Start succeeded.
func (l *Lobby) IsStarted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Started
}

// GetPlayers returns a copy of the player list.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}
