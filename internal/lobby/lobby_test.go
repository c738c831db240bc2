package lobby_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jest/internal/lobby"
)

func TestJoinAndStart(t *testing.T) {
	l := lobby.NewLobby("g")
	require.NoError(t, l.Join("a", "Ann"))
	require.NoError(t, l.Join("b", "Bo"))
	assert.False(t, l.CanStart())

	l.SetReady("a", true)
	l.SetReady("b", true)
	assert.True(t, l.CanStart())
	assert.Error(t, l.Start(), "two players are not enough")

	id, err := l.AddBot("greedy")
	require.NoError(t, err)
	require.NoError(t, l.Start())
	assert.True(t, l.IsStarted())

	players := l.GetPlayers()
	require.Len(t, players, 3)
	assert.Equal(t, id, players[2].ID)
	assert.Equal(t, "greedy", players[2].Bot)

	assert.ErrorIs(t, l.Join("c", "Cy"), lobby.ErrStarted)
	assert.NoError(t, l.Join("a", "Annie"), "rejoin keeps the seat")
	assert.ErrorIs(t, l.Start(), lobby.ErrStarted)
}

func TestFull(t *testing.T) {
	l := lobby.NewLobby("g")
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, l.Join(id, id))
	}
	assert.ErrorIs(t, l.Join("e", "e"), lobby.ErrFull)
	_, err := l.AddBot("random")
	assert.ErrorIs(t, err, lobby.ErrFull)
}

func TestSeats(t *testing.T) {
	l := lobby.NewLobby("g")
	require.NoError(t, l.Join("a", "a"))
	assert.Equal(t, 2, l.Seats(0))
	assert.Equal(t, 3, l.Seats(3))
	assert.Equal(t, 3, l.Seats(10))
	require.NoError(t, l.Join("b", "b"))
	require.NoError(t, l.Join("c", "c"))
	assert.Equal(t, 0, l.Seats(0))
	assert.Equal(t, 1, l.Seats(1))
}

func TestLeave(t *testing.T) {
	l := lobby.NewLobby("g")
	require.NoError(t, l.Join("a", "a"))
	require.NoError(t, l.Join("b", "b"))
	l.Leave("a")
	players := l.GetPlayers()
	require.Len(t, players, 1)
	assert.Equal(t, "b", players[0].ID)
}

func TestManager(t *testing.T) {
	m := lobby.NewManager()
	id := m.Create()
	require.NotNil(t, m.Get(id))
	assert.Len(t, id, 8)

	assert.Equal(t, "saved", m.CreateWithID("saved"))
	l := m.Get("saved")
	m.CreateWithID("saved")
	assert.Same(t, l, m.Get("saved"))

	m.Remove(id)
	assert.Nil(t, m.Get(id))
}

func TestSeatBot(t *testing.T) {
	l := lobby.NewLobby("g")
	require.NoError(t, l.SeatBot("bot-1", "Bot", "random"))
	require.NoError(t, l.SeatBot("bot-1", "Bot", "random"))
	assert.Len(t, l.GetPlayers(), 1)
	assert.True(t, l.Has("bot-1"))
	assert.False(t, l.Has("a"))
	assert.False(t, l.CanStart(), "bots alone cannot start")
}
