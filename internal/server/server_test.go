package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jest/internal/bot"
	"jest/internal/engine"
	"jest/internal/engine/trophies"
	"jest/internal/protocol"
	"jest/internal/server"
	"jest/internal/store"
)

func newTestServer(t *testing.T, opts server.Options) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(server.New(opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func createGame(t *testing.T, srv *httptest.Server, query string) string {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/create" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["game_id"])
	return body["game_id"]
}

func dial(t *testing.T, srv *httptest.Server, gameID, playerID string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?type=player&game=" + gameID + "&player=" + playerID
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(protocol.MustEnvelope(typ, payload)))
}

// playToEnd answers every prompt with the first option and returns the result.
func playToEnd(t *testing.T, conn *websocket.Conn) engine.Result {
	t.Helper()
	answered := map[string]bool{}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	for {
		var env protocol.Envelope
		require.NoError(t, conn.ReadJSON(&env))
		switch env.Type {
		case protocol.MsgPrompt:
			var p protocol.PromptMsg
			require.NoError(t, json.Unmarshal(env.Payload, &p))
			if answered[p.ID] {
				continue
			}
			answered[p.ID] = true
			send(t, conn, protocol.MsgChoose, protocol.ChooseMsg{PromptID: p.ID, Choice: 1})
		case protocol.MsgPlayerState:
			var view engine.PlayerViewData
			require.NoError(t, json.Unmarshal(env.Payload, &view))
			for _, p := range view.Players {
				if p.Hidden != nil {
					assert.True(t, p.Hidden.FaceDown)
				}
			}
		case protocol.MsgGameOver:
			var res engine.Result
			require.NoError(t, json.Unmarshal(env.Payload, &res))
			return res
		}
	}
}

func TestCreateGame(t *testing.T) {
	srv := newTestServer(t, server.Options{})
	a, b := createGame(t, srv, ""), createGame(t, srv, "")
	assert.NotEqual(t, a, b)

	resp, err := http.Get(srv.URL + "/api/create?game=unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlayerIDAndQR(t *testing.T) {
	srv := newTestServer(t, server.Options{})
	resp, err := http.Get(srv.URL + "/api/player-id")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/qr?game=abc")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp, err = http.Get(srv.URL + "/api/qr")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFullGameAgainstBots(t *testing.T) {
	mem := store.NewMemoryStore()
	srv := newTestServer(t, server.Options{Store: mem, Variant: engine.Quick{}})
	gameID := createGame(t, srv, "")
	conn := dial(t, srv, gameID, "p1")

	send(t, conn, protocol.MsgJoin, protocol.JoinMsg{PlayerID: "p1", Name: "Ann"})
	send(t, conn, protocol.MsgReady, protocol.ReadyMsg{Ready: true})
	send(t, conn, protocol.MsgStartGame, protocol.StartGameMsg{Bots: 3, BotLevel: "random"})

	res := playToEnd(t, conn)
	assert.Equal(t, "quick", res.Variant)
	assert.Len(t, res.Scores, 4)

	// The snapshot is dropped once the game is over.
	assert.Eventually(t, func() bool {
		_, err := mem.Load(context.Background(), gameID)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestStartRequiresReady(t *testing.T) {
	srv := newTestServer(t, server.Options{})
	gameID := createGame(t, srv, "")
	conn := dial(t, srv, gameID, "p1")
	send(t, conn, protocol.MsgJoin, protocol.JoinMsg{PlayerID: "p1", Name: "Ann"})
	send(t, conn, protocol.MsgStartGame, protocol.StartGameMsg{Bots: 2})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var env protocol.Envelope
		require.NoError(t, conn.ReadJSON(&env))
		if env.Type == protocol.MsgError {
			var e protocol.ErrorMsg
			require.NoError(t, json.Unmarshal(env.Payload, &e))
			assert.Contains(t, e.Message, "ready")
			return
		}
	}
}

// seat is a stand-in for a human seat when building a snapshot.
type seat struct{}

func (seat) Kind() string { return server.HumanKind }
func (seat) ChooseHidden(context.Context, *engine.Card, *engine.Card) (int, error) {
	return 1, nil
}
func (seat) ChoosePick(context.Context, []*engine.Card, []*engine.Player) (int, error) {
	return 1, nil
}

func TestResumeFromSnapshot(t *testing.T) {
	ctx := context.Background()
	players := []*engine.Player{engine.NewPlayer("p1", "Ann", seat{})}
	for _, id := range []string{"b1", "b2"} {
		c, err := bot.New(bot.LevelRandom, 3)
		require.NoError(t, err)
		players = append(players, engine.NewPlayer(id, id, c))
	}
	g, err := engine.NewGame(players, engine.DefaultConfig(), trophies.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, g.PlayRound(ctx))
	snap, err := g.Snapshot()
	require.NoError(t, err)

	mem := store.NewMemoryStore()
	require.NoError(t, mem.Save(ctx, "saved", snap))

	srv := newTestServer(t, server.Options{Store: mem, Dev: true})

	resp, err := http.Get(srv.URL + "/api/snapshot?game=saved")
	require.NoError(t, err)
	var stored engine.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	resp.Body.Close()
	assert.Equal(t, 1, stored.Round)

	assert.Equal(t, "saved", createGame(t, srv, "?game=saved"))
	conn := dial(t, srv, "saved", "p1")
	send(t, conn, protocol.MsgJoin, protocol.JoinMsg{PlayerID: "p1", Name: "Ann"})
	send(t, conn, protocol.MsgReady, protocol.ReadyMsg{Ready: true})
	send(t, conn, protocol.MsgStartGame, protocol.StartGameMsg{Resume: true})

	res := playToEnd(t, conn)
	assert.Len(t, res.Scores, 3)
	assert.Equal(t, "standard", res.Variant)
}

func TestSnapshotRouteNeedsDev(t *testing.T) {
	srv := newTestServer(t, server.Options{})
	resp, err := http.Get(srv.URL + "/api/snapshot?game=x")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	dev := newTestServer(t, server.Options{Dev: true})
	resp, err = http.Get(dev.URL + "/api/snapshot?game=x")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
