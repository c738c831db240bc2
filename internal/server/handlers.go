package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"jest/internal/lobby"
	qr "jest/internal/qrcode"
	"jest/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	LobbyMgr *lobby.Manager
	opts     Options

	mu   sync.Mutex
	hubs map[string]*Hub
}

func NewHandlers(opts Options) *Handlers {
	return &Handlers{
		LobbyMgr: lobby.NewManager(),
		opts:     opts.withDefaults(),
		hubs:     make(map[string]*Hub),
	}
}

// Hub returns the hub of a game, or nil.
func (h *Handlers) Hub(gameID string) *Hub {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hubs[gameID]
}

// HandleCreateGame creates a new game lobby and returns its ID. With a game
// parameter naming a stored snapshot, the lobby reopens under that ID so the
// players can rejoin and resume.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID != "" {
		if _, err := h.opts.Store.Load(r.Context(), gameID); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
			}
			http.Error(w, err.Error(), status)
			return
		}
		if hub := h.Hub(gameID); hub != nil {
			writeJSON(w, map[string]string{"game_id": gameID})
			return
		}
		h.LobbyMgr.CreateWithID(gameID)
	} else {
		gameID = h.LobbyMgr.Create()
	}

	hub := NewHub(gameID, h.LobbyMgr.Get(gameID), h.opts)
	h.mu.Lock()
	h.hubs[gameID] = hub
	h.mu.Unlock()
	go hub.Run()

	h.opts.Logger.Info("game created", zap.String("game_id", gameID))
	writeJSON(w, map[string]string{"game_id": gameID})
}

// HandleQR generates a QR code PNG for joining the game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	png, err := qr.Generate(qr.JoinURL(r.Host, gameID), size)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "table" or "seat"

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	hub := h.Hub(gameID)
	if hub == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.opts.Logger.Warn("ws upgrade error", zap.String("game_id", gameID), zap.Error(err))
		return
	}

	client := NewClient(hub, conn, playerID, ParseClientType(clientType))
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	id := GeneratePlayerID()
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(id))
}

// HandleSnapshot returns the stored snapshot of a game. It exposes hidden
// cards and is only routed in dev mode.
func (h *Handlers) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	snap, err := h.opts.Store.Load(r.Context(), gameID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

// Close stops every hub.
func (h *Handlers) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, hub := range h.hubs {
		hub.Stop()
		delete(h.hubs, id)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
