package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"jest/internal/bot"
	"jest/internal/engine"
	"jest/internal/engine/trophies"
	"jest/internal/lobby"
	"jest/internal/protocol"
	"jest/internal/store"
)

// Hub manages WebSocket connections and game state for one game room.
//
// The hub goroutine owns the lobby and the connections. Once started, the
// game runs on its own goroutine and only talks to the hub through cached
// views, SendTo and broadcastAll.
type Hub struct {
	mu      sync.Mutex
	gameID  string
	lobby   *lobby.Lobby
	opts    Options
	log     *zap.Logger
	clients map[*Client]bool
	remotes map[string]*RemoteController
	running bool

	public  *protocol.Envelope
	private map[string]protocol.Envelope

	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewHub(gameID string, lob *lobby.Lobby, opts Options) *Hub {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		gameID:     gameID,
		lobby:      lob,
		opts:       opts,
		log:        opts.Logger.With(zap.String("game_id", gameID)),
		clients:    make(map[*Client]bool),
		remotes:    make(map[string]*RemoteController),
		private:    make(map[string]protocol.Envelope),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLobbyUpdate()
			h.sendStateToClient(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			h.cancel()
			return
		}
	}
}

// Stop ends the hub loop and any running game.
func (h *Hub) Stop() {
	close(h.quit)
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(msg)
	case protocol.MsgChoose:
		h.handleChoose(msg)
	default:
		h.sendError(msg.Client, fmt.Sprintf("unknown message type %q", msg.Envelope.Type))
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.mu.Lock()
	msg.Client.PlayerID = join.PlayerID
	h.mu.Unlock()
	h.sendLobbyUpdate()
	h.sendStateToClient(msg.Client)
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

func (h *Hub) handleStartGame(msg IncomingMessage) {
	var start protocol.StartGameMsg
	if err := msg.Envelope.Decode(&start); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.mu.Lock()
	running := h.running
	h.mu.Unlock()
	if running || h.lobby.IsStarted() {
		h.sendError(msg.Client, lobby.ErrStarted.Error())
		return
	}

	var g *engine.Game
	var err error
	if start.Resume {
		g, err = h.resumeGame()
	} else {
		g, err = h.newGame(start)
	}
	if err != nil {
		h.log.Warn("start game failed", zap.Error(err))
		h.sendError(msg.Client, err.Error())
		return
	}

	h.log.Info("game started",
		zap.String("variant", g.Variant.Name()),
		zap.Int("players", len(g.Players)),
		zap.Int("round", g.Round),
		zap.Bool("resumed", start.Resume))
	h.sendLobbyUpdate()
	h.publishViews(g)

	h.mu.Lock()
	h.running = true
	h.mu.Unlock()
	go h.runGame(g)
}

// seatBots fills the lobby with bots, then starts it.
func (h *Hub) seatBots(start protocol.StartGameMsg) error {
	if !h.lobby.CanStart() {
		return lobby.ErrNotReady
	}
	level := start.BotLevel
	if level == "" {
		level = string(bot.LevelGreedy)
	}
	if _, err := bot.New(bot.Level(level), 1); err != nil {
		return err
	}
	for i := h.lobby.Seats(start.Bots); i > 0; i-- {
		if _, err := h.lobby.AddBot(level); err != nil {
			return err
		}
	}
	return h.lobby.Start()
}

func (h *Hub) newGame(start protocol.StartGameMsg) (*engine.Game, error) {
	variant := h.opts.Variant
	if start.Variant != "" {
		v, err := engine.LookupVariant(start.Variant)
		if err != nil {
			return nil, err
		}
		variant = v
	}
	if err := h.seatBots(start); err != nil {
		return nil, err
	}

	var players []*engine.Player
	for _, lp := range h.lobby.GetPlayers() {
		kind := HumanKind
		if lp.Bot != "" {
			kind = bot.KindPrefix + lp.Bot
		}
		c, err := h.controllerFor(kind, lp.ID)
		if err != nil {
			return nil, err
		}
		players = append(players, engine.NewPlayer(lp.ID, lp.Name, c))
	}

	var g *engine.Game
	cfg := h.gameConfig(&g)
	cfg.Variant = variant
	var err error
	g, err = engine.NewGame(players, cfg, trophies.NewRegistry())
	return g, err
}

func (h *Hub) resumeGame() (*engine.Game, error) {
	snap, err := h.opts.Store.Load(h.ctx, h.gameID)
	if err != nil {
		return nil, err
	}
	for _, ps := range snap.Players {
		if bot.IsBot(ps.Controller) {
			level := strings.TrimPrefix(ps.Controller, bot.KindPrefix)
			if err := h.lobby.SeatBot(ps.ID, ps.Name, level); err != nil {
				return nil, err
			}
			continue
		}
		if !h.lobby.Has(ps.ID) {
			return nil, fmt.Errorf("player %s (%s) has not rejoined", ps.Name, ps.ID)
		}
	}
	if !h.lobby.CanStart() {
		return nil, lobby.ErrNotReady
	}
	if err := h.lobby.Start(); err != nil {
		return nil, err
	}

	var g *engine.Game
	g, err = engine.Restore(snap, h.gameConfig(&g), trophies.NewRegistry(), h.controllerFor)
	return g, err
}

// gameConfig builds the engine config. The listener reads *g, which the
// caller sets once the game exists.
func (h *Hub) gameConfig(g **engine.Game) engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.Variant = h.opts.Variant
	cfg.Extension = h.opts.Extension
	if h.opts.Extension {
		cfg.Cards = nil
	}
	cfg.Listener = func(e engine.Event) {
		h.onEvent(*g, e)
	}
	return cfg
}

// controllerFor seats a controller of the given kind. It also serves as the
// factory when a snapshot is restored.
func (h *Hub) controllerFor(kind, playerID string) (engine.Controller, error) {
	if bot.IsBot(kind) {
		return bot.Factory(0)(kind, playerID)
	}
	if kind != HumanKind {
		return nil, fmt.Errorf("unknown controller kind %q for %s", kind, playerID)
	}
	fallback, err := bot.New(bot.LevelGreedy, 0)
	if err != nil {
		return nil, err
	}
	rc := NewRemoteController(playerID, h, fallback, h.log)
	h.mu.Lock()
	h.remotes[playerID] = rc
	h.mu.Unlock()
	return engine.WithTimeout(rc, h.opts.PromptTimeout), nil
}

func (h *Hub) handleChoose(msg IncomingMessage) {
	var choose protocol.ChooseMsg
	if err := msg.Envelope.Decode(&choose); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.mu.Lock()
	rc := h.remotes[msg.Client.PlayerID]
	h.mu.Unlock()
	if rc == nil {
		h.sendError(msg.Client, "you have no seat in this game")
		return
	}
	if err := rc.Deliver(choose.PromptID, choose.Choice); err != nil {
		h.sendError(msg.Client, err.Error())
	}
}

// runGame plays on its own goroutine, saving a snapshot after every round.
func (h *Hub) runGame(g *engine.Game) {
	defer func() {
		h.mu.Lock()
		h.running = false
		h.mu.Unlock()
	}()

	for !g.Over() {
		if err := g.PlayRound(h.ctx); err != nil {
			h.log.Error("round failed", zap.Int("round", g.Round), zap.Error(err))
			h.broadcastAll(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: err.Error()}))
			return
		}
		h.saveSnapshot(g)
	}

	res, err := g.Finish()
	if err != nil {
		h.log.Error("finish failed", zap.Error(err))
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: err.Error()}))
		return
	}
	h.log.Info("game over", zap.String("winner", res.Winner), zap.Int("rounds", g.Round))
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgGameOver, res))
	h.publishViews(g)
	if err := h.opts.Store.Delete(h.ctx, h.gameID); err != nil {
		h.log.Warn("delete snapshot", zap.Error(err))
	}
}

func (h *Hub) saveSnapshot(g *engine.Game) {
	snap, err := g.Snapshot()
	if err != nil {
		h.log.Warn("snapshot", zap.Int("round", g.Round), zap.Error(err))
		return
	}
	if err := h.opts.Store.Save(h.ctx, h.gameID, snap); err != nil {
		h.log.Warn("save snapshot", zap.Int("round", g.Round), zap.Error(err))
	}
}

// onEvent runs on the game goroutine.
func (h *Hub) onEvent(g *engine.Game, e engine.Event) {
	h.log.Debug("event", zap.String("type", string(e.Type)), zap.String("player_id", e.Player))
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, e))
	if g != nil {
		h.publishViews(g)
	}
}

// publishViews renders the game for every seat and pushes the views to the
// connected clients. Only the goroutine driving g may call it.
func (h *Hub) publishViews(g *engine.Game) {
	public := protocol.MustEnvelope(protocol.MsgGameState, g.PublicView())
	private := make(map[string]protocol.Envelope, len(g.Players))
	for _, p := range g.Players {
		private[p.ID] = protocol.MustEnvelope(protocol.MsgPlayerState, g.ViewFor(p.ID))
	}

	h.mu.Lock()
	h.public = &public
	h.private = private
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.sendStateToClient(c)
	}
}

// sendStateToClient sends the latest cached view, plus any prompt the
// player still owes an answer to.
func (h *Hub) sendStateToClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok || h.public == nil {
		return
	}
	env, ok := h.private[client.PlayerID]
	if client.Type == ClientTable || !ok {
		env = *h.public
	}
	h.deliver(client, env)

	if rc := h.remotes[client.PlayerID]; rc != nil && client.Seated(client.PlayerID) {
		if p, ok := rc.Pending(); ok {
			h.deliver(client, p)
		}
	}
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready, Bot: p.Bot}
	}
	env := protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:  h.gameID,
		Players: lps,
		Started: h.lobby.IsStarted(),
	})
	h.broadcastAll(env)
}

// SendTo delivers env to every player connection of playerID.
func (h *Hub) SendTo(playerID string, env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if client.Seated(playerID) {
			h.deliver(client, env)
		}
	}
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.deliver(client, env)
	}
}

// deliver queues env on a registered client; h.mu must be held.
func (h *Hub) deliver(client *Client, env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error("marshal envelope", zap.String("type", env.Type), zap.Error(err))
		return
	}
	select {
	case client.send <- data:
	default:
		h.log.Warn("client buffer full, dropping message",
			zap.String("player_id", client.PlayerID), zap.String("type", env.Type))
	}
}

func (h *Hub) sendError(client *Client, message string) {
	env := protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message})
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		h.deliver(client, env)
	}
}
