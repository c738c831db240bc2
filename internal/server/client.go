package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"jest/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

// ClientType distinguishes the shared table screen from seated players.
type ClientType int

const (
	ClientTable ClientType = iota
	ClientSeat
)

// ParseClientType maps the ws "type" query value. Anything but "table" (or
// the older "tv") is a seat.
func ParseClientType(s string) ClientType {
	switch s {
	case "table", "tv":
		return ClientTable
	}
	return ClientSeat
}

func (t ClientType) String() string {
	if t == ClientTable {
		return "table"
	}
	return "seat"
}

// Client is one WebSocket connection to a hub.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	log      *zap.Logger
	PlayerID string
	Type     ClientType
}

func NewClient(hub *Hub, conn *websocket.Conn, playerID string, clientType ClientType) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		log:      hub.log.With(zap.String("player_id", playerID), zap.Stringer("client", clientType)),
		PlayerID: playerID,
		Type:     clientType,
	}
}

// Seated reports whether the connection belongs to playerID's seat.
func (c *Client) Seated(playerID string) bool {
	return c.Type == ClientSeat && c.PlayerID == playerID
}

// ReadPump decodes envelopes from the socket and hands them to the hub until
// the connection fails.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("ws read error", zap.Error(err))
			}
			return
		}
		var env protocol.Envelope
		if err := json.Unmarshal(data, &env); err != nil || env.Type == "" {
			c.log.Debug("dropping malformed message", zap.Int("bytes", len(data)), zap.Error(err))
			continue
		}
		c.hub.incoming <- IncomingMessage{Client: c, Envelope: env}
	}
}

// WritePump owns all writes to the socket: queued messages and keepalive
// pings. It exits when the hub closes send or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	write := func(kind int, data []byte) bool {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(kind, data); err != nil {
			c.log.Debug("ws write error", zap.Error(err))
			return false
		}
		return true
	}

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				write(websocket.CloseMessage, []byte{})
				return
			}
			if !write(websocket.TextMessage, data) {
				return
			}
		case <-ticker.C:
			if !write(websocket.PingMessage, nil) {
				return
			}
		}
	}
}

// IncomingMessage pairs a message with its source client.
type IncomingMessage struct {
	Client   *Client
	Envelope protocol.Envelope
}
