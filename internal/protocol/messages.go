package protocol

import "jest/internal/engine"

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"
	MsgPlayerState = "player_state"
	MsgPrompt      = "prompt"
	MsgGameOver    = "game_over"
	MsgError       = "error"
	MsgEvent       = "event"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	MsgChoose    = "choose"
)

// Prompt kinds.
const (
	PromptHide = "hide"
	PromptPick = "pick"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID  string        `json:"game_id"`
	Players []LobbyPlayer `json:"players"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
	Bot   string `json:"bot,omitempty"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// StartGameMsg starts the game, filling empty seats with bots.
type StartGameMsg struct {
	Bots     int    `json:"bots,omitempty"`      // seats to fill; at least enough for 3 players
	BotLevel string `json:"bot_level,omitempty"` // "random" or "greedy"
	Variant  string `json:"variant,omitempty"`
	Resume   bool   `json:"resume,omitempty"` // continue from the stored snapshot
}

// PromptMsg asks one player for a decision. Options are shown in the order
// the answer indexes them, starting at 1.
type PromptMsg struct {
	ID      string             `json:"id"`
	Kind    string             `json:"kind"`
	Options []*engine.CardView `json:"options"`
	Owners  []string           `json:"owners,omitempty"` // owner of each option, for picks
	Min     int                `json:"min"`
	Max     int                `json:"max"`
}

// ChooseMsg answers a prompt.
type ChooseMsg struct {
	PromptID string `json:"prompt_id"`
	Choice   int    `json:"choice"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
