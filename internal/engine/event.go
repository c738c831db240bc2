package engine

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventRoundStart    EventType = "round_start"
	EventOfferDealt    EventType = "offer_dealt"
	EventTurnStart     EventType = "turn_start"
	EventCardPicked    EventType = "card_picked"
	EventInvalidChoice EventType = "invalid_choice"
	EventRoundEnd      EventType = "round_end"
	EventTrophyAwarded EventType = "trophy_awarded"
	EventGameOver      EventType = "game_over"
	EventPhaseChange   EventType = "phase_change"
)

// Event is emitted by the engine after state changes. Data never reveals a
// hidden card.
type Event struct {
	Type   EventType   `json:"type"`
	Player string      `json:"player,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Listener receives engine events synchronously, on the game's goroutine.
type Listener func(Event)

func (g *Game) emit(e Event) {
	if g.Config.Listener != nil {
		g.Config.Listener(e)
	}
}

func (g *Game) setPhase(p GamePhase) {
	if g.Phase == p {
		return
	}
	g.Phase = p
	g.emit(Event{Type: EventPhaseChange, Data: map[string]interface{}{
		"phase": p.String(), "round": g.Round,
	}})
}
