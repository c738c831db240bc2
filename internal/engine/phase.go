package engine

// GamePhase represents the current phase of the round state machine.
type GamePhase int

const (
	PhaseSetup         GamePhase = iota // trophies reserved, nothing dealt
	PhaseAwaitingStart                  // offers dealt, no current player yet
	PhasePlayerTurn                     // current player drafting
	PhaseRoundComplete                  // round finished, next deal pending
	PhaseGameOver                       // trophies awarded, scores final
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:         "Setup",
	PhaseAwaitingStart: "AwaitingStart",
	PhasePlayerTurn:    "PlayerTurn",
	PhaseRoundComplete: "RoundComplete",
	PhaseGameOver:      "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// AtBoundary reports whether the phase sits between rounds, where a
// snapshot can be taken and restored.
func (p GamePhase) AtBoundary() bool {
	switch p {
	case PhaseSetup, PhaseAwaitingStart, PhaseRoundComplete:
		return true
	}
	return false
}
