package trophies

import "jest/internal/engine"

// Majority (MAJORITY value): the player holding the most cards of the value.
// The first player to reach a count keeps it on ties.
type Majority struct{}

func (Majority) Kind() engine.EffectKind { return engine.EffectMajority }

func (Majority) Resolve(e engine.Effect, players []*engine.Player) *engine.Player {
	var winner *engine.Player
	best := 0
	for _, p := range players {
		n := 0
		for _, v := range suitedValues(p) {
			if v == e.Value {
				n++
			}
		}
		if n > best {
			best, winner = n, p
		}
	}
	return winner
}
