package trophies

import "jest/internal/engine"

// Joker (JOKER): whoever holds the joker.
type Joker struct{}

func (Joker) Kind() engine.EffectKind { return engine.EffectJoker }

func (Joker) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	for _, p := range players {
		if p.HasJoker() {
			return p
		}
	}
	return nil
}
