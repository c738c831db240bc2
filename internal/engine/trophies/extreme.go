package trophies

import (
	"math"

	"jest/internal/engine"
)

// Highest (HIGHEST suit): the holder of the highest card of the suit.
// Ties go to the card found first.
type Highest struct{}

func (Highest) Kind() engine.EffectKind { return engine.EffectHighest }

func (Highest) Resolve(e engine.Effect, players []*engine.Player) *engine.Player {
	return extreme(e.Suit, players, func(v, best int) bool { return v > best }, math.MinInt)
}

// Lowest (LOWEST suit): the holder of the lowest card of the suit.
type Lowest struct{}

func (Lowest) Kind() engine.EffectKind { return engine.EffectLowest }

func (Lowest) Resolve(e engine.Effect, players []*engine.Player) *engine.Player {
	return extreme(e.Suit, players, func(v, best int) bool { return v < best }, math.MaxInt)
}

func extreme(suit engine.Suit, players []*engine.Player, better func(v, best int) bool, start int) *engine.Player {
	var winner *engine.Player
	best := start
	for _, p := range players {
		for _, c := range p.Jest {
			s, v, ok := c.Suited()
			if !ok || s != suit {
				continue
			}
			if better(v, best) {
				best, winner = v, p
			}
		}
	}
	return winner
}
