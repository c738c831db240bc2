package trophies

import (
	"math"

	"jest/internal/engine"
)

// MostCards (MOST_CARDS): the largest jest; first found keeps ties.
type MostCards struct{}

func (MostCards) Kind() engine.EffectKind { return engine.EffectMostCards }

func (MostCards) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	var winner *engine.Player
	best := 0
	for _, p := range players {
		if n := len(p.Jest); n > best {
			best, winner = n, p
		}
	}
	return winner
}

// LeastCards (LEAST_CARDS): the smallest jest; first found keeps ties.
type LeastCards struct{}

func (LeastCards) Kind() engine.EffectKind { return engine.EffectLeastCards }

func (LeastCards) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	var winner *engine.Player
	best := math.MaxInt
	for _, p := range players {
		if n := len(p.Jest); n < best {
			best, winner = n, p
		}
	}
	return winner
}
