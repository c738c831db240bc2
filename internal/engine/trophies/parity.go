package trophies

import "jest/internal/engine"

// EvenValues (EVEN_VALUES): most suited cards with an even value.
type EvenValues struct{}

func (EvenValues) Kind() engine.EffectKind { return engine.EffectEvenValues }

func (EvenValues) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	return mostMatching(players, func(v int) bool { return v%2 == 0 })
}

// OddValues (ODD_VALUES): most suited cards with an odd value.
type OddValues struct{}

func (OddValues) Kind() engine.EffectKind { return engine.EffectOddValues }

func (OddValues) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	return mostMatching(players, func(v int) bool { return v%2 == 1 })
}

func mostMatching(players []*engine.Player, match func(int) bool) *engine.Player {
	var winner *engine.Player
	best := 0
	for _, p := range players {
		n := 0
		for _, v := range suitedValues(p) {
			if match(v) {
				n++
			}
		}
		if n > best {
			best, winner = n, p
		}
	}
	return winner
}
