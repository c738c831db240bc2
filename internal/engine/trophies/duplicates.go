package trophies

import "jest/internal/engine"

// NoDuplicates (NO_DUPLICATES): the first player whose suited cards all have
// distinct values.
type NoDuplicates struct{}

func (NoDuplicates) Kind() engine.EffectKind { return engine.EffectNoDuplicates }

func (NoDuplicates) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	for _, p := range players {
		seen := map[int]bool{}
		unique := true
		for _, v := range suitedValues(p) {
			if seen[v] {
				unique = false
				break
			}
			seen[v] = true
		}
		if unique {
			return p
		}
	}
	return nil
}
