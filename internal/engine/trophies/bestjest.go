package trophies

import "jest/internal/engine"

// BestJest (BEST_JEST): the highest raw score. Scores are compared with >=,
// so the last of several tied players wins.
type BestJest struct{}

func (BestJest) Kind() engine.EffectKind { return engine.EffectBestJest }

func (BestJest) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	return bestJest(players, false)
}

// BestJestWithoutJoker (BEST_JEST_WITHOUT_JOKER): as BestJest, ignoring the
// joker holder.
type BestJestWithoutJoker struct{}

func (BestJestWithoutJoker) Kind() engine.EffectKind { return engine.EffectBestJestWithoutJoker }

func (BestJestWithoutJoker) Resolve(_ engine.Effect, players []*engine.Player) *engine.Player {
	return bestJest(players, true)
}

func bestJest(players []*engine.Player, skipJoker bool) *engine.Player {
	var winner *engine.Player
	best := 0
	for _, p := range players {
		if skipJoker && p.HasJoker() {
			continue
		}
		s := engine.Score(p.Jest)
		if winner == nil || s >= best {
			best, winner = s, p
		}
	}
	return winner
}
