package bot

import (
	"context"

	"jest/internal/engine"
)

// Greedy keeps the cards it drafted and picks whichever visible card raises
// its score the most. Hidden cards are valued at zero.
type Greedy struct {
	drafted []*engine.Card
}

func (g *Greedy) Kind() string { return KindPrefix + string(LevelGreedy) }

// ChooseHidden hides the weaker card: the joker, or the lower value.
func (g *Greedy) ChooseHidden(ctx context.Context, a, b *engine.Card) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if worth(a) <= worth(b) {
		return 1, nil
	}
	return 2, nil
}

func (g *Greedy) ChoosePick(ctx context.Context, candidates []*engine.Card, _ []*engine.Player) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	base := engine.Score(g.drafted)
	bestVisible, firstHidden := -1, -1
	bestGain := 0
	for i, c := range candidates {
		if !c.Visible {
			if firstHidden < 0 {
				firstHidden = i
			}
			continue
		}
		gain := engine.Score(append(g.drafted[:len(g.drafted):len(g.drafted)], c)) - base
		if bestVisible < 0 || gain > bestGain {
			bestVisible, bestGain = i, gain
		}
	}

	choice := bestVisible
	if choice < 0 || (bestGain < 0 && firstHidden >= 0) {
		choice = firstHidden
	}
	if choice < 0 {
		return 1, nil
	}
	g.drafted = append(g.drafted, candidates[choice])
	return choice + 1, nil
}

func worth(c *engine.Card) int {
	if _, v, ok := c.Suited(); ok {
		return v
	}
	return 0
}
