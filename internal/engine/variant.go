package engine

import "fmt"

// Variant adjusts deal size and scoring without touching the state machine.
type Variant interface {
	// Name identifies the variant in snapshots and configuration.
	Name() string
	// CardsPerPlayer is the offer size dealt in the given round (1 or 2).
	CardsPerPlayer(round int) int
	// TransformScore maps a raw jest score to the final score.
	TransformScore(raw int) int
	// TrophyMultiplier is reported with results; the engine does not apply it.
	TrophyMultiplier() int
	// OnRoundStart is called before distribution.
	OnRoundStart(g *Game)
	// OnRoundEnd is called once the round is complete.
	OnRoundEnd(g *Game)
}

// Standard is the unmodified game.
type Standard struct{}

func (Standard) Name() string                 { return "standard" }
func (Standard) CardsPerPlayer(round int) int { return 2 }
func (Standard) TransformScore(raw int) int   { return raw }
func (Standard) TrophyMultiplier() int        { return 1 }
func (Standard) OnRoundStart(g *Game)         {}
func (Standard) OnRoundEnd(g *Game)           {}

// Quick deals a single card per player from round 3 on and scores at 1.5x.
type Quick struct{}

func (Quick) Name() string { return "quick" }

func (Quick) CardsPerPlayer(round int) int {
	if round > 2 {
		return 1
	}
	return 2
}

// TransformScore truncates toward zero.
func (Quick) TransformScore(raw int) int { return raw * 3 / 2 }
func (Quick) TrophyMultiplier() int      { return 1 }
func (Quick) OnRoundStart(g *Game)       {}
func (Quick) OnRoundEnd(g *Game)         {}

// HighStakes doubles every score and declares a 3x trophy weight.
type HighStakes struct{}

func (HighStakes) Name() string                 { return "high_stakes" }
func (HighStakes) CardsPerPlayer(round int) int { return 2 }
func (HighStakes) TransformScore(raw int) int   { return raw * 2 }
func (HighStakes) TrophyMultiplier() int        { return 3 }
func (HighStakes) OnRoundStart(g *Game)         {}
func (HighStakes) OnRoundEnd(g *Game)           {}

var variants = map[string]Variant{
	Standard{}.Name():   Standard{},
	Quick{}.Name():      Quick{},
	HighStakes{}.Name(): HighStakes{},
}

// LookupVariant returns the reference variant with the given name.
func LookupVariant(name string) (Variant, error) {
	if name == "" {
		return Standard{}, nil
	}
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// dealSize clamps the variant's deal size to what an offer can hold.
func dealSize(v Variant, round int) int {
	n := v.CardsPerPlayer(round)
	if n < 1 {
		return 1
	}
	if n > 2 {
		return 2
	}
	return n
}
