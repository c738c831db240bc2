package engine_test

import (
	"context"
	"fmt"
	"testing"

	"jest/internal/engine"
	"jest/internal/engine/trophies"
)

// firstChoice always answers 1.
type firstChoice struct{}

func (firstChoice) Kind() string { return "test:first" }

func (firstChoice) ChooseHidden(context.Context, *engine.Card, *engine.Card) (int, error) {
	return 1, nil
}

func (firstChoice) ChoosePick(context.Context, []*engine.Card, []*engine.Player) (int, error) {
	return 1, nil
}

// lastChoice always picks the last candidate and hides the second card.
type lastChoice struct{}

func (lastChoice) Kind() string { return "test:last" }

func (lastChoice) ChooseHidden(context.Context, *engine.Card, *engine.Card) (int, error) {
	return 2, nil
}

func (lastChoice) ChoosePick(_ context.Context, c []*engine.Card, _ []*engine.Player) (int, error) {
	return len(c), nil
}

// fixedChoice answers every prompt with the same number, valid or not.
type fixedChoice struct {
	n     int
	calls int
}

func (f *fixedChoice) Kind() string { return "test:fixed" }

func (f *fixedChoice) ChooseHidden(context.Context, *engine.Card, *engine.Card) (int, error) {
	f.calls++
	return f.n, nil
}

func (f *fixedChoice) ChoosePick(context.Context, []*engine.Card, []*engine.Player) (int, error) {
	f.calls++
	return f.n, nil
}

func testFactory(kind, _ string) (engine.Controller, error) {
	switch kind {
	case "test:first":
		return firstChoice{}, nil
	case "test:last":
		return lastChoice{}, nil
	}
	return nil, fmt.Errorf("unknown controller %q", kind)
}

func newPlayers(n int, c engine.Controller) []*engine.Player {
	var players []*engine.Player
	for i := 0; i < n; i++ {
		players = append(players, engine.NewPlayer(
			string(rune('A'+i)),
			"Player"+string(rune('1'+i)),
			c,
		))
	}
	return players
}

func newTestGame(t *testing.T, n int, mutate func(*engine.GameConfig)) *engine.Game {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Seed = 42
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := engine.NewGame(newPlayers(n, firstChoice{}), cfg, trophies.NewRegistry())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func suited(t *testing.T, id, value int, suit engine.Suit) *engine.Card {
	t.Helper()
	c, err := engine.NewSuitCard(id, value, suit, engine.Effect{Kind: engine.EffectJoker})
	if err != nil {
		t.Fatalf("NewSuitCard: %v", err)
	}
	return c
}

func joker(t *testing.T) *engine.Card {
	t.Helper()
	c, err := engine.NewJoker(99, engine.Effect{Kind: engine.EffectBestJest})
	if err != nil {
		t.Fatalf("NewJoker: %v", err)
	}
	return c
}

// jest builds cards from short labels such as "S3", "H4" or "J".
func jest(t *testing.T, labels ...string) []*engine.Card {
	t.Helper()
	suits := map[byte]engine.Suit{
		'S': engine.SuitSpade, 'C': engine.SuitClub,
		'D': engine.SuitDiamond, 'H': engine.SuitHeart,
	}
	var out []*engine.Card
	for i, l := range labels {
		if l == "J" {
			out = append(out, joker(t))
			continue
		}
		s, ok := suits[l[0]]
		if !ok || len(l) != 2 {
			t.Fatalf("bad label %q", l)
		}
		out = append(out, suited(t, i+1, int(l[1]-'0'), s))
	}
	return out
}
