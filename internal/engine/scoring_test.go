package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jest/internal/engine"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		jest []string
		want int
	}{
		{"empty", nil, 0},
		{"single spade", []string{"S3"}, 7},
		{"black pair", []string{"S3", "C3"}, 16},
		{"black pair and diamond", []string{"S3", "C3", "D2"}, 18},
		{"diamonds subtract", []string{"D2", "D3"}, -5},
		{"hearts ignored without joker", []string{"H1", "H2"}, 0},
		{"joker without hearts", []string{"J"}, 4},
		{"joker with one heart", []string{"J", "H2"}, 2},
		{"joker with three hearts", []string{"J", "H1", "H2", "H3"}, -6},
		{"joker with four hearts", []string{"J", "H1", "H2", "H3", "H4"}, 10},
		{"duplicate spades pair twice", []string{"S2", "S2", "C2"}, 14},
		{"no pair across values", []string{"S1", "S2", "C3", "C4"}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Score(jest(t, tt.jest...)))
		})
	}
}

func TestBreakdown(t *testing.T) {
	b := engine.Breakdown(jest(t, "S3", "C3", "D2", "J", "H4"))
	assert.Equal(t, engine.ScoreBreakdown{
		Black:          6,
		Diamonds:       2,
		Hearts:         -4,
		SingletonBonus: 16,
		PairBonus:      2,
		Raw:            18,
	}, b)
}

func TestScoreOrderIndependent(t *testing.T) {
	cards := jest(t, "S1", "C1", "D4", "J", "H2", "H3", "S4")
	want := engine.Score(cards)
	for i := range cards {
		rotated := append(append([]*engine.Card{}, cards[i:]...), cards[:i]...)
		assert.Equal(t, want, engine.Score(rotated), "rotation %d", i)
	}
	reversed := make([]*engine.Card, len(cards))
	for i, c := range cards {
		reversed[len(cards)-1-i] = c
	}
	assert.Equal(t, want, engine.Score(reversed))
}

func TestScoreDoesNotMutate(t *testing.T) {
	cards := jest(t, "S1", "H2", "J")
	before := make([]engine.Card, len(cards))
	for i, c := range cards {
		before[i] = *c
	}
	engine.Score(cards)
	for i, c := range cards {
		assert.Equal(t, before[i], *c)
	}
}

func TestHeartsNeedJoker(t *testing.T) {
	// Adding hearts to a joker-less jest only ever changes the singleton bonus.
	base := jest(t, "S2", "C4")
	withHearts := append(append([]*engine.Card{}, base...), jest(t, "H3", "H4")...)
	assert.Equal(t, engine.Score(base), engine.Score(withHearts))
}
