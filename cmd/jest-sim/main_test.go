package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jest/internal/bot"
)

func TestSimulate(t *testing.T) {
	for _, o := range []options{
		{games: 10, players: 3, variant: "standard", seed: 1, levels: []bot.Level{bot.LevelGreedy, bot.LevelRandom}},
		{games: 10, players: 4, variant: "quick", seed: 7, extension: true, levels: []bot.Level{bot.LevelRandom}},
	} {
		wins, err := simulate(context.Background(), o, zap.NewNop())
		require.NoError(t, err)
		total := 0
		for _, w := range wins {
			total += w
		}
		assert.Equal(t, o.games, total)
	}
}

func TestSimulateErrors(t *testing.T) {
	_, err := simulate(context.Background(), options{games: 1, players: 3, variant: "nope", levels: []bot.Level{bot.LevelRandom}}, zap.NewNop())
	assert.Error(t, err)
	_, err = simulate(context.Background(), options{games: 1, players: 3, levels: []bot.Level{"smart"}}, zap.NewNop())
	assert.ErrorIs(t, err, bot.ErrUnknownLevel)
	_, err = simulate(context.Background(), options{games: 1, players: 5, levels: []bot.Level{bot.LevelRandom}}, zap.NewNop())
	assert.Error(t, err)
}
