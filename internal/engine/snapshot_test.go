package engine_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jest/internal/engine"
	"jest/internal/engine/trophies"
)

func roundTrip(t *testing.T, s *engine.Snapshot) *engine.Snapshot {
	t.Helper()
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var out engine.Snapshot
	require.NoError(t, json.Unmarshal(raw, &out))
	return &out
}

func TestSnapshotRestore(t *testing.T) {
	g := newTestGame(t, 4, func(c *engine.GameConfig) { c.Variant = engine.Quick{} })
	require.NoError(t, g.PlayRound(context.Background()))

	snap, err := g.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, "RoundComplete", snap.Phase)
	assert.Equal(t, "quick", snap.Variant)

	restored, err := engine.Restore(roundTrip(t, snap), engine.DefaultConfig(), trophies.NewRegistry(), testFactory)
	require.NoError(t, err)
	assert.Equal(t, g.CardCount(), restored.CardCount())
	assert.Equal(t, g.Round, restored.Round)
	assert.Equal(t, g.Phase, restored.Phase)
	assert.Equal(t, "quick", restored.Variant.Name())
	for i, p := range restored.Players {
		orig := g.Players[i]
		assert.Equal(t, orig.ID, p.ID)
		assert.Equal(t, "test:first", p.ControllerKind())
		require.Len(t, p.Jest, len(orig.Jest))
		for k := range p.Jest {
			assert.Equal(t, *orig.Jest[k], *p.Jest[k])
		}
		assert.Equal(t, orig.Offer.Count(), p.Offer.Count())
	}

	res, err := restored.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17, restored.CardCount())
	assert.Len(t, res.Scores, 4)
}

func TestSnapshotResumeAwaitingStart(t *testing.T) {
	// A snapshot taken right after the deal resumes at the draft.
	var g *engine.Game
	var snap *engine.Snapshot
	cfg := engine.DefaultConfig()
	cfg.Seed = 9
	cfg.Listener = func(e engine.Event) {
		if e.Type == engine.EventPhaseChange && g.Phase == engine.PhaseAwaitingStart && snap == nil {
			var err error
			snap, err = g.Snapshot()
			require.NoError(t, err)
		}
	}
	var err error
	g, err = engine.NewGame(newPlayers(3, firstChoice{}), cfg, trophies.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, g.PlayRound(context.Background()))
	require.NotNil(t, snap)
	assert.Equal(t, "AwaitingStart", snap.Phase)

	restored, err := engine.Restore(roundTrip(t, snap), engine.DefaultConfig(), trophies.NewRegistry(), testFactory)
	require.NoError(t, err)
	for _, p := range restored.Players {
		assert.True(t, p.Offer.Full())
		assert.True(t, p.Offer.Visible.Visible)
		assert.False(t, p.Offer.Hidden.Visible)
	}
	require.NoError(t, restored.PlayRound(context.Background()))
	assert.Equal(t, 1, restored.Round)
	for _, p := range restored.Players {
		assert.Len(t, p.Jest, 1)
	}
}

func TestSnapshotWrongPhase(t *testing.T) {
	var g *engine.Game
	var snapErr error
	cfg := engine.DefaultConfig()
	cfg.Listener = func(e engine.Event) {
		if e.Type == engine.EventTurnStart && snapErr == nil {
			_, snapErr = g.Snapshot()
		}
	}
	var err error
	g, err = engine.NewGame(newPlayers(3, firstChoice{}), cfg, trophies.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, g.PlayRound(context.Background()))
	assert.ErrorIs(t, snapErr, engine.ErrWrongPhase)
}

func TestRestoreErrors(t *testing.T) {
	g := newTestGame(t, 3, nil)
	require.NoError(t, g.PlayRound(context.Background()))
	snap, err := g.Snapshot()
	require.NoError(t, err)
	reg := trophies.NewRegistry()

	bad := roundTrip(t, snap)
	bad.Variant = "nope"
	_, err = engine.Restore(bad, engine.DefaultConfig(), reg, testFactory)
	assert.ErrorIs(t, err, engine.ErrUnknownVariant)

	bad = roundTrip(t, snap)
	bad.Phase = "PlayerTurn"
	_, err = engine.Restore(bad, engine.DefaultConfig(), reg, testFactory)
	assert.ErrorIs(t, err, engine.ErrWrongPhase)

	bad = roundTrip(t, snap)
	bad.Pool = append(bad.Pool, bad.Players[0].Jest[0])
	_, err = engine.Restore(bad, engine.DefaultConfig(), reg, testFactory)
	assert.ErrorIs(t, err, engine.ErrInvalidCard)

	bad = roundTrip(t, snap)
	bad.Trophies[0].Effect = engine.Effect{Kind: engine.EffectHighest}
	_, err = engine.Restore(bad, engine.DefaultConfig(), reg, testFactory)
	assert.ErrorIs(t, err, engine.ErrInvalidEffect)

	bad = roundTrip(t, snap)
	bad.Players = bad.Players[:2]
	_, err = engine.Restore(bad, engine.DefaultConfig(), reg, testFactory)
	assert.ErrorIs(t, err, engine.ErrPlayerCount)

	bad = roundTrip(t, snap)
	bad.Players[1].Controller = "human"
	_, err = engine.Restore(bad, engine.DefaultConfig(), reg, testFactory)
	assert.Error(t, err)
}
