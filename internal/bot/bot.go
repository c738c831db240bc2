// Package bot provides computer-controlled seats.
package bot

import (
	"errors"
	"fmt"
	"strings"

	"jest/internal/engine"
)

// Level selects a bot strategy.
type Level string

const (
	LevelRandom Level = "random"
	LevelGreedy Level = "greedy"
)

// KindPrefix starts the controller kind of every bot.
const KindPrefix = "bot:"

var ErrUnknownLevel = errors.New("unknown bot level")

// New creates a bot controller. seed 0 picks a random seed.
func New(level Level, seed uint64) (engine.Controller, error) {
	switch level {
	case LevelRandom:
		return NewRandom(seed), nil
	case LevelGreedy:
		return &Greedy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// IsBot reports whether a controller kind names a bot.
func IsBot(kind string) bool {
	return strings.HasPrefix(kind, KindPrefix)
}

// Factory recreates bots from their controller kind when a game is restored.
func Factory(seed uint64) engine.ControllerFactory {
	return func(kind, playerID string) (engine.Controller, error) {
		if !IsBot(kind) {
			return nil, fmt.Errorf("%w: %q is not a bot", ErrUnknownLevel, kind)
		}
		return New(Level(strings.TrimPrefix(kind, KindPrefix)), seed)
	}
}
