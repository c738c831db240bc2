// Command jest-sim plays headless games between bots and reports the wins
// per seat.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"jest/internal/bot"
	"jest/internal/engine"
	"jest/internal/engine/trophies"
	"jest/internal/logging"
)

type options struct {
	games     int
	players   int
	variant   string
	seed      uint64
	extension bool
	levels    []bot.Level
}

func main() {
	var o options
	var levels string
	flag.IntVar(&o.games, "games", 100, "number of games")
	flag.IntVar(&o.players, "players", 3, "seats per game (3 or 4)")
	flag.StringVar(&o.variant, "variant", "standard", "standard, quick or high_stakes")
	flag.Uint64Var(&o.seed, "seed", 1, "base seed; game i uses seed+i")
	flag.BoolVar(&o.extension, "extension", false, "play with the extension deck")
	flag.StringVar(&levels, "bots", "greedy,random", "bot levels, assigned to seats in rotation")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	for _, l := range strings.Split(levels, ",") {
		o.levels = append(o.levels, bot.Level(strings.TrimSpace(l)))
	}

	log, err := logging.New(*logLevel, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	wins, err := simulate(context.Background(), o, log)
	if err != nil {
		log.Fatal("simulation failed", zap.Error(err))
	}
	for i, w := range wins {
		fmt.Printf("seat %d (%s): %d wins (%.1f%%)\n",
			i+1, o.levels[i%len(o.levels)], w, 100*float64(w)/float64(o.games))
	}
}

// simulate plays o.games games and returns the wins per seat.
func simulate(ctx context.Context, o options, log *zap.Logger) ([]int, error) {
	variant, err := engine.LookupVariant(o.variant)
	if err != nil {
		return nil, err
	}
	wins := make([]int, o.players)
	for i := 0; i < o.games; i++ {
		seed := o.seed + uint64(i)
		players := make([]*engine.Player, o.players)
		for s := range players {
			c, err := bot.New(o.levels[s%len(o.levels)], seed*31+uint64(s))
			if err != nil {
				return nil, err
			}
			id := fmt.Sprintf("seat%d", s+1)
			players[s] = engine.NewPlayer(id, id, c)
		}

		cfg := engine.DefaultConfig()
		cfg.Variant = variant
		cfg.Seed = seed
		if o.extension {
			cfg.Cards = nil
			cfg.Extension = true
		}
		g, err := engine.NewGame(players, cfg, trophies.NewRegistry())
		if err != nil {
			return nil, err
		}
		res, err := g.Play(ctx)
		if err != nil {
			return nil, fmt.Errorf("game %d (seed %d): %w", i, seed, err)
		}
		for s, p := range players {
			if p.ID == res.Winner {
				wins[s]++
			}
		}
		log.Debug("game finished",
			zap.Int("game", i),
			zap.Uint64("seed", seed),
			zap.String("winner", res.Winner),
			zap.Int("rounds", g.Round))
	}
	return wins, nil
}
