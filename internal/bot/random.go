package bot

import (
	"context"
	"math/rand/v2"

	"jest/internal/engine"
)

// Random answers every prompt uniformly at random.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed>>1))}
}

func (r *Random) Kind() string { return KindPrefix + string(LevelRandom) }

func (r *Random) ChooseHidden(ctx context.Context, _, _ *engine.Card) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return 1 + r.rng.IntN(2), nil
}

func (r *Random) ChoosePick(ctx context.Context, candidates []*engine.Card, _ []*engine.Player) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return 1 + r.rng.IntN(len(candidates)), nil
}
