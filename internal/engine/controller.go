package engine

import (
	"context"
	"time"
)

// Controller is the decision provider seated for a player: a human behind a
// transport or a bot. Calls block until the choice is made or ctx is done.
type Controller interface {
	// Kind names the controller so snapshots can recreate it.
	Kind() string
	// ChooseHidden returns 1 to hide a (b visible) or 2 to hide b (a visible).
	ChooseHidden(ctx context.Context, a, b *Card) (int, error)
	// ChoosePick returns a 1-based index into candidates. owners[i] holds candidates[i].
	ChoosePick(ctx context.Context, candidates []*Card, owners []*Player) (int, error)
}

// ControllerFactory recreates a controller from its kind when restoring a snapshot.
type ControllerFactory func(kind string, playerID string) (Controller, error)

type timeoutController struct {
	Controller
	d time.Duration
}

// WithTimeout bounds every call to c by d. A non-positive d returns c unchanged.
func WithTimeout(c Controller, d time.Duration) Controller {
	if d <= 0 {
		return c
	}
	return &timeoutController{Controller: c, d: d}
}

func (t *timeoutController) ChooseHidden(ctx context.Context, a, b *Card) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.Controller.ChooseHidden(ctx, a, b)
}

func (t *timeoutController) ChoosePick(ctx context.Context, candidates []*Card, owners []*Player) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.Controller.ChoosePick(ctx, candidates, owners)
}
