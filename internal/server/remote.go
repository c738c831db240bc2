package server

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jest/internal/engine"
	"jest/internal/protocol"
)

// HumanKind is the controller kind of a remote player.
const HumanKind = "human"

var ErrNoPrompt = errors.New("no such prompt")

// PromptSink delivers an envelope to every connection of a player.
type PromptSink interface {
	SendTo(playerID string, env protocol.Envelope)
}

type pendingPrompt struct {
	id    string
	env   protocol.Envelope
	reply chan int
}

// RemoteController seats a human behind a WebSocket. Each decision is sent
// as a prompt and the game blocks until the matching choose message arrives.
// When the call's deadline passes the fallback controller decides instead.
type RemoteController struct {
	playerID string
	sink     PromptSink
	fallback engine.Controller
	log      *zap.Logger

	mu      sync.Mutex
	pending *pendingPrompt
}

func NewRemoteController(playerID string, sink PromptSink, fallback engine.Controller, log *zap.Logger) *RemoteController {
	if log == nil {
		log = zap.NewNop()
	}
	return &RemoteController{playerID: playerID, sink: sink, fallback: fallback, log: log}
}

func (r *RemoteController) Kind() string { return HumanKind }

func (r *RemoteController) ChooseHidden(ctx context.Context, a, b *engine.Card) (int, error) {
	msg := protocol.PromptMsg{
		Kind:    protocol.PromptHide,
		Options: []*engine.CardView{engine.ViewCard(a, true), engine.ViewCard(b, true)},
		Min:     1,
		Max:     2,
	}
	return r.ask(ctx, msg, func(ctx context.Context) (int, error) {
		return r.fallback.ChooseHidden(ctx, a, b)
	})
}

func (r *RemoteController) ChoosePick(ctx context.Context, candidates []*engine.Card, owners []*engine.Player) (int, error) {
	msg := protocol.PromptMsg{
		Kind: protocol.PromptPick,
		Min:  1,
		Max:  len(candidates),
	}
	for i, c := range candidates {
		own := owners[i].ID == r.playerID
		msg.Options = append(msg.Options, engine.ViewCard(c, c.Visible || own))
		msg.Owners = append(msg.Owners, owners[i].ID)
	}
	return r.ask(ctx, msg, func(ctx context.Context) (int, error) {
		return r.fallback.ChoosePick(ctx, candidates, owners)
	})
}

func (r *RemoteController) ask(ctx context.Context, msg protocol.PromptMsg, fallback func(context.Context) (int, error)) (int, error) {
	msg.ID = uuid.NewString()
	p := &pendingPrompt{
		id:    msg.ID,
		env:   protocol.MustEnvelope(protocol.MsgPrompt, msg),
		reply: make(chan int, 1),
	}
	r.mu.Lock()
	r.pending = p
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		if r.pending == p {
			r.pending = nil
		}
		r.mu.Unlock()
	}()

	r.sink.SendTo(r.playerID, p.env)
	select {
	case n := <-p.reply:
		return n, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && r.fallback != nil {
			r.log.Info("prompt timed out, using fallback",
				zap.String("player_id", r.playerID), zap.String("prompt_id", msg.ID))
			return fallback(context.WithoutCancel(ctx))
		}
		return 0, ctx.Err()
	}
}

// Deliver answers the pending prompt. The engine validates the range.
func (r *RemoteController) Deliver(promptID string, choice int) error {
	r.mu.Lock()
	p := r.pending
	if p == nil || p.id != promptID {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNoPrompt, promptID)
	}
	r.pending = nil
	r.mu.Unlock()
	p.reply <- choice
	return nil
}

// Pending returns the prompt awaiting an answer, for resending after a reconnect.
func (r *RemoteController) Pending() (protocol.Envelope, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return protocol.Envelope{}, false
	}
	return r.pending.env, true
}
