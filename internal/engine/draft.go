package engine

import (
	"context"
	"fmt"
)

// draft runs turns until no player holds a full offer.
func (g *Game) draft(ctx context.Context) error {
	if !g.anyFullOffer() {
		return nil
	}
	current := g.startingPlayer()
	if current == nil {
		return fmt.Errorf("%w: %w: round %d", ErrStateViolation, ErrNoStartingPlayer, g.Round)
	}

	// Every turn is taken by a player who has not drafted yet, so a round
	// has at most one turn per player.
	for turns := 0; current != nil && turns < len(g.Players); turns++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		owner, err := g.turn(ctx, current)
		if err != nil {
			return err
		}
		if !g.anyFullOffer() {
			break
		}
		if !owner.HasDrafted(g.Round) {
			current = owner
		} else {
			current = g.startingPlayer()
		}
	}
	g.CurrentPlayer = ""
	return nil
}

// turn lets p draft one card and returns the card's previous owner.
func (g *Game) turn(ctx context.Context, p *Player) (*Player, error) {
	g.CurrentPlayer = p.ID
	g.setPhase(PhasePlayerTurn)
	cards, owners := g.Candidates(p)
	g.emit(Event{Type: EventTurnStart, Player: p.ID, Data: map[string]interface{}{
		"round": g.Round, "candidates": len(cards),
	}})
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %s has nothing to draft", ErrStateViolation, p.ID)
	}

	choice, err := g.prompt(p, len(cards), func() (int, error) {
		return p.controller.ChoosePick(ctx, cards, owners)
	})
	if err != nil {
		return nil, err
	}

	card, owner := cards[choice-1], owners[choice-1]
	wasVisible := card.Visible
	if !owner.take(card) {
		return nil, fmt.Errorf("%w: %s not in %s's offer", ErrStateViolation, card, owner.ID)
	}
	card.Visible = false
	p.Jest = append(p.Jest, card)

	data := map[string]interface{}{"from": owner.ID, "visible": wasVisible}
	if wasVisible {
		data["card"] = card.String()
	}
	g.emit(Event{Type: EventCardPicked, Player: p.ID, Data: data})
	return owner, nil
}

// Candidates lists the cards p may draft, in prompt order: visible then
// hidden for every other player with a full offer, or p's own offer when no
// opponent qualifies. owners[i] holds cards[i].
func (g *Game) Candidates(p *Player) (cards []*Card, owners []*Player) {
	for _, o := range g.Players {
		if o == p || !o.Offer.Full() {
			continue
		}
		cards = append(cards, o.Offer.Visible, o.Offer.Hidden)
		owners = append(owners, o, o)
	}
	if len(cards) > 0 {
		return cards, owners
	}
	if p.Offer.Visible != nil {
		cards = append(cards, p.Offer.Visible)
		owners = append(owners, p)
	}
	if p.Offer.Hidden != nil {
		cards = append(cards, p.Offer.Hidden)
		owners = append(owners, p)
	}
	return cards, owners
}

// startingPlayer returns the undrafted player with the strongest visible
// card. A visible joker never opens while any suited card is showing; it
// only opens when the last undrafted players show nothing else.
func (g *Game) startingPlayer() *Player {
	var best, jokerHolder *Player
	var bestCard *Card
	for _, p := range g.Players {
		if c := p.eligibleStart(g.Round); c != nil {
			if c.beats(bestCard) {
				best, bestCard = p, c
			}
			continue
		}
		if jokerHolder == nil && !p.HasDrafted(g.Round) && p.Offer.Visible.IsJoker() {
			jokerHolder = p
		}
	}
	if best != nil {
		return best
	}
	return jokerHolder
}

func (g *Game) anyFullOffer() bool {
	for _, p := range g.Players {
		if p.Offer.Full() {
			return true
		}
	}
	return false
}

// prompt asks a controller for a choice in [1, max], re-asking up to
// Config.MaxPrompts times when the answer is out of range.
func (g *Game) prompt(p *Player, max int, ask func() (int, error)) (int, error) {
	for attempt := 1; attempt <= g.Config.MaxPrompts; attempt++ {
		choice, err := ask()
		if err != nil {
			return 0, fmt.Errorf("player %s: %w", p.ID, err)
		}
		if choice >= 1 && choice <= max {
			return choice, nil
		}
		g.emit(Event{Type: EventInvalidChoice, Player: p.ID, Data: map[string]interface{}{
			"choice": choice, "min": 1, "max": max, "attempt": attempt,
		}})
	}
	return 0, fmt.Errorf("%w: player %s, valid range [1,%d], %d attempts",
		ErrContractViolation, p.ID, max, g.Config.MaxPrompts)
}
