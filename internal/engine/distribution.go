package engine

import (
	"context"
	"math/rand/v2"
)

// distribute builds the round pool and deals every player a fresh offer.
//
// Round 1 draws the whole deal from the deck. Later rounds draw one fresh card
// per player and add back every surviving offer card. Whatever the deal
// leaves in the round pool returns to the deck.
func (g *Game) distribute(ctx context.Context) error {
	size := dealSize(g.Variant, g.Round)

	var pool []*Card
	if g.Round == 1 {
		pool = g.Deck.Draw(size * len(g.Players))
	} else {
		pool = g.Deck.Draw(len(g.Players))
		for _, p := range g.Players {
			for _, c := range p.clearOffer() {
				c.Visible = false
				pool = append(pool, c)
			}
		}
	}

	hands, rest := deal(pool, len(g.Players), size, g.rng)
	g.Deck.Return(rest)

	for i, p := range g.Players {
		if err := g.placeOffer(ctx, p, hands[i]); err != nil {
			return err
		}
	}
	return nil
}

// deal draws up to size random cards from pool for each of n seats in order.
// Seats dealt after the pool runs dry get fewer cards or none.
func deal(pool []*Card, n, size int, rng *rand.Rand) (hands [][]*Card, rest []*Card) {
	pool = append([]*Card(nil), pool...)
	hands = make([][]*Card, n)
	for i := range hands {
		for k := 0; k < size && len(pool) > 0; k++ {
			hands[i] = append(hands[i], takeRandom(&pool, rng))
		}
	}
	return hands, pool
}

// placeOffer fills a player's offer. With two cards the controller chooses
// which one goes face down; a single card is always visible.
func (g *Game) placeOffer(ctx context.Context, p *Player, cards []*Card) error {
	p.Offer = Offer{}
	switch len(cards) {
	case 0:
		g.emit(Event{Type: EventOfferDealt, Player: p.ID, Data: map[string]interface{}{
			"cards": 0,
		}})
		return nil
	case 1:
		p.Offer.Visible = cards[0]
	default:
		a, b := cards[0], cards[1]
		choice, err := g.prompt(p, 2, func() (int, error) {
			return p.controller.ChooseHidden(ctx, a, b)
		})
		if err != nil {
			return err
		}
		if choice == 1 {
			p.Offer.Hidden, p.Offer.Visible = a, b
		} else {
			p.Offer.Hidden, p.Offer.Visible = b, a
		}
	}

	p.Offer.Visible.Visible = true
	if p.Offer.Hidden != nil {
		p.Offer.Hidden.Visible = false
	}
	g.emit(Event{Type: EventOfferDealt, Player: p.ID, Data: map[string]interface{}{
		"cards":   p.Offer.Count(),
		"visible": p.Offer.Visible.String(),
	}})
	return nil
}
