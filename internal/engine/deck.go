package engine

import "math/rand/v2"

// Deck is the pool of cards not yet dealt and not reserved as trophies.
type Deck struct {
	cards []*Card
	rng   *rand.Rand
}

// NewDeck creates a shuffled pool from the given cards.
func NewDeck(cards []*Card, rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]*Card, len(cards)), rng: rng}
	copy(d.cards, cards)
	d.Shuffle()
	return d
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes n random cards. Returns fewer if the pool is short.
func (d *Deck) Draw(n int) []*Card {
	drawn := make([]*Card, 0, n)
	for i := 0; i < n && len(d.cards) > 0; i++ {
		drawn = append(drawn, takeRandom(&d.cards, d.rng))
	}
	return drawn
}

// Return puts cards back into the pool.
func (d *Deck) Return(cards []*Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the pool contents.
func (d *Deck) Cards() []*Card {
	out := make([]*Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// takeRandom removes and returns one random card; the pool must not be empty.
func takeRandom(pool *[]*Card, rng *rand.Rand) *Card {
	cards := *pool
	i := rng.IntN(len(cards))
	c := cards[i]
	last := len(cards) - 1
	cards[i] = cards[last]
	cards[last] = nil
	*pool = cards[:last]
	return c
}

// newRand returns a PCG source seeded from seed, or from the runtime source when seed is 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
