// Package trophies holds one resolver per trophy effect kind.
package trophies

import "jest/internal/engine"

// NewRegistry returns a registry holding every resolver in this package.
func NewRegistry() *engine.Registry {
	r := engine.NewRegistry()
	r.Register(Highest{})
	r.Register(Lowest{})
	r.Register(Majority{})
	r.Register(Joker{})
	r.Register(BestJest{})
	r.Register(BestJestWithoutJoker{})
	r.Register(MostCards{})
	r.Register(LeastCards{})
	r.Register(EvenValues{})
	r.Register(OddValues{})
	r.Register(NoDuplicates{})
	return r
}

// suitedValues returns the values of the suited cards in a jest, in jest order.
func suitedValues(p *engine.Player) []int {
	var out []int
	for _, c := range p.Jest {
		if _, v, ok := c.Suited(); ok {
			out = append(out, v)
		}
	}
	return out
}
