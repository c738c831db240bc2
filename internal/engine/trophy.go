package engine

import "fmt"

// Resolver decides who wins a trophy carrying a given effect kind.
type Resolver interface {
	Kind() EffectKind
	// Resolve returns the winner, or nil when nobody qualifies. It must not
	// mutate the players.
	Resolve(effect Effect, players []*Player) *Player
}

// Registry maps effect kinds to their resolvers.
type Registry struct {
	resolvers map[EffectKind]Resolver
}

func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[EffectKind]Resolver)}
}

func (r *Registry) Register(res Resolver) {
	r.resolvers[res.Kind()] = res
}

func (r *Registry) Get(kind EffectKind) (Resolver, error) {
	res, ok := r.resolvers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingResolver, kind)
	}
	return res, nil
}

// Missing lists the effect kinds with no registered resolver.
func (r *Registry) Missing() []EffectKind {
	var out []EffectKind
	for _, k := range AllEffectKinds() {
		if _, ok := r.resolvers[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// Award records which player received a trophy.
type Award struct {
	Trophy   *Card  `json:"trophy"`
	PlayerID string `json:"player_id,omitempty"` // empty when not awarded
}

// Resolve runs the resolver for a trophy's effect.
func (r *Registry) Resolve(trophy *Card, players []*Player) (*Player, error) {
	res, err := r.Get(trophy.Effect.Kind)
	if err != nil {
		return nil, err
	}
	return res.Resolve(trophy.Effect, players), nil
}

// awardTrophies resolves trophies in reservation order; each winner takes
// the trophy into their jest before the next one is resolved. Trophies
// nobody qualifies for stay reserved.
func (g *Game) awardTrophies() ([]Award, error) {
	awards := make([]Award, 0, len(g.Trophies))
	var unawarded []*Card
	for _, t := range g.Trophies {
		winner, err := g.Effects.Resolve(t, g.Players)
		if err != nil {
			return nil, err
		}
		a := Award{Trophy: t}
		if winner != nil {
			t.Visible = false
			winner.Jest = append(winner.Jest, t)
			a.PlayerID = winner.ID
		} else {
			unawarded = append(unawarded, t)
		}
		awards = append(awards, a)
		g.emit(Event{Type: EventTrophyAwarded, Player: a.PlayerID, Data: map[string]interface{}{
			"trophy": t.String(), "effect": t.Effect.String(), "awarded": winner != nil,
		}})
	}
	g.Trophies = unawarded
	return awards, nil
}
