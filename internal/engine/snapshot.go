package engine

import "fmt"

// Snapshot is the persisted state of a game between rounds.
type Snapshot struct {
	Round    int              `json:"round"`
	Phase    string           `json:"phase"`
	Pool     []Card           `json:"pool"`
	Trophies []Card           `json:"trophies"`
	Players  []PlayerSnapshot `json:"players"`
	Variant  string           `json:"variant"`
}

type PlayerSnapshot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Jest       []Card `json:"jest"`
	Visible    *Card  `json:"visible,omitempty"`
	Hidden     *Card  `json:"hidden,omitempty"`
	Controller string `json:"controller"`
}

// Snapshot copies the game state. It is only available between rounds.
func (g *Game) Snapshot() (*Snapshot, error) {
	if !g.Phase.AtBoundary() {
		return nil, fmt.Errorf("%w: cannot snapshot during %s", ErrWrongPhase, g.Phase)
	}
	s := &Snapshot{
		Round:    g.Round,
		Phase:    g.Phase.String(),
		Pool:     copyCards(g.Deck.Cards()),
		Trophies: copyCards(g.Trophies),
		Variant:  g.Variant.Name(),
	}
	for _, p := range g.Players {
		s.Players = append(s.Players, PlayerSnapshot{
			ID:         p.ID,
			Name:       p.Name,
			Jest:       copyCards(p.Jest),
			Visible:    copyCard(p.Offer.Visible),
			Hidden:     copyCard(p.Offer.Hidden),
			Controller: p.ControllerKind(),
		})
	}
	return s, nil
}

// Restore rebuilds a game from a snapshot. Controllers are recreated through
// factory; the variant comes from the snapshot, the rest of config applies
// as given.
func Restore(s *Snapshot, config GameConfig, effects *Registry, factory ControllerFactory) (*Game, error) {
	variant, err := LookupVariant(s.Variant)
	if err != nil {
		return nil, err
	}
	phase, err := parsePhase(s.Phase)
	if err != nil {
		return nil, err
	}
	config.Variant = variant
	config = config.withDefaults()

	seen := map[int]bool{}
	var all []*Card
	restore := func(c Card) (*Card, error) {
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: duplicate card id %d", ErrInvalidCard, c.ID)
		}
		seen[c.ID] = true
		rc, err := rebuildCard(c)
		if err != nil {
			return nil, err
		}
		all = append(all, rc)
		return rc, nil
	}
	restoreAll := func(cards []Card) ([]*Card, error) {
		out := make([]*Card, 0, len(cards))
		for _, c := range cards {
			rc, err := restore(c)
			if err != nil {
				return nil, err
			}
			out = append(out, rc)
		}
		return out, nil
	}

	pool, err := restoreAll(s.Pool)
	if err != nil {
		return nil, err
	}
	trophies, err := restoreAll(s.Trophies)
	if err != nil {
		return nil, err
	}

	players := make([]*Player, 0, len(s.Players))
	for _, ps := range s.Players {
		c, err := factory(ps.Controller, ps.ID)
		if err != nil {
			return nil, fmt.Errorf("restore controller for %s: %w", ps.ID, err)
		}
		p := NewPlayer(ps.ID, ps.Name, c)
		if p.Jest, err = restoreAll(ps.Jest); err != nil {
			return nil, err
		}
		if ps.Visible != nil {
			if p.Offer.Visible, err = restore(*ps.Visible); err != nil {
				return nil, err
			}
		}
		if ps.Hidden != nil {
			if p.Offer.Hidden, err = restore(*ps.Hidden); err != nil {
				return nil, err
			}
		}
		players = append(players, p)
	}
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	if err := checkResolvers(effects, all); err != nil {
		return nil, err
	}

	rng := newRand(config.Seed)
	return &Game{
		Players:  players,
		Deck:     NewDeck(pool, rng),
		Trophies: trophies,
		Config:   config,
		Variant:  variant,
		Effects:  effects,
		Phase:    phase,
		Round:    s.Round,
		rng:      rng,
	}, nil
}

func rebuildCard(c Card) (*Card, error) {
	var rc *Card
	var err error
	switch c.Kind {
	case KindSuited:
		rc, err = NewSuitCard(c.ID, c.Value, c.Suit, c.Effect)
	case KindJoker:
		rc, err = NewJoker(c.ID, c.Effect)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidCard, c.Kind)
	}
	if err != nil {
		return nil, err
	}
	rc.Visible = c.Visible
	return rc, nil
}

func parsePhase(name string) (GamePhase, error) {
	for p, n := range phaseNames {
		if n == name && p.AtBoundary() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: cannot resume at phase %q", ErrWrongPhase, name)
}

func copyCard(c *Card) *Card {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func copyCards(cards []*Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = *c
	}
	return out
}
