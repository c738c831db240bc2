package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrInvalidEffect     = errors.New("invalid effect")
	ErrInvalidCard       = errors.New("invalid card")
	ErrPlayerCount       = errors.New("jest needs 3 or 4 players")
	ErrDuplicatePlayer   = errors.New("duplicate player id")
	ErrNoController      = errors.New("player has no controller")
	ErrMissingResolver   = errors.New("no resolver registered for effect")
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrContractViolation = errors.New("controller returned an out-of-range choice")
	ErrStateViolation    = errors.New("state violation")
	ErrNoStartingPlayer  = errors.New("no eligible starting player")
	ErrUnresolvedOffer   = errors.New("player still holds a full offer")
	ErrWrongPhase        = errors.New("wrong phase for this operation")
	ErrGameOver          = errors.New("game is over")
	ErrPlayerNotFound    = errors.New("player not found")
)

const (
	MinPlayers = 3
	MaxPlayers = 4
)

// Game holds the entire game state. It is not safe for concurrent use.
type Game struct {
	Players  []*Player  `json:"players"`
	Deck     *Deck      `json:"-"`
	Trophies []*Card    `json:"-"`
	Config   GameConfig `json:"-"`
	Variant  Variant    `json:"-"`
	Effects  *Registry  `json:"-"`

	Phase         GamePhase `json:"phase"`
	Round         int       `json:"round"`
	CurrentPlayer string    `json:"current_player"`

	Result *Result `json:"result,omitempty"`

	rng *rand.Rand
}

// Result is the outcome of a finished game.
type Result struct {
	Variant          string       `json:"variant"`
	Awards           []Award      `json:"awards"`
	Scores           []ScoreEntry `json:"scores"`
	Winner           string       `json:"winner"`
	TrophyMultiplier int          `json:"trophy_multiplier"`
}

// NewGame creates a game with the given players, reserving trophies from the
// configured deck. Each game gets its own copy of the cards.
func NewGame(players []*Player, config GameConfig, effects *Registry) (*Game, error) {
	config = config.withDefaults()
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	cards := cloneCards(config.Cards)
	if err := checkResolvers(effects, cards); err != nil {
		return nil, err
	}

	rng := newRand(config.Seed)
	g := &Game{
		Players: players,
		Deck:    NewDeck(cards, rng),
		Config:  config,
		Variant: config.Variant,
		Effects: effects,
		Phase:   PhaseSetup,
		rng:     rng,
	}
	g.Trophies = g.Deck.Draw(config.trophyCount(len(players)))
	for _, t := range g.Trophies {
		t.Visible = true
	}
	return g, nil
}

func validatePlayers(players []*Player) error {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return fmt.Errorf("%w: got %d", ErrPlayerCount, len(players))
	}
	seen := map[string]bool{}
	for _, p := range players {
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
		if p.controller == nil {
			return fmt.Errorf("%w: %s", ErrNoController, p.ID)
		}
	}
	return nil
}

func checkResolvers(effects *Registry, cards []*Card) error {
	if effects == nil {
		return fmt.Errorf("%w: nil registry", ErrMissingResolver)
	}
	for _, c := range cards {
		if _, err := effects.Get(c.Effect.Kind); err != nil {
			return err
		}
	}
	return nil
}

func cloneCards(cards []*Card) []*Card {
	out := make([]*Card, len(cards))
	for i, c := range cards {
		cp := *c
		cp.Visible = false
		out[i] = &cp
	}
	return out
}

// Over reports whether no further round can be dealt.
func (g *Game) Over() bool {
	switch g.Phase {
	case PhaseGameOver:
		return true
	case PhaseSetup, PhaseRoundComplete:
		return g.Deck.Len() == 0
	}
	return false
}

// PlayRound drives one round to completion: deal, draft until no full offer
// remains, then settle the round. A game restored with offers already dealt
// resumes at starting-player selection.
func (g *Game) PlayRound(ctx context.Context) error {
	switch g.Phase {
	case PhaseGameOver:
		return ErrGameOver
	case PhaseSetup, PhaseRoundComplete:
		if g.Over() {
			return ErrGameOver
		}
		g.Round++
		g.Variant.OnRoundStart(g)
		g.emit(Event{Type: EventRoundStart, Data: map[string]interface{}{
			"round": g.Round, "deck_size": g.Deck.Len(),
		}})
		if err := g.distribute(ctx); err != nil {
			return err
		}
		g.setPhase(PhaseAwaitingStart)
	case PhaseAwaitingStart:
	default:
		return fmt.Errorf("%w: %s", ErrWrongPhase, g.Phase)
	}

	if err := g.draft(ctx); err != nil {
		return err
	}
	if err := g.completeRound(); err != nil {
		return err
	}
	g.Variant.OnRoundEnd(g)
	return nil
}

// Play runs rounds until the deck is exhausted, then finishes the game.
func (g *Game) Play(ctx context.Context) (*Result, error) {
	for !g.Over() {
		if err := g.PlayRound(ctx); err != nil {
			return nil, err
		}
	}
	return g.Finish()
}

// completeRound checks that every offer was drafted from and, when no later
// round will reuse them, moves the surviving offer cards into the jests.
func (g *Game) completeRound() error {
	for _, p := range g.Players {
		if p.Offer.Full() {
			return fmt.Errorf("%w: %w: %s", ErrStateViolation, ErrUnresolvedOffer, p.ID)
		}
	}
	g.setPhase(PhaseRoundComplete)

	settle := g.Deck.Len() == 0 || dealSize(g.Variant, g.Round) == 1
	if settle {
		for _, p := range g.Players {
			if c := p.Offer.Remaining(); c != nil {
				p.Offer = Offer{}
				c.Visible = false
				p.Jest = append(p.Jest, c)
			}
		}
	}

	g.emit(Event{Type: EventRoundEnd, Data: map[string]interface{}{
		"round": g.Round, "deck_size": g.Deck.Len(), "settled": settle,
	}})
	return nil
}

// Finish awards the trophies and computes the final scores. It may only be
// called once Over reports true; later calls return the same result.
func (g *Game) Finish() (*Result, error) {
	if g.Phase == PhaseGameOver {
		return g.Result, nil
	}
	if !g.Over() {
		return nil, fmt.Errorf("%w: game not over (%s, %d cards in deck)", ErrWrongPhase, g.Phase, g.Deck.Len())
	}
	// A game that never dealt still settles whatever the offers hold.
	for _, p := range g.Players {
		for _, c := range p.clearOffer() {
			c.Visible = false
			p.Jest = append(p.Jest, c)
		}
	}

	awards, err := g.awardTrophies()
	if err != nil {
		return nil, err
	}
	scores := g.CalculateScores()

	res := &Result{
		Variant:          g.Variant.Name(),
		Awards:           awards,
		Scores:           scores,
		TrophyMultiplier: g.Variant.TrophyMultiplier(),
	}
	best := 0
	for i, s := range scores {
		if i == 0 || s.Total > best {
			best = s.Total
			res.Winner = s.PlayerID
		}
	}
	g.Result = res
	g.setPhase(PhaseGameOver)
	g.emit(Event{Type: EventGameOver, Player: res.Winner, Data: map[string]interface{}{
		"scores": scores, "awards": awards,
	}})
	return res, nil
}

// GetPlayer finds a player by ID.
func (g *Game) GetPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CardCount returns every card the game owns: pool, trophies, jests and offers.
func (g *Game) CardCount() int {
	n := g.Deck.Len() + len(g.Trophies)
	for _, p := range g.Players {
		n += len(p.Jest) + p.Offer.Count()
	}
	return n
}
