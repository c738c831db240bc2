package engine

// Offer is the pair of cards a player exposes for drafting.
type Offer struct {
	Visible *Card `json:"visible,omitempty"`
	Hidden  *Card `json:"hidden,omitempty"`
}

// Full reports whether both slots are occupied.
func (o Offer) Full() bool {
	return o.Visible != nil && o.Hidden != nil
}

// Count returns the number of occupied slots.
func (o Offer) Count() int {
	n := 0
	if o.Visible != nil {
		n++
	}
	if o.Hidden != nil {
		n++
	}
	return n
}

// Remaining returns the only occupied slot, or nil.
func (o Offer) Remaining() *Card {
	if o.Count() != 1 {
		return nil
	}
	if o.Visible != nil {
		return o.Visible
	}
	return o.Hidden
}

// Player holds one player's state.
type Player struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Jest  []*Card `json:"jest"`
	Offer Offer   `json:"offer"`

	controller Controller
}

func NewPlayer(id, name string, c Controller) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		controller: c,
	}
}

// Controller returns the decision provider seated for this player.
func (p *Player) Controller() Controller {
	return p.controller
}

// ControllerKind names the controller for snapshots.
func (p *Player) ControllerKind() string {
	if p.controller == nil {
		return ""
	}
	return p.controller.Kind()
}

// HasJoker reports whether the jest contains the joker.
func (p *Player) HasJoker() bool {
	for _, c := range p.Jest {
		if c.IsJoker() {
			return true
		}
	}
	return false
}

// HasDrafted reports whether the player already took a card this round.
func (p *Player) HasDrafted(round int) bool {
	return len(p.Jest) >= round
}

// eligibleStart returns the player's visible card when it may open a turn.
func (p *Player) eligibleStart(round int) *Card {
	if p.HasDrafted(round) {
		return nil
	}
	c := p.Offer.Visible
	if c == nil || c.IsJoker() {
		return nil
	}
	return c
}

// take removes c from the offer, returning false if it is not there.
func (p *Player) take(c *Card) bool {
	switch {
	case c == nil:
		return false
	case p.Offer.Visible == c:
		p.Offer.Visible = nil
	case p.Offer.Hidden == c:
		p.Offer.Hidden = nil
	default:
		return false
	}
	return true
}

// clearOffer empties both slots and returns what was there.
func (p *Player) clearOffer() []*Card {
	var out []*Card
	if p.Offer.Visible != nil {
		out = append(out, p.Offer.Visible)
	}
	if p.Offer.Hidden != nil {
		out = append(out, p.Offer.Hidden)
	}
	p.Offer = Offer{}
	return out
}
