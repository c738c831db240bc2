package engine

// CardView is a card as a renderer may show it. Face-down cards carry no
// identity.
type CardView struct {
	ID       int    `json:"id,omitempty"`
	Label    string `json:"label,omitempty"`
	Suit     string `json:"suit,omitempty"`
	Value    int    `json:"value,omitempty"`
	Joker    bool   `json:"joker,omitempty"`
	Effect   string `json:"effect,omitempty"`
	FaceDown bool   `json:"face_down,omitempty"`
}

// ViewCard renders c, face down unless reveal is set.
func ViewCard(c *Card, reveal bool) *CardView {
	if c == nil {
		return nil
	}
	if !reveal {
		return &CardView{FaceDown: true}
	}
	v := &CardView{ID: c.ID, Label: c.String(), Effect: c.Effect.String()}
	switch c.Kind {
	case KindJoker:
		v.Joker = true
	case KindSuited:
		v.Suit = c.Suit.String()
		v.Value = c.Value
	}
	return v
}

func viewCards(cards []*Card, reveal bool) []*CardView {
	out := make([]*CardView, len(cards))
	for i, c := range cards {
		out[i] = ViewCard(c, reveal)
	}
	return out
}

// PublicViewData is the state everyone at the table can see.
type PublicViewData struct {
	Phase         string             `json:"phase"`
	Round         int                `json:"round"`
	Variant       string             `json:"variant"`
	Players       []PublicPlayerData `json:"players"`
	CurrentPlayer string             `json:"current_player,omitempty"`
	Trophies      []*CardView        `json:"trophies"`
	DeckSize      int                `json:"deck_size"`
	Result        *Result            `json:"result,omitempty"`
}

type PublicPlayerData struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JestSize int       `json:"jest_size"`
	Visible  *CardView `json:"visible,omitempty"`
	Hidden   *CardView `json:"hidden,omitempty"`
	Drafted  bool      `json:"drafted"`
}

func (g *Game) PublicView() PublicViewData {
	pv := PublicViewData{
		Phase:    g.Phase.String(),
		Round:    g.Round,
		Variant:  g.Variant.Name(),
		Trophies: viewCards(g.Trophies, true),
		DeckSize: g.Deck.Len(),
		Result:   g.Result,
	}
	if p := g.GetPlayer(g.CurrentPlayer); p != nil {
		pv.CurrentPlayer = p.Name
	}
	for _, p := range g.Players {
		pv.Players = append(pv.Players, PublicPlayerData{
			ID:       p.ID,
			Name:     p.Name,
			JestSize: len(p.Jest),
			Visible:  ViewCard(p.Offer.Visible, true),
			Hidden:   ViewCard(p.Offer.Hidden, false),
			Drafted:  g.Round > 0 && p.HasDrafted(g.Round),
		})
	}
	return pv
}

// PlayerViewData adds what only one player may see.
type PlayerViewData struct {
	PublicViewData
	Jest     []*CardView `json:"jest"`
	Hidden   *CardView   `json:"hidden,omitempty"`
	IsMyTurn bool        `json:"is_my_turn"`
	Score    int         `json:"score"`
}

func (g *Game) ViewFor(playerID string) PlayerViewData {
	pv := PlayerViewData{
		PublicViewData: g.PublicView(),
	}
	p := g.GetPlayer(playerID)
	if p == nil {
		return pv
	}
	pv.Jest = viewCards(p.Jest, true)
	pv.Hidden = ViewCard(p.Offer.Hidden, true)
	pv.IsMyTurn = g.CurrentPlayer == playerID
	pv.Score = Score(p.Jest)
	return pv
}
