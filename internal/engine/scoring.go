package engine

const (
	singletonBonus = 4
	noHeartBonus   = 4
	blackPairBonus = 2
)

// ScoreBreakdown holds the components of a jest's raw score.
type ScoreBreakdown struct {
	Black          int `json:"black"`           // spades + clubs
	Diamonds       int `json:"diamonds"`        // subtracted
	Hearts         int `json:"hearts"`          // signed heart contribution
	SingletonBonus int `json:"singleton_bonus"` // +4 per suit seen exactly once
	PairBonus      int `json:"pair_bonus"`      // +2 per spade value also held in clubs
	Raw            int `json:"raw"`
}

// ScoreEntry is one player's final result.
type ScoreEntry struct {
	PlayerID   string         `json:"player_id"`
	PlayerName string         `json:"player_name"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Total      int            `json:"total"` // after the variant transform
}

// Score returns the raw point total of a jest.
func Score(jest []*Card) int {
	return Breakdown(jest).Raw
}

// Breakdown scores a jest. It never mutates its input.
func Breakdown(jest []*Card) ScoreBreakdown {
	var b ScoreBreakdown
	bySuit := map[Suit][]int{}
	hasJoker := false

	for _, c := range jest {
		switch c.Kind {
		case KindJoker:
			hasJoker = true
		case KindSuited:
			bySuit[c.Suit] = append(bySuit[c.Suit], c.Value)
		}
	}

	b.Black = sum(bySuit[SuitSpade]) + sum(bySuit[SuitClub])
	b.Diamonds = sum(bySuit[SuitDiamond])

	// Hearts only count when the joker is held.
	if hasJoker {
		hearts := bySuit[SuitHeart]
		switch h := len(hearts); {
		case h == 0:
			b.Hearts = noHeartBonus
		case h == 4:
			b.Hearts = sum(hearts)
		default:
			b.Hearts = -sum(hearts)
		}
	}

	for _, s := range AllSuits() {
		if len(bySuit[s]) == 1 {
			b.SingletonBonus += singletonBonus
		}
	}

	clubs := bySuit[SuitClub]
	for _, v := range bySuit[SuitSpade] {
		if contains(clubs, v) {
			b.PairBonus += blackPairBonus
		}
	}

	b.Raw = b.Black - b.Diamonds + b.Hearts + b.SingletonBonus + b.PairBonus
	return b
}

// CalculateScores scores every player's jest through the active variant.
func (g *Game) CalculateScores() []ScoreEntry {
	entries := make([]ScoreEntry, len(g.Players))
	for i, p := range g.Players {
		b := Breakdown(p.Jest)
		entries[i] = ScoreEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Breakdown:  b,
			Total:      g.Variant.TransformScore(b.Raw),
		}
	}
	return entries
}

func sum(vs []int) int {
	n := 0
	for _, v := range vs {
		n += v
	}
	return n
}

func contains(vs []int, x int) bool {
	for _, v := range vs {
		if v == x {
			return true
		}
	}
	return false
}
