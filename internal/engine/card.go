package engine

import "fmt"

// Suit is the sign printed on a suited card.
type Suit int

const (
	SuitNone    Suit = 0
	SuitSpade   Suit = 1
	SuitClub    Suit = 2
	SuitDiamond Suit = 3
	SuitHeart   Suit = 4
)

var suitNames = map[Suit]string{
	SuitNone:    "None",
	SuitSpade:   "Spade",
	SuitClub:    "Club",
	SuitDiamond: "Diamond",
	SuitHeart:   "Heart",
}

func (s Suit) String() string {
	if n, ok := suitNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Rank orders suits for tie-breaks: Heart > Diamond > Club > Spade.
func (s Suit) Rank() int {
	return int(s)
}

// Color of the suit. Jokers and SuitNone have no color.
func (s Suit) Color() Color {
	switch s {
	case SuitHeart, SuitDiamond:
		return ColorRed
	case SuitSpade, SuitClub:
		return ColorBlack
	default:
		return ColorNone
	}
}

// AllSuits returns the four suits in ascending tie-break order.
func AllSuits() []Suit {
	return []Suit{SuitSpade, SuitClub, SuitDiamond, SuitHeart}
}

// ParseSuit is the inverse of Suit.String.
func ParseSuit(name string) (Suit, error) {
	for s, n := range suitNames {
		if n == name {
			return s, nil
		}
	}
	return SuitNone, fmt.Errorf("unknown suit %q", name)
}

// Color is derived from the suit.
type Color int

const (
	ColorNone  Color = 0
	ColorRed   Color = 1
	ColorBlack Color = 2
)

var colorNames = map[Color]string{
	ColorNone:  "None",
	ColorRed:   "Red",
	ColorBlack: "Black",
}

func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return "Unknown"
}

// CardKind is the closed set of card identities.
type CardKind int

const (
	KindSuited CardKind = 1
	KindJoker  CardKind = 2
)

const (
	MinValue = 1
	MaxValue = 7
)

// Card is a single Jest card. Everything except Visible is fixed at construction.
type Card struct {
	ID      int      `json:"id"`
	Kind    CardKind `json:"kind"`
	Suit    Suit     `json:"suit,omitempty"`
	Value   int      `json:"value,omitempty"`
	Effect  Effect   `json:"effect"`
	Visible bool     `json:"visible"`
}

// NewSuitCard builds a suited card. The value must be within [MinValue, MaxValue].
func NewSuitCard(id, value int, suit Suit, effect Effect) (*Card, error) {
	if value < MinValue || value > MaxValue {
		return nil, fmt.Errorf("%w: value %d out of range", ErrInvalidCard, value)
	}
	if suit.Color() == ColorNone {
		return nil, fmt.Errorf("%w: suited card needs a suit", ErrInvalidCard)
	}
	if err := effect.Validate(); err != nil {
		return nil, err
	}
	return &Card{ID: id, Kind: KindSuited, Suit: suit, Value: value, Effect: effect}, nil
}

// NewJoker builds the joker.
func NewJoker(id int, effect Effect) (*Card, error) {
	if err := effect.Validate(); err != nil {
		return nil, err
	}
	return &Card{ID: id, Kind: KindJoker, Effect: effect}, nil
}

// IsJoker reports whether the card is the joker.
func (c *Card) IsJoker() bool {
	return c != nil && c.Kind == KindJoker
}

// Suited returns the suit and value of a suited card; ok is false for jokers.
func (c *Card) Suited() (suit Suit, value int, ok bool) {
	if c == nil {
		return SuitNone, 0, false
	}
	switch c.Kind {
	case KindSuited:
		return c.Suit, c.Value, true
	case KindJoker:
		return SuitNone, 0, false
	}
	return SuitNone, 0, false
}

func (c *Card) String() string {
	if c == nil {
		return "<none>"
	}
	switch c.Kind {
	case KindJoker:
		return "Joker"
	case KindSuited:
		return fmt.Sprintf("%d of %s", c.Value, c.Suit)
	}
	return "Unknown"
}

// beats reports whether c wins the starting-player comparison against o:
// higher value first, then suit rank.
func (c *Card) beats(o *Card) bool {
	if o == nil {
		return true
	}
	if c.Value != o.Value {
		return c.Value > o.Value
	}
	return c.Suit.Rank() > o.Suit.Rank()
}
