package engine

import "fmt"

// EffectKind identifies a trophy condition printed on a card.
type EffectKind int

const (
	EffectHighest EffectKind = iota + 1
	EffectLowest
	EffectMajority
	EffectJoker
	EffectBestJest
	EffectBestJestWithoutJoker
	EffectMostCards
	EffectLeastCards
	EffectEvenValues
	EffectOddValues
	EffectNoDuplicates
)

var effectNames = map[EffectKind]string{
	EffectHighest:              "HIGHEST",
	EffectLowest:               "LOWEST",
	EffectMajority:             "MAJORITY",
	EffectJoker:                "JOKER",
	EffectBestJest:             "BEST_JEST",
	EffectBestJestWithoutJoker: "BEST_JEST_WITHOUT_JOKER",
	EffectMostCards:            "MOST_CARDS",
	EffectLeastCards:           "LEAST_CARDS",
	EffectEvenValues:           "EVEN_VALUES",
	EffectOddValues:            "ODD_VALUES",
	EffectNoDuplicates:         "NO_DUPLICATES",
}

func (k EffectKind) String() string {
	if s, ok := effectNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// AllEffectKinds returns every effect kind in declaration order.
func AllEffectKinds() []EffectKind {
	return []EffectKind{
		EffectHighest, EffectLowest, EffectMajority, EffectJoker,
		EffectBestJest, EffectBestJestWithoutJoker, EffectMostCards,
		EffectLeastCards, EffectEvenValues, EffectOddValues, EffectNoDuplicates,
	}
}

// ParamShape is the parameter an effect kind takes.
type ParamShape int

const (
	ParamNone  ParamShape = 0
	ParamSuit  ParamShape = 1
	ParamValue ParamShape = 2
)

// Shape returns the parameter shape required by the kind.
func (k EffectKind) Shape() ParamShape {
	switch k {
	case EffectHighest, EffectLowest:
		return ParamSuit
	case EffectMajority:
		return ParamValue
	default:
		return ParamNone
	}
}

// Effect is the trophy condition carried by every card. At most one of Suit
// and Value is set, according to Kind.Shape().
type Effect struct {
	Kind  EffectKind `json:"kind"`
	Suit  Suit       `json:"suit,omitempty"`
	Value int        `json:"value,omitempty"`
}

// NewEffect builds a parameterless effect.
func NewEffect(kind EffectKind) (Effect, error) {
	e := Effect{Kind: kind}
	return e, e.Validate()
}

// NewSuitEffect builds HIGHEST or LOWEST.
func NewSuitEffect(kind EffectKind, suit Suit) (Effect, error) {
	e := Effect{Kind: kind, Suit: suit}
	return e, e.Validate()
}

// NewValueEffect builds MAJORITY.
func NewValueEffect(kind EffectKind, value int) (Effect, error) {
	e := Effect{Kind: kind, Value: value}
	return e, e.Validate()
}

// Validate checks the parameter shape against the kind.
func (e Effect) Validate() error {
	if _, ok := effectNames[e.Kind]; !ok {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidEffect, e.Kind)
	}
	switch e.Kind.Shape() {
	case ParamSuit:
		if e.Suit.Color() == ColorNone {
			return fmt.Errorf("%w: %s needs a suit", ErrInvalidEffect, e.Kind)
		}
		if e.Value != 0 {
			return fmt.Errorf("%w: %s takes no value", ErrInvalidEffect, e.Kind)
		}
	case ParamValue:
		if e.Value < MinValue || e.Value > MaxValue {
			return fmt.Errorf("%w: %s needs a value in [%d,%d]", ErrInvalidEffect, e.Kind, MinValue, MaxValue)
		}
		if e.Suit != SuitNone {
			return fmt.Errorf("%w: %s takes no suit", ErrInvalidEffect, e.Kind)
		}
	case ParamNone:
		if e.Suit != SuitNone || e.Value != 0 {
			return fmt.Errorf("%w: %s takes no parameter", ErrInvalidEffect, e.Kind)
		}
	}
	return nil
}

func (e Effect) String() string {
	switch e.Kind.Shape() {
	case ParamSuit:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Suit)
	case ParamValue:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	default:
		return e.Kind.String()
	}
}

func mustEffect(e Effect, err error) Effect {
	if err != nil {
		panic(err)
	}
	return e
}
