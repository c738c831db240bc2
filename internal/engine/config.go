package engine

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	Cards              []*Card  // deck before trophies are reserved
	Extension          bool     // with no Cards, play the extension deck
	Variant            Variant  // nil means Standard
	FourPlayerTrophies int      // trophies reserved in a 4-player game (3 players always get 2)
	MaxPrompts         int      // attempts a controller gets to return a valid index
	Seed               uint64   // 0 picks a random seed
	Listener           Listener // receives every engine event, may be nil
}

func DefaultConfig() GameConfig {
	return GameConfig{
		Cards:              BaseDeck(),
		Variant:            Standard{},
		FourPlayerTrophies: 1,
		MaxPrompts:         3,
	}
}

// withDefaults fills zero fields.
func (c GameConfig) withDefaults() GameConfig {
	if len(c.Cards) == 0 {
		if c.Extension {
			c.Cards = ExtensionDeck()
		} else {
			c.Cards = BaseDeck()
		}
	}
	if c.Variant == nil {
		c.Variant = Standard{}
	}
	if c.FourPlayerTrophies <= 0 {
		c.FourPlayerTrophies = 1
	}
	if c.MaxPrompts <= 0 {
		c.MaxPrompts = 3
	}
	return c
}

// trophyCount returns how many trophies a game of n players reserves.
func (c GameConfig) trophyCount(n int) int {
	if n <= 3 {
		return 2
	}
	return c.FourPlayerTrophies
}
