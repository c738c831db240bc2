package engine

// BaseDeck returns the standard 17-card deck: values 1-4 in each suit plus the joker.
func BaseDeck() []*Card {
	var cards []*Card
	id := 0
	suited := func(value int, suit Suit, effect Effect) {
		id++
		c, err := NewSuitCard(id, value, suit, effect)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	highest := func(s Suit) Effect { return mustEffect(NewSuitEffect(EffectHighest, s)) }
	lowest := func(s Suit) Effect { return mustEffect(NewSuitEffect(EffectLowest, s)) }
	majority := func(v int) Effect { return mustEffect(NewValueEffect(EffectMajority, v)) }
	plain := func(k EffectKind) Effect { return mustEffect(NewEffect(k)) }

	suited(1, SuitSpade, highest(SuitClub))
	suited(2, SuitSpade, majority(3))
	suited(3, SuitSpade, majority(2))
	suited(4, SuitSpade, lowest(SuitClub))

	suited(1, SuitClub, highest(SuitSpade))
	suited(2, SuitClub, lowest(SuitHeart))
	suited(3, SuitClub, highest(SuitHeart))
	suited(4, SuitClub, lowest(SuitSpade))

	suited(1, SuitDiamond, majority(4))
	suited(2, SuitDiamond, highest(SuitDiamond))
	suited(3, SuitDiamond, lowest(SuitDiamond))
	suited(4, SuitDiamond, plain(EffectBestJestWithoutJoker))

	for v := 1; v <= 4; v++ {
		suited(v, SuitHeart, plain(EffectJoker))
	}

	id++
	joker, err := NewJoker(id, plain(EffectBestJest))
	if err != nil {
		panic(err)
	}
	return append(cards, joker)
}

// ExtensionDeck returns the base deck plus values 5-7 in each suit.
func ExtensionDeck() []*Card {
	cards := BaseDeck()
	id := len(cards)
	plain := func(k EffectKind) Effect { return mustEffect(NewEffect(k)) }
	effects := map[Suit][3]Effect{
		SuitSpade:   {plain(EffectMostCards), mustEffect(NewValueEffect(EffectMajority, 5)), plain(EffectEvenValues)},
		SuitClub:    {plain(EffectLeastCards), mustEffect(NewValueEffect(EffectMajority, 6)), plain(EffectOddValues)},
		SuitDiamond: {plain(EffectNoDuplicates), mustEffect(NewSuitEffect(EffectHighest, SuitSpade)), mustEffect(NewValueEffect(EffectMajority, 7))},
		SuitHeart:   {plain(EffectEvenValues), plain(EffectOddValues), plain(EffectNoDuplicates)},
	}
	for _, s := range AllSuits() {
		for i, v := range []int{5, 6, 7} {
			id++
			c, err := NewSuitCard(id, v, s, effects[s][i])
			if err != nil {
				panic(err)
			}
			cards = append(cards, c)
		}
	}
	return cards
}
