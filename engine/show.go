package engine

// InitialShowMelds is the number of disjoint pure melds the mandatory
// first show requires.
const InitialShowMelds = 3

// FindInitialMelds searches the candidate cards for 3 disjoint pure melds
// (no wildcards of any kind). It returns either exactly 3 melds or nil,
// never a partial result. The search is first-found-wins, not maximal:
// runs are taken first, then identical triples, then standard
// (distinct-suit) triples, with 3 printed Jokers as a final special-case
// meld. A sufficient witness is all the first show needs, so the cheaper
// asymmetric order is intentional.
func FindInitialMelds(candidates []Card) [][3]Card {
	pool := append([]Card(nil), candidates...)
	var melds [][3]Card

	for len(melds) < InitialShowMelds {
		run, ok := takeNaturalRun(pool)
		if !ok {
			break
		}
		melds = append(melds, run)
		pool, _ = Remove(pool, run[0], run[1], run[2])
	}

	for len(melds) < InitialShowMelds {
		trip, ok := takeIdenticalTriple(pool)
		if !ok {
			break
		}
		melds = append(melds, trip)
		pool, _ = Remove(pool, trip[0], trip[1], trip[2])
	}

	for len(melds) < InitialShowMelds {
		trip, ok := takeStandardTriple(pool)
		if !ok {
			break
		}
		melds = append(melds, trip)
		pool, _ = Remove(pool, trip[0], trip[1], trip[2])
	}

	if len(melds) < InitialShowMelds {
		var jokers []Card
		for _, c := range pool {
			if c.IsJoker() {
				jokers = append(jokers, c)
			}
		}
		if len(jokers) >= 3 {
			melds = append(melds, [3]Card{jokers[0], jokers[1], jokers[2]})
		}
	}

	if len(melds) < InitialShowMelds {
		return nil
	}
	return melds[:InitialShowMelds]
}

// takeNaturalRun finds the first strictly-consecutive same-suit triple in
// the pool, duplicating Aces as both 1 and 14. Suits are scanned in
// Hearts, Diamonds, Clubs, Spades order for determinism.
func takeNaturalRun(pool []Card) ([3]Card, bool) {
	for suit := SuitHearts; suit <= SuitSpades; suit++ {
		type entry struct {
			value int
			card  Card
		}
		var entries []entry
		for _, c := range pool {
			if c.Suit != suit {
				continue
			}
			vals := runValues(c.Rank)
			entries = append(entries, entry{vals[0], c})
			if vals[1] != vals[0] {
				entries = append(entries, entry{vals[1], c})
			}
		}
		// Insertion sort by value, stable so draw order breaks ties.
		for i := 1; i < len(entries); i++ {
			for j := i; j > 0 && entries[j-1].value > entries[j].value; j-- {
				entries[j-1], entries[j] = entries[j], entries[j-1]
			}
		}
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				if entries[j].value != entries[i].value+1 || entries[j].card.ID == entries[i].card.ID {
					continue
				}
				for k := j + 1; k < len(entries); k++ {
					if entries[k].value != entries[j].value+1 {
						continue
					}
					if entries[k].card.ID == entries[i].card.ID || entries[k].card.ID == entries[j].card.ID {
						continue
					}
					return [3]Card{entries[i].card, entries[j].card, entries[k].card}, true
				}
			}
		}
	}
	return [3]Card{}, false
}

// takeIdenticalTriple finds the first face with at least 3 copies in the
// pool and returns the first three, in draw order.
func takeIdenticalTriple(pool []Card) ([3]Card, bool) {
	order, groups := groupByFace(pool)
	for _, f := range order {
		if f.Rank == RankJoker {
			continue
		}
		g := groups[f]
		if len(g) >= 3 {
			return [3]Card{g[0], g[1], g[2]}, true
		}
	}
	return [3]Card{}, false
}

// takeStandardTriple finds the first same-rank triple across three
// pairwise-distinct suits.
func takeStandardTriple(pool []Card) ([3]Card, bool) {
	for i := 0; i < len(pool); i++ {
		if pool[i].IsJoker() {
			continue
		}
		for j := i + 1; j < len(pool); j++ {
			if pool[j].Rank != pool[i].Rank || pool[j].Suit == pool[i].Suit {
				continue
			}
			for k := j + 1; k < len(pool); k++ {
				if pool[k].Rank != pool[i].Rank {
					continue
				}
				if pool[k].Suit == pool[i].Suit || pool[k].Suit == pool[j].Suit {
					continue
				}
				return [3]Card{pool[i], pool[j], pool[k]}, true
			}
		}
	}
	return [3]Card{}, false
}

// FindTunnela looks for a first-turn Tunnela reveal: 3 printed Jokers,
// or 3 identical dealt cards.
func FindTunnela(hand []Card) ([3]Card, bool) {
	var jokers []Card
	for _, c := range hand {
		if c.IsJoker() {
			jokers = append(jokers, c)
		}
	}
	if len(jokers) >= 3 {
		return [3]Card{jokers[0], jokers[1], jokers[2]}, true
	}
	return takeIdenticalTriple(hand)
}
