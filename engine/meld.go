package engine

// WildcardFn reports whether a card counts as a wildcard for the player
// whose cards are being evaluated. Wildcard status is context-dependent
// (it depends on the Maal card and the player's show state), so the
// predicate is injected rather than stored on the card. Printed Jokers
// are wildcards under every predicate built by this package.
type WildcardFn func(Card) bool

// JokersOnly treats printed Jokers as the only wildcards. This is the
// predicate for players who have not shown.
func JokersOnly(c Card) bool { return c.IsJoker() }

// runValues returns the candidate run values for a rank. Aces play both
// low and high in runs; there is no King-Ace-Two wraparound.
func runValues(r Rank) [2]int {
	if r == RankAce {
		return [2]int{1, 14}
	}
	return [2]int{int(r), int(r)}
}

// IsValidMeld reports whether the 3 cards form a legal meld under the
// given wildcard predicate. The result is symmetric in card order.
func IsValidMeld(cards [3]Card, isWild WildcardFn) bool {
	var naturals [3]Card
	n := 0
	for _, c := range cards {
		if !isWild(c) {
			naturals[n] = c
			n++
		}
	}

	switch n {
	case 0, 1:
		// Two or three wildcards complete any meld.
		return true
	case 2:
		return wildcardCompletes(naturals[0], naturals[1])
	default:
		nat := naturals[:]
		return isNaturalRun(nat) || isIdenticalTriple(nat) || isStandardTriple(nat)
	}
}

// wildcardCompletes reports whether one wildcard plus these two naturals
// can form a meld: same rank for a triple (no suit-distinctness check
// needed, the wildcard supplies the missing piece), or same suit with
// run values within 2 of each other for a run.
func wildcardCompletes(a, b Card) bool {
	if a.Rank == b.Rank {
		return true
	}
	if a.Suit != b.Suit {
		return false
	}
	av, bv := runValues(a.Rank), runValues(b.Rank)
	for _, x := range av {
		for _, y := range bv {
			d := x - y
			if d < 0 {
				d = -d
			}
			if d <= 2 {
				return true
			}
		}
	}
	return false
}

// isNaturalRun reports whether 3 naturals form a same-suit consecutive run.
func isNaturalRun(cs []Card) bool {
	if cs[0].Suit != cs[1].Suit || cs[1].Suit != cs[2].Suit {
		return false
	}
	v0, v1, v2 := runValues(cs[0].Rank), runValues(cs[1].Rank), runValues(cs[2].Rank)
	for _, a := range v0 {
		for _, b := range v1 {
			for _, c := range v2 {
				lo, mid, hi := sort3(a, b, c)
				if mid == lo+1 && hi == mid+1 {
					return true
				}
			}
		}
	}
	return false
}

// isIdenticalTriple reports whether all 3 cards share the same face.
// Only possible with multiple decks.
func isIdenticalTriple(cs []Card) bool {
	return cs[0].SameFace(cs[1]) && cs[1].SameFace(cs[2])
}

// isStandardTriple reports whether the 3 cards share a rank across three
// pairwise-distinct suits.
func isStandardTriple(cs []Card) bool {
	if cs[0].Rank != cs[1].Rank || cs[1].Rank != cs[2].Rank {
		return false
	}
	return cs[0].Suit != cs[1].Suit && cs[1].Suit != cs[2].Suit && cs[0].Suit != cs[2].Suit
}

func sort3(a, b, c int) (lo, mid, hi int) {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return a, b, c
}
