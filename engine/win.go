package engine

const (
	// WinMelds is the number of disjoint melds that finishes the game.
	WinMelds = 7

	// maxSearchDepth bounds the backtracking recursion on malformed
	// input. Valid 21/22-card inputs never get near it; exceeding it
	// surfaces as "no win", not a fault.
	maxSearchDepth = 80
)

// CanFinish reports whether the given cards (a player's shown melds plus
// hand, combined) can be partitioned into 7 disjoint melds under the
// given wildcard predicate. Inputs must be exactly 21 cards, or 22 when
// one discard is still owed; any other size is not a finishable state
// and returns false.
func CanFinish(cards []Card, isWild WildcardFn) bool {
	n := len(cards)
	if n != 21 && n != 22 {
		return false
	}
	pool := append([]Card(nil), cards...)
	// The single discard credit exists only for 22-card inputs.
	return finishSearch(pool, 0, n != 22, 0, isWild)
}

func finishSearch(remaining []Card, melds int, discardUsed bool, depth int, isWild WildcardFn) bool {
	if melds == WinMelds {
		return true
	}
	if len(remaining) == 0 || depth > maxSearchDepth {
		return false
	}

	// Spend the discard credit on the head card before trying melds;
	// over the recursion every card eventually surfaces as the head,
	// and this branch prunes fastest.
	if !discardUsed {
		if finishSearch(remaining[1:], melds, true, depth+1, isWild) {
			return true
		}
	}

	// Two wildcards standing alone fill a meld slot with no third card.
	if first, second, ok := firstTwoWild(remaining, isWild); ok {
		next := withoutIndexes(remaining, first, second)
		if finishSearch(next, melds+1, discardUsed, depth+1, isWild) {
			return true
		}
	}

	// Anchor the head card and try every plausible partner pair.
	anchor := remaining[0]
	anchorWild := isWild(anchor)
	var partners []int
	for i := 1; i < len(remaining); i++ {
		c := remaining[i]
		if anchorWild || c.Suit == anchor.Suit || c.Rank == anchor.Rank || isWild(c) {
			partners = append(partners, i)
		}
	}
	for x := 0; x < len(partners); x++ {
		for y := x + 1; y < len(partners); y++ {
			trio := [3]Card{anchor, remaining[partners[x]], remaining[partners[y]]}
			if !IsValidMeld(trio, isWild) {
				continue
			}
			next := withoutIndexes(remaining, 0, partners[x], partners[y])
			if finishSearch(next, melds+1, discardUsed, depth+1, isWild) {
				return true
			}
		}
	}
	return false
}

// firstTwoWild returns the indexes of the first two wildcards, if at
// least two are present.
func firstTwoWild(cards []Card, isWild WildcardFn) (int, int, bool) {
	first := -1
	for i, c := range cards {
		if !isWild(c) {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		return first, i, true
	}
	return 0, 0, false
}
