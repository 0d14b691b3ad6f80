package engine

const (
	// DubliShowPairs is the pair count needed for a Dubli show (14 cards).
	DubliShowPairs = 7

	// DubliWinPairs is the pair count that wins on the Dubli path.
	DubliWinPairs = 8
)

// FindPairs returns the maximum set of disjoint identical-face pairs for
// the Dubli win path. Cards pair by face: printed Jokers pair only with
// other printed Jokers, and a Maal-classified wildcard pairs through its
// underlying (suit, rank), never as a universal wildcard.
//
// Grouping by face and pairing consecutive cards within each group is
// maximal — no pairing can beat Σ floor(group/2) — and deterministic:
// groups appear in draw order and so do the cards inside them.
func FindPairs(cards []Card) [][2]Card {
	order, groups := groupByFace(cards)
	var pairs [][2]Card
	for _, f := range order {
		g := groups[f]
		for i := 0; i+1 < len(g); i += 2 {
			pairs = append(pairs, [2]Card{g[i], g[i+1]})
		}
	}
	return pairs
}

// CountPairs returns the maximum number of disjoint identical-face pairs.
func CountPairs(cards []Card) int { return len(FindPairs(cards)) }

// CanFinishDubli reports whether the combined shown-plus-hand cards win
// on the Dubli path (8 disjoint pairs). Like CanFinish, only 21- or
// 22-card states are finishable.
func CanFinishDubli(cards []Card) bool {
	if n := len(cards); n != 21 && n != 22 {
		return false
	}
	return CountPairs(cards) >= DubliWinPairs
}
