package engine

// MaalClass is a card's relation to the Maal card.
type MaalClass uint8

const (
	MaalNone   MaalClass = iota
	MaalTiplu            // same rank as the Maal
	MaalPoplu            // rank+1 neighbor of the Maal
	MaalJhiplu           // rank-1 neighbor of the Maal
	MaalJoker            // printed Joker
)

func (m MaalClass) String() string {
	switch m {
	case MaalTiplu:
		return "Tiplu"
	case MaalPoplu:
		return "Poplu"
	case MaalJhiplu:
		return "Jhiplu"
	case MaalJoker:
		return "Joker"
	}
	return "None"
}

// JokerPoints is the point value of a printed Joker in a shown hand.
// Player-facing help text has historically said 5, but settlement has
// always computed 2; the computed value is kept.
const JokerPoints = 2

// MarriageSetPoints is the flat score for one complete marriage set
// (Tiplu + Poplu + Jhiplu of the Maal's suit).
const MarriageSetPoints = 10

// nextMaalRank is the rank+1 neighbor in Maal classification.
// King→Ace and Ace→Two both count as "+1". This wraparound is specific
// to Maal equivalence and is not the Ace low/high rule runs use.
func nextMaalRank(r Rank) Rank {
	if r == RankAce {
		return RankTwo
	}
	return r + 1
}

// prevMaalRank is the symmetric rank-1 neighbor (Two→Ace, Ace→King).
func prevMaalRank(r Rank) Rank {
	if r == RankTwo {
		return RankAce
	}
	return r - 1
}

// ClassifyMaal returns the card's relation to the Maal card.
func ClassifyMaal(c, maal Card) MaalClass {
	if c.IsJoker() {
		return MaalJoker
	}
	switch c.Rank {
	case maal.Rank:
		return MaalTiplu
	case nextMaalRank(maal.Rank):
		return MaalPoplu
	case prevMaalRank(maal.Rank):
		return MaalJhiplu
	}
	return MaalNone
}

// IsMaalEquivalent reports whether the card is Tiplu, Poplu, or Jhiplu
// relative to the Maal card.
func IsMaalEquivalent(c, maal Card) bool {
	switch ClassifyMaal(c, maal) {
	case MaalTiplu, MaalPoplu, MaalJhiplu:
		return true
	}
	return false
}

// WildcardFor builds the wildcard predicate for one player's context.
// Printed Jokers are always wildcards. Maal equivalents become wildcards
// only once the Maal is revealed and the player has shown through the
// standard path; Dubli shows never grant Maal wildcards.
func WildcardFor(maal *Card, hasShown, dubliShow bool) WildcardFn {
	if maal == nil || !hasShown || dubliShow {
		return JokersOnly
	}
	m := *maal
	return func(c Card) bool {
		return c.IsJoker() || IsMaalEquivalent(c, m)
	}
}

// BasePoints returns the per-card Maal value before multiplicity:
// Tiplu scores 3 in the Maal's suit and 2 in the same color; Poplu and
// Jhiplu score 2 and 1; off-color Maal equivalents score 0; printed
// Jokers score a flat JokerPoints.
func BasePoints(c, maal Card) int {
	switch ClassifyMaal(c, maal) {
	case MaalJoker:
		return JokerPoints
	case MaalTiplu:
		switch {
		case c.Suit == maal.Suit:
			return 3
		case c.Suit.IsRed() == maal.Suit.IsRed():
			return 2
		}
	case MaalPoplu, MaalJhiplu:
		switch {
		case c.Suit == maal.Suit:
			return 2
		case c.Suit.IsRed() == maal.Suit.IsRed():
			return 1
		}
	}
	return 0
}

// multiplied applies the multiplicity bonus for k identical copies:
// base, base×3, base×5, then base×count×2 from four copies up.
func multiplied(base, k int) int {
	switch k {
	case 1:
		return base
	case 2:
		return base * 3
	case 3:
		return base * 5
	default:
		return base * k * 2
	}
}

// Breakdown is a detailed Maal score for one player's remaining hand.
type Breakdown struct {
	MarriageSets   int `json:"marriageSets"`
	MarriagePoints int `json:"marriagePoints"`
	CardPoints     int `json:"cardPoints"`
	Total          int `json:"total"`
}

// MaalPoints scores the Maal-bearing cards left in a shown player's hand.
// Players who have not shown (or before the Maal is revealed) score zero.
//
// Marriage sets come first: each disjoint Tiplu+Poplu+Jhiplu triple of
// the Maal's suit scores a flat MarriageSetPoints and its 3 cards leave
// the pool before the multiplicity pass.
func MaalPoints(hand []Card, maal *Card, hasShown bool) Breakdown {
	var bd Breakdown
	if maal == nil || !hasShown {
		return bd
	}
	m := *maal

	pool := append([]Card(nil), hand...)
	var tiplu, poplu, jhiplu []Card
	for _, c := range pool {
		if c.Suit != m.Suit {
			continue
		}
		switch ClassifyMaal(c, m) {
		case MaalTiplu:
			tiplu = append(tiplu, c)
		case MaalPoplu:
			poplu = append(poplu, c)
		case MaalJhiplu:
			jhiplu = append(jhiplu, c)
		}
	}
	sets := len(tiplu)
	if len(poplu) < sets {
		sets = len(poplu)
	}
	if len(jhiplu) < sets {
		sets = len(jhiplu)
	}
	for i := 0; i < sets; i++ {
		pool, _ = Remove(pool, tiplu[i], poplu[i], jhiplu[i])
	}
	bd.MarriageSets = sets
	bd.MarriagePoints = sets * MarriageSetPoints

	order, groups := groupByFace(pool)
	for _, f := range order {
		g := groups[f]
		base := BasePoints(g[0], m)
		if base == 0 {
			continue
		}
		bd.CardPoints += multiplied(base, len(g))
	}

	bd.Total = bd.MarriagePoints + bd.CardPoints
	return bd
}

// StartingBonus computes the deal-time Tunnela bonus for a freshly dealt
// hand: +30 for a natural group of 3+ printed Jokers, +5 for every other
// natural 3-plus-of-a-kind face group. Computed once at deal and carried
// as a separate score line.
func StartingBonus(dealt []Card) int {
	bonus := 0
	order, groups := groupByFace(dealt)
	for _, f := range order {
		if len(groups[f]) < 3 {
			continue
		}
		if f.Rank == RankJoker {
			bonus += 30
		} else {
			bonus += 5
		}
	}
	return bonus
}
