// Package ai implements bot strategies for the Marriage core: card
// keep-value heuristics, discard selection, and the draw-vs-discard-pile
// decision, at three difficulty tiers.
package ai

import (
	"marriage/engine"
)

const wildKeepValue = 100

// KeepValue scores how much a card is worth holding, given the rest of
// the hand. Wildcards dominate everything; otherwise the score grows
// with meld potential: identical copies, same-rank triples in the
// making, and same-suit run neighbors within two steps.
func KeepValue(c engine.Card, hand []engine.Card, isWild engine.WildcardFn) int {
	if isWild(c) {
		return wildKeepValue
	}
	score := 0
	for _, o := range hand {
		if o.ID == c.ID || isWild(o) {
			continue
		}
		switch {
		case c.SameFace(o):
			score += 8
		case c.Rank == o.Rank:
			score += 6
		case c.Suit == o.Suit:
			switch runGap(c, o) {
			case 1:
				score += 7
			case 2:
				score += 4
			}
		}
	}
	return score
}

// runGap returns the smallest absolute run-value distance between two
// cards, honoring the Ace low/high rule.
func runGap(a, b engine.Card) int {
	best := 99
	for _, x := range [2]int{aceLow(a), aceHigh(a)} {
		for _, y := range [2]int{aceLow(b), aceHigh(b)} {
			d := x - y
			if d < 0 {
				d = -d
			}
			if d < best {
				best = d
			}
		}
	}
	return best
}

func aceLow(c engine.Card) int {
	if c.Rank == engine.RankAce {
		return 1
	}
	return int(c.Rank)
}

func aceHigh(c engine.Card) int { return int(c.Rank) }

// WorstDiscard picks the hand card with the lowest keep value, never a
// wildcard. Ties break toward the higher-point card, then draw order.
// ok is false when every card in hand is a wildcard.
func WorstDiscard(hand []engine.Card, isWild engine.WildcardFn) (engine.Card, bool) {
	bestIdx := -1
	bestScore := 0
	for i, c := range hand {
		if isWild(c) {
			continue
		}
		score := KeepValue(c, hand, isWild)
		if bestIdx < 0 || score < bestScore ||
			(score == bestScore && c.Value() > hand[bestIdx].Value()) {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx < 0 {
		return engine.Card{}, false
	}
	return hand[bestIdx], true
}

// WinningDiscard looks for a hand card whose discard leaves the combined
// shown-plus-hand cards one meld partition away from victory. total must
// be the 22-card post-draw state (shown cards plus hand); anything else
// yields no winning discard.
func WinningDiscard(total, hand []engine.Card, isWild engine.WildcardFn) (engine.Card, bool) {
	if len(total) != 22 {
		return engine.Card{}, false
	}
	for _, c := range hand {
		if isWild(c) {
			continue
		}
		rest, ok := engine.Remove(total, c)
		if !ok {
			continue
		}
		if engine.CanFinish(rest, isWild) || engine.CanFinishDubli(rest) {
			return c, true
		}
	}
	return engine.Card{}, false
}

// improvesHand reports whether adding the candidate card raises the
// greedy meld count or pairs with an existing card.
func improvesHand(hand []engine.Card, candidate engine.Card, isWild engine.WildcardFn) bool {
	if isWild(candidate) {
		return true
	}
	with := append(append([]engine.Card(nil), hand...), candidate)
	if engine.ApproxMeldCount(with, isWild) > engine.ApproxMeldCount(hand, isWild) {
		return true
	}
	for _, c := range hand {
		if c.SameFace(candidate) {
			return true
		}
	}
	return false
}
