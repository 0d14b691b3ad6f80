package engine

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestFindPairsGroupSizes(t *testing.T) {
	hand := []Card{
		card(SuitHearts, RankQueen),
		card(SuitHearts, RankQueen),
		card(SuitHearts, RankQueen), // group of 3 → one pair
		card(SuitClubs, RankFive),
		card(SuitClubs, RankFive), // group of 2 → one pair
		card(SuitSpades, RankNine),
		card(SuitDiamonds, RankNine), // same rank, different suits → no pair
	}
	pairs := FindPairs(hand)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	for _, p := range pairs {
		if !p[0].SameFace(p[1]) {
			t.Errorf("pair %v does not share a face", p)
		}
	}
}

func TestFindPairsJokers(t *testing.T) {
	hand := []Card{NewJoker(), card(SuitHearts, RankQueen), NewJoker(), NewJoker()}
	pairs := FindPairs(hand)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if !pairs[0][0].IsJoker() || !pairs[0][1].IsJoker() {
		t.Error("jokers should pair only with jokers")
	}
}

// TestFindPairsMaximalAndDisjoint draws random multi-deck hands and
// checks the pairing is always disjoint and always hits the theoretical
// maximum Σ floor(group/2).
func TestFindPairsMaximalAndDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := NewDeck(3, 3)
	for trial := 0; trial < 50; trial++ {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		hand := pool[:21]

		want := 0
		_, groups := groupByFace(hand)
		for _, g := range groups {
			want += len(g) / 2
		}

		pairs := FindPairs(hand)
		if len(pairs) != want {
			t.Fatalf("trial %d: got %d pairs, want maximum %d", trial, len(pairs), want)
		}
		seen := make(map[uuid.UUID]bool)
		for _, p := range pairs {
			for _, c := range p {
				if seen[c.ID] {
					t.Fatalf("trial %d: card %s used in two pairs", trial, c)
				}
				seen[c.ID] = true
			}
		}
	}
}

func TestCanFinishDubli(t *testing.T) {
	var cards []Card
	// Eight pairs (16 cards) plus five spares = 21.
	for _, f := range []Face{
		{SuitHearts, RankTwo}, {SuitHearts, RankFive}, {SuitDiamonds, RankNine},
		{SuitClubs, RankJack}, {SuitSpades, RankKing}, {SuitSpades, RankThree},
		{SuitDiamonds, RankAce}, {SuitClubs, RankSeven},
	} {
		cards = append(cards, card(f.Suit, f.Rank), card(f.Suit, f.Rank))
	}
	spares := []Face{
		{SuitHearts, RankEight}, {SuitDiamonds, RankFour}, {SuitClubs, RankTen},
		{SuitSpades, RankSix}, {SuitHearts, RankKing},
	}
	for _, f := range spares {
		cards = append(cards, card(f.Suit, f.Rank))
	}
	if len(cards) != 21 {
		t.Fatalf("fixture holds %d cards, want 21", len(cards))
	}
	if !CanFinishDubli(cards) {
		t.Error("eight disjoint pairs should finish on the Dubli path")
	}
	// Drop one pair below the threshold.
	short, _ := Remove(cards, cards[0])
	short = append(short, card(SuitHearts, RankSeven))
	if CanFinishDubli(short) {
		t.Error("seven pairs should not finish")
	}
	if CanFinishDubli(cards[:16]) {
		t.Error("16-card input is not a finishable state")
	}
}
