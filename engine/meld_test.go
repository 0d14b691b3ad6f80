package engine

import "testing"

func card(s Suit, r Rank) Card { return NewCard(s, r) }

// wildRank builds a predicate treating Jokers and one rank as wildcards,
// mimicking a revealed-Maal context.
func wildRank(r Rank) WildcardFn {
	return func(c Card) bool { return c.IsJoker() || c.Rank == r }
}

// TestMeldPermutationSymmetry verifies IsValidMeld is order-independent.
func TestMeldPermutationSymmetry(t *testing.T) {
	hands := [][3]Card{
		{card(SuitHearts, RankFive), card(SuitHearts, RankSix), card(SuitHearts, RankSeven)},
		{card(SuitHearts, RankAce), card(SuitHearts, RankTwo), card(SuitHearts, RankThree)},
		{card(SuitHearts, RankKing), card(SuitHearts, RankAce), card(SuitHearts, RankTwo)},
		{card(SuitClubs, RankJack), card(SuitDiamonds, RankJack), card(SuitSpades, RankJack)},
		{card(SuitHearts, RankNine), NewJoker(), card(SuitHearts, RankJack)},
		{NewJoker(), NewJoker(), card(SuitSpades, RankTwo)},
		{card(SuitHearts, RankFour), card(SuitClubs, RankNine), card(SuitSpades, RankKing)},
	}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for hi, h := range hands {
		want := IsValidMeld(h, JokersOnly)
		for _, p := range perms {
			got := IsValidMeld([3]Card{h[p[0]], h[p[1]], h[p[2]]}, JokersOnly)
			if got != want {
				t.Errorf("hand %d: permutation %v gave %v, want %v", hi, p, got, want)
			}
		}
	}
}

func TestNaturalRuns(t *testing.T) {
	cases := []struct {
		name  string
		cards [3]Card
		want  bool
	}{
		{"mid run", [3]Card{card(SuitSpades, RankFive), card(SuitSpades, RankSix), card(SuitSpades, RankSeven)}, true},
		{"ace low", [3]Card{card(SuitHearts, RankAce), card(SuitHearts, RankTwo), card(SuitHearts, RankThree)}, true},
		{"ace high", [3]Card{card(SuitHearts, RankQueen), card(SuitHearts, RankKing), card(SuitHearts, RankAce)}, true},
		{"no wraparound", [3]Card{card(SuitHearts, RankKing), card(SuitHearts, RankAce), card(SuitHearts, RankTwo)}, false},
		{"gap", [3]Card{card(SuitHearts, RankFive), card(SuitHearts, RankSix), card(SuitHearts, RankEight)}, false},
		{"mixed suits", [3]Card{card(SuitHearts, RankFive), card(SuitClubs, RankSix), card(SuitHearts, RankSeven)}, false},
	}
	for _, tc := range cases {
		if got := IsValidMeld(tc.cards, JokersOnly); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTriples(t *testing.T) {
	cases := []struct {
		name  string
		cards [3]Card
		want  bool
	}{
		{"standard distinct suits", [3]Card{card(SuitClubs, RankJack), card(SuitDiamonds, RankJack), card(SuitSpades, RankJack)}, true},
		{"identical multi-deck", [3]Card{card(SuitHearts, RankNine), card(SuitHearts, RankNine), card(SuitHearts, RankNine)}, true},
		{"two suits only", [3]Card{card(SuitHearts, RankNine), card(SuitHearts, RankNine), card(SuitClubs, RankNine)}, false},
		{"rank mismatch", [3]Card{card(SuitHearts, RankNine), card(SuitClubs, RankNine), card(SuitSpades, RankTen)}, false},
	}
	for _, tc := range cases {
		if got := IsValidMeld(tc.cards, JokersOnly); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOneWildcardCompletion(t *testing.T) {
	j := NewJoker()
	cases := []struct {
		name  string
		cards [3]Card
		want  bool
	}{
		{"run gap one", [3]Card{card(SuitHearts, RankFive), j, card(SuitHearts, RankSeven)}, true},
		{"run adjacent", [3]Card{card(SuitHearts, RankFive), j, card(SuitHearts, RankSix)}, true},
		{"run gap three", [3]Card{card(SuitHearts, RankFive), j, card(SuitHearts, RankNine)}, false},
		{"ace high neighbor", [3]Card{card(SuitHearts, RankQueen), j, card(SuitHearts, RankAce)}, true},
		{"triple no suit check", [3]Card{card(SuitHearts, RankNine), j, card(SuitHearts, RankNine)}, true},
		{"triple distinct suits", [3]Card{card(SuitHearts, RankNine), j, card(SuitClubs, RankNine)}, true},
		{"unrelated naturals", [3]Card{card(SuitHearts, RankFour), j, card(SuitClubs, RankNine)}, false},
	}
	for _, tc := range cases {
		if got := IsValidMeld(tc.cards, JokersOnly); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTwoOrThreeWildcards(t *testing.T) {
	if !IsValidMeld([3]Card{NewJoker(), NewJoker(), card(SuitSpades, RankTwo)}, JokersOnly) {
		t.Error("two wildcards plus any natural should be valid")
	}
	if !IsValidMeld([3]Card{NewJoker(), NewJoker(), NewJoker()}, JokersOnly) {
		t.Error("three wildcards should be valid")
	}
}

// TestMaalWildcardPredicate verifies the validator respects a
// context-dependent predicate, not just printed Jokers.
func TestMaalWildcardPredicate(t *testing.T) {
	// Eights are wild: an eight completes an unrelated pair of naturals.
	m := [3]Card{card(SuitHearts, RankFive), card(SuitClubs, RankEight), card(SuitHearts, RankSix)}
	if IsValidMeld(m, JokersOnly) {
		t.Fatal("5H 8C 6H should not be valid with Jokers-only wildcards")
	}
	if !IsValidMeld(m, wildRank(RankEight)) {
		t.Error("5H 8C 6H should be valid when eights are wild")
	}
}
