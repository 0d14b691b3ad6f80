package ai

import (
	"testing"

	"marriage/engine"
)

func TestEasyBotDraw(t *testing.T) {
	b := NewEasy(1)
	hand := []engine.Card{card(engine.SuitHearts, engine.RankFive)}
	if !b.DrawFromDiscard(hand, engine.NewJoker(), engine.JokersOnly) {
		t.Error("easy bot should still grab an obvious wildcard")
	}
	if b.DrawFromDiscard(hand, card(engine.SuitHearts, engine.RankSix), engine.JokersOnly) {
		t.Error("easy bot draws blind from the stock otherwise")
	}
}

func TestEasyBotNeverDiscardsWildcard(t *testing.T) {
	b := NewEasy(1)
	hand := []engine.Card{
		engine.NewJoker(),
		card(engine.SuitHearts, engine.RankFive),
		engine.NewJoker(),
	}
	for i := 0; i < 20; i++ {
		c, ok := b.ChooseDiscard(hand, engine.JokersOnly)
		if !ok {
			t.Fatal("expected a legal discard")
		}
		if c.IsJoker() {
			t.Fatal("easy bot discarded a wildcard")
		}
	}
	if _, ok := b.ChooseDiscard(hand[:1], engine.JokersOnly); ok {
		t.Error("all-wildcard hand has no legal discard")
	}
}

func TestNormalBotDrawOnImprovement(t *testing.T) {
	b := NewNormal()
	hand := []engine.Card{
		card(engine.SuitHearts, engine.RankFive),
		card(engine.SuitHearts, engine.RankSix),
		card(engine.SuitSpades, engine.RankKing),
	}
	// Completing the 5-6-7 run raises the meld count.
	if !b.DrawFromDiscard(hand, card(engine.SuitHearts, engine.RankSeven), engine.JokersOnly) {
		t.Error("normal bot should take a run-completing card")
	}
	// A matching face is worth taking even without a new meld.
	if !b.DrawFromDiscard(hand, card(engine.SuitSpades, engine.RankKing), engine.JokersOnly) {
		t.Error("normal bot should take a pairing card")
	}
	if b.DrawFromDiscard(hand, card(engine.SuitDiamonds, engine.RankTwo), engine.JokersOnly) {
		t.Error("normal bot should ignore an unrelated card")
	}
}

func TestNormalBotDiscard(t *testing.T) {
	b := NewNormal()
	isolated := card(engine.SuitSpades, engine.RankKing)
	hand := []engine.Card{
		card(engine.SuitHearts, engine.RankFive),
		card(engine.SuitHearts, engine.RankSix),
		isolated,
	}
	c, ok := b.ChooseDiscard(hand, engine.JokersOnly)
	if !ok {
		t.Fatal("expected a legal discard")
	}
	if c.ID != isolated.ID {
		t.Errorf("discarded %s, want %s", c, isolated)
	}
}

// pairHeavyHand returns five pairs plus the given extras, the shape that
// flips the hard bot into Dubli chasing.
func pairHeavyHand(extras ...engine.Card) []engine.Card {
	var hand []engine.Card
	for _, f := range []engine.Face{
		{Suit: engine.SuitHearts, Rank: engine.RankTwo},
		{Suit: engine.SuitHearts, Rank: engine.RankFive},
		{Suit: engine.SuitDiamonds, Rank: engine.RankNine},
		{Suit: engine.SuitClubs, Rank: engine.RankJack},
		{Suit: engine.SuitSpades, Rank: engine.RankKing},
	} {
		hand = append(hand, card(f.Suit, f.Rank), card(f.Suit, f.Rank))
	}
	return append(hand, extras...)
}

func TestHardBotSpeculativeDraw(t *testing.T) {
	b := NewHard()
	n := NewNormal()
	hand := []engine.Card{
		card(engine.SuitHearts, engine.RankFive),
		card(engine.SuitSpades, engine.RankTwo),
		card(engine.SuitClubs, engine.RankTen),
	}
	// A run neighbor one step away completes no meld yet; only the
	// hard tier picks it up speculatively.
	top := card(engine.SuitHearts, engine.RankSix)
	if !b.DrawFromDiscard(hand, top, engine.JokersOnly) {
		t.Error("hard bot should take an adjacent run neighbor")
	}
	if n.DrawFromDiscard(hand, top, engine.JokersOnly) {
		t.Error("normal bot should pass without a completed meld")
	}
	unrelated := card(engine.SuitDiamonds, engine.RankKing)
	if b.DrawFromDiscard(hand, unrelated, engine.JokersOnly) {
		t.Error("hard bot should still pass on an unrelated card")
	}
}

func TestHardBotProtectsPairs(t *testing.T) {
	b := NewHard()
	loner := card(engine.SuitDiamonds, engine.RankFour)
	hand := pairHeavyHand(loner)
	c, ok := b.ChooseDiscard(hand, engine.JokersOnly)
	if !ok {
		t.Fatal("expected a legal discard")
	}
	if c.ID != loner.ID {
		t.Errorf("discarded %s, want the unpaired %s", c, loner)
	}
}

func TestForLevel(t *testing.T) {
	if _, ok := ForLevel("easy", 1).(*EasyBot); !ok {
		t.Error(`ForLevel("easy") is not an EasyBot`)
	}
	if _, ok := ForLevel("hard", 1).(*HardBot); !ok {
		t.Error(`ForLevel("hard") is not a HardBot`)
	}
	if _, ok := ForLevel("normal", 1).(*NormalBot); !ok {
		t.Error(`ForLevel("normal") is not a NormalBot`)
	}
	if _, ok := ForLevel("ruthless", 1).(*NormalBot); !ok {
		t.Error("unknown levels should fall back to NormalBot")
	}
}
