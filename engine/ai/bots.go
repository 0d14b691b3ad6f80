package ai

import (
	"math/rand"

	"github.com/google/uuid"

	"marriage/engine"
)

// Strategy is a bot's decision surface, consumed by the turn state
// machine. Implementations are pure with respect to game state: they
// inspect the cards they are handed and never mutate them.
type Strategy interface {
	// DrawFromDiscard decides between the stock and the discard top.
	DrawFromDiscard(hand []engine.Card, top engine.Card, isWild engine.WildcardFn) bool
	// ChooseDiscard picks the card to throw. ok is false when the whole
	// hand is wildcards and no legal discard exists.
	ChooseDiscard(hand []engine.Card, isWild engine.WildcardFn) (engine.Card, bool)
}

// EasyBot draws blind and discards near-randomly. Beginner tier.
type EasyBot struct {
	RNG *rand.Rand
}

// NewEasy returns an EasyBot seeded for reproducible games.
func NewEasy(seed int64) *EasyBot {
	return &EasyBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) DrawFromDiscard(hand []engine.Card, top engine.Card, isWild engine.WildcardFn) bool {
	// Only grabs an obvious wildcard; otherwise always the stock.
	return isWild(top)
}

func (b *EasyBot) ChooseDiscard(hand []engine.Card, isWild engine.WildcardFn) (engine.Card, bool) {
	var legal []engine.Card
	for _, c := range hand {
		if !isWild(c) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return engine.Card{}, false
	}
	return legal[b.RNG.Intn(len(legal))], true
}

// NormalBot plays the keep-value heuristic. Default tier. Its decisions
// are fully deterministic, so it carries no RNG.
type NormalBot struct{}

// NewNormal returns a NormalBot.
func NewNormal() *NormalBot { return &NormalBot{} }

func (b *NormalBot) DrawFromDiscard(hand []engine.Card, top engine.Card, isWild engine.WildcardFn) bool {
	return improvesHand(hand, top, isWild)
}

func (b *NormalBot) ChooseDiscard(hand []engine.Card, isWild engine.WildcardFn) (engine.Card, bool) {
	return WorstDiscard(hand, isWild)
}

// HardBot adds speculative draws and pair protection; the
// winning-discard lookahead is applied by the turn driver for every
// tier, so the hard tier's edge is purely in card selection. Like
// NormalBot it is deterministic and carries no RNG.
type HardBot struct{}

// NewHard returns a HardBot.
func NewHard() *HardBot { return &HardBot{} }

func (b *HardBot) DrawFromDiscard(hand []engine.Card, top engine.Card, isWild engine.WildcardFn) bool {
	if improvesHand(hand, top, isWild) {
		return true
	}
	// Speculative pickup: an adjacent run neighbor is worth holding
	// before the third card has shown up.
	with := append(append([]engine.Card(nil), hand...), top)
	return KeepValue(top, with, isWild) >= 7
}

func (b *HardBot) ChooseDiscard(hand []engine.Card, isWild engine.WildcardFn) (engine.Card, bool) {
	// Protect pairs when close to a Dubli show: break ties away from
	// paired cards by scoring on a pair-stripped view of the hand.
	if engine.CountPairs(hand) >= 5 {
		unpaired := unpairedCards(hand)
		if len(unpaired) > 0 {
			if c, ok := WorstDiscard(unpaired, isWild); ok {
				return c, true
			}
		}
	}
	return WorstDiscard(hand, isWild)
}

// unpairedCards returns the cards left over after the maximum disjoint
// pairing, preserving draw order.
func unpairedCards(hand []engine.Card) []engine.Card {
	used := make(map[uuid.UUID]bool, len(hand))
	for _, p := range engine.FindPairs(hand) {
		used[p[0].ID] = true
		used[p[1].ID] = true
	}
	var out []engine.Card
	for _, c := range hand {
		if !used[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// ForLevel builds a strategy for a difficulty tier name: "easy",
// "normal", or "hard". Unknown names fall back to normal. The seed only
// feeds the tiers that actually randomize.
func ForLevel(level string, seed int64) Strategy {
	switch level {
	case "easy":
		return NewEasy(seed)
	case "hard":
		return NewHard()
	default:
		return NewNormal()
	}
}
