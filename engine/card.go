// Package engine implements the Marriage card game rules.
//
// This package provides the pure, stateless core: meld validation,
// initial-show and win detection, Dubli pairing, and Maal scoring.
// All functions are side-effect-free; game state lives in the game
// package, which consumes these as queries.
package engine

import "github.com/google/uuid"

// Suit of a card. Printed Jokers carry SuitNone.
type Suit uint8

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
	SuitNone
)

// IsRed reports whether the suit is a red suit (Hearts or Diamonds).
func (s Suit) IsRed() bool { return s == SuitHearts || s == SuitDiamonds }

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitClubs:
		return "Clubs"
	case SuitSpades:
		return "Spades"
	}
	return "None"
}

// Rank of a card. The numeric value doubles as the card's point value:
// Two–Ten are 2–10, Jack 11, Queen 12, King 13, Ace 14, Joker 15.
type Rank uint8

const (
	RankTwo Rank = iota + 2
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
	RankJoker
)

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	case RankJoker:
		return "Joker"
	}
	if r >= RankTwo && r <= RankTen {
		digits := "23456789"
		if r == RankTen {
			return "10"
		}
		return digits[r-RankTwo : r-RankTwo+1]
	}
	return "?"
}

// Face is the (suit, rank) pair of a card, ignoring instance identity.
// Multi-deck games hold several cards with the same Face.
type Face struct {
	Suit Suit
	Rank Rank
}

// Card is a single physical card instance. Identity is the ID, never the
// face: two copies of the Queen of Hearts from different decks are
// distinct cards and must be moved and removed individually.
type Card struct {
	ID   uuid.UUID `json:"id"`
	Suit Suit      `json:"suit"`
	Rank Rank      `json:"rank"`
}

// NewCard creates a card instance with a fresh identity.
func NewCard(suit Suit, rank Rank) Card {
	return Card{ID: uuid.New(), Suit: suit, Rank: rank}
}

// NewJoker creates a printed Joker instance.
func NewJoker() Card { return NewCard(SuitNone, RankJoker) }

// IsJoker reports whether the card is a printed Joker.
func (c Card) IsJoker() bool { return c.Rank == RankJoker }

// Value returns the numeric rank value (2–15).
func (c Card) Value() int { return int(c.Rank) }

// Face returns the card's (suit, rank) pair.
func (c Card) Face() Face { return Face{Suit: c.Suit, Rank: c.Rank} }

// SameFace reports whether two cards share suit and rank.
func (c Card) SameFace(o Card) bool { return c.Suit == o.Suit && c.Rank == o.Rank }

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.Rank.String() + " of " + c.Suit.String()
}

// NewDeck builds decks×52 standard cards plus the given number of printed
// Jokers, in canonical order. Every card gets its own identity.
func NewDeck(decks, jokers int) []Card {
	cards := make([]Card, 0, decks*52+jokers)
	for d := 0; d < decks; d++ {
		for suit := SuitHearts; suit <= SuitSpades; suit++ {
			for rank := RankTwo; rank <= RankAce; rank++ {
				cards = append(cards, NewCard(suit, rank))
			}
		}
	}
	for j := 0; j < jokers; j++ {
		cards = append(cards, NewJoker())
	}
	return cards
}

// Remove returns cards with the given instances removed, matching by
// identity. The second result is false if any pick was not present.
// The input slice is not modified.
func Remove(cards []Card, picks ...Card) ([]Card, bool) {
	out := append([]Card(nil), cards...)
	for _, p := range picks {
		found := false
		for i, c := range out {
			if c.ID == p.ID {
				out = append(out[:i], out[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return out, false
		}
	}
	return out, true
}

// FindByID returns the card with the given identity, if present.
func FindByID(cards []Card, id uuid.UUID) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// withoutIndexes returns a copy of cards with the given positions removed.
// Indexes must be distinct.
func withoutIndexes(cards []Card, idx ...int) []Card {
	skip := make(map[int]bool, len(idx))
	for _, i := range idx {
		skip[i] = true
	}
	out := make([]Card, 0, len(cards)-len(idx))
	for i, c := range cards {
		if !skip[i] {
			out = append(out, c)
		}
	}
	return out
}

// groupByFace buckets cards by face, preserving first-appearance order of
// the groups and input order within each group.
func groupByFace(cards []Card) ([]Face, map[Face][]Card) {
	order := make([]Face, 0, len(cards))
	groups := make(map[Face][]Card, len(cards))
	for _, c := range cards {
		f := c.Face()
		if _, seen := groups[f]; !seen {
			order = append(order, f)
		}
		groups[f] = append(groups[f], c)
	}
	return order, groups
}
