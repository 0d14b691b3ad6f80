// Package game owns the long-lived state of a Marriage round: hands,
// piles, shown sets, the Maal card, and the turn state machine. It is
// the only mutating component; every rules question is delegated to the
// pure engine package. The hosting UI layer drives it through the
// mutating operations and observes it through events and snapshots.
package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"marriage/engine"
	"marriage/engine/ai"
)

// Phase is the turn state machine position for the current player.
type Phase uint8

const (
	PhaseInitialCheck Phase = iota // first turn only: optional Tunnela reveal
	PhaseDraw
	PhasePlayOrDiscard
	PhaseShowOrEnd
	PhaseEnded
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialCheck:
		return "initial_check"
	case PhaseDraw:
		return "draw"
	case PhasePlayOrDiscard:
		return "play_or_discard"
	case PhaseShowOrEnd:
		return "show_or_end"
	case PhaseEnded:
		return "ended"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Rules holds the configurable parameters of a round.
type Rules struct {
	PlayerCount    int `json:"playerCount"`
	DeckCount      int `json:"deckCount"`
	JokerCount     int `json:"jokerCount"`
	CardsPerPlayer int `json:"cardsPerPlayer"`
	RequiredMelds  int `json:"requiredMelds"` // pure melds needed for the first show
	MaxTurns       int `json:"maxTurns"`      // 0 = unlimited; bounds bot self-play
}

// DefaultRules returns the standard 4-player, 3-deck Marriage setup.
func DefaultRules() Rules {
	return Rules{
		PlayerCount:    4,
		DeckCount:      3,
		JokerCount:     3,
		CardsPerPlayer: 21,
		RequiredMelds:  engine.InitialShowMelds,
		MaxTurns:       0,
	}
}

// Player holds one seat's cards and show flags.
type Player struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Hand          []engine.Card `json:"hand"`
	Shown         []engine.Card `json:"shown"`
	HasShown      bool          `json:"hasShown"`
	IsDubliShow   bool          `json:"isDubliShow"`
	StartingBonus int           `json:"startingBonus"`
	FirstTurn     bool          `json:"firstTurn"`

	Strategy ai.Strategy `json:"-"` // nil for human seats
}

// wildcard returns the player's context-dependent wildcard predicate.
func (p *Player) wildcard(maal *engine.Card) engine.WildcardFn {
	return engine.WildcardFor(maal, p.HasShown, p.IsDubliShow)
}

// total returns the player's shown cards plus hand, the unit the win
// detector operates on.
func (p *Player) total() []engine.Card {
	out := make([]engine.Card, 0, len(p.Shown)+len(p.Hand))
	out = append(out, p.Shown...)
	out = append(out, p.Hand...)
	return out
}

// Result is the outcome of a finished round.
type Result struct {
	Winner      int                 `json:"winner"` // -1 on stalemate
	Mode        string              `json:"mode"`   // "standard", "dubli", or "stalemate"
	MaalTotals  []int               `json:"maalTotals"`
	Settlements []engine.Settlement `json:"settlements"`
	Records     []Record            `json:"records"`
}

// Game is a single Marriage round. All exported methods are safe for
// concurrent use, though play is single-writer by nature: the turn
// machine admits one player's action at a time.
type Game struct {
	ID    uuid.UUID
	Rules Rules

	Players       []*Player
	Stock         []engine.Card
	DiscardPile   []engine.Card
	Maal          *engine.Card
	CurrentPlayer int
	Phase         Phase
	TurnNumber    int
	Started       bool
	GameOver      bool
	Result        *Result

	// BroadcastFn, when set, receives every game event. OnGameEnd fires
	// once with the final result.
	BroadcastFn func(ev Event)
	OnGameEnd   func(res Result)

	Mu        sync.Mutex
	rng       *rand.Rand
	log       *logrus.Entry
	stepDelay time.Duration
}

// New creates a round with the given rules and a seeded RNG for
// reproducible deals.
func New(rules Rules, seed int64) *Game {
	id := uuid.New()
	return &Game{
		ID:    id,
		Rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		log:   logrus.WithField("game_id", id),
	}
}

// AddPlayer seats a human player.
func (g *Game) AddPlayer(name string) (*Player, error) {
	return g.addPlayer(name, nil)
}

// AddBot seats an AI player at the given difficulty tier.
func (g *Game) AddBot(name, level string) (*Player, error) {
	return g.addPlayer(name, ai.ForLevel(level, g.rng.Int63()))
}

func (g *Game) addPlayer(name string, strat ai.Strategy) (*Player, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.Started {
		return nil, fmt.Errorf("game already started")
	}
	if len(g.Players) >= g.Rules.PlayerCount {
		return nil, fmt.Errorf("table is full (%d players)", g.Rules.PlayerCount)
	}
	p := &Player{ID: uuid.New(), Name: name, FirstTurn: true, Strategy: strat}
	g.Players = append(g.Players, p)
	return p, nil
}

// Deal shuffles the pool and distributes CardsPerPlayer to each seat;
// the rest becomes the stock. The discard pile starts empty, so the
// first player of the round must draw from the stock. Starting bonuses
// (Tunnela deal bonuses) are computed here, once.
func (g *Game) Deal() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.Started {
		return fmt.Errorf("game already started")
	}
	if len(g.Players) != g.Rules.PlayerCount {
		return fmt.Errorf("need %d players, have %d", g.Rules.PlayerCount, len(g.Players))
	}

	deck := engine.NewDeck(g.Rules.DeckCount, g.Rules.JokerCount)
	need := g.Rules.PlayerCount * g.Rules.CardsPerPlayer
	if len(deck) < need {
		return fmt.Errorf("deck of %d cannot deal %d cards", len(deck), need)
	}

	// Fisher-Yates, as dealt from a fresh pool.
	for i := len(deck) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	idx := 0
	for c := 0; c < g.Rules.CardsPerPlayer; c++ {
		for _, p := range g.Players {
			p.Hand = append(p.Hand, deck[idx])
			idx++
		}
	}
	g.Stock = append([]engine.Card(nil), deck[idx:]...)

	for _, p := range g.Players {
		p.StartingBonus = engine.StartingBonus(p.Hand)
	}

	g.CurrentPlayer = g.rng.Intn(g.Rules.PlayerCount)
	g.Phase = PhaseInitialCheck
	g.Started = true

	g.log.WithFields(logrus.Fields{
		"players": len(g.Players),
		"stock":   len(g.Stock),
	}).Info("round dealt")
	g.fire(Event{Type: EventDeal, Payload: map[string]interface{}{
		"stock":   len(g.Stock),
		"players": len(g.Players),
	}})
	g.fireTurn()
	return nil
}

// CardCount returns the number of card instances across every logical
// location. It is constant from deal to game end.
func (g *Game) CardCount() int {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	n := len(g.Stock) + len(g.DiscardPile)
	if g.Maal != nil {
		n++
	}
	for _, p := range g.Players {
		n += len(p.Hand) + len(p.Shown)
	}
	return n
}

// fire sends an event to the broadcast hook, if one is registered.
// Callers hold the mutex.
func (g *Game) fire(ev Event) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

func (g *Game) fireTurn() {
	p := g.Players[g.CurrentPlayer]
	g.fire(Event{Type: EventTurn, Player: &p.ID, Payload: map[string]interface{}{
		"index": g.CurrentPlayer,
		"phase": g.Phase.String(),
		"turn":  g.TurnNumber,
	}})
}

// checkTurn validates that the given seat may act in one of the wanted
// phases. Callers hold the mutex.
func (g *Game) checkTurn(player int, wanted ...Phase) error {
	if g.GameOver {
		return fmt.Errorf("game is already over")
	}
	if !g.Started {
		return fmt.Errorf("game has not been dealt")
	}
	if player != g.CurrentPlayer {
		return fmt.Errorf("not player %d's turn (current %d)", player, g.CurrentPlayer)
	}
	for _, w := range wanted {
		if g.Phase == w {
			return nil
		}
	}
	return fmt.Errorf("operation not legal in phase %s", g.Phase)
}
