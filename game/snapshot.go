package game

import (
	"github.com/google/uuid"

	"marriage/engine"
)

// PlayerSnapshot is one seat's state inside a Snapshot.
type PlayerSnapshot struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Hand          []engine.Card `json:"hand"`
	Shown         []engine.Card `json:"shown"`
	HasShown      bool          `json:"hasShown"`
	IsDubliShow   bool          `json:"isDubliShow"`
	StartingBonus int           `json:"startingBonus"`
	IsBot         bool          `json:"isBot"`
}

// Snapshot is a serializable copy of the full game state. The hosting
// UI layer reads snapshots instead of holding authoritative state; it
// is the caller's job to obfuscate other players' hands before sending
// a snapshot to a client.
type Snapshot struct {
	ID            uuid.UUID        `json:"id"`
	Rules         Rules            `json:"rules"`
	Players       []PlayerSnapshot `json:"players"`
	StockCount    int              `json:"stockCount"`
	DiscardPile   []engine.Card    `json:"discardPile"`
	Maal          *engine.Card     `json:"maal,omitempty"`
	CurrentPlayer int              `json:"currentPlayer"`
	Phase         string           `json:"phase"`
	TurnNumber    int              `json:"turnNumber"`
	GameOver      bool             `json:"gameOver"`
	Result        *Result          `json:"result,omitempty"`
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	snap := Snapshot{
		ID:            g.ID,
		Rules:         g.Rules,
		StockCount:    len(g.Stock),
		DiscardPile:   append([]engine.Card(nil), g.DiscardPile...),
		CurrentPlayer: g.CurrentPlayer,
		Phase:         g.Phase.String(),
		TurnNumber:    g.TurnNumber,
		GameOver:      g.GameOver,
	}
	if g.Maal != nil {
		m := *g.Maal
		snap.Maal = &m
	}
	if g.Result != nil {
		r := *g.Result
		r.MaalTotals = append([]int(nil), g.Result.MaalTotals...)
		r.Settlements = append([]engine.Settlement(nil), g.Result.Settlements...)
		r.Records = append([]Record(nil), g.Result.Records...)
		snap.Result = &r
	}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:            p.ID,
			Name:          p.Name,
			Hand:          append([]engine.Card(nil), p.Hand...),
			Shown:         append([]engine.Card(nil), p.Shown...),
			HasShown:      p.HasShown,
			IsDubliShow:   p.IsDubliShow,
			StartingBonus: p.StartingBonus,
			IsBot:         p.Strategy != nil,
		})
	}
	return snap
}
