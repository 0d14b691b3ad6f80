package game

import (
	"github.com/google/uuid"

	"marriage/engine"
)

// EventType labels a game event broadcast to the hosting layer.
type EventType string

const (
	EventDeal       EventType = "deal"
	EventTunnela    EventType = "tunnela"
	EventDraw       EventType = "draw"
	EventDiscard    EventType = "discard"
	EventShow       EventType = "show"
	EventMaalReveal EventType = "maal_reveal"
	EventTurn       EventType = "turn"
	EventGameEnd    EventType = "game_end"
)

// Event is the structure handed to BroadcastFn on every state change.
// The UI layer renders from these plus snapshots; it holds no
// authoritative state of its own.
type Event struct {
	Type    EventType              `json:"type"`
	Player  *uuid.UUID             `json:"player,omitempty"`
	Card    *engine.Card           `json:"card,omitempty"`
	Cards   []engine.Card          `json:"cards,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}
