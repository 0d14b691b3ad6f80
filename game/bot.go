package game

import (
	"fmt"
	"time"

	"marriage/engine"
	"marriage/engine/ai"
)

// SetStepDelay sets a fixed pause between the discrete transitions of a
// bot turn so the UI can animate them. The pause is a sequential
// suspension point: no lock is held while sleeping, and each transition
// itself stays atomic.
func (g *Game) SetStepDelay(d time.Duration) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	g.stepDelay = d
}

func (g *Game) pause() {
	g.Mu.Lock()
	d := g.stepDelay
	g.Mu.Unlock()
	if d > 0 {
		time.Sleep(d)
	}
}

// PlayBotTurn runs one complete AI turn through the same mutating
// operations a human client would invoke: the first-turn Tunnela check,
// the draw decision, the winning-discard lookahead, the discard, an
// eligible first show, and the turn end.
func (g *Game) PlayBotTurn(player int) error {
	strat := g.strategyOf(player)
	if strat == nil {
		return fmt.Errorf("player %d is not a bot", player)
	}

	if g.phase() == PhaseInitialCheck {
		if _, ok := engine.FindTunnela(g.handOf(player)); ok {
			if err := g.RevealTunnela(player); err != nil {
				return err
			}
		} else if err := g.SkipInitialCheck(player); err != nil {
			return err
		}
		g.pause()
	}

	if g.phase() == PhaseDraw {
		hand := g.handOf(player)
		isWild := g.wildcardOf(player)
		if top, ok := g.discardTop(); ok && strat.DrawFromDiscard(hand, top, isWild) {
			if _, err := g.DrawDiscard(player); err != nil {
				return err
			}
		} else if _, err := g.DrawStock(player); err != nil {
			if g.isOver() {
				return nil // stalemate: the round ended under us
			}
			return err
		}
		g.pause()
	}

	if g.phase() == PhasePlayOrDiscard {
		hand := g.handOf(player)
		isWild := g.wildcardOf(player)
		discard, ok := ai.WinningDiscard(g.totalOf(player), hand, isWild)
		if !ok {
			discard, ok = strat.ChooseDiscard(hand, isWild)
		}
		if !ok {
			return fmt.Errorf("no legal discard for player %d", player)
		}
		if err := g.Discard(player, discard.ID); err != nil {
			return err
		}
		if g.isOver() {
			return nil
		}
		g.pause()
	}

	if g.phase() == PhaseShowOrEnd {
		if engine.FindInitialMelds(g.handOf(player)) != nil {
			if err := g.ShowInitial(player); err != nil {
				return err
			}
		} else if err := g.ShowDubli(player); err != nil {
			return err
		}
		g.pause()
	}

	return g.EndTurn(player)
}

// ---------------------------------------------------------------------------
// Locked read helpers for the bot driver
// ---------------------------------------------------------------------------

func (g *Game) phase() Phase {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Phase
}

func (g *Game) isOver() bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.GameOver
}

func (g *Game) strategyOf(player int) ai.Strategy {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if player < 0 || player >= len(g.Players) {
		return nil
	}
	return g.Players[player].Strategy
}

func (g *Game) handOf(player int) []engine.Card {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return append([]engine.Card(nil), g.Players[player].Hand...)
}

func (g *Game) totalOf(player int) []engine.Card {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Players[player].total()
}

func (g *Game) wildcardOf(player int) engine.WildcardFn {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Players[player].wildcard(g.Maal)
}

func (g *Game) discardTop() (engine.Card, bool) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if len(g.DiscardPile) == 0 {
		return engine.Card{}, false
	}
	return g.DiscardPile[len(g.DiscardPile)-1], true
}
