package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"marriage/engine"
)

// Maal reveal thresholds: the Maal card is revealed the first time any
// player's hand shrinks to the threshold matching their show.
const (
	maalThresholdTunnela = 18
	maalThresholdShow    = 12
	maalThresholdDubli   = 7
)

// RevealTunnela moves a first-turn Tunnela (3 printed Jokers or 3
// identical dealt cards) into the player's shown set before drawing.
// The reveal does not count as the mandatory first show.
func (g *Game) RevealTunnela(player int) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhaseInitialCheck); err != nil {
		return err
	}
	p := g.Players[player]
	trio, ok := engine.FindTunnela(p.Hand)
	if !ok {
		return fmt.Errorf("hand holds no Tunnela")
	}
	p.Hand, _ = engine.Remove(p.Hand, trio[0], trio[1], trio[2])
	p.Shown = append(p.Shown, trio[0], trio[1], trio[2])
	g.Phase = PhaseDraw

	g.log.WithFields(logrus.Fields{"player": p.Name, "cards": 3}).Info("tunnela revealed")
	g.fire(Event{Type: EventTunnela, Player: &p.ID, Cards: trio[:]})
	g.revealMaal(p, maalThresholdTunnela)
	return nil
}

// SkipInitialCheck declines the Tunnela reveal and moves on to drawing.
// Bots pass through here automatically.
func (g *Game) SkipInitialCheck(player int) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhaseInitialCheck); err != nil {
		return err
	}
	g.Phase = PhaseDraw
	return nil
}

// DrawStock draws the front card of the stock pile. An empty stock is
// first replenished from the discard pile (all but its top card); if no
// card can be produced the round ends as a stalemate.
func (g *Game) DrawStock(player int) (engine.Card, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhaseDraw); err != nil {
		return engine.Card{}, err
	}
	if len(g.Stock) == 0 {
		g.recycleDiscard()
	}
	if len(g.Stock) == 0 {
		g.finish(-1, "stalemate")
		return engine.Card{}, fmt.Errorf("stock exhausted")
	}
	drawn := g.Stock[0]
	g.Stock = g.Stock[1:]
	p := g.Players[player]
	p.Hand = append(p.Hand, drawn)
	g.Phase = PhasePlayOrDiscard

	g.fire(Event{Type: EventDraw, Player: &p.ID, Payload: map[string]interface{}{
		"source": "stock",
	}})
	return drawn, nil
}

// DrawDiscard draws the top (most recent) card of the discard pile.
func (g *Game) DrawDiscard(player int) (engine.Card, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhaseDraw); err != nil {
		return engine.Card{}, err
	}
	if len(g.DiscardPile) == 0 {
		return engine.Card{}, fmt.Errorf("discard pile is empty")
	}
	drawn := g.DiscardPile[len(g.DiscardPile)-1]
	g.DiscardPile = g.DiscardPile[:len(g.DiscardPile)-1]
	p := g.Players[player]
	p.Hand = append(p.Hand, drawn)
	g.Phase = PhasePlayOrDiscard

	g.fire(Event{Type: EventDraw, Player: &p.ID, Card: &drawn, Payload: map[string]interface{}{
		"source": "discard",
	}})
	return drawn, nil
}

// Discard throws one hand card onto the discard pile. Discarding a card
// that is currently wildcard-classified for the player is rejected so
// the UI can warn instead of silently allowing it. After the discard the
// combined shown-plus-hand cards are checked for a win (7 melds or 8
// Dubli pairs); otherwise the turn proceeds to ShowOrEnd when the player
// newly qualifies for a first show, or to Ended.
func (g *Game) Discard(player int, cardID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhasePlayOrDiscard); err != nil {
		return err
	}
	p := g.Players[player]
	card, ok := engine.FindByID(p.Hand, cardID)
	if !ok {
		return fmt.Errorf("card %s is not in hand", cardID)
	}
	if p.wildcard(g.Maal)(card) {
		return fmt.Errorf("cannot discard a wildcard card")
	}
	p.Hand, _ = engine.Remove(p.Hand, card)
	g.DiscardPile = append(g.DiscardPile, card)
	g.fire(Event{Type: EventDiscard, Player: &p.ID, Card: &card})

	// A show earlier in the same turn happens on the 22-card post-draw
	// hand, which sits one card above its reveal threshold until this
	// discard. Re-check now; revealMaal is a no-op once the Maal is out.
	if p.HasShown {
		threshold := maalThresholdShow
		if p.IsDubliShow {
			threshold = maalThresholdDubli
		}
		g.revealMaal(p, threshold)
	}

	// A winning discard ends the round immediately.
	total := p.total()
	isWild := p.wildcard(g.Maal)
	if engine.CanFinish(total, isWild) {
		g.finish(player, "standard")
		return nil
	}
	if engine.CanFinishDubli(total) {
		g.finish(player, "dubli")
		return nil
	}

	if !p.HasShown && g.qualifiesForShow(p) {
		g.Phase = PhaseShowOrEnd
	} else {
		g.Phase = PhaseEnded
	}
	return nil
}

// qualifiesForShow reports whether the hand can back a first show right
// now: the required disjoint pure melds, or enough pairs for Dubli.
func (g *Game) qualifiesForShow(p *Player) bool {
	if engine.FindInitialMelds(p.Hand) != nil {
		return true
	}
	return engine.CountPairs(p.Hand) >= engine.DubliShowPairs
}

// ShowInitial performs the mandatory first show: RequiredMelds disjoint
// pure melds move from hand to the shown set. Legal while discarding is
// still pending or after it, before the turn ends.
func (g *Game) ShowInitial(player int) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhasePlayOrDiscard, PhaseShowOrEnd); err != nil {
		return err
	}
	p := g.Players[player]
	if p.HasShown {
		return fmt.Errorf("player has already shown")
	}
	melds := engine.FindInitialMelds(p.Hand)
	if len(melds) < g.Rules.RequiredMelds {
		return fmt.Errorf("selection does not form valid melds")
	}
	shown := make([]engine.Card, 0, g.Rules.RequiredMelds*3)
	for _, m := range melds[:g.Rules.RequiredMelds] {
		shown = append(shown, m[0], m[1], m[2])
	}
	p.Hand, _ = engine.Remove(p.Hand, shown...)
	p.Shown = append(p.Shown, shown...)
	p.HasShown = true
	if g.Phase == PhaseShowOrEnd {
		g.Phase = PhaseEnded
	}

	g.log.WithField("player", p.Name).Info("initial show")
	g.fire(Event{Type: EventShow, Player: &p.ID, Cards: shown, Payload: map[string]interface{}{
		"kind": "standard",
	}})
	g.revealMaal(p, maalThresholdShow)
	return nil
}

// ShowDubli performs the alternate pair-based first show: 7 disjoint
// identical-face pairs (14 cards) move to the shown set.
func (g *Game) ShowDubli(player int) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhasePlayOrDiscard, PhaseShowOrEnd); err != nil {
		return err
	}
	p := g.Players[player]
	if p.HasShown {
		return fmt.Errorf("player has already shown")
	}
	pairs := engine.FindPairs(p.Hand)
	if len(pairs) < engine.DubliShowPairs {
		return fmt.Errorf("hand holds %d pairs, need %d", len(pairs), engine.DubliShowPairs)
	}
	shown := make([]engine.Card, 0, engine.DubliShowPairs*2)
	for _, pr := range pairs[:engine.DubliShowPairs] {
		shown = append(shown, pr[0], pr[1])
	}
	p.Hand, _ = engine.Remove(p.Hand, shown...)
	p.Shown = append(p.Shown, shown...)
	p.HasShown = true
	p.IsDubliShow = true
	if g.Phase == PhaseShowOrEnd {
		g.Phase = PhaseEnded
	}

	g.log.WithField("player", p.Name).Info("dubli show")
	g.fire(Event{Type: EventShow, Player: &p.ID, Cards: shown, Payload: map[string]interface{}{
		"kind": "dubli",
	}})
	g.revealMaal(p, maalThresholdDubli)
	return nil
}

// EndTurn closes the current player's turn and rotates to the next seat,
// whose phase is InitialCheck on their first turn and Draw afterwards.
func (g *Game) EndTurn(player int) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if err := g.checkTurn(player, PhaseShowOrEnd, PhaseEnded); err != nil {
		return err
	}
	g.Players[player].FirstTurn = false
	g.TurnNumber++
	if g.Rules.MaxTurns > 0 && g.TurnNumber >= g.Rules.MaxTurns {
		g.finish(-1, "stalemate")
		return nil
	}
	g.CurrentPlayer = (g.CurrentPlayer + 1) % len(g.Players)
	if g.Players[g.CurrentPlayer].FirstTurn {
		g.Phase = PhaseInitialCheck
	} else {
		g.Phase = PhaseDraw
	}
	g.fireTurn()
	return nil
}

// revealMaal reveals the Maal card once the acting player's hand has
// shrunk to the given threshold: the first non-Joker card in stock
// order, removed from the stock. At most one Maal exists per round.
// Callers hold the mutex.
func (g *Game) revealMaal(p *Player, threshold int) {
	if g.Maal != nil || len(p.Hand) > threshold || len(g.Stock) == 0 {
		return
	}
	for i, c := range g.Stock {
		if c.IsJoker() {
			continue
		}
		maal := c
		g.Stock = append(g.Stock[:i], g.Stock[i+1:]...)
		g.Maal = &maal
		g.log.WithField("maal", maal.String()).Info("maal revealed")
		g.fire(Event{Type: EventMaalReveal, Card: &maal})
		return
	}
}

// recycleDiscard moves every discard except the top back into the stock
// and shuffles. Callers hold the mutex.
func (g *Game) recycleDiscard() {
	if len(g.DiscardPile) <= 1 {
		return
	}
	top := g.DiscardPile[len(g.DiscardPile)-1]
	g.Stock = append(g.Stock, g.DiscardPile[:len(g.DiscardPile)-1]...)
	g.DiscardPile = []engine.Card{top}
	for i := len(g.Stock) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		g.Stock[i], g.Stock[j] = g.Stock[j], g.Stock[i]
	}
	g.log.WithField("stock", len(g.Stock)).Info("discard pile recycled into stock")
}

// finish ends the round, scores every seat, and emits the result.
// Callers hold the mutex.
func (g *Game) finish(winner int, mode string) {
	if g.GameOver {
		return
	}
	g.GameOver = true
	g.Phase = PhaseGameOver

	n := len(g.Players)
	totals := make([]int, n)
	shown := make([]bool, n)
	dubli := make([]bool, n)
	for i, p := range g.Players {
		bd := engine.MaalPoints(p.Hand, g.Maal, p.HasShown)
		totals[i] = bd.Total + p.StartingBonus
		shown[i] = p.HasShown
		dubli[i] = p.IsDubliShow
	}

	res := Result{
		Winner:     winner,
		Mode:       mode,
		MaalTotals: totals,
	}
	now := time.Now()
	for i := range g.Players {
		st := engine.Settle(i, winner, totals, shown, dubli)
		res.Settlements = append(res.Settlements, st)
		res.Records = append(res.Records, Record{
			Mode:      mode,
			Timestamp: now,
			Points:    st.Total,
		})
	}
	g.Result = &res

	fields := logrus.Fields{"mode": mode, "turns": g.TurnNumber}
	if winner >= 0 {
		fields["winner"] = g.Players[winner].Name
	}
	g.log.WithFields(fields).Info("round finished")
	g.fire(Event{Type: EventGameEnd, Payload: map[string]interface{}{
		"winner": winner,
		"mode":   mode,
	}})
	if g.OnGameEnd != nil {
		g.OnGameEnd(res)
	}
}
