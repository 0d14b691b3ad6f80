// Command selfplay runs AI-vs-AI Marriage rounds and logs the outcomes.
// Configuration comes from the environment (optionally via a .env file):
//
//	PLAYERS     number of seats (default 4)
//	DECKS       decks in the pool (default 3)
//	JOKERS      printed Jokers in the pool (default 3)
//	DIFFICULTY  bot tier: easy, normal, hard (default normal)
//	ROUNDS      rounds to play (default 1)
//	MAX_TURNS   per-round turn cap (default 400)
//	SEED        RNG seed; 0 uses the clock
//	STEP_DELAY_MS  pause between bot transitions (default 0)
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"marriage/game"
)

type config struct {
	players     int
	decks       int
	jokers      int
	difficulty  string
	rounds      int
	maxTurns    int
	seed        int64
	stepDelayMS int
}

func fromEnv() config {
	cfg := config{
		players:    4,
		decks:      3,
		jokers:     3,
		difficulty: "normal",
		rounds:     1,
		maxTurns:   400,
	}
	if v := getEnvInt("PLAYERS"); v > 0 {
		cfg.players = v
	}
	if v := getEnvInt("DECKS"); v > 0 {
		cfg.decks = v
	}
	if v := getEnvInt("JOKERS"); v >= 0 && os.Getenv("JOKERS") != "" {
		cfg.jokers = v
	}
	if v := os.Getenv("DIFFICULTY"); v != "" {
		cfg.difficulty = v
	}
	if v := getEnvInt("ROUNDS"); v > 0 {
		cfg.rounds = v
	}
	if v := getEnvInt("MAX_TURNS"); v > 0 {
		cfg.maxTurns = v
	}
	if v := getEnvInt("SEED"); v != 0 {
		cfg.seed = int64(v)
	}
	if v := getEnvInt("STEP_DELAY_MS"); v > 0 {
		cfg.stepDelayMS = v
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func main() {
	_ = godotenv.Load()
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := fromEnv()
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{
		"players":    cfg.players,
		"decks":      cfg.decks,
		"jokers":     cfg.jokers,
		"difficulty": cfg.difficulty,
		"rounds":     cfg.rounds,
		"seed":       cfg.seed,
	}).Info("starting self-play")

	wins := make(map[string]int)
	for round := 0; round < cfg.rounds; round++ {
		res, err := playRound(cfg, cfg.seed+int64(round))
		if err != nil {
			log.WithError(err).Error("round aborted")
			os.Exit(1)
		}
		name := "(stalemate)"
		if res.Winner >= 0 {
			name = fmt.Sprintf("bot-%d", res.Winner)
		}
		wins[name]++
		fields := logrus.Fields{"round": round, "mode": res.Mode, "winner": name}
		for i, st := range res.Settlements {
			fields[fmt.Sprintf("bot-%d", i)] = st.Explain()
		}
		log.WithFields(fields).Info("round complete")
	}

	for name, n := range wins {
		log.WithFields(logrus.Fields{"player": name, "wins": n}).Info("tally")
	}
}

func playRound(cfg config, seed int64) (game.Result, error) {
	rules := game.DefaultRules()
	rules.PlayerCount = cfg.players
	rules.DeckCount = cfg.decks
	rules.JokerCount = cfg.jokers
	rules.MaxTurns = cfg.maxTurns

	g := game.New(rules, seed)
	g.SetStepDelay(time.Duration(cfg.stepDelayMS) * time.Millisecond)
	for i := 0; i < cfg.players; i++ {
		if _, err := g.AddBot(fmt.Sprintf("bot-%d", i), cfg.difficulty); err != nil {
			return game.Result{}, err
		}
	}
	if err := g.Deal(); err != nil {
		return game.Result{}, err
	}

	for !g.Snapshot().GameOver {
		snap := g.Snapshot()
		if err := g.PlayBotTurn(snap.CurrentPlayer); err != nil {
			return game.Result{}, fmt.Errorf("turn %d: %w", snap.TurnNumber, err)
		}
	}

	snap := g.Snapshot()
	if snap.Result == nil {
		return game.Result{}, fmt.Errorf("round ended without a result")
	}
	return *snap.Result, nil
}
