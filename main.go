package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"gamey/communication/server"
	"gamey/experiments"
	"gamey/experiments/metrics"
	"gamey/game"
	"gamey/meta"
	"gamey/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Tournament config (YAML), defaults to minimax against random")
	outDir := flag.String("out", "experiments", "Directory for tournament records")
	position := flag.String("position", "", "Position in YEN notation to choose a single move for")
	bot := flag.String("bot", searcher.MinimaxName, "Bot choosing the move for -position")
	depth := flag.Int("depth", meta.MAX_DEPTH, "Search depth of minimax bots")
	seed := flag.Uint64("seed", 1, "Seed of random bots")
	serve := flag.String("serve", "", "Serve the bots over HTTP on this address, e.g. :4000")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *serve != "" {
		if err := server.New(searcher.DefaultRegistry(*depth, *seed)).Run(*serve); err != nil {
			log.Fatal().Err(err).Msg("bot server stopped")
		}
		return
	}

	if *position != "" {
		if err := chooseMove(*position, *bot, *depth, *seed); err != nil {
			log.Fatal().Err(err).Msg("cannot choose move")
		}
		return
	}

	cfg, err := loadConfig(*configPath, *depth, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	writer, err := metrics.NewWriter(*outDir, cfg.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create writer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if _, err := experiments.Run(ctx, cfg, writer); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func loadConfig(path string, depth int, seed uint64) (*experiments.Config, error) {
	if path != "" {
		return experiments.LoadConfig(path)
	}
	cfg := &experiments.Config{
		Name:     "minimax_vs_random",
		Size:     meta.BOARD_SIZE,
		Games:    meta.GAMES,
		Parallel: meta.GO_ROUTINES,
		MaxMoves: meta.MAX_MOVES,
		Agents: []metrics.AgentConfig{
			{ID: 1, Bot: searcher.MinimaxName, MaxDepth: depth},
			{ID: 2, Bot: searcher.RandomName, Seed: seed},
		},
		MatchUps: []experiments.MatchUp{{Agent1: 1, Agent2: 2}},
	}
	return cfg, cfg.Validate()
}

// chooseMove prints the coordinates bot picks for a YEN position.
func chooseMove(position, name string, depth int, seed uint64) error {
	state, err := game.ParseYEN([]byte(position))
	if err != nil {
		return err
	}
	bot, ok := searcher.DefaultRegistry(depth, seed).Find(name)
	if !ok {
		return fmt.Errorf("unknown bot %q", name)
	}

	move, ok := bot.ChooseMove(state)
	if !ok {
		return fmt.Errorf("no move available on %s", state)
	}
	return json.NewEncoder(os.Stdout).Encode(move)
}
