package experiments

import (
	"context"
	"fmt"

	"gamey/engine"
	"gamey/experiments/metrics"
	"gamey/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type pairing struct {
	id   int
	blue metrics.AgentConfig
	red  metrics.AgentConfig
}

// Run plays every match up of cfg Games times, alternating which agent starts, with
// up to cfg.Parallel games at once. Results are stored through writer unless it is
// nil.
func Run(ctx context.Context, cfg *Config, writer *metrics.Writer) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	agents := lo.KeyBy(cfg.Agents, func(a metrics.AgentConfig) int { return a.ID })

	games := []pairing{}
	for _, m := range cfg.MatchUps {
		for i := 0; i < cfg.Games; i++ {
			blue, red := agents[m.Agent1], agents[m.Agent2]
			if i%2 == 1 {
				blue, red = red, blue
			}
			games = append(games, pairing{id: len(games), blue: blue, red: red})
		}
	}
	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, len(games))

	// Each game writes only its own slot
	gameRecords := make([]metrics.GameRecord, len(games))
	moveRecords := make([][]metrics.MoveRecord, len(games))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for _, gm := range games {
		gm := gm
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gameRecord, moves, err := runGame(cfg, gm)
			if err != nil {
				return err
			}
			gameRecords[gm.id] = gameRecord
			moveRecords[gm.id] = moves
			log.Info().Msgf("completed game %d of %d", gm.id+1, len(games))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s experiment: %w", cfg.Name, err)
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)

	allMoves := lo.Flatten(moveRecords)
	summary := summarize(gameRecords, allMoves)
	summary.Log()

	if writer == nil {
		return summary, nil
	}
	// Store experiment metadata
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(allMoves); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return summary, nil
}

// runGame plays a single game between two agents on a fresh board.
func runGame(cfg *Config, gm pairing) (metrics.GameRecord, []metrics.MoveRecord, error) {
	blue, err := newBot(gm.blue, gm.id)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	red, err := newBot(gm.red, gm.id)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.LocalEngine(blue, red, cfg.Size, cfg.MaxMoves)
	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, fmt.Errorf("game %d: %w", gm.id, err)
	}

	record := metrics.GameRecord{ID: gm.id, Blue: gm.blue.ID, Red: gm.red.ID, GameMetric: gameMetric}
	moves := lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
		return metrics.MoveRecord{Game: gm.id, MoveMetric: mm}
	})
	return record, moves, nil
}

// newBot builds a fresh bot per game so that no random source is shared. The seed
// is offset by the game id to vary random games.
func newBot(config metrics.AgentConfig, id int) (searcher.Bot, error) {
	registry := searcher.DefaultRegistry(config.MaxDepth, config.Seed+uint64(id))
	bot, ok := registry.Find(config.Bot)
	if !ok {
		return nil, fmt.Errorf("%w: unknown bot %q", ErrInvalidConfig, config.Bot)
	}
	return bot, nil
}
