package engine

import (
	"fmt"
	"time"

	"gamey/experiments/metrics"
	"gamey/game"
	"gamey/searcher"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    *game.GameY
	Bots     [game.NumPlayers]searcher.Bot // Indexed by game.PlayerID
	MaxMoves int
}

// LocalEngine pits blue against red on an empty board. Blue moves first.
func LocalEngine(blue, red searcher.Bot, size, maxMoves int) *Engine {
	if blue == nil || red == nil {
		panic("need a bot for each player")
	}
	if maxMoves <= 0 {
		maxMoves = game.NumCells(size)
	}
	return &Engine{
		State:    game.NewGameY(size),
		Bots:     [game.NumPlayers]searcher.Bot{blue, red},
		MaxMoves: maxMoves,
	}
}

// Run executes the game loop until the game is over. A bot that finds no move on
// an ongoing game resigns.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	first, _ := e.State.NextPlayer()
	log.Info().Msgf("player %s (%s) is starting", first, e.Bots[first].Name())

	for step := 1; !e.State.CheckGameOver() && step <= e.MaxMoves; step++ {
		player, ok := e.State.NextPlayer()
		if !ok {
			break
		}
		bot := e.Bots[player]

		start := time.Now()
		coords, found, searchMetric := choose(bot, e.State)
		if searchMetric.Duration == 0 {
			searchMetric.Duration = time.Since(start)
		}

		var move game.Movement = game.Placement{Player: player, Coords: coords}
		index := coords.ToIndex(e.State.BoardSize())
		if !found {
			log.Warn().Str("player", player.String()).Str("bot", bot.Name()).Msg("bot-resigned")
			move = game.Resign{Player: player}
			index = -1
		}
		err := e.State.AddMove(move)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("bot %s played %v: %w", bot.Name(), move, err)
		}
		log.Debug().Int("step", step).Str("move", fmt.Sprint(move)).Stringer("state", e.State).Msg("engine-move")

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Bot:          bot.Name(),
			Index:        index,
			Hash:         e.State.Hash(),
			SearchMetric: searchMetric,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner, gameMetric.HasWinner = e.State.Winner()
	if gameMetric.HasWinner {
		log.Info().Msgf("player %s (%s) won after %d moves", gameMetric.Winner, e.Bots[gameMetric.Winner].Name(), gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("stopped after %d moves without a winner", gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics, nil
}

func choose(bot searcher.Bot, state game.State) (game.Coordinates, bool, metrics.SearchMetric) {
	if metered, ok := bot.(searcher.MeteredBot); ok {
		return metered.ChooseMoveWithMetric(state)
	}
	move, found := bot.ChooseMove(state)
	return move, found, metrics.SearchMetric{}
}
