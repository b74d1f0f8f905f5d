package searcher

import (
	"gamey/experiments/metrics"
	"gamey/game"

	"github.com/samber/lo"
)

// Bot picks a move for the player to move on a board.
type Bot interface {
	Name() string
	// ChooseMove returns false when there is nothing to play.
	ChooseMove(state game.State) (game.Coordinates, bool)
}

// generateMoves lists a placement target for every available cell, in the
// state's enumeration order.
func generateMoves(state game.State) []game.Coordinates {
	size := state.BoardSize()
	return lo.Map(state.AvailableCells(), func(index int, _ int) game.Coordinates {
		return game.FromIndex(index, size)
	})
}

// MeteredBot reports what its search cost alongside the move.
type MeteredBot interface {
	Bot
	ChooseMoveWithMetric(state game.State) (game.Coordinates, bool, metrics.SearchMetric)
}
