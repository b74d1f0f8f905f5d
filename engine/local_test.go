package engine

import (
	"testing"

	"gamey/game"
	"gamey/searcher"

	"github.com/stretchr/testify/require"
)

// fixed always plays the same cell, or resigns when cell is negative.
type fixed struct {
	cell int
}

func (f fixed) Name() string {
	return "fixed_bot"
}

func (f fixed) ChooseMove(state game.State) (game.Coordinates, bool) {
	if f.cell < 0 {
		return game.Coordinates{}, false
	}
	return game.FromIndex(f.cell, state.BoardSize()), true
}

func TestEngineRun(t *testing.T) {
	t.Run("playing a game to a winner", func(t *testing.T) {
		e := LocalEngine(searcher.NewRandom(1), searcher.NewRandom(2), 5, 0)

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.CheckGameOver())
		require.True(t, gameMetric.HasWinner, "A Y game cannot end in a draw")
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, e.State.Moves(), gameMetric.TotalMoves)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, game.PlayerID(i%2), m.Player, "Players should alternate starting with blue")
			require.Equal(t, searcher.RandomName, m.Bot)
		}
		require.Equal(t, e.State.Hash(), moveMetrics[len(moveMetrics)-1].Hash)
	})

	t.Run("recording search metrics of metered bots", func(t *testing.T) {
		minimax := searcher.NewMinimax(game.SetBasedHeuristic{}, searcher.WithMaxDepth(1), searcher.WithMetrics())
		e := LocalEngine(minimax, searcher.NewRandom(3), 4, 2)

		_, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Len(t, moveMetrics, 2)
		require.Equal(t, 1, moveMetrics[0].MaxDepth)
		require.Equal(t, game.NumCells(4), moveMetrics[0].Evaluations, "Depth 1 should evaluate every candidate")
		require.Zero(t, moveMetrics[1].Evaluations, "Random bot reports no search")
		require.Positive(t, moveMetrics[1].Duration, "Engine should time unmetered bots")
	})

	t.Run("stopping at the move limit", func(t *testing.T) {
		e := LocalEngine(searcher.NewRandom(1), searcher.NewRandom(2), 6, 3)

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.False(t, gameMetric.HasWinner)
		require.False(t, e.State.CheckGameOver())
		require.Len(t, moveMetrics, 3)
	})

	t.Run("resigning when a bot finds no move", func(t *testing.T) {
		e := LocalEngine(fixed{cell: -1}, searcher.NewRandom(2), 4, 0)

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, gameMetric.HasWinner)
		require.Equal(t, game.Red, gameMetric.Winner)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, -1, moveMetrics[0].Index)
	})

	t.Run("failing on an illegal move", func(t *testing.T) {
		e := LocalEngine(fixed{cell: 0}, fixed{cell: 0}, 4, 0)

		_, moveMetrics, err := e.Run()

		require.ErrorIs(t, err, game.ErrCellOccupied)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("panics without bots", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(nil, searcher.NewRandom(1), 4, 0) })
	})
}
