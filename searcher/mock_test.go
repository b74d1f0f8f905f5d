package searcher

import (
	"errors"

	"gamey/game"
)

const mockSize = 3

// mockState is a hand-built game tree. Play follows children by cell index and
// rejects moves for anyone but the player to move.
type mockState struct {
	cells    []int
	player   game.PlayerID
	toMove   bool
	over     bool
	winner   game.PlayerID
	won      bool
	value    int32 // Returned by valueHeuristic
	children map[int]mockState
}

func (m mockState) AvailableCells() []int {
	return m.cells
}

func (m mockState) BoardSize() int {
	return mockSize
}

func (m mockState) NextPlayer() (game.PlayerID, bool) {
	return m.player, m.toMove
}

func (m mockState) CheckGameOver() bool {
	return m.over
}

func (m mockState) Winner() (game.PlayerID, bool) {
	return m.winner, m.won
}

func (m mockState) Play(move game.Movement) (game.State, error) {
	p, ok := move.(game.Placement)
	if !ok {
		return nil, errors.New("unexpected movement")
	}
	if !m.toMove || p.Player != m.player {
		return nil, game.ErrNotYourTurn
	}
	child, ok := m.children[p.Coords.ToIndex(mockSize)]
	if !ok {
		return nil, game.ErrCellOccupied
	}
	return child, nil
}

func leaf(value int32) mockState {
	return mockState{value: value}
}

// turn builds a node where player moves into the given children.
func turn(player game.PlayerID, children map[int]mockState) mockState {
	cells := make([]int, 0, len(children))
	for i := 0; i < game.NumCells(mockSize); i++ {
		if _, ok := children[i]; ok {
			cells = append(cells, i)
		}
	}
	return mockState{cells: cells, player: player, toMove: true, children: children}
}

var valueHeuristic = game.HeuristicFunc(func(state game.State, _ game.PlayerID) int32 {
	return state.(mockState).value
})

func constant(value int32) game.Heuristic {
	return game.HeuristicFunc(func(game.State, game.PlayerID) int32 {
		return value
	})
}

// counter counts its evaluations. Not safe for concurrent use.
type counter struct {
	calls int
}

func (c *counter) Evaluate(game.State, game.PlayerID) int32 {
	c.calls++
	return 0
}
