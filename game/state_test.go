package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(t *testing.T, g *GameY, index int) {
	t.Helper()
	player, ok := g.NextPlayer()
	require.True(t, ok, "Game should not be over before placing on %d", index)
	require.NoError(t, g.AddMove(Placement{Player: player, Coords: FromIndex(index, g.BoardSize())}))
}

func TestNewGameY(t *testing.T) {
	g := NewGameY(4)

	require.Equal(t, 4, g.BoardSize())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, g.AvailableCells(), "All cells should be available")
	player, ok := g.NextPlayer()
	require.True(t, ok)
	require.Equal(t, Blue, player, "Blue should move first")
	require.False(t, g.CheckGameOver())
	_, won := g.Winner()
	require.False(t, won)
	require.Panics(t, func() { NewGameY(0) }, "Should panic on an empty board")
}

func TestGameYAddMove(t *testing.T) {
	t.Run("placing alternates turns and removes the cell", func(t *testing.T) {
		g := NewGameY(3)
		place(t, g, 4)

		player, _ := g.NextPlayer()
		require.Equal(t, Red, player, "Red should move after Blue")
		require.NotContains(t, g.AvailableCells(), 4)
		owner, ok := g.Owner(FromIndex(4, 3))
		require.True(t, ok)
		require.Equal(t, Blue, owner)
	})

	t.Run("rejecting an occupied cell", func(t *testing.T) {
		g := NewGameY(3)
		place(t, g, 4)

		err := g.AddMove(Placement{Player: Red, Coords: FromIndex(4, 3)})
		require.ErrorIs(t, err, ErrCellOccupied)
	})

	t.Run("rejecting a placement out of turn", func(t *testing.T) {
		g := NewGameY(3)

		err := g.AddMove(Placement{Player: Red, Coords: FromIndex(0, 3)})
		require.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("rejecting coordinates off the board", func(t *testing.T) {
		g := NewGameY(3)

		err := g.AddMove(Placement{Player: Blue, Coords: NewCoordinates(3, 0, 0)})
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("connecting all three sides wins", func(t *testing.T) {
		g := NewGameY(3)
		// Blue fills the bottom row, Red plays the top rows
		for _, index := range []int{3, 0, 4, 1} {
			place(t, g, index)
		}
		require.False(t, g.CheckGameOver())
		place(t, g, 5)

		require.True(t, g.CheckGameOver(), "Bottom row touches all three sides")
		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, Blue, winner)
		_, ok = g.NextPlayer()
		require.False(t, ok, "No player should move after the game is won")
		require.Empty(t, g.AvailableCells(), "No cells should be available after the game is won")
		require.ErrorIs(t, g.AddMove(Placement{Player: Red, Coords: FromIndex(2, 3)}), ErrGameOver)
	})

	t.Run("resigning concedes to the opponent", func(t *testing.T) {
		g := NewGameY(3)
		require.NoError(t, g.AddMove(Resign{Player: Blue}))

		winner, ok := g.Winner()
		require.True(t, ok)
		require.Equal(t, Red, winner)
		require.True(t, g.CheckGameOver())
	})
}

func TestGameYPlay(t *testing.T) {
	t.Run("playing leaves the original untouched", func(t *testing.T) {
		g := NewGameY(3)
		next, err := g.Play(Placement{Player: Blue, Coords: FromIndex(2, 3)})
		require.NoError(t, err)

		require.Len(t, g.AvailableCells(), 6, "Original should keep all cells")
		require.Len(t, next.AvailableCells(), 5, "Copy should lose the played cell")
		require.Empty(t, g.SetsOfPlayer(Blue), "Original should have no groups")
		require.Len(t, next.(*GameY).SetsOfPlayer(Blue), 1)
	})

	t.Run("sibling copies are independent", func(t *testing.T) {
		g := NewGameY(3)
		a, err := g.Play(Placement{Player: Blue, Coords: FromIndex(0, 3)})
		require.NoError(t, err)
		b, err := g.Play(Placement{Player: Blue, Coords: FromIndex(5, 3)})
		require.NoError(t, err)

		require.NotContains(t, a.AvailableCells(), 0)
		require.Contains(t, a.AvailableCells(), 5)
		require.NotContains(t, b.AvailableCells(), 5)
		require.Contains(t, b.AvailableCells(), 0)
		require.NotEqual(t, a.(*GameY).Hash(), b.(*GameY).Hash())
	})

	t.Run("returning the error of an illegal move", func(t *testing.T) {
		g := NewGameY(3)
		place(t, g, 0)

		next, err := g.Play(Placement{Player: Red, Coords: FromIndex(0, 3)})
		require.ErrorIs(t, err, ErrCellOccupied)
		require.Nil(t, next)
	})
}

func TestGameYSets(t *testing.T) {
	t.Run("merging adjacent stones into one group", func(t *testing.T) {
		g := NewGameY(4)
		// Blue: 6, 7, 8 along the bottom row; Red: 0, 1 at the top
		for _, index := range []int{6, 0, 7, 1, 8} {
			place(t, g, index)
		}

		sets := g.SetsOfPlayer(Blue)
		require.Len(t, sets, 1, "Bottom row stones should form one group")
		require.Equal(t, PlayerSet{Player: Blue, Size: 3, TouchesA: true, TouchesB: true}, sets[0])
		require.Equal(t, 2, sets[0].Sides())

		red := g.SetsOfPlayer(Red)
		require.Len(t, red, 1)
		require.Equal(t, 2, red[0].Size)
	})

	t.Run("keeping separate groups apart", func(t *testing.T) {
		g := NewGameY(4)
		for _, index := range []int{6, 0, 9} {
			place(t, g, index)
		}

		require.Len(t, g.SetsOfPlayer(Blue), 2, "Opposite corners should not connect")
	})
}

func TestGameYHash(t *testing.T) {
	g := NewGameY(4)
	require.Equal(t, g.Hash(), g.Copy().Hash(), "Copies should hash equally")

	place(t, g, 3)
	other := NewGameY(4)
	place(t, other, 4)
	require.NotEqual(t, g.Hash(), other.Hash(), "Different stones should hash differently")
}
