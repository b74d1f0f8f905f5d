package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const empty = -1

var (
	ErrGameOver     = errors.New("game is over")
	ErrCellOccupied = errors.New("cell is occupied")
	ErrOutOfBounds  = errors.New("coordinates are out of bounds")
	ErrNotYourTurn  = errors.New("not the player's turn")
)

type StateHash uint64

// GameY is a position of the game of Y: a triangular board where the first player
// to connect all three sides with one group wins.
type GameY struct {
	size      int
	owners    []int       // Owner per cell index, empty (-1) when unoccupied
	parent    []int       // Union-find forest over occupied cells
	sets      []PlayerSet // Group statistics, valid at root cells only
	turn      PlayerID
	moves     int
	finished  bool
	winner    PlayerID
	hasWinner bool
}

// NewGameY returns an empty board of the given size with Blue to move.
func NewGameY(size int) *GameY {
	if size < 1 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	n := NumCells(size)
	g := &GameY{
		size:   size,
		owners: make([]int, n),
		parent: make([]int, n),
		sets:   make([]PlayerSet, n),
		turn:   Blue,
	}
	for i := range g.owners {
		g.owners[i] = empty
		g.parent[i] = empty
	}
	return g
}

// Copy returns a fully detached copy of the position.
func (g *GameY) Copy() *GameY {
	owners := make([]int, len(g.owners))
	copy(owners, g.owners)

	parent := make([]int, len(g.parent))
	copy(parent, g.parent)

	sets := make([]PlayerSet, len(g.sets))
	copy(sets, g.sets)

	return &GameY{
		size:      g.size,
		owners:    owners,
		parent:    parent,
		sets:      sets,
		turn:      g.turn,
		moves:     g.moves,
		finished:  g.finished,
		winner:    g.winner,
		hasWinner: g.hasWinner,
	}
}

func (g *GameY) BoardSize() int {
	return g.size
}

// AvailableCells returns the empty cell indices in ascending order.
func (g *GameY) AvailableCells() []int {
	if g.finished {
		return []int{}
	}
	cells := make([]int, 0, len(g.owners)-g.moves)
	for index, owner := range g.owners {
		if owner == empty {
			cells = append(cells, index)
		}
	}
	return cells
}

func (g *GameY) NextPlayer() (PlayerID, bool) {
	if g.finished {
		return 0, false
	}
	return g.turn, true
}

func (g *GameY) CheckGameOver() bool {
	return g.finished
}

func (g *GameY) Winner() (PlayerID, bool) {
	return g.winner, g.hasWinner
}

// Moves is the number of stones on the board.
func (g *GameY) Moves() int {
	return g.moves
}

// Owner returns the player occupying the cell, if any.
func (g *GameY) Owner(c Coordinates) (PlayerID, bool) {
	if !c.Valid(g.size) {
		return 0, false
	}
	owner := g.owners[c.ToIndex(g.size)]
	if owner == empty {
		return 0, false
	}
	return PlayerID(owner), true
}

// Play applies the movement to a copy of the position and returns the copy.
func (g *GameY) Play(m Movement) (State, error) {
	next := g.Copy()
	if err := next.AddMove(m); err != nil {
		return nil, err
	}
	return next, nil
}

// AddMove applies the movement in place. Only call it on a position you own.
func (g *GameY) AddMove(m Movement) error {
	if g.finished {
		return fmt.Errorf("cannot play %v: %w", m, ErrGameOver)
	}

	switch m := m.(type) {
	case Placement:
		return g.place(m)
	case Resign:
		g.finish(m.Player.Other(), true)
		return nil
	default:
		return fmt.Errorf("unknown movement %T", m)
	}
}

func (g *GameY) place(p Placement) error {
	if p.Player != g.turn {
		return fmt.Errorf("cannot place %v: %w", p, ErrNotYourTurn)
	}
	if !p.Coords.Valid(g.size) {
		return fmt.Errorf("cannot place %v on board of size %d: %w", p, g.size, ErrOutOfBounds)
	}
	index := p.Coords.ToIndex(g.size)
	if g.owners[index] != empty {
		return fmt.Errorf("cannot place %v: %w", p, ErrCellOccupied)
	}

	root := g.occupy(index, p.Player)
	switch {
	case g.sets[root].isWinning():
		g.finish(p.Player, true)
	case g.moves == len(g.owners):
		g.finish(0, false)
	default:
		g.turn = g.turn.Other()
	}
	return nil
}

// occupy puts a stone on an empty cell and merges it with adjacent friendly groups.
// It returns the root of the resulting group.
func (g *GameY) occupy(index int, player PlayerID) int {
	c := FromIndex(index, g.size)
	g.owners[index] = int(player)
	g.parent[index] = index
	g.sets[index] = newPlayerSet(player, c)
	g.moves++

	root := index
	for _, n := range c.Neighbors(g.size) {
		if g.owners[n.ToIndex(g.size)] == int(player) {
			root = g.union(root, n.ToIndex(g.size))
		}
	}
	return root
}

func (g *GameY) finish(winner PlayerID, hasWinner bool) {
	g.finished = true
	g.winner = winner
	g.hasWinner = hasWinner
}

// Hash identifies the position: board size, player to move, status and stones.
func (g *GameY) Hash() StateHash {
	d := xxhash.New()
	header := []byte{byte(g.size), byte(g.size >> 8), byte(g.turn), 0}
	if g.finished {
		header[3] = 1
	}
	d.Write(header)
	cells := make([]byte, len(g.owners))
	for i, owner := range g.owners {
		cells[i] = byte(owner + 1)
	}
	d.Write(cells)
	return StateHash(d.Sum64())
}

// String renders the board layout in YEN notation.
func (g *GameY) String() string {
	var b strings.Builder
	for r := 0; r < g.size; r++ {
		if r > 0 {
			b.WriteByte('/')
		}
		for c := 0; c <= r; c++ {
			owner := g.owners[r*(r+1)/2+c]
			if owner == empty {
				b.WriteByte('.')
			} else {
				b.WriteString(PlayerID(owner).String())
			}
		}
	}
	return b.String()
}
