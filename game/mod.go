package game

type PlayerID uint32

const (
	Blue PlayerID = iota // moves first
	Red
)

const NumPlayers = 2

func (p PlayerID) String() string {
	switch p {
	case Blue:
		return "B"
	case Red:
		return "R"
	}
	return "?"
}

// Other returns the opponent in a two player game.
func (p PlayerID) Other() PlayerID {
	return (p + 1) % NumPlayers
}

// State is what a searcher needs from a board. Play never mutates the receiver:
// it derives an independent copy, applies the movement to it and returns it.
type State interface {
	AvailableCells() []int
	BoardSize() int
	NextPlayer() (PlayerID, bool)
	CheckGameOver() bool
	Winner() (PlayerID, bool)
	Play(Movement) (State, error)
}

// Heuristic scores a non-terminal state from player's perspective.
// Implementations must be deterministic, must not mutate the state and must be
// safe for concurrent use.
type Heuristic interface {
	Evaluate(state State, player PlayerID) int32
}

// HeuristicFunc adapts a plain function to a Heuristic.
type HeuristicFunc func(state State, player PlayerID) int32

func (f HeuristicFunc) Evaluate(state State, player PlayerID) int32 {
	return f(state, player)
}

// Grouped is implemented by states that track connected groups of stones.
type Grouped interface {
	SetsOfPlayer(player PlayerID) []PlayerSet
}
