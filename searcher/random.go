package searcher

import (
	"sync"

	"gamey/game"

	"golang.org/x/exp/rand"
)

const RandomName = "random_bot"

// Random plays a uniformly random available cell.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return RandomName
}

func (r *Random) ChooseMove(state game.State) (game.Coordinates, bool) {
	if _, ok := state.NextPlayer(); !ok {
		return game.Coordinates{}, false
	}
	moves := generateMoves(state)
	if len(moves) == 0 {
		return game.Coordinates{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return moves[r.rng.Intn(len(moves))], true
}
