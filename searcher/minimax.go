package searcher

import (
	"fmt"
	"math"

	"gamey/experiments/metrics"
	"gamey/game"

	"github.com/rs/zerolog/log"
)

const MinimaxName = "minimax_bot"

type Option func(m *Minimax)

// Minimax searches the full game tree to a fixed depth and scores the leaves with
// a heuristic. It keeps no state between searches, so one instance can serve
// concurrent games as long as its heuristic is safe for concurrent use.
type Minimax struct {
	heuristic    game.Heuristic
	maxDepth     int
	newCollector func() metrics.Collector
}

func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.newCollector = metrics.NewCollector
	}
}

func NewMinimax(heuristic game.Heuristic, options ...Option) *Minimax {
	if heuristic == nil {
		panic("Must specify a heuristic")
	}
	m := &Minimax{ // Default values
		heuristic:    heuristic,
		maxDepth:     DefaultMaxDepth,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Name() string {
	return MinimaxName
}

func (m *Minimax) MaxDepth() int {
	return m.maxDepth
}

func (m *Minimax) ChooseMove(state game.State) (game.Coordinates, bool) {
	move, ok, _ := m.ChooseMoveWithMetric(state)
	return move, ok
}

// ChooseMoveWithMetric plays every candidate move, searches the resulting
// position and returns the first move with the highest score.
func (m *Minimax) ChooseMoveWithMetric(state game.State) (game.Coordinates, bool, metrics.SearchMetric) {
	c := m.newCollector()
	c.Start(m.maxDepth)

	player, ok := state.NextPlayer()
	if !ok {
		return game.Coordinates{}, false, c.Complete()
	}

	var bestMove game.Coordinates
	found := false
	bestScore := int32(math.MinInt32)
	for _, move := range generateMoves(state) {
		next, err := state.Play(game.Placement{Player: player, Coords: move})
		if err != nil {
			// Skip the candidate rather than abandon the whole decision
			log.Warn().Err(err).Msgf("cannot play generated move %v", move)
			continue
		}

		score := m.search(next, player, 1, m.maxDepth, c)
		if !found || score > bestScore {
			bestScore = score
			bestMove = move
			found = true
		}
	}

	metric := c.Complete()
	if found {
		log.Debug().
			Str("player", player.String()).
			Stringer("move", bestMove).
			Int32("score", bestScore).
			Int("evaluations", metric.Evaluations).
			Msg("minimax-chose-move")
	}
	return bestMove, found, metric
}

// search returns the minimax value of state from root's perspective.
func (m *Minimax) search(state game.State, root game.PlayerID, depth, maxDepth int, c metrics.Collector) int32 {
	if depth == maxDepth || state.CheckGameOver() {
		return m.leafScore(state, root, c)
	}

	moves := generateMoves(state)
	if len(moves) == 0 {
		return m.leafScore(state, root, c)
	}

	mover, ok := state.NextPlayer()
	if !ok {
		panic("state has available cells but no player to move")
	}
	c.AddNode()

	// Node type follows whose turn it is, not the depth parity
	maximizing := mover == root
	best := int32(math.MaxInt32)
	if maximizing {
		best = math.MinInt32
	}
	for _, move := range moves {
		next, err := state.Play(game.Placement{Player: mover, Coords: move})
		if err != nil {
			panic(fmt.Sprintf("cannot play generated move %v: %v", move, err))
		}

		score := m.search(next, root, depth+1, maxDepth, c)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// leafScore scores a decided game as a win or a loss for root, and anything else
// with the heuristic.
func (m *Minimax) leafScore(state game.State, root game.PlayerID, c metrics.Collector) int32 {
	if winner, ok := state.Winner(); ok {
		c.AddTerminal()
		if winner == root {
			return WinScore
		}
		return LossScore
	}

	c.AddEvaluation()
	score := m.heuristic.Evaluate(state, root)
	if score <= LossScore || score >= WinScore {
		panic(fmt.Sprintf("heuristic score %d out of range (%d, %d)", score, LossScore, WinScore))
	}
	return score
}
