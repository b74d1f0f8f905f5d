package searcher

import "math"

// Hyperparameters for minimax

const DefaultMaxDepth = 2

// Leaf scores of decided games, one step inside the int32 range so that no
// comparison can overflow. Heuristic scores must lie strictly between them.
const (
	WinScore  = int32(math.MaxInt32 - 1)
	LossScore = int32(math.MinInt32 + 1)
)
