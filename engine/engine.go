package engine

import "gamey/experiments/metrics"

type Runner interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
