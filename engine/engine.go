package engine

import (
	"domino/experiments/metrics"
	"domino/game"
)

type Runner interface {
	// Run plays a match to the end and returns the result with its metrics
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Runner = (*Engine)(nil)
