package agent

import (
	"domino/experiments/metrics"
	"domino/game"
)

// Kinds of seat an experiment or the CLI can configure.
const (
	KindMonteCarlo = "montecarlo"
	KindSampling   = "sampling"
	KindRandom     = "random"
)

type Agent interface {
	// FindMove returns the tile to play for player and search metrics (if collected),
	// or false when the agent does not play.
	FindMove(match *game.Match, player int) (game.Tile, bool, metrics.SearchMetric)
}
