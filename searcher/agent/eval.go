package agent

import (
	"math/rand/v2"

	"domino/experiments/metrics"
	"domino/game"
	"domino/searcher"
	"domino/utils"
)

type evaluationAgent struct {
	mc  *searcher.MonteCarlo
	rng *rand.Rand
}

// NewEvaluationAgent returns an agent that always plays the best scoring tile.
func NewEvaluationAgent(mc *searcher.MonteCarlo, seed int64) Agent {
	return &evaluationAgent{mc: mc, rng: utils.NewRand(seed)}
}

func (a *evaluationAgent) FindMove(match *game.Match, player int) (game.Tile, bool, metrics.SearchMetric) {
	return a.mc.SelectMove(match, player, a.rng)
}
