package agent

import (
	"math/rand/v2"

	"domino/experiments/metrics"
	"domino/game"
	"domino/utils"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal tile, the
// same policy rollouts use.
func NewRandomAgent(seed int64) Agent {
	return &randomAgent{rng: utils.NewRand(seed)}
}

func (a *randomAgent) FindMove(match *game.Match, player int) (game.Tile, bool, metrics.SearchMetric) {
	moves := match.LegalMoves(player)
	if len(moves) == 0 {
		return game.Tile{}, false, metrics.SearchMetric{}
	}
	return moves[a.rng.IntN(len(moves))], true, metrics.SearchMetric{}
}
