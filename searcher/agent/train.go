package agent

import (
	"math"
	"math/rand/v2"

	"domino/experiments/metrics"
	"domino/game"
	"domino/searcher"
	"domino/utils"
)

type samplingAgent struct {
	mc          *searcher.MonteCarlo
	rng         *rand.Rand
	temperature float64
}

// NewSamplingAgent returns an agent that samples a tile in proportion to its
// temperature-adjusted rollout score. Lower temperatures play closer to the
// evaluation agent.
func NewSamplingAgent(mc *searcher.MonteCarlo, temperature float64, seed int64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &samplingAgent{mc: mc, rng: utils.NewRand(seed), temperature: temperature}
}

func (a *samplingAgent) FindMove(match *game.Match, player int) (game.Tile, bool, metrics.SearchMetric) {
	scores, metric := a.mc.Search(match, player, a.rng)
	if len(scores) == 0 {
		return game.Tile{}, false, metric
	}
	policy := adjustTemperature(scores, a.temperature)
	return scores[sample(policy, a.rng.Float64())].Tile, true, metric
}

func adjustTemperature(scores []searcher.MoveScore, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(scores))
	for i, s := range scores {
		prob := math.Pow(s.Score, exponent)
		sum += prob
		adjusted[i] = prob
	}
	if sum == 0 { // Every candidate lost every rollout
		for i := range adjusted {
			adjusted[i] = 1 / float64(len(adjusted))
		}
		return adjusted
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(policy []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
