package experiments

import (
	"time"

	"domino/game"
	"domino/searcher"
	"domino/utils"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
)

// Throughput is the rollout rate of one goroutine count over a fixed set of
// positions.
type Throughput struct {
	Goroutines      int
	Searches        int
	Trials          int
	Duration        time.Duration
	TrialsPerSecond float64
}

// RunThroughputExperiment searches the same positions once per goroutine count
// and reports how many rollouts per second each count sustains.
func RunThroughputExperiment(players, positions, rollouts int, goroutines []int, seed int64, clock quartz.Clock) ([]Throughput, error) {
	matches, err := openPositions(players, positions, seed)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting throughput experiment on %d positions...", len(matches))

	results := make([]Throughput, 0, len(goroutines))
	for _, g := range goroutines {
		mc := searcher.NewMonteCarlo(
			searcher.WithRollouts(rollouts),
			searcher.WithGoroutines(g),
			searcher.WithMetrics(clock),
		)
		result := Throughput{Goroutines: mc.Goroutines()}
		rng := utils.NewRand(seed)
		for _, m := range matches {
			_, metric := mc.Search(m, m.Current(), rng)
			result.Searches++
			result.Trials += metric.Trials
			result.Duration += metric.Duration
		}
		if result.Duration > 0 {
			result.TrialsPerSecond = float64(result.Trials) / result.Duration.Seconds()
		}
		log.Info().Msgf("goroutines=%d: %d rollouts in %s (%.0f/s)", result.Goroutines, result.Trials, result.Duration, result.TrialsPerSecond)
		results = append(results, result)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}

// openPositions deals matches until it has n where the player to act can play.
func openPositions(players, n int, seed int64) ([]*game.Match, error) {
	rng := utils.NewRand(seed)
	matches := make([]*game.Match, 0, n)
	for len(matches) < n {
		m, err := game.NewMatch(players, game.NoTeams, utils.NewRand(rng.Int64()))
		if err != nil {
			return nil, err
		}
		player := m.Current()
		for len(m.LegalMoves(player)) == 0 {
			if _, ok := m.Draw(player); !ok {
				break
			}
		}
		if len(m.LegalMoves(player)) > 0 {
			matches = append(matches, m)
		}
	}
	return matches, nil
}
