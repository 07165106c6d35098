package searcher

import (
	"math/rand/v2"

	"domino/experiments/metrics"
	"domino/game"
	"domino/utils"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(mc *MonteCarlo)

// MoveScore is the rollout record of one candidate tile. Skipped trials count
// towards neither Wins nor Trials, but Score still divides by the configured
// number of rollouts.
type MoveScore struct {
	Tile    game.Tile
	Wins    int
	Trials  int
	Skipped int
	Score   float64
}

// MonteCarlo scores every legal tile by the share of uniformly random playouts
// the acting player (or their team) wins after playing it.
type MonteCarlo struct {
	rollouts   int
	goroutines int
	clock      quartz.Clock
}

type outcome int8

const (
	outcomeLoss outcome = iota
	outcomeWin
	outcomeSkipped
)

func WithRollouts(rollouts int) Option {
	return func(mc *MonteCarlo) {
		mc.rollouts = rollouts
	}
}

func WithGoroutines(goroutines int) Option {
	return func(mc *MonteCarlo) {
		if goroutines > 0 {
			mc.goroutines = goroutines
		}
	}
}

func WithMetrics(clock quartz.Clock) Option {
	return func(mc *MonteCarlo) {
		mc.clock = clock
	}
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	mc := &MonteCarlo{ // Default values
		goroutines: 1,
	}
	for _, option := range options {
		option(mc)
	}
	if mc.rollouts < 1 {
		panic("Must specify at least one rollout per move")
	}
	return mc
}

func (mc *MonteCarlo) Rollouts() int {
	return mc.rollouts
}

func (mc *MonteCarlo) Goroutines() int {
	return mc.goroutines
}

// SelectMove returns the best scoring legal tile for player, the first one in
// hand order on equal scores. It returns false when player has no legal tile.
func (mc *MonteCarlo) SelectMove(m *game.Match, player int, rng *rand.Rand) (game.Tile, bool, metrics.SearchMetric) {
	scores, metric := mc.Search(m, player, rng)
	if len(scores) == 0 {
		return game.Tile{}, false, metric
	}
	return scores[best(scores)].Tile, true, metric
}

// best returns the index of the highest score, the earliest on ties.
func best(scores []MoveScore) int {
	index := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[index].Score {
			index = i
		}
	}
	return index
}

// Search scores every legal tile of player. The match is only read; every trial
// runs on its own clone.
func (mc *MonteCarlo) Search(m *game.Match, player int, rng *rand.Rand) ([]MoveScore, metrics.SearchMetric) {
	if m.IsOver() {
		panic("cannot search a match that is over")
	}
	if player != m.Current() {
		panic("cannot search for a player that is not to act")
	}
	return mc.score(m, player, m.LegalMoves(player), rng)
}

func (mc *MonteCarlo) score(m *game.Match, player int, candidates []game.Tile, rng *rand.Rand) ([]MoveScore, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if mc.clock != nil {
		collector = metrics.NewCollector(mc.clock)
	}
	collector.Start(mc.goroutines, mc.rollouts, len(candidates))
	if len(candidates) == 0 {
		return nil, collector.Complete()
	}

	// Seeds are drawn up front so results do not depend on scheduling.
	seeds := utils.Seeds(rng, len(candidates)*mc.rollouts)
	outcomes := make([]outcome, len(seeds))

	var g errgroup.Group
	g.SetLimit(mc.goroutines)
	for i, seed := range seeds {
		tile := candidates[i/mc.rollouts]
		g.Go(func() error {
			outcomes[i] = trial(m, player, tile, seed)
			if outcomes[i] == outcomeSkipped {
				collector.AddSkipped()
			} else {
				collector.AddTrial()
			}
			return nil
		})
	}
	_ = g.Wait()

	scores := make([]MoveScore, len(candidates))
	for c, tile := range candidates {
		s := MoveScore{Tile: tile}
		for _, o := range outcomes[c*mc.rollouts : (c+1)*mc.rollouts] {
			switch o {
			case outcomeWin:
				s.Wins++
				s.Trials++
			case outcomeLoss:
				s.Trials++
			case outcomeSkipped:
				s.Skipped++
			}
		}
		s.Score = float64(s.Wins) / float64(mc.rollouts)
		scores[c] = s
		log.Debug().Msgf("player %d candidate %s won %d of %d rollouts (%d skipped)", player, tile, s.Wins, mc.rollouts, s.Skipped)
	}
	return scores, collector.Complete()
}

func trial(m *game.Match, player int, tile game.Tile, seed int64) outcome {
	c := m.Clone()
	if err := c.ApplyMove(player, tile); err != nil {
		return outcomeSkipped
	}
	c.Playout(utils.NewRand(seed))
	if c.Winner().Includes(player, c.Teams()) {
		return outcomeWin
	}
	return outcomeLoss
}

// SelectMove runs a sequential Monte Carlo search with rollouts playouts per
// legal tile and returns the best one, or false when player cannot play.
func SelectMove(m *game.Match, player, rollouts int, rng *rand.Rand) (game.Tile, bool) {
	if rollouts < 1 {
		panic("rollouts must be at least 1")
	}
	tile, ok, _ := NewMonteCarlo(WithRollouts(rollouts)).SelectMove(m, player, rng)
	return tile, ok
}
