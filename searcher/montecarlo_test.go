package searcher

import (
	"testing"

	"domino/game"
	"domino/utils"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

// position builds a two-player match with board [2|5] owned by player 1 and
// every tile outside the hands in the stock.
func position(t *testing.T, first, second []game.Tile) *game.Match {
	t.Helper()
	board := []game.Tile{{Left: 2, Right: 5}}
	var stock []game.Tile
	for _, tile := range game.GenerateTiles() {
		used := tile.Same(board[0])
		for _, hand := range [][]game.Tile{first, second} {
			for _, h := range hand {
				used = used || tile.Same(h)
			}
		}
		if !used {
			stock = append(stock, tile)
		}
	}
	m, err := game.Restore(game.Snapshot{
		Players: 2,
		Hands:   [][]game.Tile{first, second},
		Stock:   stock,
		Board:   board,
		Owners:  []int{1},
	})
	require.NoError(t, err)
	return m
}

func TestSelectMove(t *testing.T) {
	t.Run("single legal move with one rollout", func(t *testing.T) {
		m := position(t,
			[]game.Tile{game.NewTile(5, 6), game.NewTile(0, 0)},
			[]game.Tile{game.NewTile(1, 1), game.NewTile(3, 4)})

		tile, ok := SelectMove(m, 0, 1, utils.NewRand(3))
		require.True(t, ok)
		require.Equal(t, game.NewTile(5, 6), tile)

		scores, _ := NewMonteCarlo(WithRollouts(1)).Search(m, 0, utils.NewRand(3))
		require.Len(t, scores, 1)
		require.Contains(t, []float64{0, 1}, scores[0].Score)

		again, _ := NewMonteCarlo(WithRollouts(1)).Search(m, 0, utils.NewRand(3))
		require.Equal(t, scores, again)
	})

	t.Run("no legal move", func(t *testing.T) {
		m := position(t,
			[]game.Tile{game.NewTile(0, 0), game.NewTile(1, 3)},
			[]game.Tile{game.NewTile(1, 1)})

		tile, ok := SelectMove(m, 0, 5, utils.NewRand(1))
		require.False(t, ok)
		require.Equal(t, game.Tile{}, tile)
	})

	t.Run("emptying the hand always wins", func(t *testing.T) {
		m := position(t,
			[]game.Tile{game.NewTile(5, 6)},
			[]game.Tile{game.NewTile(1, 1)})

		scores, metric := NewMonteCarlo(WithRollouts(10)).Search(m, 0, utils.NewRand(1))
		require.Equal(t, []MoveScore{{Tile: game.NewTile(5, 6), Wins: 10, Trials: 10, Score: 1}}, scores)
		require.Zero(t, metric, "no metrics without a clock")
	})

	t.Run("rejects zero rollouts", func(t *testing.T) {
		m := position(t, []game.Tile{game.NewTile(5, 6)}, []game.Tile{game.NewTile(1, 1)})
		require.Panics(t, func() { SelectMove(m, 0, 0, utils.NewRand(1)) })
		require.Panics(t, func() { NewMonteCarlo() })
	})

	t.Run("rejects out of turn and finished matches", func(t *testing.T) {
		m := position(t, []game.Tile{game.NewTile(5, 6)}, []game.Tile{game.NewTile(1, 1)})
		require.Panics(t, func() { SelectMove(m, 1, 1, utils.NewRand(1)) })

		require.NoError(t, m.ApplyMove(0, game.NewTile(5, 6)))
		require.True(t, m.IsOver())
		require.Panics(t, func() { SelectMove(m, 1, 1, utils.NewRand(1)) })
	})

	t.Run("leaves the match untouched", func(t *testing.T) {
		m, err := game.NewMatch(4, game.NoTeams, utils.NewRand(5))
		require.NoError(t, err)
		before := m.Snapshot()
		hash := m.Hash()

		SelectMove(m, m.Current(), 20, utils.NewRand(6))
		require.Equal(t, hash, m.Hash())
		require.Equal(t, before, m.Snapshot())
	})
}

func TestSearch(t *testing.T) {
	t.Run("same result for any number of goroutines", func(t *testing.T) {
		teams, err := game.ParseLayout(game.LayoutAcross, 4)
		require.NoError(t, err)
		m, err := game.NewMatch(4, teams, utils.NewRand(12))
		require.NoError(t, err)
		for len(m.LegalMoves(m.Current())) == 0 {
			m.Pass(m.Current())
		}

		sequential, _ := NewMonteCarlo(WithRollouts(30)).Search(m, m.Current(), utils.NewRand(99))
		parallel, _ := NewMonteCarlo(WithRollouts(30), WithGoroutines(8)).Search(m, m.Current(), utils.NewRand(99))
		require.NotEmpty(t, sequential)
		require.Equal(t, sequential, parallel)
		for _, s := range sequential {
			require.Equal(t, 30, s.Trials)
			require.InDelta(t, float64(s.Wins)/30, s.Score, 1e-9)
		}
	})

	t.Run("metrics count every trial", func(t *testing.T) {
		m, err := game.NewMatch(4, game.NoTeams, utils.NewRand(4))
		require.NoError(t, err)
		for len(m.LegalMoves(m.Current())) == 0 {
			m.Pass(m.Current())
		}
		candidates := len(m.LegalMoves(m.Current()))

		mc := NewMonteCarlo(WithRollouts(7), WithGoroutines(3), WithMetrics(quartz.NewMock(t)))
		_, metric := mc.Search(m, m.Current(), utils.NewRand(1))
		require.Equal(t, 3, metric.Goroutines)
		require.Equal(t, 7, metric.Rollouts)
		require.Equal(t, candidates, metric.Candidates)
		require.Equal(t, 7*candidates, metric.Trials)
		require.Zero(t, metric.Skipped)
		require.Zero(t, metric.Duration)
	})

	t.Run("failed synthetic moves are skipped but still dilute the score", func(t *testing.T) {
		m := position(t,
			[]game.Tile{game.NewTile(5, 6)},
			[]game.Tile{game.NewTile(1, 1)})
		mc := NewMonteCarlo(WithRollouts(4), WithMetrics(quartz.NewMock(t)))

		scores, metric := mc.score(m, 0, []game.Tile{game.NewTile(0, 0), game.NewTile(5, 6)}, utils.NewRand(2))
		require.Equal(t, MoveScore{Tile: game.NewTile(0, 0), Skipped: 4}, scores[0])
		require.Equal(t, MoveScore{Tile: game.NewTile(5, 6), Wins: 4, Trials: 4, Score: 1}, scores[1])
		require.Equal(t, 4, metric.Skipped)
		require.Equal(t, 4, metric.Trials)
	})
}

func TestBest(t *testing.T) {
	scores := []MoveScore{
		{Tile: game.NewTile(0, 1), Score: 0.5},
		{Tile: game.NewTile(1, 2), Score: 0.75},
		{Tile: game.NewTile(2, 3), Score: 0.75},
	}
	require.Equal(t, 1, best(scores), "first of the equal best scores")
	require.Equal(t, 0, best(scores[:1]))
}
