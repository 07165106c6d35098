package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"domino/searcher/agent"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	output := t.TempDir()
	cfg := &Config{
		Output: output,
		Experiments: []ExperimentConfig{
			{
				Name:    "heads_up",
				Games:   3,
				Players: 2,
				Seed:    4,
				Seats: []SeatConfig{
					{Kind: agent.KindMonteCarlo, Rollouts: 2, Goroutines: 2},
					{Kind: agent.KindRandom},
				},
			},
			{
				Name:    "teams",
				Games:   2,
				Players: 4,
				Layout:  "across",
				Seed:    5,
				Seats: []SeatConfig{
					{Kind: agent.KindSampling, Rollouts: 2, Goroutines: 1, Temperature: 1},
					{Kind: agent.KindRandom},
					{Kind: agent.KindRandom},
					{Kind: agent.KindRandom},
				},
			},
		},
	}

	trackers, err := Run(cfg, quartz.NewMock(t))
	require.NoError(t, err)
	require.Len(t, trackers, 2)

	headsUp := trackers[0]
	require.Equal(t, 3, headsUp.Games)
	require.Equal(t, 3, headsUp.SeatWins[0]+headsUp.SeatWins[1]+headsUp.Ties)

	teams := trackers[1]
	require.Equal(t, 2, teams.Games)
	require.Equal(t, 2, teams.TeamWins[0]+teams.TeamWins[1]+teams.Ties)

	for _, name := range []string{"heads_up", "teams"} {
		runs, err := os.ReadDir(filepath.Join(output, name))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(output, name, runs[0].Name(), file))
		}
	}

	t.Run("same seed same outcome", func(t *testing.T) {
		cfg.Output = t.TempDir()
		again, err := Run(cfg, quartz.NewMock(t))
		require.NoError(t, err)
		require.Equal(t, trackers, again)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := Run(&Config{Output: t.TempDir()}, quartz.NewMock(t))
		require.Error(t, err)
	})
}

func TestRunThroughputExperiment(t *testing.T) {
	results, err := RunThroughputExperiment(4, 3, 2, []int{1, 4}, 7, quartz.NewMock(t))
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, 1, results[0].Goroutines)
	require.Equal(t, 4, results[1].Goroutines)
	for _, r := range results {
		require.Equal(t, 3, r.Searches)
		require.Positive(t, r.Trials)
		require.Zero(t, r.Duration, "mock clock does not move")
		require.Zero(t, r.TrialsPerSecond)
	}
	require.Equal(t, results[0].Trials, results[1].Trials)

	_, err = RunThroughputExperiment(3, 1, 1, []int{1}, 1, quartz.NewMock(t))
	require.Error(t, err)
}
