package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	start := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	w, err := NewWriter(root, "rollouts", start)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "rollouts", "20240301T123000Z"), w.BaseDir())

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Experiment: "rollouts", Seat: 0, Kind: "montecarlo", Rollouts: 25, Goroutines: 4},
			{ID: 2, Experiment: "rollouts", Seat: 1, Kind: "random"},
		}))
		rows := readCSV(t, filepath.Join(w.BaseDir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "rollouts", "0", "montecarlo", "25", "4"}, rows[1])
		require.Equal(t, "random", rows[2][3])
	})

	t.Run("game records", func(t *testing.T) {
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			Game:       1,
			Experiment: "rollouts",
			GameMetric: GameMetric{
				ID:         "abc",
				Players:    4,
				Layout:     "across",
				Opener:     "6|6",
				Winner:     "team 0",
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 30,
				Blocked:    true,
			},
		}}))
		rows := readCSV(t, filepath.Join(w.BaseDir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "game", rows[0][0])
		require.Equal(t, []string{
			"1", "rollouts", "abc", "4", "across", "0", "6|6", "team 0",
			"2024-03-01T12:30:00Z", "2024-03-01T12:30:01Z", "1s", "30", "0", "0", "true",
		}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         1,
				Player:       2,
				Action:       "play",
				Tile:         "5|6",
				SearchMetric: SearchMetric{Candidates: 2, Trials: 50, Duration: time.Millisecond},
			},
		}}))
		rows := readCSV(t, filepath.Join(w.BaseDir(), "move_records.csv"))
		require.Equal(t, []string{"1", "1", "2", "play", "5|6", "1ms", "2", "50", "0"}, rows[1])
	})
}
