package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one seat's agent within an experiment.
type AgentConfig struct {
	ID         int
	Experiment string
	Seat       int
	Kind       string
	Rollouts   int
	Goroutines int
}

type GameRecord struct {
	Game       int // Sequence number within the run
	Experiment string
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Game
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by experiment and start time.
func NewWriter(root, name string, start time.Time) (*Writer, error) {
	baseDir := filepath.Join(root, name, start.UTC().Format("20060102T150405Z"))
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "experiment", "seat", "kind", "rollouts", "goroutines"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Experiment,
			strconv.Itoa(config.Seat),
			config.Kind,
			strconv.Itoa(config.Rollouts),
			strconv.Itoa(config.Goroutines),
		})
	}
	return w.write("agent_configs.csv", "agent configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"game", "experiment", "id", "players", "layout", "starting_player", "opener", "winner",
		"start_time", "end_time", "duration", "total_moves", "draws", "passes", "blocked",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			record.Experiment,
			record.ID,
			strconv.Itoa(record.Players),
			record.Layout,
			strconv.Itoa(record.StartingPlayer),
			record.Opener,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Passes),
			strconv.FormatBool(record.Blocked),
		})
	}
	return w.write("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "tile", "duration", "candidates", "trials", "skipped"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action,
			record.Tile,
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Trials),
			strconv.Itoa(record.Skipped),
		})
	}
	return w.write("move_records.csv", "move records", header, rows)
}

func (w *Writer) write(file, what string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, file))
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", what, err)
	}
	return nil
}
