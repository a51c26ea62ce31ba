package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AgentConfig struct {
	ID         int    `yaml:"id"`
	Random     bool   `yaml:"random,omitempty"`
	Evaluator  string `yaml:"evaluator,omitempty"`
	Depth      int    `yaml:"depth,omitempty"`
	Goroutines int    `yaml:"goroutines,omitempty"`
}

type GameRecord struct {
	ID    int
	Dark  int // AgentConfig.ID
	Light int // AgentConfig.ID
	Depth int
	Seed  uint64
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// SummaryRecord tallies one match-up at one depth from the first agent's side.
type SummaryRecord struct {
	Agent    int
	Opponent int
	Depth    int
	Draws    int
	Wins     int
	Losses   int
}

type Setup struct {
	RunID     string        `yaml:"runId"`
	Name      string        `yaml:"name"`
	NumGames  int           `yaml:"numGames"` // Per depth and match-up
	MaxDepth  int           `yaml:"maxDepth"`
	BoardSize int           `yaml:"boardSize"`
	Rules     string        `yaml:"rules"`
	Agents    []AgentConfig `yaml:"agents"`
	StartTime time.Time     `yaml:"startTime"`
	EndTime   time.Time     `yaml:"endTime"`
	Duration  string        `yaml:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes all files there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "random", "evaluator", "depth", "goroutines"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.FormatBool(config.Random),
			config.Evaluator,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "dark", "light", "depth", "seed", "result", "dark_count", "light_count", "moves", "passes", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Dark),
			strconv.Itoa(record.Light),
			strconv.Itoa(record.Depth),
			strconv.FormatUint(record.Seed, 10),
			record.Result.String(),
			strconv.Itoa(record.DarkCount),
			strconv.Itoa(record.LightCount),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "move", "value", "depth", "evaluator", "duration", "nodes", "leaves", "terminals", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Side.String(),
			strconv.Itoa(int(record.Move)),
			strconv.FormatFloat(record.Value, 'f', -1, 64),
			strconv.Itoa(record.Depth),
			record.Evaluator,
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Leaves, 10),
			strconv.FormatInt(record.Terminals, 10),
			strconv.FormatInt(record.Cutoffs, 10),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSummary(records []SummaryRecord) error {
	header := []string{"agent", "opponent", "depth", "draws", "wins", "losses"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Opponent),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Losses),
		})
	}
	return w.writeCSV("summary.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
