package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reversi/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
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
	w, err := NewWriter(root, "depth_sweep")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("writing the setup", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		setup := Setup{
			RunID:     "run-1",
			Name:      "depth_sweep",
			NumGames:  10,
			MaxDepth:  3,
			BoardSize: 8,
			Rules:     "no-pass",
			Agents:    []AgentConfig{{ID: 1, Evaluator: "material", Depth: 2}, {ID: 0, Random: true}},
			StartTime: start,
			EndTime:   start.Add(time.Minute),
			Duration:  time.Minute.String(),
		}

		require.NoError(t, w.WriteSetup(setup))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.yaml"))
		require.NoError(t, err)
		var got Setup
		require.NoError(t, yaml.Unmarshal(data, &got))
		require.Equal(t, setup.RunID, got.RunID)
		require.Equal(t, setup.Agents, got.Agents)
		require.Equal(t, setup.Rules, got.Rules)
		require.True(t, setup.StartTime.Equal(got.StartTime))
		require.Equal(t, "1m0s", got.Duration)
	})

	t.Run("writing game records", func(t *testing.T) {
		records := []GameRecord{{
			ID: 1, Dark: 1, Light: 0, Depth: 2, Seed: 7,
			GameMetric: GameMetric{Result: game.DarkWins, DarkCount: 40, LightCount: 24, TotalMoves: 60},
		}}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "result", rows[0][5])
		require.Equal(t, "DarkWins", rows[1][5])
		require.Equal(t, "40", rows[1][6])
	})

	t.Run("writing move records", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 1, Side: game.DarkSide, Move: 19, Value: 0.5,
				SearchMetric: SearchMetric{Depth: 2, Evaluator: "composite", Nodes: 17},
			},
		}}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "Dark", "19", "0.5", "2", "composite"}, rows[1][:7])
		require.Equal(t, "17", rows[1][8])
	})

	t.Run("writing the summary", func(t *testing.T) {
		require.NoError(t, w.WriteSummary([]SummaryRecord{
			{Agent: 1, Opponent: 0, Depth: 1, Draws: 2, Wins: 7, Losses: 1},
			{Agent: 1, Opponent: 0, Depth: 2, Draws: 0, Wins: 9, Losses: 1},
		}))

		rows := readCSV(t, filepath.Join(w.Dir(), "summary.csv"))
		require.Equal(t, []string{"agent", "opponent", "depth", "draws", "wins", "losses"}, rows[0])
		require.Equal(t, []string{"1", "0", "2", "0", "9", "1"}, rows[2])
	})

	t.Run("writing agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 0, Random: true}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, []string{"0", "true", "", "0", "0"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	t.Run("counting search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 3, "material")
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddTerminal()
		c.AddCutoff()

		got := c.Complete()

		require.Equal(t, int64(2), got.Nodes)
		require.Equal(t, int64(1), got.Leaves)
		require.Equal(t, int64(1), got.Terminals)
		require.Equal(t, int64(1), got.Cutoffs)
		require.Equal(t, 3, got.Depth)
		require.Equal(t, "material", got.Evaluator)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, "")
		c.AddNode()
		c.Start(1, 1, "")

		require.Equal(t, int64(0), c.Complete().Nodes)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, 1, "")
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
