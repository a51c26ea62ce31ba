package experiments

import (
	"fmt"
	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ThroughputGoroutines = []int{1, 2, 4, 8}

// Throughput is the search speed of one goroutine setting.
type Throughput struct {
	Goroutines  int
	Nodes       int64
	Duration    time.Duration
	NodesPerSec float64
}

// RunThroughput searches the same positions at cfg.MaxDepth once per setting
// in goroutines. Positions come from random play out of the standard opening.
func RunThroughput(cfg *config.Config, goroutines []int, positions int) ([]Throughput, error) {
	startTime := time.Now()
	rules := game.NewRules(cfg.StrictNoPassTerminal())
	boards, sides, err := samplePositions(cfg, rules, positions)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting throughput experiment on %d positions...", len(boards))

	configs := []metrics.AgentConfig{}
	moveRecords := []metrics.MoveRecord{}
	results := []Throughput{}

	for i, g := range goroutines {
		config := metrics.AgentConfig{ID: i + 1, Evaluator: "material", Depth: cfg.MaxDepth, Goroutines: g}
		configs = append(configs, config)
		m := searcher.NewMinimax(cfg.MaxDepth, searcher.WithRules(rules), searcher.WithGoroutines(g), searcher.WithMetrics())

		result := Throughput{Goroutines: g}
		for j, b := range boards {
			move, value, metric := m.FindMove(b, sides[j])
			result.Nodes += metric.Nodes
			result.Duration += metric.Duration
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game: config.ID,
				MoveMetric: metrics.MoveMetric{
					Step:         j + 1,
					Side:         sides[j],
					Move:         move,
					Value:        value,
					SearchMetric: metric,
				},
			})
		}
		if result.Duration > 0 {
			result.NodesPerSec = float64(result.Nodes) / result.Duration.Seconds()
		}
		results = append(results, result)

		log.Info().Msgf("%d goroutines searched %d nodes in %s (%.0f nodes/s)", g, result.Nodes, result.Duration, result.NodesPerSec)
	}

	log.Info().Msg("completed throughput experiment")

	if cfg.OutputDir == "" {
		return results, nil
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "throughput")
	if err != nil {
		return results, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	endTime := time.Now()
	err = writer.WriteSetup(metrics.Setup{
		RunID:     uuid.NewString(),
		Name:      "throughput",
		NumGames:  len(boards),
		MaxDepth:  cfg.MaxDepth,
		BoardSize: cfg.BoardSize,
		Rules:     cfg.Rules,
		Agents:    configs,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  endTime.Sub(startTime).String(),
	})
	if err != nil {
		return results, fmt.Errorf("failed to store setup: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return results, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return results, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return results, nil
}

// samplePositions replays seeded random games and keeps one non-terminal
// position per game.
func samplePositions(cfg *config.Config, rules game.Rules, positions int) ([]game.Board, []game.Side, error) {
	start, err := game.Standard(cfg.BoardSize)
	if err != nil {
		return nil, nil, err
	}

	boards := []game.Board{}
	sides := []game.Side{}
	for i := 0; len(boards) < positions && i < 10*positions; i++ {
		seed := cfg.Seed + uint64(i)
		e := engine.NewLocalEngine(engine.NewRandomAgent(seed), engine.NewRandomAgent(seed+1), engine.WithBoard(start), engine.WithRules(rules))
		e.Run()

		// Pick a position from the first half of the game
		history := e.Master().History()
		if len(history) < 2 {
			continue
		}
		update := history[(i%(len(history)/2))]
		if _, over := rules.Outcome(update.Board, update.Side.Opponent()); over {
			continue
		}
		boards = append(boards, update.Board)
		sides = append(sides, update.Side.Opponent())
	}
	return boards, sides, nil
}
