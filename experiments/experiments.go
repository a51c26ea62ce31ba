package experiments

import (
	"fmt"
	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Record tallies games from the agent's (Dark's) side.
type Record struct {
	Draws  int
	Wins   int
	Losses int
}

func (r *Record) Add(result game.Result) {
	switch result {
	case game.DarkWins:
		r.Wins++
	case game.LightWins:
		r.Losses++
	default:
		r.Draws++
	}
}

func (r Record) Games() int {
	return r.Draws + r.Wins + r.Losses
}

func (r Record) WinPercent() float64 {
	return utils.Percent(r.Wins, r.Games())
}

// String lists draws, wins and losses in that order.
func (r Record) String() string {
	return fmt.Sprintf("[%d, %d, %d]", r.Draws, r.Wins, r.Losses)
}

// Outcome is the depth sweep of one experiment.
type Outcome struct {
	Experiment        config.Experiment
	Depths            []int
	Records           []Record // Indexed like Depths
	AverageWinPercent float64
	Dir               string // Result directory, empty when nothing was written
}

// RunAll runs every configured experiment in order.
func RunAll(cfg *config.Config) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(cfg.Experiments))
	for _, exp := range cfg.Experiments {
		outcome, err := Run(cfg, exp)
		if err != nil {
			return outcomes, fmt.Errorf("experiment %s: %w", exp.Name, err)
		}
		outcomes = append(outcomes, outcome)
	}

	for _, outcome := range outcomes {
		log.Info().Msgf("average win percentage of %s: %.2f", outcome.Experiment.Name, outcome.AverageWinPercent)
	}
	return outcomes, nil
}

// Run plays cfg.NumGames games at every depth from 1 to cfg.MaxDepth, the
// agent searching as Dark against either the random player or a Light searcher
// of the same depth. Results are written below cfg.OutputDir unless it is empty.
func Run(cfg *config.Config, exp config.Experiment) (Outcome, error) {
	startTime := time.Now()
	rules := game.NewRules(cfg.StrictNoPassTerminal())
	board, err := game.Standard(cfg.BoardSize)
	if err != nil {
		return Outcome{}, err
	}
	agentEval, err := game.EvaluatorByName(exp.Agent)
	if err != nil {
		return Outcome{}, err
	}
	var opponentEval game.Evaluator
	if !exp.AgainstRandom() {
		opponentEval, err = game.EvaluatorByName(exp.Opponent)
		if err != nil {
			return Outcome{}, err
		}
	}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	count := 0
	outcome := Outcome{Experiment: exp}
	configs := []metrics.AgentConfig{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summary := []metrics.SummaryRecord{}
	winPercents := []float64{}

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		agentConfig := metrics.AgentConfig{
			ID:         2*depth - 1,
			Evaluator:  game.EvaluatorName(agentEval),
			Depth:      depth,
			Goroutines: cfg.Goroutines,
		}
		opponentConfig := metrics.AgentConfig{ID: 2 * depth, Random: true}
		if opponentEval != nil {
			opponentConfig = metrics.AgentConfig{
				ID:         2 * depth,
				Evaluator:  game.EvaluatorName(opponentEval),
				Depth:      depth,
				Goroutines: cfg.Goroutines,
			}
		}
		configs = append(configs, agentConfig, opponentConfig)

		var record Record
		for i := 0; i < cfg.NumGames; i++ {
			count++
			seed := cfg.Seed + uint64(count)

			result, gameMetric, moveMetrics := runGame(cfg, rules, board, agentConfig, opponentConfig, seed)
			record.Add(result)

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Dark:       agentConfig.ID,
				Light:      opponentConfig.ID,
				Depth:      depth,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("depth %d game %d of %d: %s (%d-%d)", depth, i+1, cfg.NumGames, result, gameMetric.DarkCount, gameMetric.LightCount)
		}

		log.Info().Msgf("%s searching to depth %d has a record of %s against %s", playerName(agentConfig), depth, record, playerName(opponentConfig))

		outcome.Depths = append(outcome.Depths, depth)
		outcome.Records = append(outcome.Records, record)
		winPercents = append(winPercents, record.WinPercent())
		summary = append(summary, metrics.SummaryRecord{
			Agent:    agentConfig.ID,
			Opponent: opponentConfig.ID,
			Depth:    depth,
			Draws:    record.Draws,
			Wins:     record.Wins,
			Losses:   record.Losses,
		})
	}
	outcome.AverageWinPercent = utils.Mean(winPercents)

	log.Info().Msgf("completed %s experiment", exp.Name)

	if cfg.OutputDir == "" {
		return outcome, nil
	}

	endTime := time.Now()
	setup := metrics.Setup{
		RunID:     uuid.NewString(),
		Name:      exp.Name,
		NumGames:  cfg.NumGames,
		MaxDepth:  cfg.MaxDepth,
		BoardSize: cfg.BoardSize,
		Rules:     cfg.Rules,
		Agents:    configs,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  endTime.Sub(startTime).String(),
	}
	dir, err := store(cfg.OutputDir, setup, gameRecords, moveRecords, summary)
	if err != nil {
		return outcome, err
	}
	outcome.Dir = dir
	return outcome, nil
}

func store(root string, setup metrics.Setup, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord, summary []metrics.SummaryRecord) (string, error) {
	writer, err := metrics.NewWriter(root, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err = writer.WriteSetup(setup); err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	if err = writer.WriteAgentConfigs(setup.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err = writer.WriteSummary(summary); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the result
func runGame(cfg *config.Config, rules game.Rules, board game.Board, dark, light metrics.AgentConfig, seed uint64) (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	options := []engine.Option{engine.WithBoard(board), engine.WithRules(rules)}
	if !light.Random {
		// Searchers are deterministic, so open at random to vary the games
		options = append(options, engine.WithRandomOpening(cfg.RandomOpening, seed))
	}

	e := engine.NewLocalEngine(createAgent(dark, rules, seed), createAgent(light, rules, seed), options...)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, rules game.Rules, seed uint64) engine.Agent {
	if config.Random {
		return engine.NewRandomAgent(seed)
	}

	evaluate, err := game.EvaluatorByName(config.Evaluator)
	if err != nil {
		panic(err)
	}
	return searcher.NewMinimax(
		config.Depth,
		searcher.WithEvaluator(evaluate),
		searcher.WithRules(rules),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	)
}

func playerName(config metrics.AgentConfig) string {
	if config.Random {
		return "a random player"
	}
	return fmt.Sprintf("AI %s", config.Evaluator)
}
