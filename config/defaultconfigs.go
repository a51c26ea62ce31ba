package config

import "reversi/meta"

// DefaultExperiments are the evaluator comparisons: each evaluator against the
// random player, then the stronger evaluators against the weaker ones.
var DefaultExperiments = []Experiment{
	{Name: "material-vs-random", Agent: "material", Opponent: RandomOpponent},
	{Name: "weighted-vs-random", Agent: "weighted", Opponent: RandomOpponent},
	{Name: "composite-vs-random", Agent: "composite", Opponent: RandomOpponent},
	{Name: "weighted-vs-material", Agent: "weighted", Opponent: "material"},
	{Name: "composite-vs-material", Agent: "composite", Opponent: "material"},
	{Name: "composite-vs-weighted", Agent: "composite", Opponent: "weighted"},
}

func DefaultConfig() Config {
	experiments := make([]Experiment, len(DefaultExperiments))
	copy(experiments, DefaultExperiments)

	return Config{
		OutputDir:     meta.OUTPUT_DIR,
		NumGames:      meta.NUM_GAMES,
		MaxDepth:      meta.MAX_DEPTH,
		BoardSize:     meta.BOARD_SIZE,
		Rules:         NoPassRules,
		RandomOpening: meta.RANDOM_OPENING,
		Goroutines:    meta.GO_ROUTINES,
		Seed:          1,
		Experiments:   experiments,
	}
}
