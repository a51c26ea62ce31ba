package main

import (
	"flag"
	"os"
	"reversi/config"
	"reversi/experiments"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Experiment config file (default: reversi/experiments.yaml in the XDG config dirs)")
	experiment := flag.String("experiment", "all", "Experiment name, \"all\" or \"throughput\"")
	numGames := flag.Int("games", 0, "Games per depth (overrides the config)")
	maxDepth := flag.Int("depth", 0, "Maximum search depth (overrides the config)")
	outputDir := flag.String("out", "", "Result directory (overrides the config)")
	goroutines := flag.Int("goroutines", 0, "Goroutines for root-parallel search (overrides the config)")
	rules := flag.String("rules", "", "\"no-pass\" or \"standard\" (overrides the config)")
	seed := flag.Uint64("seed", 0, "Random seed (overrides the config)")
	verbose := flag.Bool("v", false, "Debug logs")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.InitConfig()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if *numGames > 0 {
		cfg.NumGames = *numGames
	}
	if *maxDepth > 0 {
		cfg.MaxDepth = *maxDepth
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *goroutines > 0 {
		cfg.Goroutines = *goroutines
	}
	if *rules != "" {
		cfg.Rules = *rules
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if err = cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	switch *experiment {
	case "all":
		_, err = experiments.RunAll(cfg)
	case "throughput":
		_, err = experiments.RunThroughput(cfg, experiments.ThroughputGoroutines, cfg.NumGames)
	default:
		exp, ok := cfg.Experiment(*experiment)
		if !ok {
			log.Fatal().Msgf("unknown experiment %q", *experiment)
		}
		var outcome experiments.Outcome
		outcome, err = experiments.Run(cfg, exp)
		if err == nil {
			log.Info().Msgf("average win percentage of %s: %.2f", exp.Name, outcome.AverageWinPercent)
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
