package engine

import (
	"errors"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

var _ Engine = (*LocalEngine)(nil)

// LocalEngine plays one game in-process between a Dark and a Light agent.
type LocalEngine struct {
	Board   game.Board // Starting position
	Side    game.Side  // Side to move first
	Agents  [2]Agent   // Indexed by game.Side
	rules   game.Rules
	opening int
	random  Agent
	master  gamemaster.Master
}

// WithBoard starts from b instead of the standard opening.
func WithBoard(b game.Board) Option {
	return func(e *LocalEngine) {
		if b.Len() > 0 {
			e.Board = b
		}
	}
}

// WithRules selects the terminal and pass rules.
func WithRules(rules game.Rules) Option {
	return func(e *LocalEngine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithRandomOpening plays the first plies uniformly at random for both sides,
// so games between deterministic agents differ.
func WithRandomOpening(plies int, seed uint64) Option {
	return func(e *LocalEngine) {
		if plies > 0 {
			e.opening = plies
			e.random = NewRandomAgent(seed)
		}
	}
}

func NewLocalEngine(dark, light Agent, options ...Option) *LocalEngine {
	if dark == nil || light == nil {
		panic("need an agent for each side")
	}

	e := &LocalEngine{
		Board:  game.StandardOpening(),
		Side:   game.DarkSide,
		Agents: [2]Agent{dark, light},
		rules:  game.DefaultRules,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Master returns the game master of the last Run, nil before the first one.
func (e *LocalEngine) Master() gamemaster.Master {
	return e.master
}

// Run executes the game loop until the rules end the game.
func (e *LocalEngine) Run() (game.Result, metrics.GameMetric, []metrics.MoveMetric) {
	e.master = gamemaster.NewLocalMaster(e.Board, e.Side, e.rules)
	gm := e.master

	gameMetric := metrics.GameMetric{
		StartingSide: e.Side,
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.Side)

	result, over := gm.Outcome()
	for step := 1; !over && step <= MaxMoves; step++ {
		side := gm.Side()

		err := gm.Pass()
		if err == nil {
			log.Debug().Msgf("step %d: %s passes", step, side)
			gameMetric.Passes++
			result, over = gm.Outcome()
			continue
		}

		agent := e.Agents[side]
		if gameMetric.TotalMoves < e.opening {
			agent = e.random
		}
		move, value, searchMetric := agent.FindMove(gm.Board(), side)

		err = gm.Play(move)
		if errors.Is(err, gamemaster.ErrIllegalMove) {
			log.Warn().Err(err).Msgf("step %d: playing the first legal move instead", step)
			move = game.LegalMoves(gm.Board(), side)[0]
			err = gm.Play(move)
		}
		if err != nil {
			panic(err)
		}

		gameMetric.TotalMoves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side,
			Move:         move,
			Value:        value,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %s plays %d (value %.4f)\n%s", step, side, move, value, gm.Board())

		result, over = gm.Outcome()
	}

	final := gm.Board()
	if !over {
		log.Warn().Msgf("stopped after %d steps without a result, scoring the board", MaxMoves)
		result = game.Score(final)
	}

	gameMetric.Result = result
	gameMetric.DarkCount = final.Count(game.Dark)
	gameMetric.LightCount = final.Count(game.Light)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Debug().Msgf("game over after %d moves: %s (%d-%d)", gameMetric.TotalMoves, result, gameMetric.DarkCount, gameMetric.LightCount)
	return result, gameMetric, moveMetrics
}
