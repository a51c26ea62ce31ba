package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b game.Board, sideToMove game.Side) (game.Move, float64, metrics.SearchMetric) {
	moves := game.LegalMoves(b, sideToMove)
	if len(moves) == 0 {
		return game.NoMove, 0, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], 0, metrics.SearchMetric{Evaluator: "random"}
}
