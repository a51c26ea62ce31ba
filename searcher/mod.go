package searcher

import (
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
)

// Values are reported from Dark's point of view: terminal results are +1, 0
// and -1, static evaluations come from the evaluator unchanged.
const (
	Win  = 1.0
	Loss = -Win
)

// DefaultDepth matches the deepest setting of the evaluator comparisons.
const DefaultDepth = 3

type Searcher interface {
	// FindMove returns the chosen move, its value and the search metrics (if collected).
	// The move is game.NoMove when sideToMove has nothing to play.
	FindMove(b game.Board, sideToMove game.Side) (game.Move, float64, metrics.SearchMetric)
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
