package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// MaxMoves bounds a game loop. Every placement fills a cell and two passes in a
// row end the game, so a real game never gets close.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game till the rules end it and returns the result with its metrics
	Run() (result game.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Agent chooses moves. *searcher.Minimax is an Agent.
type Agent interface {
	FindMove(b game.Board, sideToMove game.Side) (game.Move, float64, metrics.SearchMetric)
}
