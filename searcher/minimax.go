package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a depth-limited alpha-beta searcher. Dark maximises and Light
// minimises the reported value.
//
// A Minimax with metrics enabled must not run FindMove concurrently with itself.
type Minimax struct {
	depth      int
	goroutines int
	alpha      float64
	beta       float64
	pruning    bool
	evaluate   game.Evaluator
	rules      game.Rules
	metrics    metrics.Collector
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(m *Minimax) {
		if rules != nil {
			m.rules = rules
		}
	}
}

// WithWindow sets the root alpha-beta window.
func WithWindow(alpha, beta float64) Option {
	return func(m *Minimax) {
		if alpha < beta {
			m.alpha = alpha
			m.beta = beta
		}
	}
}

// WithoutPruning searches the full tree. Results are the same, only slower.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithGoroutines searches root moves in parallel. Only used with the default
// (infinite) root window, where the outcome matches the sequential search.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(depth int, options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      depth,
		goroutines: 1,
		alpha:      negInf,
		beta:       posInf,
		pruning:    true,
		evaluate:   game.Material{},
		rules:      game.DefaultRules,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.depth <= 0 {
		panic("Must specify a positive search depth")
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Evaluator() game.Evaluator {
	return m.evaluate
}

func (m *Minimax) FindMove(b game.Board, sideToMove game.Side) (game.Move, float64, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.depth, game.EvaluatorName(m.evaluate))

	var value float64
	var move game.Move
	if m.goroutines > 1 && m.alpha == negInf && m.beta == posInf {
		value, move = m.parallelRoot(b, sideToMove)
	} else {
		value, move = m.Search(b, sideToMove, m.alpha, m.beta, 0)
	}

	metric := m.metrics.Complete()
	log.Debug().
		Str("side", sideToMove.String()).
		Int("move", int(move)).
		Float64("value", value).
		Int64("nodes", metric.Nodes).
		Msg("search complete")
	return move, value, metric
}

// Search runs the recursion from the given depth (counting up towards the
// limit) with an explicit window. alpha and beta are on Dark's scale.
func (m *Minimax) Search(b game.Board, sideToMove game.Side, alpha, beta float64, depth int) (float64, game.Move) {
	lo, hi := alpha, beta
	if sideToMove == game.LightSide {
		lo, hi = -beta, -alpha
	}
	utility, move := m.negamax(b, sideToMove, lo, hi, depth)
	return sideToMove.Sign() * utility, move
}

// negamax works on the utility of the side to move (value * side.Sign()).
// Maximising that utility is Dark maximising and Light minimising the value,
// and the window flips and swaps at every ply.
func (m *Minimax) negamax(b game.Board, side game.Side, alpha, beta float64, depth int) (float64, game.Move) {
	m.metrics.AddNode()
	sign := side.Sign()

	if result, over := m.rules.Outcome(b, side); over {
		m.metrics.AddTerminal()
		return sign * result.Value(), game.NoMove
	}
	if depth >= m.depth {
		m.metrics.AddLeaf()
		return sign * m.evaluate.Evaluate(b), game.NoMove
	}
	if m.rules.MustPass(b, side) {
		utility, _ := m.negamax(b, side.Opponent(), -beta, -alpha, depth+1)
		return -utility, game.NoMove
	}

	best := negInf
	bestMove := game.NoMove
	for _, move := range game.LegalMoves(b, side) {
		child := game.MustApply(b, move, side)
		utility, _ := m.negamax(child, side.Opponent(), -beta, -alpha, depth+1)
		utility = -utility

		// Strictly greater: the first move reaching the best value is kept.
		if utility > best {
			best, bestMove = utility, move
		}
		if best > alpha {
			alpha = best
		}
		if m.pruning && alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return best, bestMove
}

// parallelRoot searches every root move with the full window and picks the
// first best in move order, which is what the sequential search returns.
func (m *Minimax) parallelRoot(b game.Board, side game.Side) (float64, game.Move) {
	if _, over := m.rules.Outcome(b, side); over || m.rules.MustPass(b, side) {
		return m.Search(b, side, negInf, posInf, 0)
	}
	m.metrics.AddNode()

	moves := game.LegalMoves(b, side)
	utilities := make([]float64, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for g := 0; g < min(m.goroutines, len(moves)); g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				child := game.MustApply(b, moves[i], side)
				utility, _ := m.negamax(child, side.Opponent(), negInf, posInf, 1)
				utilities[i] = -utility
			}
		}()
	}
	wg.Wait()

	best := negInf
	bestMove := game.NoMove
	for i, utility := range utilities {
		if utility > best {
			best, bestMove = utility, moves[i]
		}
	}
	return side.Sign() * best, bestMove
}

// Search is the stand-alone form of the recursion: default rules, pruning on,
// no metrics. depth counts up from 0 and the position is scored statically
// once it reaches limit.
func Search(b game.Board, sideToMove game.Side, alpha, beta float64, depth, limit int, evaluate game.Evaluator) (float64, game.Move) {
	m := &Minimax{
		depth:      limit,
		goroutines: 1,
		pruning:    true,
		evaluate:   evaluate,
		rules:      game.DefaultRules,
		metrics:    metrics.NewDummyCollector(),
	}
	return m.Search(b, sideToMove, alpha, beta, depth)
}
