package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

type illegalAgent struct{}

func (illegalAgent) FindMove(b game.Board, sideToMove game.Side) (game.Move, float64, metrics.SearchMetric) {
	return 0, 0, metrics.SearchMetric{}
}

func moves(moveMetrics []metrics.MoveMetric) []game.Move {
	result := make([]game.Move, len(moveMetrics))
	for i, mm := range moveMetrics {
		result[i] = mm.Move
	}
	return result
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		a := NewRandomAgent(7)

		for i := 0; i < 20; i++ {
			move, value, metric := a.FindMove(game.StandardOpening(), game.DarkSide)

			require.Contains(t, []game.Move{19, 26, 37, 44}, move)
			require.Zero(t, value)
			require.Equal(t, "random", metric.Evaluator)
		}
	})

	t.Run("no move available", func(t *testing.T) {
		b, err := game.Parse(4, `
			OX--
			----
			----
			----`)
		require.NoError(t, err)

		move, _, _ := NewRandomAgent(7).FindMove(b, game.DarkSide)

		require.Equal(t, game.NoMove, move)
	})
}

func TestLocalEngine(t *testing.T) {
	t.Run("random game ends with a consistent result", func(t *testing.T) {
		e := NewLocalEngine(NewRandomAgent(1), NewRandomAgent(2))

		result, gameMetric, moveMetrics := e.Run()

		final := e.Master().Board()
		_, over := e.Master().Outcome()
		require.True(t, over)
		require.Equal(t, game.Score(final), result)
		require.Equal(t, result, gameMetric.Result)
		require.Equal(t, final.Count(game.Dark), gameMetric.DarkCount)
		require.Equal(t, final.Count(game.Light), gameMetric.LightCount)
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.Zero(t, gameMetric.Passes)
		require.Len(t, e.Master().History(), gameMetric.TotalMoves)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
		}
	})

	t.Run("same seeds replay the same game", func(t *testing.T) {
		_, _, first := NewLocalEngine(NewRandomAgent(11), NewRandomAgent(12)).Run()
		_, _, second := NewLocalEngine(NewRandomAgent(11), NewRandomAgent(12)).Run()

		require.Equal(t, moves(first), moves(second))
	})

	t.Run("search agent converts a won endgame", func(t *testing.T) {
		b, err := game.Parse(4, `
			XOXO
			OO--
			OOXO
			-OXX`)
		require.NoError(t, err)
		e := NewLocalEngine(searcher.NewMinimax(1), NewRandomAgent(3), WithBoard(b))

		result, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.DarkWins, result)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Equal(t, game.Move(12), moveMetrics[0].Move)
		require.Equal(t, searcher.Win, moveMetrics[0].Value)
		require.Equal(t, 9, gameMetric.DarkCount)
		require.Equal(t, 5, gameMetric.LightCount)
	})

	t.Run("standard rules pass for a stuck side", func(t *testing.T) {
		b, err := game.Parse(4, `
			OX--
			----
			----
			----`)
		require.NoError(t, err)
		e := NewLocalEngine(NewRandomAgent(4), NewRandomAgent(5), WithBoard(b), WithRules(game.NewStandardRules()))

		result, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.LightWins, result)
		require.Equal(t, 1, gameMetric.Passes)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Equal(t, game.LightSide, moveMetrics[0].Side)
		require.Equal(t, game.Move(2), moveMetrics[0].Move)
		require.True(t, e.Master().History()[0].IsPass())
	})

	t.Run("no-pass rules end the game for a stuck side", func(t *testing.T) {
		b, err := game.Parse(4, `
			OX--
			----
			----
			----`)
		require.NoError(t, err)
		e := NewLocalEngine(NewRandomAgent(4), NewRandomAgent(5), WithBoard(b))

		result, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Draw, result)
		require.Zero(t, gameMetric.TotalMoves)
		require.Empty(t, moveMetrics)
	})

	t.Run("illegal move falls back to the first legal move", func(t *testing.T) {
		e := NewLocalEngine(illegalAgent{}, NewRandomAgent(6))

		_, _, moveMetrics := e.Run()

		require.Equal(t, game.Move(19), moveMetrics[0].Move)
	})

	t.Run("random opening", func(t *testing.T) {
		dark := searcher.NewMinimax(1, searcher.WithMetrics())
		light := searcher.NewMinimax(1, searcher.WithMetrics(), searcher.WithEvaluator(game.Composite{}))
		e := NewLocalEngine(dark, light, WithRandomOpening(2, 9))

		_, _, moveMetrics := e.Run()

		require.Greater(t, len(moveMetrics), 2)
		for _, mm := range moveMetrics[:2] {
			require.Equal(t, "random", mm.Evaluator)
			require.Zero(t, mm.Nodes)
		}
		require.Equal(t, "material", moveMetrics[2].Evaluator)
		require.Positive(t, moveMetrics[2].Nodes)
		require.Equal(t, "composite", moveMetrics[3].Evaluator)
	})
}

func TestNewLocalEnginePanics(t *testing.T) {
	require.Panics(t, func() { NewLocalEngine(nil, NewRandomAgent(1)) })
}
