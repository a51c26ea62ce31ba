package gamemaster

import (
	"fmt"
	"reversi/game"
)

type localMaster struct {
	board   game.Board
	side    game.Side
	rules   game.Rules
	history []Update
	result  game.Result
	over    bool
}

// NewLocalMaster starts a game on board with side to move.
func NewLocalMaster(board game.Board, side game.Side, rules game.Rules) Master {
	if rules == nil {
		rules = game.DefaultRules
	}
	m := &localMaster{
		board: board,
		side:  side,
		rules: rules,
	}
	m.result, m.over = rules.Outcome(board, side)
	return m
}

func (m *localMaster) Board() game.Board {
	return m.board
}

func (m *localMaster) Side() game.Side {
	return m.side
}

func (m *localMaster) Play(move game.Move) error {
	if m.over {
		return ErrGameOver
	}
	if !game.IsLegal(m.board, move, m.side) {
		return fmt.Errorf("%w: %s cannot play %d", ErrIllegalMove, m.side, move)
	}

	m.board = game.MustApply(m.board, move, m.side)
	m.advance(move)
	return nil
}

func (m *localMaster) Pass() error {
	if m.over {
		return ErrGameOver
	}
	if !m.rules.MustPass(m.board, m.side) {
		return fmt.Errorf("%w: %s has a legal move", ErrCannotPass, m.side)
	}

	m.advance(game.NoMove)
	return nil
}

func (m *localMaster) advance(move game.Move) {
	m.history = append(m.history, Update{
		Step:  len(m.history) + 1,
		Side:  m.side,
		Move:  move,
		Board: m.board,
	})
	m.side = m.side.Opponent()
	m.result, m.over = m.rules.Outcome(m.board, m.side)
}

func (m *localMaster) Outcome() (game.Result, bool) {
	return m.result, m.over
}

// History returns a copy of the updates so far.
func (m *localMaster) History() []Update {
	history := make([]Update, len(m.history))
	copy(history, m.history)
	return history
}
