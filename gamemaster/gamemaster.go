package gamemaster

import (
	"errors"
	"reversi/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
	ErrCannotPass  = errors.New("cannot pass")
)

// Update is one entry of the game history: a placement, or a pass when Move is game.NoMove.
type Update struct {
	Step  int
	Side  game.Side
	Move  game.Move
	Board game.Board // Position after the update
}

func (u Update) IsPass() bool {
	return u.Move == game.NoMove
}

// Master owns the authoritative position and only accepts legal transitions.
type Master interface {
	Board() game.Board
	Side() game.Side
	Play(game.Move) error
	Pass() error
	Outcome() (game.Result, bool)
	History() []Update
}
