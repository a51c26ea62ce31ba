package game

import "github.com/pkg/errors"

// Cell is the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Dark
	Light
)

func (c Cell) String() string {
	switch c {
	case Dark:
		return "X"
	case Light:
		return "O"
	default:
		return "-"
	}
}

// Side is one of the two players. Dark always moves first.
type Side uint8

const (
	DarkSide Side = iota
	LightSide
)

func (s Side) Opponent() Side {
	if s == DarkSide {
		return LightSide
	}
	return DarkSide
}

// Cell returns the colour a side places on the board.
func (s Side) Cell() Cell {
	if s == DarkSide {
		return Dark
	}
	return Light
}

// Sign is +1 for Dark and -1 for Light. Values are always reported from Dark's
// point of view, so multiplying by Sign gives the utility for the side itself.
func (s Side) Sign() float64 {
	if s == DarkSide {
		return 1
	}
	return -1
}

func (s Side) String() string {
	if s == DarkSide {
		return "Dark"
	}
	return "Light"
}

// Move is the index of the empty cell a piece is placed on.
type Move int

// NoMove is returned when a position has no move to report (terminal, leaf, pass).
const NoMove Move = -1

// Result is the outcome of a finished game, decided by piece counts only.
type Result int

const (
	Draw Result = iota
	DarkWins
	LightWins
)

// Value maps a result onto the search value scale: Dark win +1, Light win -1.
func (r Result) Value() float64 {
	switch r {
	case DarkWins:
		return 1
	case LightWins:
		return -1
	default:
		return 0
	}
}

func (r Result) String() string {
	switch r {
	case DarkWins:
		return "DarkWins"
	case LightWins:
		return "LightWins"
	default:
		return "Draw"
	}
}

var (
	ErrOutOfRange       = errors.New("index out of range")
	ErrInvalidMove      = errors.New("invalid move")
	ErrBoardSize        = errors.New("invalid board size")
	ErrUnknownEvaluator = errors.New("unknown evaluator")
)
