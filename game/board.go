package game

import (
	"strings"

	"github.com/pkg/errors"
)

// MinSize is the smallest side length the corner and edge weights make sense for.
const MinSize = 4

// Board is an immutable n x n grid stored row-major (index = row*n + column).
// Every transition returns a new Board; the cell slice is never shared with a
// board that writes to it.
type Board struct {
	n     int
	cells []Cell
}

// NewBoard returns an empty n x n board.
func NewBoard(n int) (Board, error) {
	if n < MinSize || n%2 != 0 {
		return Board{}, errors.Wrapf(ErrBoardSize, "size %d (must be even and at least %d)", n, MinSize)
	}
	return Board{n: n, cells: make([]Cell, n*n)}, nil
}

// FromCells builds a board from a row-major cell list. The list is copied.
func FromCells(n int, cells []Cell) (Board, error) {
	b, err := NewBoard(n)
	if err != nil {
		return Board{}, err
	}
	if len(cells) != n*n {
		return Board{}, errors.Wrapf(ErrBoardSize, "%d cells for a %dx%d board", len(cells), n, n)
	}
	copy(b.cells, cells)
	return b, nil
}

// Parse reads a board from its String form. Whitespace is ignored, so rows may
// be split over lines or written on one line.
func Parse(n int, s string) (Board, error) {
	cells := make([]Cell, 0, n*n)
	for _, r := range s {
		switch r {
		case 'X', 'x':
			cells = append(cells, Dark)
		case 'O', 'o':
			cells = append(cells, Light)
		case '-', '.':
			cells = append(cells, Empty)
		case ' ', '\t', '\n', '\r':
		default:
			return Board{}, errors.Errorf("unexpected cell %q", r)
		}
	}
	return FromCells(n, cells)
}

func (b Board) Size() int {
	return b.n
}

// Len is the number of cells, n*n.
func (b Board) Len() int {
	return len(b.cells)
}

// Cell returns the cell at index, or ErrOutOfRange.
func (b Board) Cell(index int) (Cell, error) {
	if !b.inRange(index) {
		return Empty, b.outOfRange(index)
	}
	return b.cells[index], nil
}

// WithCell returns a copy of b with the cell at index set to c.
func (b Board) WithCell(index int, c Cell) (Board, error) {
	if !b.inRange(index) {
		return Board{}, b.outOfRange(index)
	}
	next := b.clone()
	next.cells[index] = c
	return next, nil
}

// Cells returns a copy of the row-major cell list.
func (b Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
	count := 0
	for _, cell := range b.cells {
		if cell == c {
			count++
		}
	}
	return count
}

func (b Board) Equal(other Board) bool {
	if b.n != other.n || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders one line per row: X for Dark, O for Light, - for Empty.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.n)
	for i, c := range b.cells {
		sb.WriteString(c.String())
		if (i+1)%b.n == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b Board) Row(index int) int {
	return index / b.n
}

func (b Board) Column(index int) int {
	return index % b.n
}

func (b Board) Index(row, column int) int {
	return row*b.n + column
}

// IsCorner reports whether index is one of the four corner cells.
func (b Board) IsCorner(index int) bool {
	row, col := b.Row(index), b.Column(index)
	return (row == 0 || row == b.n-1) && (col == 0 || col == b.n-1)
}

// IsEdge reports whether index lies on the border but is not a corner.
func (b Board) IsEdge(index int) bool {
	row, col := b.Row(index), b.Column(index)
	onBorder := row == 0 || row == b.n-1 || col == 0 || col == b.n-1
	return onBorder && !b.IsCorner(index)
}

// Step moves one cell from index in direction d. ok is false when the step
// would leave the board, including wrapping across a row edge.
func (b Board) Step(index int, d Direction) (next int, ok bool) {
	row := b.Row(index) + d.DRow
	col := b.Column(index) + d.DCol
	if row < 0 || row >= b.n || col < 0 || col >= b.n {
		return index, false
	}
	return index + d.Delta(b.n), true
}

// at is the unchecked accessor used on hot paths where index came from Step.
func (b Board) at(index int) Cell {
	return b.cells[index]
}

func (b Board) inRange(index int) bool {
	return index >= 0 && index < len(b.cells)
}

func (b Board) outOfRange(index int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d on a %dx%d board", index, b.n, b.n)
}

func (b Board) clone() Board {
	return Board{n: b.n, cells: b.Cells()}
}
