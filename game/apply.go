package game

import "github.com/pkg/errors"

// Apply places side at move and flips every opponent run bounded by one of
// side's pieces. The input board is not modified.
//
// Apply does not check that the move captures anything; it only requires the
// target to be empty. Callers that need a legal move take it from LegalMoves.
func Apply(b Board, move Move, side Side) (Board, error) {
	i := int(move)
	if !b.inRange(i) {
		return Board{}, b.outOfRange(i)
	}
	if b.cells[i] != Empty {
		return Board{}, errors.Wrapf(ErrInvalidMove, "%s at %d: cell holds %s", side, i, b.cells[i])
	}

	flips := Flips(b, move, side)
	next := b.clone()
	own := side.Cell()
	next.cells[i] = own
	for _, f := range flips {
		next.cells[f] = own
	}
	return next, nil
}

// MustApply is Apply for moves produced by LegalMoves. It panics on error.
func MustApply(b Board, move Move, side Side) Board {
	next, err := Apply(b, move, side)
	if err != nil {
		panic(err)
	}
	return next
}

// Flips returns the union of the opponent cells that placing side at move
// would turn over. Each direction is resolved on the unmodified board.
func Flips(b Board, move Move, side Side) []Move {
	var flips []Move
	i := int(move)
	if !b.inRange(i) {
		return nil
	}
	for _, d := range Directions {
		n := runLength(b, i, d, side)
		cur := i
		for k := 0; k < n; k++ {
			cur += d.Delta(b.n)
			flips = append(flips, Move(cur))
		}
	}
	return flips
}
