package game

// LegalMoves returns the empty cells where side can place a piece, in
// ascending index order.
func LegalMoves(b Board, side Side) []Move {
	var moves []Move
	for i := range b.cells {
		if b.cells[i] == Empty && flanksAny(b, i, side) {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// HasLegalMove reports whether side has at least one legal move.
func HasLegalMove(b Board, side Side) bool {
	for i := range b.cells {
		if b.cells[i] == Empty && flanksAny(b, i, side) {
			return true
		}
	}
	return false
}

// IsLegal reports whether placing side at move captures at least one piece.
func IsLegal(b Board, move Move, side Side) bool {
	i := int(move)
	if !b.inRange(i) || b.cells[i] != Empty {
		return false
	}
	return flanksAny(b, i, side)
}

func flanksAny(b Board, index int, side Side) bool {
	for _, d := range Directions {
		if runLength(b, index, d, side) > 0 {
			return true
		}
	}
	return false
}

// runLength walks from index in direction d over a contiguous run of opponent
// pieces. It returns the run length if the run is closed by one of side's
// pieces, and 0 if it runs into an empty cell or the board edge.
func runLength(b Board, index int, d Direction, side Side) int {
	own, other := side.Cell(), side.Opponent().Cell()
	count := 0
	cur, ok := b.Step(index, d)
	for ok && b.at(cur) == other {
		count++
		cur, ok = b.Step(cur, d)
	}
	if !ok || b.at(cur) != own {
		return 0
	}
	return count
}
