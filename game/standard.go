package game

// StandardSize is the canonical board side length.
const StandardSize = 8

// Standard returns the textbook opening on an n x n board: the four centre
// cells with Light on the main diagonal and Dark on the other.
func Standard(n int) (Board, error) {
	b, err := NewBoard(n)
	if err != nil {
		return Board{}, err
	}
	mid := n / 2
	b.cells[b.Index(mid-1, mid-1)] = Light
	b.cells[b.Index(mid-1, mid)] = Dark
	b.cells[b.Index(mid, mid-1)] = Dark
	b.cells[b.Index(mid, mid)] = Light
	return b, nil
}

// StandardOpening is the 8x8 start: 27 and 36 Light, 28 and 35 Dark.
func StandardOpening() Board {
	b, err := Standard(StandardSize)
	if err != nil {
		panic(err)
	}
	return b
}
