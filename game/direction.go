package game

// Direction is one of the eight compass steps on the grid.
type Direction struct {
	Name string
	DRow int
	DCol int
}

// Delta is the index offset of one step on an n x n board.
func (d Direction) Delta(n int) int {
	return d.DRow*n + d.DCol
}

var (
	North     = Direction{Name: "N", DRow: -1, DCol: 0}
	NorthEast = Direction{Name: "NE", DRow: -1, DCol: 1}
	East      = Direction{Name: "E", DRow: 0, DCol: 1}
	SouthEast = Direction{Name: "SE", DRow: 1, DCol: 1}
	South     = Direction{Name: "S", DRow: 1, DCol: 0}
	SouthWest = Direction{Name: "SW", DRow: 1, DCol: -1}
	West      = Direction{Name: "W", DRow: 0, DCol: -1}
	NorthWest = Direction{Name: "NW", DRow: -1, DCol: -1}
)

// Directions lists all eight directions.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
