// meta/meta.go
package meta

// BOARD_SIZE defines the side length of the board used by experiments.
const BOARD_SIZE = 8

// NUM_GAMES defines the number of games per depth and match-up.
const NUM_GAMES = 100

// MAX_DEPTH defines the deepest search limit of a depth sweep.
const MAX_DEPTH = 3

// RANDOM_OPENING defines the random plies before evaluator match-ups.
const RANDOM_OPENING = 2

// GO_ROUTINES defines the number of goroutines for root-parallel search.
const GO_ROUTINES = 1

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "results"
