package game

// Rules decides when a position is over and when a side has to pass.
type Rules interface {
	// Outcome returns the result and true if the game ends with sideToMove to play.
	Outcome(b Board, sideToMove Side) (Result, bool)
	// MustPass reports whether sideToMove has no move but the game goes on.
	MustPass(b Board, sideToMove Side) bool
}

// NoPassRules ends the game as soon as the side to move has no legal move,
// without looking at the opponent. This is the engine's default contract; the
// bundled evaluators were compared under it.
type NoPassRules struct{}

func NewNoPassRules() *NoPassRules {
	return &NoPassRules{}
}

func (r *NoPassRules) Outcome(b Board, sideToMove Side) (Result, bool) {
	if HasLegalMove(b, sideToMove) {
		return Draw, false
	}
	return Score(b), true
}

func (r *NoPassRules) MustPass(b Board, sideToMove Side) bool {
	return false
}

// StandardRules follow tournament Reversi: a side without a move passes, and
// the game ends only when neither side can move.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (r *StandardRules) Outcome(b Board, sideToMove Side) (Result, bool) {
	if HasLegalMove(b, sideToMove) || HasLegalMove(b, sideToMove.Opponent()) {
		return Draw, false
	}
	return Score(b), true
}

func (r *StandardRules) MustPass(b Board, sideToMove Side) bool {
	return !HasLegalMove(b, sideToMove) && HasLegalMove(b, sideToMove.Opponent())
}

// NewRules returns NoPassRules when strictNoPassTerminal is set, StandardRules otherwise.
func NewRules(strictNoPassTerminal bool) Rules {
	if strictNoPassTerminal {
		return NewNoPassRules()
	}
	return NewStandardRules()
}

// DefaultRules is the rule set used when none is given.
var DefaultRules Rules = NewNoPassRules()

// OutcomeIfTerminal applies DefaultRules.
func OutcomeIfTerminal(b Board, sideToMove Side) (Result, bool) {
	return DefaultRules.Outcome(b, sideToMove)
}

// Score compares piece counts: more Dark wins for Dark, more Light for Light.
func Score(b Board) Result {
	dark, light := b.Count(Dark), b.Count(Light)
	switch {
	case dark > light:
		return DarkWins
	case light > dark:
		return LightWins
	default:
		return Draw
	}
}
