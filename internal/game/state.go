package game

// State is the phase of the game as seen by the controller.
type State int

const (
	AwaitingMove State = iota
	AwaitingPromotion
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case AwaitingMove:
		return "awaiting move"
	case AwaitingPromotion:
		return "awaiting promotion"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// IsTerminal reports whether the game has ended.
func (s State) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// DrawReason says which rule ended a drawn game.
type DrawReason int

const (
	NoDraw DrawReason = iota
	FiftyMove
	InsufficientMaterial
	Repetition
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case FiftyMove:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case Repetition:
		return "repetition"
	}
	return "none"
}
