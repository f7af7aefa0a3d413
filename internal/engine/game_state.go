package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Outcome classifies a position from the side to move's point of view.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmated
	Stalemated
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmated:
		return "checkmate"
	case Stalemated:
		return "stalemate"
	}
	return "ongoing"
}

// PositionOutcome reports whether the side to move is mated, stalemated
// or still has a legal move. Draw rules are not considered.
func PositionOutcome(board *chess.Board) Outcome {
	side := board.ToMove
	switch {
	case HasLegalMoves(board, side):
		return Ongoing
	case IsInCheck(board, side):
		return Checkmated
	}
	return Stalemated
}

// IsCheckmate reports whether the side to move is checkmated.
func IsCheckmate(board *chess.Board) bool {
	return PositionOutcome(board) == Checkmated
}

// IsStalemate reports whether the side to move is stalemated.
func IsStalemate(board *chess.Board) bool {
	return PositionOutcome(board) == Stalemated
}
