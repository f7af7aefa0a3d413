package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Direction vectors as {rank delta, file delta}.
var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirections  = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	pawnCaptureDfs = []int{-1, 1}
)

// IsInCheck returns true if the given colour's king is in check.
// A side without a king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := KingSquare(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// KingSquare finds the king of the given colour on the board.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Coord, bool) {
	for i, p := range board.Squares {
		if p.Is(colour, chess.King) {
			return chess.CoordFromIndex(i), true
		}
	}
	return chess.Coord{}, false
}

// IsSquareAttacked returns true if any piece of byColour attacks the square.
// Occupancy of the square itself is irrelevant.
func IsSquareAttacked(board *chess.Board, sq chess.Coord, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	// Pawns attack diagonally forward, so the attacker sits one rank behind.
	behind := -chess.ColourOffset(byColour)
	for _, df := range pawnCaptureDfs {
		if board.Get(sq.Offset(behind, df)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(byColour, chess.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(byColour, chess.King) {
			return true
		}
	}

	if rayAttacked(board, sq, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return rayAttacked(board, sq, byColour, straightDirs, chess.Rook)
}

// rayAttacked walks each direction to the first occupied square and reports
// whether it holds a slider of byColour (the given type or a queen).
func rayAttacked(board *chess.Board, sq chess.Coord, byColour chess.Colour, dirs [][2]int, slider chess.PieceType) bool {
	for _, dir := range dirs {
		c := sq.Offset(dir[0], dir[1])
		for c.Valid() {
			piece := board.Get(c)
			if !piece.IsEmpty() {
				if piece.Is(byColour, slider) || piece.Is(byColour, chess.Queen) {
					return true
				}
				break // Blocked
			}
			c = c.Offset(dir[0], dir[1])
		}
	}
	return false
}
