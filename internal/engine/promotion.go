package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// CanPromote reports whether sq holds a pawn standing on the farthest rank
// in its direction of travel.
func CanPromote(board *chess.Board, sq chess.Coord) bool {
	piece := board.Get(sq)
	if piece.Type() != chess.Pawn {
		return false
	}
	colour, _ := piece.Colour()
	return sq.Rank == chess.PromotionRank(colour)
}

// Promote replaces the pawn on sq with a piece of newType and the same colour.
// newType must be a Knight, Bishop, Rook or Queen.
func Promote(board *chess.Board, sq chess.Coord, newType chess.PieceType) error {
	if !sq.Valid() {
		return fmt.Errorf("promote on %v: %w", sq, errors.ErrOutOfRange)
	}
	if !CanPromote(board, sq) {
		return fmt.Errorf("promote on %v: no pawn on its last rank: %w", sq, errors.ErrInvalidPromotion)
	}
	if !newType.IsPromotionTarget() {
		return fmt.Errorf("promote on %v to %v: %w", sq, newType, errors.ErrInvalidPromotion)
	}
	colour, _ := board.Get(sq).Colour()
	board.Set(sq, chess.NewPiece(colour, newType))
	return nil
}
