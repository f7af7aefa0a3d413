package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// LegalMoves returns the legal moves of the piece on sq for side.
//
// The boolean is false when sq is off the board, empty, or holds a piece of
// the other side: there is nothing to select. A true result with an empty
// slice means the piece is selectable but cannot move. An off-board sq is
// not reported as ErrOutOfRange; validate it with ParseCoord or
// Board.PieceAt when that distinction matters.
//
// side need not be the board's side to move, so a UI can show the
// opponent's options, for example while a promotion is pending.
func LegalMoves(board *chess.Board, sq chess.Coord, side chess.Colour) ([]chess.Move, bool) {
	piece, err := board.PieceAt(sq)
	if err != nil || !piece.BelongsTo(side) {
		return nil, false
	}
	pseudo := appendPseudoLegalMoves(board, sq, piece.Type(), side, nil)
	return filterLegal(board, side, pseudo), true
}

// AllLegalMoves returns every legal move for side.
func AllLegalMoves(board *chess.Board, side chess.Colour) []chess.Move {
	var pseudo []chess.Move
	for i, p := range board.Squares {
		if p.BelongsTo(side) {
			pseudo = appendPseudoLegalMoves(board, chess.CoordFromIndex(i), p.Type(), side, pseudo)
		}
	}
	return filterLegal(board, side, pseudo)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, side chess.Colour) bool {
	var buf []chess.Move
	for i, p := range board.Squares {
		if !p.BelongsTo(side) {
			continue
		}
		buf = appendPseudoLegalMoves(board, chess.CoordFromIndex(i), p.Type(), side, buf[:0])
		for _, m := range buf {
			if tryMove(board, m, side) {
				return true
			}
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave side's king attacked.
func filterLegal(board *chess.Board, side chess.Colour, pseudo []chess.Move) []chess.Move {
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if tryMove(board, m, side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move, side chess.Colour) bool {
	testBoard := board.Copy()
	testBoard.ToMove = side
	if err := ApplyMove(testBoard, move); err != nil {
		return false
	}
	return !IsInCheck(testBoard, side)
}

// FindMove resolves a from/to request for the side to move into the
// matching legal move, filling in its flags.
//
// When the move is a promotion and promotion is NoPieceType, the returned
// move carries no promotion piece: applying it leaves the pawn on the last
// rank for a later Promote.
func FindMove(board *chess.Board, from, to chess.Coord, promotion chess.PieceType) (chess.Move, error) {
	legal, ok := LegalMoves(board, from, board.ToMove)
	if !ok {
		return chess.Move{}, fmt.Errorf("%v%v: nothing to move for %v: %w", from, to, board.ToMove, errors.ErrIllegalMove)
	}

	for _, m := range legal {
		if m.To != to {
			continue
		}
		if !m.IsPromotion() {
			if promotion != chess.NoPieceType {
				return chess.Move{}, fmt.Errorf("%v: promotion to %v: %w", m, promotion, errors.ErrInvalidPromotion)
			}
			return m, nil
		}
		if promotion == chess.NoPieceType {
			return chess.Move{From: from, To: to}, nil
		}
		if m.Promotion == promotion {
			return m, nil
		}
	}

	if promotion != chess.NoPieceType && !promotion.IsPromotionTarget() {
		return chess.Move{}, fmt.Errorf("%v%v: promotion to %v: %w", from, to, promotion, errors.ErrInvalidPromotion)
	}
	return chess.Move{}, fmt.Errorf("%v%v: %w", from, to, errors.ErrIllegalMove)
}

// ParseUCIMove resolves UCI long algebraic text such as "e2e4" or "e7e8q"
// against the board's legal moves.
func ParseUCIMove(board *chess.Board, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("move text %q: %w", text, errors.ErrIllegalMove)
	}
	from, err := chess.ParseCoord(text[0:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move text %q: %w", text, err)
	}
	to, err := chess.ParseCoord(text[2:4])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move text %q: %w", text, err)
	}

	promotion := chess.NoPieceType
	if len(text) == 5 {
		piece, ok := chess.PieceFromFENChar(text[4])
		if !ok || !piece.Type().IsPromotionTarget() {
			return chess.Move{}, fmt.Errorf("move text %q: %w", text, errors.ErrInvalidPromotion)
		}
		promotion = piece.Type()
	}

	return FindMove(board, from, to, promotion)
}
