package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ApplyMove applies a move to the board and updates the board state.
//
// The move is checked defensively against the position before anything is
// changed: the source must hold a piece of the side to move, the destination
// may not hold an own piece or a king, and the move must fit the piece's
// movement pattern. On error the board is left untouched. Moves returned by
// LegalMoves for the current position always apply cleanly.
//
// A pawn reaching the last rank with no Promotion stays a pawn; the caller
// completes it with Promote.
func ApplyMove(board *chess.Board, move chess.Move) error {
	colour := board.ToMove

	piece, err := board.PieceAt(move.From)
	if err != nil {
		return fmt.Errorf("apply %v: %w", move, err)
	}
	if !move.To.Valid() {
		return fmt.Errorf("apply %v: destination: %w", move, errors.ErrOutOfRange)
	}
	if !piece.BelongsTo(colour) {
		return fmt.Errorf("apply %v: %v holds no %v piece: %w", move, move.From, colour, errors.ErrIllegalMove)
	}

	target := board.Get(move.To)
	if target.BelongsTo(colour) {
		return fmt.Errorf("apply %v: destination holds own piece: %w", move, errors.ErrIllegalMove)
	}
	if target.Type() == chess.King {
		return fmt.Errorf("apply %v: kings cannot be captured: %w", move, errors.ErrIllegalMove)
	}
	if move.IsPromotion() {
		if piece.Type() != chess.Pawn || move.To.Rank != chess.PromotionRank(colour) || !move.Promotion.IsPromotionTarget() {
			return fmt.Errorf("apply %v: promotion to %v: %w", move, move.Promotion, errors.ErrInvalidPromotion)
		}
	}

	captured := !target.IsEmpty()

	switch {
	case move.IsCastle():
		side, err := validateCastle(board, colour, move)
		if err != nil {
			return err
		}
		applyCastle(board, colour, move, side)

	case piece.Type() == chess.Pawn:
		enPassant, err := validatePawnMove(board, colour, move)
		if err != nil {
			return err
		}
		applyPawnMove(board, colour, move, piece, enPassant)
		captured = captured || enPassant

	default:
		if move.IsEnPassant() || move.IsDoublePawnPush() {
			return fmt.Errorf("apply %v: pawn flag on a %v move: %w", move, piece.Type(), errors.ErrIllegalMove)
		}
		if !canPieceMove(board, piece.Type(), move.From, move.To) {
			return fmt.Errorf("apply %v: %v cannot reach %v: %w", move, piece.Type(), move.To, errors.ErrIllegalMove)
		}
		applyPieceMove(board, move, piece)
	}

	updateCastlingRights(board, piece, move.From, move.To)

	// Set en passant square if double pawn push
	board.ClearEnPassant()
	if piece.Type() == chess.Pawn && abs(move.To.Rank-move.From.Rank) == 2 {
		board.SetEnPassant(chess.Sq((move.From.Rank+move.To.Rank)/2, move.From.File))
	}

	// Update halfmove clock
	if piece.Type() == chess.Pawn || captured {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return nil
}

// validatePawnMove checks a pawn move against the board and reports
// whether it is an en-passant capture.
func validatePawnMove(board *chess.Board, colour chess.Colour, move chess.Move) (bool, error) {
	dir := chess.ColourOffset(colour)
	rankDiff := move.To.Rank - move.From.Rank
	fileDiff := move.To.File - move.From.File
	target := board.Get(move.To)

	switch {
	case fileDiff == 0 && rankDiff == dir:
		if !target.IsEmpty() {
			return false, fmt.Errorf("apply %v: pawn push blocked: %w", move, errors.ErrIllegalMove)
		}
		if move.IsEnPassant() || move.IsDoublePawnPush() {
			return false, fmt.Errorf("apply %v: flags do not match a single push: %w", move, errors.ErrIllegalMove)
		}
		return false, nil

	case fileDiff == 0 && rankDiff == 2*dir:
		if move.From.Rank != chess.PawnStartRank(colour) {
			return false, fmt.Errorf("apply %v: double push off the start rank: %w", move, errors.ErrIllegalMove)
		}
		if !target.IsEmpty() || !board.Get(move.From.Offset(dir, 0)).IsEmpty() {
			return false, fmt.Errorf("apply %v: pawn push blocked: %w", move, errors.ErrIllegalMove)
		}
		if move.IsEnPassant() {
			return false, fmt.Errorf("apply %v: flags do not match a double push: %w", move, errors.ErrIllegalMove)
		}
		return false, nil

	case abs(fileDiff) == 1 && rankDiff == dir:
		if move.IsDoublePawnPush() {
			return false, fmt.Errorf("apply %v: flags do not match a capture: %w", move, errors.ErrIllegalMove)
		}
		if !target.IsEmpty() {
			if move.IsEnPassant() {
				return false, fmt.Errorf("apply %v: en passant onto an occupied square: %w", move, errors.ErrIllegalMove)
			}
			return false, nil
		}
		if isEnPassantCapture(board, move.From, move.To, colour) {
			return true, nil
		}
		return false, fmt.Errorf("apply %v: pawn capture onto an empty square: %w", move, errors.ErrIllegalMove)
	}

	return false, fmt.Errorf("apply %v: not a pawn move: %w", move, errors.ErrIllegalMove)
}

// applyPawnMove applies a validated pawn move.
func applyPawnMove(board *chess.Board, colour chess.Colour, move chess.Move, pawn chess.Piece, enPassant bool) {
	// Remove the pawn captured en passant, which stands beside the mover
	// rather than on the destination.
	if enPassant {
		board.Set(enPassantVictim(move.From, move.To), chess.Empty)
	}

	board.Set(move.From, chess.Empty)

	if move.IsPromotion() {
		board.Set(move.To, chess.NewPiece(colour, move.Promotion))
	} else {
		board.Set(move.To, pawn)
	}
}

// applyPieceMove applies a validated piece (non-pawn) move.
func applyPieceMove(board *chess.Board, move chess.Move, piece chess.Piece) {
	board.Set(move.From, chess.Empty)
	board.Set(move.To, piece)
}
