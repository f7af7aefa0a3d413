package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// pawnMoves appends the pseudo-legal moves of the pawn on from.
func pawnMoves(board *chess.Board, from chess.Coord, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.ColourOffset(colour)

	// Forward moves
	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = addPawnMove(moves, chess.Move{From: from, To: one}, colour)

		// Double push from starting rank
		if from.Rank == chess.PawnStartRank(colour) {
			two := from.Offset(2*dir, 0)
			if board.Get(two).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: two, Flags: chess.FlagDoublePawnPush})
			}
		}
	}

	// Captures
	for _, df := range pawnCaptureDfs {
		to := from.Offset(dir, df)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() {
			if !target.BelongsTo(colour) {
				moves = addPawnMove(moves, chess.Move{From: from, To: to}, colour)
			}
			continue
		}
		if isEnPassantCapture(board, from, to, colour) {
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagEnPassant})
		}
	}
	return moves
}

// addPawnMove appends m, expanded into one move per promotion piece
// when it reaches the last rank.
func addPawnMove(moves []chess.Move, m chess.Move, colour chess.Colour) []chess.Move {
	if m.To.Rank != chess.PromotionRank(colour) {
		return append(moves, m)
	}
	for _, t := range chess.PromotionTypes {
		promo := m
		promo.Promotion = t
		moves = append(moves, promo)
	}
	return moves
}

// isEnPassantCapture reports whether a diagonal pawn step from -> to is an
// en-passant capture: to is the recorded target and the enemy pawn that
// just double-pushed stands beside from.
func isEnPassantCapture(board *chess.Board, from, to chess.Coord, colour chess.Colour) bool {
	if !board.EnPassant || board.EPSquare != to {
		return false
	}
	if to.Rank-from.Rank != chess.ColourOffset(colour) {
		return false
	}
	if df := to.File - from.File; df != 1 && df != -1 {
		return false
	}
	if !board.Get(to).IsEmpty() {
		return false
	}
	return board.Get(enPassantVictim(from, to)).Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn captured en passant.
func enPassantVictim(from, to chess.Coord) chess.Coord {
	return chess.Sq(from.Rank, to.File)
}
