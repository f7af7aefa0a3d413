package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// PseudoLegalMoves returns the moves the piece on sq can make by its
// movement pattern and board occupancy, without checking whether they leave
// its own king attacked. Promotions yield one move per promotion piece.
// An empty or off-board square yields nil.
func PseudoLegalMoves(board *chess.Board, sq chess.Coord) []chess.Move {
	piece, err := board.PieceAt(sq)
	if err != nil || piece.IsEmpty() {
		return nil
	}
	colour, _ := piece.Colour()
	return appendPseudoLegalMoves(board, sq, piece.Type(), colour, nil)
}

func appendPseudoLegalMoves(board *chess.Board, sq chess.Coord, kind chess.PieceType, colour chess.Colour, moves []chess.Move) []chess.Move {
	switch kind {
	case chess.Pawn:
		return pawnMoves(board, sq, colour, moves)
	case chess.Knight:
		return stepMoves(board, sq, colour, knightOffsets, moves)
	case chess.Bishop:
		return slideMoves(board, sq, colour, diagonalDirs, moves)
	case chess.Rook:
		return slideMoves(board, sq, colour, straightDirs, moves)
	case chess.Queen:
		return slideMoves(board, sq, colour, allDirections, moves)
	case chess.King:
		moves = stepMoves(board, sq, colour, kingOffsets, moves)
		return castlingMoves(board, sq, colour, moves)
	}
	return moves
}
