package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// stepMoves appends single-step moves (knight, king) that land on an
// empty square or an enemy piece.
func stepMoves(board *chess.Board, from chess.Coord, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if board.Get(to).BelongsTo(colour) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to})
	}
	return moves
}

// slideMoves appends sliding moves along each direction, stopping at the
// first blocker and including it only when it is an enemy piece.
func slideMoves(board *chess.Board, from chess.Coord, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if !target.BelongsTo(colour) {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
