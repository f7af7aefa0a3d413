package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// canPieceMove checks if a non-pawn piece can move from one square to another
// by its movement pattern, with a clear path for sliders.
func canPieceMove(board *chess.Board, pieceType chess.PieceType, from, to chess.Coord) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	if fileDiff == 0 && rankDiff == 0 {
		return false
	}

	switch pieceType {
	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if fileDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if fileDiff == rankDiff || fileDiff == 0 || rankDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Coord) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	c := from.Offset(rankDir, fileDir)
	for c != to {
		if !board.Get(c).IsEmpty() {
			return false
		}
		c = c.Offset(rankDir, fileDir)
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
