package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// castleSide describes one wing: the squares involved for a given colour.
type castleSide struct {
	right     chess.CastlingRights
	kingTo    int   // king destination file
	rookFrom  int   // rook home file
	rookTo    int   // rook destination file
	between   []int // files that must be empty
	kingsPath []int // files the king crosses, destination included
}

func castleSides(colour chess.Colour) [2]castleSide {
	return [2]castleSide{
		{
			right:     chess.KingsideRight(colour),
			kingTo:    6,
			rookFrom:  chess.KingsideRookFile,
			rookTo:    5,
			between:   []int{5, 6},
			kingsPath: []int{5, 6},
		},
		{
			right:     chess.QueensideRight(colour),
			kingTo:    2,
			rookFrom:  chess.QueensideRookFile,
			rookTo:    3,
			between:   []int{1, 2, 3},
			kingsPath: []int{3, 2},
		},
	}
}

// castlingMoves appends the castling moves available to the king on from.
// The king may not castle out of, through, or into check.
func castlingMoves(board *chess.Board, from chess.Coord, colour chess.Colour, moves []chess.Move) []chess.Move {
	rank := chess.HomeRank(colour)
	if from != chess.Sq(rank, chess.KingFile) {
		return moves
	}
	enemy := colour.Opposite()
	checked := false
	inCheck := false

	for _, side := range castleSides(colour) {
		if !board.Castling.Has(side.right) {
			continue
		}
		if !board.Get(chess.Sq(rank, side.rookFrom)).Is(colour, chess.Rook) {
			continue
		}
		if !filesEmpty(board, rank, side.between) {
			continue
		}
		if !checked {
			inCheck = IsSquareAttacked(board, from, enemy)
			checked = true
		}
		if inCheck {
			return moves
		}
		if pathAttacked(board, rank, side.kingsPath, enemy) {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: chess.Sq(rank, side.kingTo), Flags: chess.FlagCastle})
	}
	return moves
}

func filesEmpty(board *chess.Board, rank int, files []int) bool {
	for _, f := range files {
		if !board.Get(chess.Sq(rank, f)).IsEmpty() {
			return false
		}
	}
	return true
}

func pathAttacked(board *chess.Board, rank int, files []int, by chess.Colour) bool {
	for _, f := range files {
		if IsSquareAttacked(board, chess.Sq(rank, f), by) {
			return true
		}
	}
	return false
}

// castleSideFor returns the wing a castling move heads for.
func castleSideFor(colour chess.Colour, move chess.Move) (castleSide, bool) {
	rank := chess.HomeRank(colour)
	if move.From != chess.Sq(rank, chess.KingFile) || move.To.Rank != rank {
		return castleSide{}, false
	}
	for _, side := range castleSides(colour) {
		if move.To.File == side.kingTo {
			return side, true
		}
	}
	return castleSide{}, false
}

// validateCastle checks that a castling move fits the board: rights, rook
// and empty between-squares. Attack checks belong to move generation.
func validateCastle(board *chess.Board, colour chess.Colour, move chess.Move) (castleSide, error) {
	side, ok := castleSideFor(colour, move)
	if !ok {
		return castleSide{}, fmt.Errorf("castle %v: not a castling king move: %w", move, errors.ErrIllegalMove)
	}
	rank := chess.HomeRank(colour)
	if !board.Get(move.From).Is(colour, chess.King) {
		return castleSide{}, fmt.Errorf("castle %v: no king on %v: %w", move, move.From, errors.ErrIllegalMove)
	}
	if !board.Castling.Has(side.right) {
		return castleSide{}, fmt.Errorf("castle %v: right already lost: %w", move, errors.ErrIllegalMove)
	}
	if !board.Get(chess.Sq(rank, side.rookFrom)).Is(colour, chess.Rook) {
		return castleSide{}, fmt.Errorf("castle %v: no rook on home square: %w", move, errors.ErrIllegalMove)
	}
	if !filesEmpty(board, rank, side.between) {
		return castleSide{}, fmt.Errorf("castle %v: path blocked: %w", move, errors.ErrIllegalMove)
	}
	return side, nil
}

// applyCastle moves king and rook of the side to move.
func applyCastle(board *chess.Board, colour chess.Colour, move chess.Move, side castleSide) {
	rank := chess.HomeRank(colour)

	// Move king
	king := board.Get(move.From)
	board.Set(move.From, chess.Empty)
	board.Set(move.To, king)

	// Move rook
	rookFrom := chess.Sq(rank, side.rookFrom)
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Empty)
	board.Set(chess.Sq(rank, side.rookTo), rook)
}

// updateCastlingRights removes rights invalidated by a move from -> to:
// a king leaving home, a rook leaving its corner, or a capture on a corner.
func updateCastlingRights(board *chess.Board, moved chess.Piece, from, to chess.Coord) {
	if colour, ok := moved.Colour(); ok && moved.Type() == chess.King {
		board.Castling = board.Castling.Without(chess.KingsideRight(colour) | chess.QueensideRight(colour))
	}
	updateCastlingRightsForRook(board, from)
	updateCastlingRightsForRook(board, to)
}

// updateCastlingRightsForRook removes the right tied to a rook home square
// once anything moves from or to it.
func updateCastlingRightsForRook(board *chess.Board, sq chess.Coord) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := chess.HomeRank(colour)
		if sq.Rank != rank {
			continue
		}
		switch sq.File {
		case chess.KingsideRookFile:
			board.Castling = board.Castling.Without(chess.KingsideRight(colour))
		case chess.QueensideRookFile:
			board.Castling = board.Castling.Without(chess.QueensideRight(colour))
		}
	}
}
