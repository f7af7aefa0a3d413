// Package hashing provides position keys and repetition tracking.
package hashing

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Zobrist keys for position hashing.
// Generated from a fixed seed so keys are stable between runs.
var (
	zobristPiece      [2][chess.NumPieceTypes][chess.NumSquares]uint64 // [Colour][PieceType][Square]
	zobristEnPassant  [chess.BoardSize]uint64                         // One per file
	zobristCastling   [16]uint64                                      // All castling combinations
	zobristSideToMove uint64                                          // XOR when black to move
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator for reproducible keys.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := range zobristPiece {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// GenerateZobristHash returns the Zobrist key of a position: piece
// placement, side to move, castling rights and en passant file.
//
// The en passant file only counts when a pawn of the side to move stands
// beside the double-pushed pawn, so positions that differ only by an
// unusable target hash alike.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64

	for i, piece := range board.Squares {
		if piece.IsEmpty() {
			continue
		}
		colour, _ := piece.Colour()
		hash ^= zobristPiece[colour][piece.Type()][i]
	}

	if board.ToMove == chess.Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[board.Castling&chess.AllCastling]

	if sq, ok := board.EnPassantTarget(); ok && canCaptureEnPassant(board, sq) {
		hash ^= zobristEnPassant[sq.File]
	}

	return hash
}

// canCaptureEnPassant reports whether a pawn of the side to move could
// capture onto the en passant target. Pins are ignored.
func canCaptureEnPassant(board *chess.Board, target chess.Coord) bool {
	mover := board.ToMove
	from := target.Rank - chess.ColourOffset(mover)
	for _, df := range []int{-1, 1} {
		if board.Get(chess.Sq(from, target.File+df)).Is(mover, chess.Pawn) {
			return true
		}
	}
	return false
}
