// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which the fifty-move rule
// ends the game.
const FiftyMoveLimit = 100

// IsFiftyMoveDraw returns true if limit half-moves have passed without a
// pawn move or capture. A zero limit means FiftyMoveLimit.
func IsFiftyMoveDraw(board *chess.Board, limit uint) bool {
	if limit == 0 {
		limit = FiftyMoveLimit
	}
	return board.HalfmoveClock >= limit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K and any number of bishops vs K and bishops, all bishops on one square colour
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors int
	var knights int
	var bishopOnLight, bishopOnDark bool
	var heavy bool

	board.Pieces(func(sq chess.Coord, piece chess.Piece) {
		switch piece.Type() {
		case chess.King:
			// Kings don't count for material
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			heavy = true
			return
		case chess.Knight:
			knights++
		case chess.Bishop:
			if isLightSquare(sq) {
				bishopOnLight = true
			} else {
				bishopOnDark = true
			}
		}

		if piece.BelongsTo(chess.White) {
			whiteMinors++
		} else {
			blackMinors++
		}
	})

	// Any pawn, rook, or queen means sufficient material
	if heavy {
		return false
	}

	// K vs K
	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if whiteMinors+blackMinors == 1 {
		return true
	}

	// Bishops only, all on the same colour squares
	return knights == 0 && bishopOnLight != bishopOnDark
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Coord) bool {
	return (sq.File+sq.Rank)%2 == 1
}
