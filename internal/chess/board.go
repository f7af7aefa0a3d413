package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// CastlingRights is the set of castling options still available.
// A right is lost once the king or the relevant rook leaves its home
// square or the rook is captured there.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// KingsideRight returns the kingside castling right for a colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside castling right for a colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Home squares for castling.
const (
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed by rank*8+file.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Castling options still available to either side.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the
	// square on which this can be made.
	EnPassant bool
	EPSquare  Coord

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full-move number, incremented after Black moves.
	MoveNumber uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(Sq(0, file), W(backRank[file]))
		b.Set(Sq(1, file), W(Pawn))
		b.Set(Sq(6, file), B(Pawn))
		b.Set(Sq(7, file), B(backRank[file]))
	}

	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = false
	b.EPSquare = Coord{}
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// PieceAt returns the piece at the given coordinate.
func (b *Board) PieceAt(c Coord) (Piece, error) {
	if !c.Valid() {
		return Empty, fmt.Errorf("piece at %v: %w", c, errors.ErrOutOfRange)
	}
	return b.Squares[c.Index()], nil
}

// SetPiece places a piece at the given coordinate without any legality check.
func (b *Board) SetPiece(c Coord, piece Piece) error {
	if !c.Valid() {
		return fmt.Errorf("set piece at %v: %w", c, errors.ErrOutOfRange)
	}
	b.Squares[c.Index()] = piece
	return nil
}

// Get returns the piece at c, or Empty when c is off the board.
// It is the unchecked accessor used inside move generation loops; callers
// taking coordinates from outside the engine use PieceAt, which reports
// ErrOutOfRange.
func (b *Board) Get(c Coord) Piece {
	if !c.Valid() {
		return Empty
	}
	return b.Squares[c.Index()]
}

// Set places a piece at c without validation. Off-board coordinates are
// a no-op, not an error: it serves move application, whose squares come
// from generated moves. Use SetPiece for caller-supplied coordinates.
func (b *Board) Set(c Coord, piece Piece) {
	if c.Valid() {
		b.Squares[c.Index()] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// EnPassantTarget returns the en-passant target square, if any.
func (b *Board) EnPassantTarget() (Coord, bool) {
	return b.EPSquare, b.EnPassant
}

// ClearEnPassant removes the en-passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Coord{}
}

// SetEnPassant records the en-passant target square.
func (b *Board) SetEnPassant(c Coord) {
	b.EnPassant = true
	b.EPSquare = c
}

// Pieces calls fn for every occupied square, a1 through h8.
func (b *Board) Pieces(fn func(c Coord, p Piece)) {
	for i, p := range b.Squares {
		if !p.IsEmpty() {
			fn(CoordFromIndex(i), p)
		}
	}
}
