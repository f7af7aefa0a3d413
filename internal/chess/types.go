// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of a chess piece, independent of colour.
type PieceType int

const (
	NoPieceType PieceType = iota // Type of an empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may be promoted to this type.
func (t PieceType) IsPromotionTarget() bool {
	return t == Knight || t == Bishop || t == Rook || t == Queen
}

// PromotionTypes lists the piece types a pawn can promote to, strongest first.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// Piece is the occupant of a square: either Empty or a coloured piece.
// The fields are unexported so a Piece can only be built through NewPiece,
// which rules out a typeless piece carrying a colour.
type Piece struct {
	kind   PieceType
	colour Colour
}

// Empty is the occupant of an empty square.
var Empty = Piece{}

// NewPiece creates a coloured piece. NoPieceType yields Empty.
func NewPiece(colour Colour, kind PieceType) Piece {
	if kind <= NoPieceType || kind >= NumPieceTypes {
		return Empty
	}
	return Piece{kind: kind, colour: colour}
}

// W creates a white piece.
func W(kind PieceType) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceType) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the piece is Empty.
func (p Piece) IsEmpty() bool {
	return p.kind == NoPieceType
}

// Type returns the piece type, NoPieceType for Empty.
func (p Piece) Type() PieceType {
	return p.kind
}

// Colour returns the piece colour. The boolean is false for Empty.
func (p Piece) Colour() (Colour, bool) {
	if p.IsEmpty() {
		return Black, false
	}
	return p.colour, true
}

// Is reports whether the piece is of the given colour and type.
func (p Piece) Is(colour Colour, kind PieceType) bool {
	return !p.IsEmpty() && p.colour == colour && p.kind == kind
}

// BelongsTo reports whether the square is occupied by a piece of colour.
func (p Piece) BelongsTo(colour Colour) bool {
	return !p.IsEmpty() && p.colour == colour
}

// FENChar returns the FEN letter for the piece: uppercase for White,
// lowercase for Black. The boolean is false for Empty.
func (p Piece) FENChar() (byte, bool) {
	if p.IsEmpty() {
		return 0, false
	}
	letter := p.kind.Letter()
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return letter, true
}

// String returns a readable name such as "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.colour.String() + " " + p.kind.String()
}

// PieceFromFENChar converts a FEN letter to a piece.
func PieceFromFENChar(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind PieceType
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Empty, false
	}
	return NewPiece(colour, kind), true
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Coord is a square on the board. Rank 0 is White's back rank and file 0
// is the a-file, regardless of how a UI chooses to display the board.
type Coord struct {
	Rank int
	File int
}

// Sq builds a coordinate from rank and file indices.
func Sq(rank, file int) Coord {
	return Coord{Rank: rank, File: file}
}

// Valid reports whether both components lie in [0,7].
func (c Coord) Valid() bool {
	return c.Rank >= 0 && c.Rank < BoardSize && c.File >= 0 && c.File < BoardSize
}

// Index returns the square index rank*8+file.
func (c Coord) Index() int {
	return c.Rank*BoardSize + c.File
}

// Offset returns the coordinate shifted by the given rank and file deltas.
// The result may be off the board.
func (c Coord) Offset(dRank, dFile int) Coord {
	return Coord{Rank: c.Rank + dRank, File: c.File + dFile}
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
	}
	return string([]byte{byte(ColBase + c.File), byte(RankBase + c.Rank)})
}

// CoordFromIndex is the inverse of Coord.Index.
func CoordFromIndex(i int) Coord {
	return Coord{Rank: i / BoardSize, File: i % BoardSize}
}

// ParseCoord parses an algebraic square name such as "e4".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("square %q: %w", s, errors.ErrOutOfRange)
	}
	c := Coord{Rank: int(s[1]) - RankBase, File: int(s[0]) - ColBase}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("square %q: %w", s, errors.ErrOutOfRange)
	}
	return c, nil
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank a colour's pawns start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the farthest rank in a colour's direction of travel.
func PromotionRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}
