package chess

import "strings"

// MoveFlags marks the special kinds of move.
type MoveFlags uint8

const (
	FlagCastle MoveFlags = 1 << iota
	FlagEnPassant
	FlagDoublePawnPush
)

// Move describes a single transition from one square to another.
// A Move is only meaningful for the board it was generated from.
type Move struct {
	// Source square.
	From Coord

	// Destination square.
	To Coord

	// The piece promoted to (NoPieceType if not a promotion or if the
	// choice is left to a later Promote call).
	Promotion PieceType

	// Special-move markers.
	Flags MoveFlags
}

// IsCastle reports whether this is a castling move (the king's move).
func (m Move) IsCastle() bool {
	return m.Flags&FlagCastle != 0
}

// IsEnPassant reports whether this is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flags&FlagEnPassant != 0
}

// IsDoublePawnPush reports whether this is a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	return m.Flags&FlagDoublePawnPush != 0
}

// IsPromotion reports whether the move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns the move in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		if c, ok := NewPiece(Black, m.Promotion).FENChar(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
