package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Errorf("White.Opposite() = %v; want Black", White.Opposite())
	}
	if Black.Opposite() != White {
		t.Errorf("Black.Opposite() = %v; want White", Black.Opposite())
	}
}

func TestPiece_Empty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty.IsEmpty() = false; want true")
	}
	if got := Empty.Type(); got != NoPieceType {
		t.Errorf("Empty.Type() = %v; want NoPieceType", got)
	}
	if _, ok := Empty.Colour(); ok {
		t.Error("Empty.Colour() ok = true; want false")
	}
	if _, ok := Empty.FENChar(); ok {
		t.Error("Empty.FENChar() ok = true; want false")
	}
	if NewPiece(White, NoPieceType) != Empty {
		t.Error("NewPiece(White, NoPieceType) != Empty")
	}
	if NewPiece(Black, NumPieceTypes) != Empty {
		t.Error("NewPiece(Black, NumPieceTypes) != Empty")
	}
}

func TestPiece_FENChar(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(Pawn), 'P'},
		{W(Knight), 'N'},
		{W(Bishop), 'B'},
		{W(Rook), 'R'},
		{W(Queen), 'Q'},
		{W(King), 'K'},
		{B(Pawn), 'p'},
		{B(Knight), 'n'},
		{B(Bishop), 'b'},
		{B(Rook), 'r'},
		{B(Queen), 'q'},
		{B(King), 'k'},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			got, ok := tt.piece.FENChar()
			if !ok || got != tt.want {
				t.Errorf("FENChar() = %c, %v; want %c, true", got, ok, tt.want)
			}
			back, ok := PieceFromFENChar(got)
			if !ok || back != tt.piece {
				t.Errorf("PieceFromFENChar(%c) = %v, %v; want %v", got, back, ok, tt.piece)
			}
		})
	}
}

func TestPieceFromFENChar_Invalid(t *testing.T) {
	for _, c := range []byte{'x', 'X', '1', '/', ' ', 0} {
		if p, ok := PieceFromFENChar(c); ok {
			t.Errorf("PieceFromFENChar(%q) = %v, true; want false", c, p)
		}
	}
}

func TestPiece_ColourAndType(t *testing.T) {
	p := B(Rook)
	colour, ok := p.Colour()
	if !ok || colour != Black {
		t.Errorf("B(Rook).Colour() = %v, %v; want Black, true", colour, ok)
	}
	if p.Type() != Rook {
		t.Errorf("B(Rook).Type() = %v; want Rook", p.Type())
	}
	if !p.Is(Black, Rook) || p.Is(White, Rook) || p.Is(Black, Queen) {
		t.Error("B(Rook).Is() matched the wrong colour or type")
	}
	if !p.BelongsTo(Black) || p.BelongsTo(White) || Empty.BelongsTo(Black) {
		t.Error("BelongsTo() gave the wrong answer")
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in   string
		want Coord
	}{
		{"a1", Coord{Rank: 0, File: 0}},
		{"h1", Coord{Rank: 0, File: 7}},
		{"e4", Coord{Rank: 3, File: 4}},
		{"h8", Coord{Rank: 7, File: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoord(tt.in)
			if err != nil {
				t.Fatalf("ParseCoord(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoord(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
			if CoordFromIndex(got.Index()) != got {
				t.Errorf("CoordFromIndex(%d) = %v; want %v", got.Index(), CoordFromIndex(got.Index()), got)
			}
		})
	}
}

func TestParseCoord_Invalid(t *testing.T) {
	for _, in := range []string{"", "e", "e9", "i1", "a0", "e44", "E4"} {
		if _, err := ParseCoord(in); !errors.Is(err, chesserrors.ErrOutOfRange) {
			t.Errorf("ParseCoord(%q) error = %v; want ErrOutOfRange", in, err)
		}
	}
}

func TestRanks(t *testing.T) {
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Error("PromotionRank does not match the direction of travel")
	}
	if PawnStartRank(White) != 1 || PawnStartRank(Black) != 6 {
		t.Error("PawnStartRank is wrong")
	}
	if HomeRank(White) != 0 || HomeRank(Black) != 7 {
		t.Error("HomeRank is wrong")
	}
	if ColourOffset(White) != 1 || ColourOffset(Black) != -1 {
		t.Error("ColourOffset is wrong")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"quiet", Move{From: Sq(1, 4), To: Sq(3, 4), Flags: FlagDoublePawnPush}, "e2e4"},
		{"promotion", Move{From: Sq(6, 0), To: Sq(7, 0), Promotion: Queen}, "a7a8q"},
		{"underpromotion", Move{From: Sq(1, 7), To: Sq(0, 6), Promotion: Knight}, "h2g1n"},
		{"castle", Move{From: Sq(0, 4), To: Sq(0, 6), Flags: FlagCastle}, "e1g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMoveFlags(t *testing.T) {
	m := Move{Flags: FlagEnPassant}
	if !m.IsEnPassant() || m.IsCastle() || m.IsDoublePawnPush() || m.IsPromotion() {
		t.Errorf("flags of %+v reported incorrectly", m)
	}
}
