package engine

import (
	"math/rand"
	"testing"

	nchess "github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// oraclePosition wraps a position of the independent notnil/chess generator.
type oraclePosition struct {
	pos *nchess.Position
}

func newOraclePosition(t *testing.T, fen string) oraclePosition {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("notnil FEN(%q): %v", fen, err)
	}
	return oraclePosition{pos: nchess.NewGame(opt).Position()}
}

// moves returns the sorted UCI text of every legal move.
func (o oraclePosition) moves() []string {
	valid := o.pos.ValidMoves()
	texts := make([]string, len(valid))
	for i, m := range valid {
		texts[i] = nchess.UCINotation{}.Encode(o.pos, m)
	}
	return texts
}

// play applies the move with the given UCI text.
func (o oraclePosition) play(t *testing.T, text string) oraclePosition {
	t.Helper()
	for _, m := range o.pos.ValidMoves() {
		if (nchess.UCINotation{}).Encode(o.pos, m) == text {
			return oraclePosition{pos: o.pos.Update(m)}
		}
	}
	t.Fatalf("oracle has no move %s in %s", text, o.pos.String())
	return o
}

var oracleFENs = []string{
	InitialFEN,
	kiwipeteFEN,
	position3FEN,
	position4FEN,
	position5FEN,
	enPassantFEN,
	castlingFEN,
	"r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
	"8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1",
	"1n5k/P7/8/8/8/8/8/K7 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
}

func TestAllLegalMoves_MatchesOracle(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			oracle := newOraclePosition(t, fen)
			testutil.AssertEqual(t, testutil.MoveTexts(AllLegalMoves(board, board.ToMove)), sortedTexts(oracle.moves()))
		})
	}
}

// TestRandomPlayouts_MatchOracle plays seeded random games and compares the
// legal move sets of both generators after every ply.
func TestRandomPlayouts_MatchOracle(t *testing.T) {
	games, plies := 20, 120
	if testing.Short() {
		games = 4
	}

	for _, fen := range []string{InitialFEN, kiwipeteFEN, position4FEN} {
		for seed := int64(1); seed <= int64(games); seed++ {
			rng := rand.New(rand.NewSource(seed))
			board := mustBoard(t, fen)
			oracle := newOraclePosition(t, fen)

			for ply := 0; ply < plies; ply++ {
				moves := AllLegalMoves(board, board.ToMove)
				got := testutil.MoveTexts(moves)
				want := sortedTexts(oracle.moves())
				if !slices.Equal(got, want) {
					t.Fatalf("seed %d ply %d, %s:\ngot  %v\nwant %v", seed, ply, BoardToFEN(board), got, want)
				}
				if len(moves) == 0 {
					break
				}

				m := moves[rng.Intn(len(moves))]
				if err := ApplyMove(board, m); err != nil {
					t.Fatalf("seed %d ply %d: ApplyMove(%v) error = %v", seed, ply, m, err)
				}
				oracle = oracle.play(t, m.String())
			}
		}
	}
}

func sortedTexts(texts []string) []string {
	out := slices.Clone(texts)
	slices.Sort(out)
	return out
}
