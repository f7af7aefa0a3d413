package testutil

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// MoveTexts returns the UCI text of each move, sorted, so that move lists
// from different generators can be compared as sets.
func MoveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	slices.Sort(texts)
	return texts
}

// AssertMoves compares a move list against the expected UCI texts,
// ignoring order.
func AssertMoves(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := slices.Clone(want)
	slices.Sort(sorted)
	if sorted == nil {
		sorted = []string{}
	}
	AssertEqual(t, MoveTexts(got), sorted, msgAndArgs...)
}

// Sq parses an algebraic square name such as "e4".
// It calls t.Fatal if the name is not a square.
func Sq(t *testing.T, name string) chess.Coord {
	t.Helper()
	c, err := chess.ParseCoord(name)
	if err != nil {
		t.Fatalf("ParseCoord(%q): %v", name, err)
	}
	return c
}
