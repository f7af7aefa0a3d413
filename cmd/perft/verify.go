package main

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// dragontoothBoard converts board for the reference generator.
func dragontoothBoard(board *chess.Board) dragontoothmg.Board {
	return dragontoothmg.ParseFen(engine.BoardToFEN(board))
}

// referencePerft counts leaf nodes with the dragontoothmg generator.
func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth <= 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// referenceDivide returns per-root-move counts keyed by UCI move text.
func referenceDivide(board *chess.Board, depth int) map[string]uint64 {
	b := dragontoothBoard(board)
	counts := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		nodes := uint64(1)
		unapply := b.Apply(m)
		if depth > 1 {
			nodes = referencePerft(&b, depth-1)
		}
		unapply()
		counts[m.String()] = nodes
	}
	return counts
}

// mismatch is one root move whose counts disagree.
type mismatch struct {
	move      string
	got, want uint64
}

// compareDivide lists, in move order, the moves where got and want
// disagree. A move missing on one side counts as zero there.
func compareDivide(got, want map[string]uint64) []mismatch {
	moves := maps.Keys(got)
	for move := range want {
		if _, ok := got[move]; !ok {
			moves = append(moves, move)
		}
	}
	slices.Sort(moves)

	var diffs []mismatch
	for _, move := range moves {
		g, w := got[move], want[move]
		_, inGot := got[move]
		_, inWant := want[move]
		if g != w || inGot != inWant {
			diffs = append(diffs, mismatch{move: move, got: g, want: w})
		}
	}
	return diffs
}
