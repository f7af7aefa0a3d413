package hashing

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	// counts maps a Zobrist key to its number of occurrences
	counts map[uint64]int
	// total is the number of positions recorded, repeats included
	total int
	// maxCount is the highest count reached so far
	maxCount int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Add records the position and returns how many times it has now occurred.
func (r *RepetitionTable) Add(board *chess.Board) int {
	return r.AddKey(GenerateZobristHash(board))
}

// AddKey records a position by its key and returns its occurrence count.
func (r *RepetitionTable) AddKey(key uint64) int {
	r.counts[key]++
	r.total++
	n := r.counts[key]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Count returns how many times the position has occurred.
func (r *RepetitionTable) Count(board *chess.Board) int {
	return r.counts[GenerateZobristHash(board)]
}

// MaxCount returns the highest occurrence count of any position.
func (r *RepetitionTable) MaxCount() int {
	return r.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTable) UniqueCount() int {
	return len(r.counts)
}

// Len returns the number of positions recorded, repeats included.
func (r *RepetitionTable) Len() int {
	return r.total
}

