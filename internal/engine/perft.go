package engine

import (
	"context"
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree below board to the
// given depth. Depth 0 counts the position itself.
//
// Generic promotions are never produced by the move generator, so every
// promotion is counted once per promotion piece.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next := board.Copy()
		if err := ApplyMove(next, m); err != nil {
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the node count below each legal root move, in move
// generation order.
func PerftDivide(board *chess.Board, depth int) ([]DivideEntry, error) {
	return PerftDivideParallel(context.Background(), board, depth, 1)
}

// PerftDivideParallel is PerftDivide with the root moves spread over a pool
// of workers. Each worker searches its own copy of the board. Cancelling
// ctx abandons the root moves not yet started and returns ctx's error.
func PerftDivideParallel(ctx context.Context, board *chess.Board, depth, workers int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft divide depth %d: must be at least 1", depth)
	}

	moves := AllLegalMoves(board, board.ToMove)
	items := make([]worker.WorkItem, 0, len(moves))
	for i, m := range moves {
		next := board.Copy()
		if err := ApplyMove(next, m); err != nil {
			return nil, fmt.Errorf("perft divide root move %v: %w", m, err)
		}
		items = append(items, worker.WorkItem{Board: next, Move: m, Depth: depth - 1, Index: i})
	}

	pool := worker.New(perftItem,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)+1),
	)

	entries := make([]DivideEntry, 0, len(items))
	for _, r := range pool.Run(ctx, items) {
		if r.Error != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("perft divide: %w", ctx.Err())
			}
			return nil, r.Error
		}
		entries = append(entries, DivideEntry{Move: r.Move, Nodes: r.Nodes})
	}
	return entries, nil
}

// PerftParallel counts the same nodes as Perft, splitting the root moves
// across workers.
func PerftParallel(ctx context.Context, board *chess.Board, depth, workers int) (uint64, error) {
	if depth <= 1 {
		return Perft(board, depth), nil
	}
	entries, err := PerftDivideParallel(ctx, board, depth, workers)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, e := range entries {
		nodes += e.Nodes
	}
	return nodes, nil
}

func perftItem(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: Perft(item.Board, item.Depth),
	}
}
