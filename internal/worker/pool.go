// Package worker provides a worker pool for counting move subtrees in parallel.
package worker

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ErrStopped is the error of every item skipped after the pool was stopped.
var ErrStopped = errors.New("worker pool stopped")

// WorkItem is one root move whose subtree is to be searched.
// Board is the position after Move has been played and is owned by the
// worker that receives it.
type WorkItem struct {
	Board *chess.Board
	Move  chess.Move
	Depth int // Remaining depth below Move
	Index int // Position of the item in the submitted batch
}

// ProcessResult represents the result of searching one subtree.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc searches one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out over a fixed set of goroutines.
// A Pool is single use: Start, Submit, then Close.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc

	work    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// New creates a pool running process. The default is one worker with a
// buffer of 16 items.
func New(process ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 16,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.work {
		if p.Stopped() {
			p.results <- ProcessResult{Move: item.Move, Index: item.Index, Error: ErrStopped}
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item. It blocks while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes workers skip the items they have not started yet. Skipped
// items still produce a result, carrying ErrStopped.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Run starts the pool, submits every item and returns one result per item
// ordered by Index. Cancelling ctx stops the pool; the items not yet
// started then report ErrStopped.
func (p *Pool) Run(ctx context.Context, items []WorkItem) []ProcessResult {
	p.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-done:
		}
	}()

	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
