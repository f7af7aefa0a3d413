package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// MaxPerftDepth bounds perft runs; the node count grows roughly 30x per ply.
const MaxPerftDepth = 10

// PerftConfig controls move-path enumeration runs.
type PerftConfig struct {
	Depth   int
	Divide  bool // print per-root-move counts
	Workers int  // goroutines for root-split counting; 1 runs inline
	Verify  bool // cross-check counts against a reference generator
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   1,
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside [1,%d]: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
