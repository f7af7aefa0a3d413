// Package config provides configuration for the chess rules engine and its tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Verbosity levels understood by components that log.
const (
	Silent   = 0 // nothing
	Outcomes = 1 // game outcomes and summaries
	Moves    = 2 // running commentary, one line per move
)

// Config holds all engine and tool configuration.
type Config struct {
	// Logging
	Verbosity int // 0=nothing, 1=outcomes, 2=running commentary
	LogFile   io.Writer

	// Output stream for tool results
	OutputFile io.Writer

	// Starting position; empty means the standard initial position.
	StartFEN string

	// Sub-configurations
	Draw  *DrawConfig
	Perft *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Outcomes,
		LogFile:    os.Stderr,
		OutputFile: os.Stdout,
		Draw:       NewDrawConfig(),
		Perft:      NewPerftConfig(),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Moves {
		return fmt.Errorf("verbosity %d outside [%d,%d]: %w", c.Verbosity, Silent, Moves, errors.ErrInvalidConfig)
	}
	if c.Draw == nil || c.Perft == nil {
		return fmt.Errorf("missing sub-configuration: %w", errors.ErrInvalidConfig)
	}
	if err := c.Draw.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
