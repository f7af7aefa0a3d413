package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// DrawConfig controls which automatic draw rules the game controller applies.
type DrawConfig struct {
	// Declare a draw once the half-move clock reaches FiftyMoveLimit.
	FiftyMoveRule  bool
	FiftyMoveLimit uint

	// Declare a draw when neither side can mate.
	InsufficientMaterial bool

	// Declare a draw when a position occurs RepetitionLimit times.
	Repetition      bool
	RepetitionLimit int
}

// NewDrawConfig creates a DrawConfig with the standard rules enabled.
func NewDrawConfig() *DrawConfig {
	return &DrawConfig{
		FiftyMoveRule:        true,
		FiftyMoveLimit:       100,
		InsufficientMaterial: true,
		Repetition:           true,
		RepetitionLimit:      3,
	}
}

// Validate checks that the draw configuration is valid.
func (d *DrawConfig) Validate() error {
	if d.FiftyMoveRule && d.FiftyMoveLimit == 0 {
		return fmt.Errorf("fifty-move limit must be positive: %w", errors.ErrInvalidConfig)
	}
	if d.Repetition && d.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit (%d) < 2: %w", d.RepetitionLimit, errors.ErrInvalidConfig)
	}
	return nil
}
