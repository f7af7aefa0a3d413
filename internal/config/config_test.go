package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Outcomes {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Outcomes)
	}
	if cfg.LogFile == nil {
		t.Error("LogFile should not be nil")
	}
	if cfg.OutputFile == nil {
		t.Error("OutputFile should not be nil")
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestDrawConfig_Defaults verifies DrawConfig enables the standard rules
func TestDrawConfig_Defaults(t *testing.T) {
	cfg := NewDrawConfig()

	if !cfg.FiftyMoveRule {
		t.Error("FiftyMoveRule should be true by default")
	}
	if cfg.FiftyMoveLimit != 100 {
		t.Errorf("FiftyMoveLimit = %d, want 100", cfg.FiftyMoveLimit)
	}
	if !cfg.InsufficientMaterial {
		t.Error("InsufficientMaterial should be true by default")
	}
	if !cfg.Repetition {
		t.Error("Repetition should be true by default")
	}
	if cfg.RepetitionLimit != 3 {
		t.Errorf("RepetitionLimit = %d, want 3", cfg.RepetitionLimit)
	}
}

// TestPerftConfig_Defaults verifies PerftConfig defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 1 {
		t.Errorf("Depth = %d, want 1", cfg.Depth)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Divide || cfg.Verify {
		t.Error("Divide and Verify should be false by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = Silent }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"zero fifty-move limit", func(c *Config) { c.Draw.FiftyMoveLimit = 0 }, true},
		{"zero limit with rule off", func(c *Config) {
			c.Draw.FiftyMoveRule = false
			c.Draw.FiftyMoveLimit = 0
		}, false},
		{"repetition limit 1", func(c *Config) { c.Draw.RepetitionLimit = 1 }, true},
		{"perft depth 0", func(c *Config) { c.Perft.Depth = 0 }, true},
		{"perft depth too deep", func(c *Config) { c.Perft.Depth = MaxPerftDepth + 1 }, true},
		{"zero workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"missing draw config", func(c *Config) { c.Draw = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(Outcomes).Build()

	cfg.Logf(Outcomes, "result %s", "1-0")
	cfg.Logf(Moves, "move %s", "e2e4")

	if got, want := buf.String(), "result 1-0\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}

	cfg.LogFile = nil
	cfg.Logf(Silent, "must not panic")
}

func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithOutput(&out).
		WithFiftyMoveRule(false).
		WithInsufficientMaterial(false).
		WithRepetition(true, 5).
		WithPerftDepth(4).
		WithWorkers(8).
		WithDivide(true).
		WithVerify(true).
		Build()

	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.OutputFile != &out {
		t.Error("OutputFile was not set")
	}
	if cfg.Draw.FiftyMoveRule || cfg.Draw.InsufficientMaterial {
		t.Error("draw rules were not disabled")
	}
	if !cfg.Draw.Repetition || cfg.Draw.RepetitionLimit != 5 {
		t.Errorf("Repetition = %v/%d, want true/5", cfg.Draw.Repetition, cfg.Draw.RepetitionLimit)
	}
	if cfg.Perft.Depth != 4 || cfg.Perft.Workers != 8 || !cfg.Perft.Divide || !cfg.Perft.Verify {
		t.Errorf("Perft = %+v", *cfg.Perft)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
