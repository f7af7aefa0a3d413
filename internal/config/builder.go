package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithFiftyMoveRule enables or disables the fifty-move draw.
func (b *ConfigBuilder) WithFiftyMoveRule(enabled bool) *ConfigBuilder {
	b.cfg.Draw.FiftyMoveRule = enabled
	return b
}

// WithInsufficientMaterial enables or disables the dead-position draw.
func (b *ConfigBuilder) WithInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Draw.InsufficientMaterial = enabled
	return b
}

// WithRepetition enables repetition draws at the given occurrence count.
func (b *ConfigBuilder) WithRepetition(enabled bool, limit int) *ConfigBuilder {
	b.cfg.Draw.Repetition = enabled
	b.cfg.Draw.RepetitionLimit = limit
	return b
}

// WithPerftDepth sets the perft depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of perft worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithDivide enables per-root-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithVerify enables reference cross-checking of perft counts.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}
