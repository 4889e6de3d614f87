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

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Position.FEN = fen
	return b
}

// WithMoves sets the moves applied to the starting position.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Position.Moves = moves
	return b
}

// WithListMoves enables the legal move listing.
func (b *ConfigBuilder) WithListMoves(enabled bool) *ConfigBuilder {
	b.cfg.Position.ListMoves = enabled
	return b
}

// WithDepth sets the perft depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-move node counts.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithWorkers sets the number of divide workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithHashSize sets the perft table capacity.
func (b *ConfigBuilder) WithHashSize(entries int) *ConfigBuilder {
	b.cfg.Perft.HashSize = entries
	return b
}

// WithSuite enables the reference suite, capped at depth (0 = all).
func (b *ConfigBuilder) WithSuite(enabled bool, depth int) *ConfigBuilder {
	b.cfg.Perft.Suite = enabled
	b.cfg.Perft.SuiteDepth = depth
	return b
}

// WithSuiteCase restricts the suite to one named position.
func (b *ConfigBuilder) WithSuiteCase(name string) *ConfigBuilder {
	b.cfg.Perft.SuiteCase = name
	return b
}

// WithCacheDir sets the persistent cache directory.
func (b *ConfigBuilder) WithCacheDir(dir string) *ConfigBuilder {
	b.cfg.Cache.Dir = dir
	return b
}

// WithSearchDepth enables best-move search at depth.
func (b *ConfigBuilder) WithSearchDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONFormat = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
