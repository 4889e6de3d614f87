// Package config provides configuration for the perft and search tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity  int // 0=nothing, 1=summary, 2=running commentary
	JSONFormat bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Position *PositionConfig
	Perft    *PerftConfig
	Cache    *CacheConfig
	Search   *SearchConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Position:   NewPositionConfig(),
		Perft:      NewPerftConfig(),
		Cache:      NewCacheConfig(),
		Search:     NewSearchConfig(),
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Search.Validate()
}
