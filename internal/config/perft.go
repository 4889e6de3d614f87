package config

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// MaxDepth bounds every depth setting. Deeper trees are not countable in
// any reasonable time with an array generator.
const MaxDepth = 12

// PerftConfig holds settings for node counting.
type PerftConfig struct {
	// Depth is the perft depth for the configured position
	Depth int

	// Divide reports the node count below each root move
	Divide bool

	// Workers is the number of goroutines used for divide
	Workers int

	// HashSize is the perft table capacity in entries; 0 disables it
	HashSize int

	// Suite runs the reference positions instead of the configured one
	Suite bool

	// SuiteDepth caps the depth of each suite position; 0 uses every known depth
	SuiteDepth int

	// SuiteCase restricts the suite to the named position; empty runs them all
	SuiteCase string
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
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth < 1 {
		return fmt.Errorf("divide needs depth of at least 1: %w", errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashSize < 0 {
		return fmt.Errorf("hash size (%d) must not be negative: %w", p.HashSize, errors.ErrInvalidConfig)
	}
	if p.SuiteDepth < 0 || p.SuiteDepth > MaxDepth {
		return fmt.Errorf("suite depth %d out of range 0-%d: %w", p.SuiteDepth, MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}
