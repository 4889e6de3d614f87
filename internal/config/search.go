package config

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// SearchConfig holds settings for best-move search.
type SearchConfig struct {
	// Depth is the negamax depth; 0 disables search
	Depth int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{}
}

// Enabled reports whether a search was requested.
func (s *SearchConfig) Enabled() bool {
	return s.Depth > 0
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d out of range 0-%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}
