package config

// PositionConfig holds the position the tools start from.
type PositionConfig struct {
	// FEN is the starting position; empty means the standard start
	FEN string

	// Moves are coordinate-notation moves applied to FEN before any work
	Moves []string

	// ListMoves reports the legal moves and status of the position
	ListMoves bool
}

// NewPositionConfig creates a PositionConfig with default values.
func NewPositionConfig() *PositionConfig {
	return &PositionConfig{}
}
