package output

import (
	"time"

	"github.com/lgbarn/movegen-go/internal/engine"
)

// PerftResult is one perft run over a position.
type PerftResult struct {
	FEN     string
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
	Cached  bool                 // answered from the persistent cache
	Divide  []engine.DivideEntry // per-move counts; nil unless divide was requested
}

// NodesPerSecond returns the counting rate, or 0 if no time was recorded.
func (r PerftResult) NodesPerSecond() uint64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Elapsed.Seconds())
}

// SuiteResult is one reference position checked at one depth.
type SuiteResult struct {
	Name     string
	FEN      string
	Depth    int
	Nodes    uint64
	Expected uint64
}

// Passed reports whether the count matched the reference.
func (r SuiteResult) Passed() bool {
	return r.Nodes == r.Expected
}

// SearchResult is the outcome of a best-move search.
type SearchResult struct {
	FEN         string
	Depth       int
	Move        string // empty when the side to move has no legal move
	Score       int
	Evaluations int
	Elapsed     time.Duration
}

// PositionInfo describes a position and its legal moves.
type PositionInfo struct {
	FEN     string
	Status  string
	InCheck bool
	Moves   []string
}
