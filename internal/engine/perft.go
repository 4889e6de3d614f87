package engine

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
)

// PerftTable memoises subtree node counts keyed by position hash and depth.
// Both hashing.PerftTable and hashing.ThreadSafePerftTable satisfy it.
type PerftTable interface {
	Probe(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateLegal(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := *board
		Apply(&next, m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide returns the node count below each legal root move, in
// generation order.
func PerftDivide(board *chess.Board, depth int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, fmt.Errorf("divide depth %d: %w", depth, errors.ErrInvalidDepth)
	}
	moves := GenerateLegal(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		next := *board
		Apply(&next, m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(&next, depth-1)})
	}
	return entries, nil
}

// PerftCached is Perft with subtree counts memoised in table.
// A nil table falls back to plain Perft.
func PerftCached(board *chess.Board, depth int, table PerftTable) uint64 {
	if table == nil {
		return Perft(board, depth)
	}
	return perftCached(board, depth, table)
}

func perftCached(board *chess.Board, depth int, table PerftTable) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(GenerateLegal(board)))
	}

	hash := hashing.Zobrist(board)
	if nodes, ok := table.Probe(hash, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range GenerateLegal(board) {
		next := *board
		Apply(&next, m)
		nodes += perftCached(&next, depth-1, table)
	}
	table.Store(hash, depth, nodes)
	return nodes
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
