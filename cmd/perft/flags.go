// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/movegen-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	moveList  = flag.String("moves", "", "Space-separated coordinate moves to apply first (e.g. 'e2e4 e7e5')")
	listMoves = flag.Bool("list", false, "List the legal moves and status of the position")

	// Perft options
	depth      = flag.Int("depth", 1, "Perft depth (0 counts only the root)")
	divide     = flag.Bool("divide", false, "Report node counts below each root move")
	workers    = flag.Int("workers", 1, "Number of worker goroutines for perft")
	hashSize   = flag.Int("hash", 0, "Perft table capacity in entries (0 = off)")
	runSuite   = flag.Bool("suite", false, "Run the reference perft suite instead of -fen")
	suiteDepth = flag.Int("suitedepth", 0, "Maximum suite depth (0 = every known depth)")
	suiteCase  = flag.String("case", "", "Run only the named suite position (e.g. kiwipete)")

	// Persistent cache
	cacheDir = flag.String("cache", "", "Directory of the persistent perft cache (default: off)")

	// Search
	searchDepth = flag.Int("search", 0, "Find the best move at this depth (0 = off)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=running commentary")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Cache.Dir = *cacheDir
	cfg.Search.Depth = *searchDepth
	cfg.JSONFormat = *jsonOutput
	cfg.Verbosity = *verbose
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config) {
	cfg.Position.FEN = strings.TrimSpace(*fenString)
	cfg.Position.Moves = splitMoves(*moveList)
	cfg.Position.ListMoves = *listMoves
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.HashSize = *hashSize
	cfg.Perft.Suite = *runSuite
	cfg.Perft.SuiteDepth = *suiteDepth
	cfg.Perft.SuiteCase = strings.TrimSpace(*suiteCase)
}

// splitMoves splits a move list on whitespace and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
