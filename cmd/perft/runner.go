package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/search"
	"github.com/lgbarn/movegen-go/internal/storage"
)

// statsTable is a perft table that can report and clear its contents.
// Both hashing table types satisfy it.
type statsTable interface {
	engine.PerftTable
	Stats() (hits, misses int)
	Len() int
	IsFull() bool
	Reset()
}

// Runner carries the shared state of one invocation.
type Runner struct {
	cfg    *config.Config
	writer output.ResultWriter
	store  *storage.PerftStore // nil when the cache is off
	table  statsTable          // nil when -hash is 0
}

// NewRunner opens the persistent cache if one is configured.
func NewRunner(cfg *config.Config) (*Runner, error) {
	r := &Runner{
		cfg:    cfg,
		writer: output.NewResultWriter(cfg),
		table:  newTable(cfg.Perft),
	}
	if cfg.Cache.Enabled() {
		store, err := storage.Open(cfg.Cache.Dir)
		if err != nil {
			return nil, errors.Wrapf(err, "opening cache %s", cfg.Cache.Dir)
		}
		r.store = store
		cfg.Logf(2, "Opened perft cache %s\n", cfg.Cache.Dir)
	}
	return r, nil
}

// Close flushes the writer and closes the cache.
func (r *Runner) Close() error {
	werr := r.writer.Close()
	if r.store != nil {
		if err := r.store.Close(); err != nil && werr == nil {
			werr = err
		}
	}
	return werr
}

// Run performs everything the configuration asks for. Perft runs unless
// only a listing or a search was requested; divide always runs.
func (r *Runner) Run() error {
	if r.cfg.Perft.Suite {
		return r.runSuite()
	}

	board, err := loadPosition(r.cfg.Position)
	if err != nil {
		return err
	}

	listing := r.cfg.Position.ListMoves
	if listing {
		if err := r.writer.WritePosition(describePosition(board)); err != nil {
			return err
		}
	}
	if r.cfg.Search.Enabled() {
		if err := r.runSearch(board); err != nil {
			return err
		}
	}
	if (!listing && !r.cfg.Search.Enabled()) || r.cfg.Perft.Divide {
		return r.runPerft(board)
	}
	return nil
}

// loadPosition builds the board from the FEN and applies the move list.
func loadPosition(pos *config.PositionConfig) (*chess.Board, error) {
	fen := pos.FEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := engine.ApplyMoves(board, pos.Moves); err != nil {
		return nil, err
	}
	return board, nil
}

// describePosition lists the legal moves and status of a position.
func describePosition(board *chess.Board) output.PositionInfo {
	return output.PositionInfo{
		FEN:     engine.BoardToFEN(board),
		Status:  engine.Status(board).String(),
		InCheck: engine.IsInCheck(board),
		Moves:   engine.GenerateLegal(board).Strings(),
	}
}

// newTable returns the perft table selected by the configuration, or nil.
// Workers share one table, so it must lock when there is more than one.
func newTable(p *config.PerftConfig) statsTable {
	switch {
	case p.HashSize <= 0:
		return nil
	case p.Workers > 1:
		return hashing.NewThreadSafePerftTable(p.HashSize)
	default:
		return hashing.NewPerftTable(p.HashSize)
	}
}

// logTable reports how the perft table has been used so far.
func (r *Runner) logTable() {
	if r.table == nil {
		return
	}
	hits, misses := r.table.Stats()
	full := ""
	if r.table.IsFull() {
		full = " (full)"
	}
	r.cfg.Logf(2, "Perft table: %d hits, %d misses, %d entries%s\n", hits, misses, r.table.Len(), full)
}

// countNodes runs perft (or divide) using the configured workers and table.
func (r *Runner) countNodes(board *chess.Board, depth int, wantDivide bool) (uint64, []engine.DivideEntry, error) {
	defer r.logTable()

	var table engine.PerftTable
	if r.table != nil {
		table = r.table
	}
	if (wantDivide || r.cfg.Perft.Workers > 1) && depth >= 1 {
		var entries []engine.DivideEntry
		var err error
		if r.cfg.Perft.Workers > 1 {
			entries, err = engine.PerftDivideParallel(board, depth, r.cfg.Perft.Workers, table)
		} else {
			entries, err = engine.PerftDivide(board, depth)
		}
		if err != nil {
			return 0, nil, err
		}
		nodes := engine.TotalNodes(entries)
		if !wantDivide {
			entries = nil
		}
		return nodes, entries, nil
	}
	return engine.PerftCached(board, depth, table), nil, nil
}

// runPerft counts nodes for the configured position, consulting the
// persistent cache first.
func (r *Runner) runPerft(board *chess.Board) error {
	depth := r.cfg.Perft.Depth
	fen := engine.BoardToFEN(board)
	result := output.PerftResult{FEN: fen, Depth: depth}

	if r.store != nil && !r.cfg.Perft.Divide {
		nodes, ok, err := r.store.Lookup(fen, depth)
		if err != nil {
			return errors.Wrap(err, "cache lookup")
		}
		if ok {
			r.cfg.Logf(2, "Cache hit for depth %d\n", depth)
			result.Nodes = nodes
			result.Cached = true
			return r.writer.WritePerft(result)
		}
	}

	start := time.Now()
	nodes, entries, err := r.countNodes(board, depth, r.cfg.Perft.Divide)
	if err != nil {
		return err
	}
	result.Nodes = nodes
	result.Divide = entries
	result.Elapsed = time.Since(start)
	r.cfg.Logf(1, "Depth %d: %d nodes in %s\n", depth, nodes, result.Elapsed.Round(time.Millisecond))

	if r.store != nil {
		if err := r.store.Save(fen, depth, nodes); err != nil {
			return errors.Wrap(err, "cache save")
		}
	}
	return r.writer.WritePerft(result)
}

// runSuite checks every reference position, or the one named by SuiteCase,
// at every known depth up to the configured cap. A mismatch is reported and
// returned as ErrPerftMismatch after the whole suite has run.
func (r *Runner) runSuite() error {
	cases := engine.PerftSuite
	if name := r.cfg.Perft.SuiteCase; name != "" {
		c, ok := engine.FindPerftCase(name)
		if !ok {
			return fmt.Errorf("unknown suite position %q: %w", name, errors.ErrInvalidConfig)
		}
		cases = []engine.PerftCase{c}
	}

	var results []output.SuiteResult
	failed := 0
	for _, c := range cases {
		// Entries from one position are of no use to the next.
		if r.table != nil {
			r.table.Reset()
		}
		board, err := engine.NewBoardFromFEN(c.FEN)
		if err != nil {
			return errors.Wrapf(err, "suite position %s", c.Name)
		}

		maxDepth := c.MaxDepth()
		if limit := r.cfg.Perft.SuiteDepth; limit > 0 && limit < maxDepth {
			maxDepth = limit
		}
		for d := 1; d <= maxDepth; d++ {
			expected, _ := c.Expected(d)
			nodes, _, err := r.countNodes(board, d, false)
			if err != nil {
				return err
			}
			res := output.SuiteResult{Name: c.Name, FEN: c.FEN, Depth: d, Nodes: nodes, Expected: expected}
			if !res.Passed() {
				failed++
			}
			r.cfg.Logf(2, "%s depth %d: %d\n", c.Name, d, nodes)
			results = append(results, res)
		}
	}

	if err := r.writer.WriteSuite(results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d suite counts wrong: %w", failed, len(results), errors.ErrPerftMismatch)
	}
	return nil
}

// runSearch finds and reports the best move.
func (r *Runner) runSearch(board *chess.Board) error {
	s := search.NewSearcher(r.cfg.Search.Depth)
	start := time.Now()
	res := s.Search(board)

	out := output.SearchResult{
		FEN:         engine.BoardToFEN(board),
		Depth:       s.Depth,
		Score:       res.Score,
		Evaluations: res.Evaluations,
		Elapsed:     time.Since(start),
	}
	if res.Found {
		out.Move = res.Move.String()
	}
	r.cfg.Logf(1, "Search depth %d: %d evaluations in %s\n", s.Depth, res.Evaluations, out.Elapsed.Round(time.Millisecond))
	return r.writer.WriteSearch(out)
}
