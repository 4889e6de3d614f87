package engine

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// PerftDivideParallel is PerftDivide with the root moves spread over a
// worker pool. Entries come back in generation order regardless of which
// worker finished first.
//
// table may be nil. When it is not, it is shared by every worker and must
// be safe for concurrent use, such as hashing.ThreadSafePerftTable.
func PerftDivideParallel(board *chess.Board, depth, numWorkers int, table PerftTable) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, fmt.Errorf("divide depth %d: %w", depth, errors.ErrInvalidDepth)
	}

	moves := GenerateLegal(board)
	if len(moves) == 0 {
		return []DivideEntry{}, nil
	}

	countFunc := func(job worker.Job) worker.Count {
		return worker.Count{
			Move:  job.Move,
			Index: job.Index,
			Nodes: PerftCached(&job.Board, job.Depth, table),
		}
	}

	bufferSize := len(moves)
	if bufferSize > 64 {
		bufferSize = 64
	}
	pool := worker.NewPoolWithOptions(countFunc,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(bufferSize),
	)
	pool.Start()

	go func() {
		for i, m := range moves {
			next := *board
			Apply(&next, m)
			pool.Submit(worker.Job{Board: next, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	entries := make([]DivideEntry, 0, len(moves))
	for _, c := range pool.Collect(len(moves)) {
		entries = append(entries, DivideEntry{Move: c.Move, Nodes: c.Nodes})
	}
	return entries, nil
}
