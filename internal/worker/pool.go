// Package worker counts root-move subtrees on a fixed set of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// Job is one root move whose subtree is to be counted.
// Board is held by value so every worker owns an independent position.
type Job struct {
	Board chess.Board // Position after Move has been played
	Move  chess.Move
	Depth int // Remaining depth below Board
	Index int // Position of Move in the root move list
}

// Count is the node count of one job's subtree.
type Count struct {
	Move  chess.Move
	Index int
	Nodes uint64
}

// CountFunc counts the subtree of a job.
type CountFunc func(job Job) Count

// Pool runs a CountFunc over submitted jobs.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	counts     chan Count
	countFunc  CountFunc
	wg         sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the job and count channels.
// Values below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool that runs countFunc.
// Without options it has one worker and a buffer of ten.
func NewPoolWithOptions(countFunc CountFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		countFunc:  countFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.counts = make(chan Count, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.counts <- p.countFunc(job)
			}
		}()
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs, waits for the workers and then closes the
// count channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.counts)
}

// Results returns the channel counts are delivered on, in completion order.
func (p *Pool) Results() <-chan Count {
	return p.counts
}

// Collect drains the count channel into a slice indexed by Job.Index.
// n is the number of jobs submitted; counts with an index outside [0, n)
// are dropped. It returns once Close has run.
func (p *Pool) Collect(n int) []Count {
	ordered := make([]Count, n)
	for c := range p.counts {
		if c.Index >= 0 && c.Index < n {
			ordered[c.Index] = c
		}
	}
	return ordered
}
