// Package worker provides a worker pool for evaluating candidate moves in
// parallel. Clone-and-simulate legality checks for distinct candidates are
// fully independent, so they fan out safely across goroutines; verdicts
// are re-ordered by candidate index before use, keeping results identical
// to a sequential evaluation.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Candidate is a move queued for legality evaluation, tagged with its
// position in the original candidate order.
type Candidate struct {
	Move  chess.Move
	Index int
}

// Verdict is the result of evaluating one candidate.
type Verdict struct {
	Move  chess.Move
	Index int
	Legal bool
}

// EvalFunc decides whether a candidate move is legal. It must be safe
// for concurrent use; the engine's legality check qualifies because each
// call works on its own board copy.
type EvalFunc func(chess.Move) bool

// Pool manages a pool of workers evaluating candidate moves.
type Pool struct {
	numWorkers int
	bufferSize int
	work       chan Candidate
	verdicts   chan Verdict
	eval       EvalFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool around eval. Defaults: 1 worker, buffer
// size of 16.
func NewPool(eval EvalFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 16,
		eval:       eval,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.work = make(chan Candidate, p.bufferSize)
	p.verdicts = make(chan Verdict, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker evaluates candidates from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for c := range p.work {
		if p.IsStopped() {
			continue // Drain channel without evaluating
		}
		p.verdicts <- Verdict{Move: c.Move, Index: c.Index, Legal: p.eval(c.Move)}
	}
}

// Submit queues a candidate for evaluation. This may block if the work
// channel buffer is full.
func (p *Pool) Submit(c Candidate) {
	p.work <- c
}

// Stop signals workers to stop evaluating new candidates. Candidates
// already queued are drained but not evaluated.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The verdict channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.verdicts)
}

// Verdicts returns the channel of evaluation results.
func (p *Pool) Verdicts() <-chan Verdict {
	return p.verdicts
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// FilterLegal evaluates every candidate on a pool of the given size and
// returns the legal ones in their original order, exactly as a
// sequential filter would. With one worker (or one candidate) it skips
// the pool entirely.
func FilterLegal(moves []chess.Move, eval EvalFunc, workers int) []chess.Move {
	if workers <= 1 || len(moves) <= 1 {
		var legal []chess.Move
		for _, m := range moves {
			if eval(m) {
				legal = append(legal, m)
			}
		}
		return legal
	}

	p := NewPool(eval, WithWorkers(workers), WithBufferSize(len(moves)))
	p.Start()
	go func() {
		for i, m := range moves {
			p.Submit(Candidate{Move: m, Index: i})
		}
		p.Close()
	}()

	verdicts := make([]bool, len(moves))
	for v := range p.Verdicts() {
		verdicts[v.Index] = v.Legal
	}

	var legal []chess.Move
	for i, m := range moves {
		if verdicts[i] {
			legal = append(legal, m)
		}
	}
	return legal
}
