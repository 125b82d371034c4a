// Copyright 2025 The go-parstd Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool implementing
// parstd.Context. Workers are spawned once at creation and reused across
// many launches, so per-call goroutine spawn and channel allocation
// overhead is paid only once.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	start, err := algo.ShiftRight(pool, data, 3)
//
// Besides the Launch/Fence capability pair, the pool keeps chunked and
// work-stealing ParallelFor helpers for callers that want a synchronous
// fan-out without going through the Context interface.
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/parstd/go-parstd/parstd"
)

// Pool is a persistent worker pool. It implements parstd.Context: Launch
// submits work asynchronously, Fence drains it and surfaces failures.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool

	// pending counts work items submitted via Launch that have not yet
	// finished. Fence waits on it.
	pending sync.WaitGroup

	// failure holds the first work-item panic since the last Fence.
	failure atomic.Pointer[itemError]
}

var _ parstd.Context = (*Pool)(nil)

// workItem is one unit of queued work.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
	onPanic func(label string, recovered any)
	label   string
}

// itemError records a recovered work-item panic for the next Fence.
type itemError struct {
	label     string
	recovered any
}

// cursor is an atomic work-stealing index, padded to its own cache line so
// workers hammering it do not false-share with neighboring allocations.
type cursor struct {
	_ cpu.CacheLinePad
	n atomic.Int64
	_ cpu.CacheLinePad
}

// New creates a pool with the given number of workers, spawned immediately.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work.
		workC: make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop of each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		p.run(item)
	}
}

// run executes one work item, converting a panic into a recorded failure so
// a misbehaving item cannot kill the worker.
func (p *Pool) run(item workItem) {
	defer item.barrier.Done()
	if item.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				item.onPanic(item.label, r)
			}
		}()
	}
	item.fn()
}

// recordFailure keeps the first panic since the last Fence.
func (p *Pool) recordFailure(label string, recovered any) {
	p.failure.CompareAndSwap(nil, &itemError{label: label, recovered: recovered})
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Work already queued completes; subsequent
// Launch calls fail with parstd.ErrContextClosed. Close is idempotent. The
// caller must Fence all launches before closing.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Launch submits n independent work items covering [0, n). Items are
// coalesced into contiguous chunks, at most one per worker; they may run in
// any order. Launch returns once the chunks are queued, without waiting for
// them to run. n <= 0 is a no-op.
func (p *Pool) Launch(label string, n int, item func(i int)) error {
	if n <= 0 {
		return nil
	}
	if p.closed.Load() {
		return fmt.Errorf("workerpool: launch %q: %w", label, parstd.ErrContextClosed)
	}

	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers

	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		p.pending.Add(1)
		p.workC <- workItem{
			fn: func() {
				for i := start; i < end; i++ {
					item(i)
				}
			},
			barrier: &p.pending,
			onPanic: p.recordFailure,
			label:   label,
		}
	}
	return nil
}

// Fence blocks until all previously launched work has finished. If any work
// item panicked since the last Fence, the first such panic is returned as
// an error; each failure is reported exactly once.
func (p *Pool) Fence(label string) error {
	p.pending.Wait()
	if e := p.failure.Swap(nil); e != nil {
		return fmt.Errorf("workerpool: fence %q: work item of launch %q panicked: %v",
			label, e.label, e.recovered)
	}
	return nil
}

// ParallelFor executes fn over [0, n) in contiguous per-worker chunks and
// blocks until all chunks complete. fn receives (start, end) and must cover
// [start, end). A panicking chunk is reported as an error once all chunks
// have finished.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}
	if p.closed.Load() {
		return fmt.Errorf("workerpool: parallel for: %w", parstd.ErrContextClosed)
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return nil
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	var failure atomic.Pointer[itemError]
	record := func(label string, r any) {
		failure.CompareAndSwap(nil, &itemError{label: label, recovered: r})
	}

	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
			onPanic: record,
			label:   "ParallelFor",
		}
	}

	wg.Wait()
	if e := failure.Load(); e != nil {
		return fmt.Errorf("workerpool: parallel for: chunk panicked: %v", e.recovered)
	}
	return nil
}

// ParallelForAtomic executes fn(i) for each i in [0, n) using atomic work
// stealing, which balances load when the cost per item varies. Blocks until
// all items complete.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) error {
	return p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched executes fn over [0, n) in batches of batchSize
// grabbed from a shared atomic cursor. Larger batches amortize the atomic
// operation; batchSize <= 0 is treated as 1. Blocks until all batches
// complete.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if p.closed.Load() {
		return fmt.Errorf("workerpool: parallel for: %w", parstd.ErrContextClosed)
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 {
		fn(0, n)
		return nil
	}

	next := new(cursor)
	var wg sync.WaitGroup
	var failure atomic.Pointer[itemError]
	record := func(label string, r any) {
		failure.CompareAndSwap(nil, &itemError{label: label, recovered: r})
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				for {
					batch := int(next.n.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
			onPanic: record,
			label:   "ParallelForAtomicBatched",
		}
	}

	wg.Wait()
	if e := failure.Load(); e != nil {
		return fmt.Errorf("workerpool: parallel for: batch panicked: %v", e.recovered)
	}
	return nil
}
