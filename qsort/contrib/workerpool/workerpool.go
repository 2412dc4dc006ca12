// Copyright 2025 The go-quicksort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent jobs on a fixed set of long-lived
// goroutines. The check harness uses it to sort many separate inputs at once;
// a single sort never shares its slice with another worker.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Each(ctx, len(inputs), func(i int) {
//	    qsort.Sort(inputs[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for n := 0; n < numWorkers; n++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes. Calling Close multiple
// times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Range calls fn once per contiguous chunk of [0, n), one chunk per worker,
// and blocks until all chunks are done.
func (p *Pool) Range(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// Each calls fn for every index in [0, n), handing indices out one at a time
// so uneven jobs balance across workers. Once ctx is done no further indices
// are handed out; Each waits for running calls and returns ctx.Err().
func (p *Pool) Each(ctx context.Context, n int, fn func(i int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	next := func(counter *atomic.Int64) (int, bool) {
		if ctx.Err() != nil {
			return 0, false
		}
		idx := int(counter.Add(1)) - 1
		return idx, idx < n
	}

	var nextIdx atomic.Int64
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i, ok := next(&nextIdx); ok; i, ok = next(&nextIdx) {
			fn(i)
		}
		return ctx.Err()
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for n := 0; n < workers; n++ {
		p.workC <- workItem{
			fn: func() {
				for i, ok := next(&nextIdx); ok; i, ok = next(&nextIdx) {
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
	return ctx.Err()
}
