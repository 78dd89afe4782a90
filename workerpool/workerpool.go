// Copyright 2026 zbynek-go-exp Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting long,
// embarrassingly parallel checks (such as verifying a million random matrix
// products against a reference) across all CPUs.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForErr(ctx, chunks, func(start, end int) error {
//	    return checkChunks(start, end)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
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

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
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

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker and blocks until all ranges are done. A closed pool runs fn(0, n)
// on the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	_ = p.ParallelForErr(context.Background(), n, func(start, end int) error {
		fn(start, end)
		return nil
	})
}

// ParallelForErr is ParallelFor for fallible work. Indices are handed out in
// ranges of ceil(n/workers); the first error returned by fn (or the context
// error, if ctx is cancelled first) is returned once every started range has
// finished. Ranges not yet started when an error occurs are skipped.
func (p *Pool) ParallelForErr(ctx context.Context, n int, fn func(start, end int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(0, n)
	}

	chunkSize := (n + workers - 1) / workers

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		failed   atomic.Bool
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			failed.Store(true)
		})
	}

	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				if failed.Load() {
					return
				}
				if err := ctx.Err(); err != nil {
					fail(err)
					return
				}
				if err := fn(start, end); err != nil {
					fail(err)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return firstErr
}
