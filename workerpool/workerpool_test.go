// Copyright 2026 zbynek-go-exp Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForUneven(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for _, n := range []int{1, 2, 3, 4, 7, 10, 31} {
		var covered atomic.Int64
		seen := make([]atomic.Int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				seen[i].Add(1)
				covered.Add(1)
			}
		})
		if covered.Load() != int64(n) {
			t.Errorf("n=%d: covered %d indices", n, covered.Load())
		}
		for i := range seen {
			if seen[i].Load() != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, seen[i].Load())
			}
		}
	}
}

func TestParallelForZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	if called {
		t.Error("fn called for n=0")
	}
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var calls atomic.Int32
	pool.ParallelFor(10, func(start, end int) {
		calls.Add(1)
		if start != 0 || end != 10 {
			t.Errorf("closed pool got range [%d, %d)", start, end)
		}
	})
	if calls.Load() != 1 {
		t.Errorf("closed pool called fn %d times, want 1", calls.Load())
	}
}

func TestParallelForErr(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	wantErr := errors.New("boom")
	err := pool.ParallelForErr(context.Background(), 100, func(start, end int) error {
		if start <= 50 && 50 < end {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("ParallelForErr() = %v, want %v", err, wantErr)
	}
}

func TestParallelForErrCancelled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := pool.ParallelForErr(ctx, 100, func(start, end int) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParallelForErr() = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("fn called %d times after cancellation", calls.Load())
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = data[i]*0.5 + 1
			}
		})
	}
}
