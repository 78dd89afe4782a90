// Copyright 2026 zbynek-go-exp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench measures kernels in CPU cycles.
//
// A Runner repeats a kernel many times and reports the best and the average
// cost per operation, the way hand written C micro-benchmarks usually do:
// the best run approximates the uncontended cost, the average shows noise.
// Cycles are derived from process CPU time and a nominal clock frequency, not
// from a cycle counter, so they are only as good as the frequency.
package bench

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

// DefaultRuns is the number of timed runs per benchmark.
const DefaultRuns = 4096

// Clock returns a monotonically increasing tick count.
type Clock interface {
	Ticks() uint64
}

// CPUClock counts process CPU time in cycles of a Hz clock.
type CPUClock struct {
	Hz uint64
}

// Ticks implements Clock.
func (c CPUClock) Ticks() uint64 {
	return nanosToTicks(uint64(processCPUTime()), c.Hz)
}

func nanosToTicks(ns, hz uint64) uint64 {
	hi, lo := bits.Mul64(ns, hz)
	if hi >= 1e9 {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, 1e9)
	return q
}

// Result is the outcome of one Runner.Run.
type Result struct {
	Name string `json:"name"`

	// Cycles is the best run's ticks per operation.
	Cycles float64 `json:"cycles"`

	// AvgCycles is the mean ticks per operation over all runs, including the
	// harness overhead between runs.
	AvgCycles float64 `json:"avg_cycles"`

	// MOPS is millions of operations per wall-clock second.
	MOPS float64 `json:"mops"`

	Runs   int           `json:"runs"`
	Repeat int           `json:"repeat"`
	Inner  int           `json:"inner"`
	Wall   time.Duration `json:"wall_ns"`
}

// String formats the result as one line of a benchmark table.
func (r Result) String() string {
	return fmt.Sprintf("%-25s: %6.2f cycles, avg %6.2f cycles, %8.3f MOPS", r.Name, r.Cycles, r.AvgCycles, r.MOPS)
}

// Runner runs benchmarks. The zero value is not usable; see NewRunner.
type Runner struct {
	Clock Clock

	// Runs is the number of timed runs; each run calls the kernel Repeat times.
	Runs int

	now func() time.Time
}

// NewRunner returns a runner reading ticks from clock.
func NewRunner(clock Clock) *Runner {
	return &Runner{Clock: clock, Runs: DefaultRuns, now: time.Now}
}

// Run calls fn runs*repeat times. Each call of fn is expected to perform
// inner operations; results are reported per operation.
func (r *Runner) Run(name string, repeat, inner int, fn func()) Result {
	runs := r.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}
	repeat = max(repeat, 1)
	inner = max(inner, 1)
	now := r.now
	if now == nil {
		now = time.Now
	}

	best := uint64(math.MaxUint64)
	startTicks := r.Clock.Ticks()
	startWall := now()
	for range runs {
		t := r.Clock.Ticks()
		for range repeat {
			fn()
		}
		t = r.Clock.Ticks() - t
		best = min(best, t)
	}
	total := r.Clock.Ticks() - startTicks
	wall := now().Sub(startWall)

	ops := float64(runs) * float64(repeat) * float64(inner)
	res := Result{
		Name:      name,
		Cycles:    float64(best) / float64(repeat) / float64(inner),
		AvgCycles: float64(total) / float64(runs) / float64(repeat) / float64(inner),
		Runs:      runs,
		Repeat:    repeat,
		Inner:     inner,
		Wall:      wall,
	}
	if wall > 0 {
		res.MOPS = ops / wall.Seconds() / 1e6
	}
	return res
}
