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

package bench

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by the amount the kernel under test adds to it.
type stepClock struct {
	ticks uint64
}

func (c *stepClock) Ticks() uint64 { return c.ticks }

func TestRunnerRun(t *testing.T) {
	clock := &stepClock{}
	wall := time.Unix(0, 0)
	r := NewRunner(clock)
	r.Runs = 4
	r.now = func() time.Time {
		wall = wall.Add(time.Millisecond)
		return wall
	}

	// Call costs: 100 ticks, except the very first call which costs 1000.
	calls := 0
	res := r.Run("kernel", 2, 10, func() {
		calls++
		if calls == 1 {
			clock.ticks += 1000
		} else {
			clock.ticks += 100
		}
	})

	assert.Equal(t, 8, calls)
	assert.Equal(t, "kernel", res.Name)
	// Best run: 2 calls of 100 ticks, per operation 200/2/10.
	assert.InDelta(t, 10.0, res.Cycles, 1e-9)
	// Total: 1000 + 7*100 ticks over 4 runs, 2 repeats, 10 inner.
	assert.InDelta(t, 1700.0/80, res.AvgCycles, 1e-9)
	// 80 operations in 1 ms of wall time.
	assert.Equal(t, time.Millisecond, res.Wall)
	assert.InDelta(t, 0.08, res.MOPS, 1e-9)
}

func TestResultString(t *testing.T) {
	res := Result{Name: "matmult_ref", Cycles: 12.25, AvgCycles: 13.5, MOPS: 100.25}
	assert.Equal(t, "matmult_ref              :  12.25 cycles, avg  13.50 cycles,  100.250 MOPS", res.String())
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(Result{Name: "x", Cycles: 1.5, Runs: 3})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"x"`)
	assert.Contains(t, string(data), `"cycles":1.5`)
	assert.Contains(t, string(data), `"runs":3`)
}

func TestNanosToTicks(t *testing.T) {
	assert.Equal(t, uint64(2_500_000_000), nanosToTicks(uint64(time.Second), 2_500_000_000))
	assert.Equal(t, uint64(3), nanosToTicks(1, 3_000_000_000))
	// An hour at 5 GHz overflows 64-bit intermediate products.
	assert.Equal(t, uint64(18_000_000_000_000), nanosToTicks(uint64(time.Hour), 5_000_000_000))
	assert.Equal(t, uint64(math.MaxUint64), nanosToTicks(math.MaxUint64, math.MaxUint64))
}

func TestCPUClockAdvances(t *testing.T) {
	c := CPUClock{Hz: 1_000_000_000}
	start := c.Ticks()
	x := 0
	for i := range 10_000_000 {
		x += i
	}
	assert.NotZero(t, x)
	assert.GreaterOrEqual(t, c.Ticks(), start)
}

func TestMeasureRate(t *testing.T) {
	times := []time.Duration{time.Second, 3 * time.Second}
	utime := func() (time.Duration, error) {
		d := times[0]
		times = times[1:]
		return d, nil
	}
	ran := false
	res, err := measureRate("runDepend64", 102_000, 1e6, func() { ran = true }, utime)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.InDelta(t, 51_000.0, res.PerSecond, 1e-9)
	assert.InDelta(t, 0.051, res.PerTick, 1e-12)
	assert.Equal(t, "runDepend64: per-second=51000.000000 per-tick=0.051", res.String())
}

func TestMeasureRateNoTime(t *testing.T) {
	utime := func() (time.Duration, error) { return time.Second, nil }
	_, err := measureRate("fast", 1, 1, func() {}, utime)
	assert.True(t, errors.Is(err, ErrNoTime))
}

func TestMeasureRateUsertimeError(t *testing.T) {
	boom := errors.New("boom")
	utime := func() (time.Duration, error) { return 0, boom }
	_, err := measureRate("x", 1, 1, func() {}, utime)
	assert.ErrorIs(t, err, boom)
}

const goBenchOutput = `goos: linux
goarch: amd64
pkg: github.com/kvr000/zbynek-go-exp/mat4
BenchmarkMatMul/matmult_ref-8         	100000000	        10.00 ns/op
BenchmarkMatMul/matmult_Sse-8         	200000000	         4.00 ns/op
BenchmarkMatMul/matmult_ref-8         	100000000	        12.00 ns/op
BenchmarkVecMul/vecmult_ref-8         	 50000000	        20.00 ns/op	       0 B/op	       0 allocs/op
PASS
ok  	github.com/kvr000/zbynek-go-exp/mat4	5.123s
`

func TestParseGoBench(t *testing.T) {
	results, err := ParseGoBench(strings.NewReader(goBenchOutput), 2e9)
	require.NoError(t, err)
	require.Len(t, results, 3)

	ref := results[0]
	assert.Equal(t, "BenchmarkMatMul/matmult_ref-8", ref.Name)
	assert.Equal(t, 2, ref.Runs)
	assert.InDelta(t, 20.0, ref.Cycles, 1e-9)
	assert.InDelta(t, 22.0, ref.AvgCycles, 1e-9)
	assert.InDelta(t, 1e3/11, ref.MOPS, 1e-9)

	assert.Equal(t, "BenchmarkMatMul/matmult_Sse-8", results[1].Name)
	assert.InDelta(t, 8.0, results[1].Cycles, 1e-9)
	assert.Equal(t, "BenchmarkVecMul/vecmult_ref-8", results[2].Name)
}

func TestParseGoBenchBadHz(t *testing.T) {
	_, err := ParseGoBench(strings.NewReader(goBenchOutput), 0)
	assert.Error(t, err)
}
