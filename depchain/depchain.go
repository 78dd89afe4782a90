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

// Package depchain times chains of simple integer instructions to show how
// many independent operations a core retires per clock.
//
// Every kernel runs loops iterations of 100 instructions (ten steps of ten)
// plus a decrement and a branch, counted as OpsPerLoop operations:
//
//   - runDepend64 increments one register, a fully serial chain.
//   - runIncAln32 and runIncAln64 increment ten registers round-robin.
//   - runIncMov32 and runIncMov64 interleave increments with register moves.
package depchain

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/kvr000/zbynek-go-exp/bench"
	"github.com/kvr000/zbynek-go-exp/cpufreq"
)

// OpsPerLoop is the number of instructions one loop iteration executes.
const OpsPerLoop = 102

const (
	DefaultLoops       = 1_000_000_000
	DefaultWarmupLoops = 200_000_000
)

// Kernel is one instruction chain. Fn returns the final value of its first
// work register, so callers can check the chain really ran.
type Kernel struct {
	Name string
	Fn   func(loops uint64) uint64
}

// Kernels returns the probes in the order they are reported.
func Kernels() []Kernel {
	return []Kernel{
		{"runDepend64", depend64},
		{"runIncAln32", incAln32},
		{"runIncAln64", incAln64},
		{"runIncMov32", incMov32},
		{"runIncMov64", incMov64},
	}
}

// Config controls Run. Zero fields take defaults; Hz zero means
// cpufreq.Cached.
type Config struct {
	Loops       uint64
	WarmupLoops uint64
	Hz          float64
	Keep        func(name string) bool
}

// Run warms the core up with runIncAln64 and measures each kernel, writing
// one line per kernel to w when w is not nil.
func Run(ctx context.Context, cfg Config, w io.Writer) ([]bench.RateResult, error) {
	if cfg.Loops == 0 {
		cfg.Loops = DefaultLoops
	}
	if cfg.WarmupLoops == 0 {
		cfg.WarmupLoops = DefaultWarmupLoops
	}
	if cfg.Hz == 0 {
		cfg.Hz = cpufreq.Cached().Hz
	}
	if !Native {
		klog.Warning("depchain: built without assembly, the Go compiler may merge the chains")
	}

	incAln64(cfg.WarmupLoops)

	var results []bench.RateResult
	for _, k := range Kernels() {
		if cfg.Keep != nil && !cfg.Keep(k.Name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		fn := k.Fn
		res, err := bench.MeasureRate(k.Name, cfg.Loops*OpsPerLoop, cfg.Hz, func() { fn(cfg.Loops) })
		if err != nil {
			return results, errors.WithMessagef(err, "depchain %s", k.Name)
		}
		results = append(results, res)
		if w != nil {
			fmt.Fprintln(w, res)
		}
	}
	return results, nil
}
