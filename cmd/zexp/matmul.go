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

package main

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/kvr000/zbynek-go-exp/bench"
	"github.com/kvr000/zbynek-go-exp/cpufreq"
	"github.com/kvr000/zbynek-go-exp/isa"
	"github.com/kvr000/zbynek-go-exp/mat4"
	"github.com/kvr000/zbynek-go-exp/workerpool"
)

type matMulFlags struct {
	noVerify   bool
	runs       int
	asJSON     bool
	variants   []string
	seed       uint64
	iterations int
	workers    int
	hz         float64
}

func newMatMulCmd() *cobra.Command {
	var f matMulFlags
	cmd := &cobra.Command{
		Use:   "matmul [count]",
		Short: "Verify the 4x4 matrix kernels against the reference, then benchmark them count times",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) == 1 {
				c, err := strconv.ParseFloat(args[0], 64)
				if err != nil || int(c) <= 0 {
					return errors.Errorf("invalid count %q, want a positive number", args[0])
				}
				count = int(c)
			}
			return runMatMul(cmd, f, count)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&f.noVerify, "no-verify", false, "Skip verification")
	flags.IntVar(&f.runs, "runs", bench.DefaultRuns, "Timed runs per variant")
	flags.BoolVar(&f.asJSON, "json", false, "Print benchmark results as JSON")
	flags.StringSliceVar(&f.variants, "variant", nil, "Only these variants (repeatable), e.g. matmult_Avx8")
	flags.Uint64Var(&f.seed, "seed", mat4.DefaultSeed, "Verification random seed")
	flags.IntVar(&f.iterations, "iterations", mat4.DefaultMatrixIterations, "Matrix verification iterations")
	flags.IntVar(&f.workers, "workers", 0, "Verification workers, 0 for GOMAXPROCS")
	flags.Float64Var(&f.hz, "hz", 0, "Clock frequency for cycle counts, 0 to detect")
	return cmd
}

func runMatMul(cmd *cobra.Command, f matMulFlags, count int) error {
	ctx := cmd.Context()
	keep := keepNames(f.variants)
	klog.V(1).Infof("matmul: ISA level %s", isa.Current())

	if !f.noVerify {
		pool := workerpool.New(f.workers)
		defer pool.Close()
		cfg := mat4.Config{
			Seed:             f.seed,
			MatrixIterations: f.iterations,
			Pool:             pool,
			Keep:             keep,
		}
		total := int64(f.iterations + mat4.DefaultVectorIterations)
		bar := progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("verifying"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		cfg.Progress = func(done int) { _ = bar.Add(done) }
		err := mat4.Verify(ctx, cfg)
		_ = bar.Finish()
		if err != nil {
			return err
		}
	}

	hz := f.hz
	if hz <= 0 {
		hz = cpufreq.Cached().Hz
	}
	runner := bench.NewRunner(bench.CPUClock{Hz: uint64(hz)})
	runner.Runs = f.runs

	w := cmd.OutOrStdout()
	var all []bench.Result
	for i := 0; i < count; i++ {
		out := w
		if f.asJSON {
			out = nil
		}
		results, err := mat4.RunBenchmarks(ctx, runner, keep, out)
		all = append(all, results...)
		if err != nil {
			return err
		}
	}
	if f.asJSON {
		return writeJSON(w, all)
	}
	return nil
}
