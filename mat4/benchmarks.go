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

package mat4

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/kvr000/zbynek-go-exp/bench"
)

const (
	// MulsPerRun is the number of multiplications per benchmarked call.
	MulsPerRun = 16

	matMulRepeat = 256
	vecMulRepeat = 2048
)

// RunBenchmarks times every runnable variant accepted by keep (nil for all)
// with runner, writing one line per variant to w when w is not nil.
func RunBenchmarks(ctx context.Context, runner *bench.Runner, keep func(name string) bool, w io.Writer) ([]bench.Result, error) {
	r := rand.New(rand.NewPCG(DefaultSeed, 2))
	a, b := RandomMatrix(r), RandomMatrix(r)
	aT := Transpose(&a)
	vectors := make([]Vector4, MulsPerRun)
	for i := range vectors {
		vectors[i] = RandomVector(r)
	}
	vectorsOut := make([]Vector4, MulsPerRun)

	var results []bench.Result
	emit := func(res bench.Result) {
		results = append(results, res)
		if w != nil {
			fmt.Fprintln(w, res)
		}
	}

	var out Mat44
	for _, v := range Filter(MatMulVariants(), keep) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		fn := v.Fn
		emit(runner.Run(v.Name, matMulRepeat, MulsPerRun, func() {
			for range MulsPerRun {
				fn(&out, &a, &b)
			}
		}))
	}
	for _, v := range Filter(VecMulVariants(), keep) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		fn := v.Fn
		emit(runner.Run(v.Name, vecMulRepeat, len(vectors), func() {
			fn(vectorsOut, vectors, &a)
		}))
	}
	for _, v := range Filter(VecTMulVariants(), keep) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		fn := v.Fn
		emit(runner.Run(v.Name, vecMulRepeat, len(vectors), func() {
			fn(vectorsOut, &aT, vectors)
		}))
	}
	return results, nil
}
