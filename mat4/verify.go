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
	"math"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/kvr000/zbynek-go-exp/workerpool"
)

const (
	// DefaultSeed makes verification deterministic.
	DefaultSeed = 1234

	DefaultMatrixIterations = 1_000_000
	DefaultVectorIterations = 100_000

	// DefaultVectorCount is odd so every pair/quad kernel exercises its tail.
	DefaultVectorCount = 31

	chunkIterations = 4096
)

// Config controls Verify. Zero fields take the defaults above.
type Config struct {
	Seed             uint64
	MatrixIterations int
	VectorIterations int
	VectorCount      int

	// Pool runs the chunks; nil runs a private pool sized to GOMAXPROCS.
	Pool *workerpool.Pool

	// Keep restricts checked variants by name; the reference always runs.
	Keep func(name string) bool

	// Progress, if set, receives the number of iterations finished by each
	// chunk. It is called concurrently.
	Progress func(done int)
}

func (c Config) withDefaults() Config {
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.MatrixIterations == 0 {
		c.MatrixIterations = DefaultMatrixIterations
	}
	if c.VectorIterations == 0 {
		c.VectorIterations = DefaultVectorIterations
	}
	if c.VectorCount == 0 {
		c.VectorCount = DefaultVectorCount
	}
	return c
}

// MismatchError reports a variant whose output differs from the reference.
type MismatchError struct {
	Variant   string
	Iteration int
	// Got and Want are the offending rows: four for a matrix, one for a vector.
	Got, Want []Vector4
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s failed test %d", e.Variant, e.Iteration)
	for r := range e.Got {
		g, w := e.Got[r], e.Want[r]
		fmt.Fprintf(&sb, "\n%15.6f %15.6f %15.6f %15.6f      %15.6f %15.6f %15.6f %15.6f",
			g[0], g[1], g[2], g[3], w[0], w[1], w[2], w[3])
	}
	return sb.String()
}

func matrixRows(m *Mat44) []Vector4 {
	return []Vector4{Vector4(m[0]), Vector4(m[1]), Vector4(m[2]), Vector4(m[3])}
}

// RandomFloat returns a value in [-16, 16) with at most 10 significant bits,
// so every product and four-term sum is exact in float32 and the fused and
// unfused kernels agree bit for bit.
func RandomFloat(r *rand.Rand) float32 {
	return float32(r.IntN(2048)-1024) / 64
}

// RandomMatrix fills a matrix with RandomFloat values.
func RandomMatrix(r *rand.Rand) Mat44 {
	var m Mat44
	for i := range 4 {
		for j := range 4 {
			m[i][j] = RandomFloat(r)
		}
	}
	return m
}

// RandomVector fills a vector with RandomFloat values.
func RandomVector(r *rand.Rand) Vector4 {
	return Vector4{RandomFloat(r), RandomFloat(r), RandomFloat(r), RandomFloat(r)}
}

// chunkRand derives an independent stream per chunk, so results do not
// depend on how chunks are spread over workers.
func chunkRand(seed uint64, stream, chunk int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(stream)<<32|uint64(chunk)))
}

// Verify checks every runnable variant against the reference kernels on
// random inputs. It returns a *MismatchError for the first wrong result found.
func Verify(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	pool := cfg.Pool
	if pool == nil {
		pool = workerpool.New(0)
		defer pool.Close()
	}

	mat := Filter(MatMulVariants(), cfg.Keep)
	if err := verifyMatMul(ctx, pool, cfg, mat); err != nil {
		return err
	}
	klog.V(1).Infof("matmult correctness ok: %d variants, %d iterations", len(mat), cfg.MatrixIterations)

	vec := Filter(VecMulVariants(), cfg.Keep)
	vecT := Filter(VecTMulVariants(), cfg.Keep)
	if err := verifyVecMul(ctx, pool, cfg, vec, vecT); err != nil {
		return err
	}
	klog.V(1).Infof("vecmult correctness ok: %d+%d variants, %d iterations", len(vec), len(vecT), cfg.VectorIterations)
	return nil
}

func chunks(iterations int) int {
	return (iterations + chunkIterations - 1) / chunkIterations
}

func chunkRange(chunk, iterations int) (int, int) {
	start := chunk * chunkIterations
	return start, min(start+chunkIterations, iterations)
}

func verifyMatMul(ctx context.Context, pool *workerpool.Pool, cfg Config, variants []MatMulVariant) error {
	n := cfg.MatrixIterations
	return pool.ParallelForErr(ctx, chunks(n), func(first, last int) error {
		for chunk := first; chunk < last; chunk++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := chunkRand(cfg.Seed, 0, chunk)
			start, end := chunkRange(chunk, n)
			for i := start; i < end; i++ {
				a, b := RandomMatrix(r), RandomMatrix(r)
				if err := checkMatMul(i, &a, &b, variants); err != nil {
					return err
				}
			}
			if cfg.Progress != nil {
				cfg.Progress(end - start)
			}
		}
		return nil
	})
}

func checkMatMul(i int, a, b *Mat44, variants []MatMulVariant) error {
	var want, got Mat44
	MatMulRef(&want, a, b)

	// (B^T * A^T)^T == A * B
	at, bt := Transpose(a), Transpose(b)
	MatMulRef(&got, &bt, &at)
	got = Transpose(&got)
	if !EqualMatrix(&want, &got) {
		return &MismatchError{Variant: "transpose mult", Iteration: i, Got: matrixRows(&got), Want: matrixRows(&want)}
	}

	for _, v := range variants {
		got = poisonedMatrix
		v.Fn(&got, a, b)
		if !EqualMatrix(&want, &got) {
			return &MismatchError{Variant: v.Name, Iteration: i, Got: matrixRows(&got), Want: matrixRows(&want)}
		}
	}
	return nil
}

func verifyVecMul(ctx context.Context, pool *workerpool.Pool, cfg Config, vec []VecMulVariant, vecT []VecTMulVariant) error {
	n := cfg.VectorIterations
	return pool.ParallelForErr(ctx, chunks(n), func(first, last int) error {
		in := make([]Vector4, cfg.VectorCount)
		out := make([]Vector4, cfg.VectorCount)
		want := make([]Vector4, cfg.VectorCount)
		for chunk := first; chunk < last; chunk++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := chunkRand(cfg.Seed, 1, chunk)
			start, end := chunkRange(chunk, n)
			for i := start; i < end; i++ {
				m := RandomMatrix(r)
				mT := Transpose(&m)
				for c := range in {
					in[c] = RandomVector(r)
				}
				VecMulRef(want, in, &m)

				for _, v := range vec {
					poison(out)
					v.Fn(out, in, &m)
					if err := compareVectors(v.Name, i, out, want); err != nil {
						return err
					}
				}
				for _, v := range vecT {
					poison(out)
					v.Fn(out, &mT, in)
					if err := compareVectors(v.Name, i, out, want); err != nil {
						return err
					}
				}
			}
			if cfg.Progress != nil {
				cfg.Progress(end - start)
			}
		}
		return nil
	})
}

func compareVectors(name string, i int, got, want []Vector4) error {
	for c := range want {
		if !EqualVector(&want[c], &got[c]) {
			return &MismatchError{Variant: name, Iteration: i, Got: []Vector4{got[c]}, Want: []Vector4{want[c]}}
		}
	}
	return nil
}

// NaN never compares equal, so a kernel skipping an element is caught.
var poisonedMatrix = func() (m Mat44) {
	nan := float32(math.NaN())
	for i := range m {
		m[i] = [4]float32{nan, nan, nan, nan}
	}
	return m
}()

func poison(out []Vector4) {
	for c := range out {
		out[c] = Vector4(poisonedMatrix[0])
	}
}

// IsMismatch reports whether err carries a *MismatchError.
func IsMismatch(err error) bool {
	var m *MismatchError
	return errors.As(err, &m)
}
