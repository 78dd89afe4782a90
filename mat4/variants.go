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
	"slices"

	"github.com/kvr000/zbynek-go-exp/isa"
)

// MatMul is the best available matrix multiplication for this CPU.
// Architecture init files replace it once detection has run.
var MatMul MatMulFunc = MatMulRef

// VecMul is the best available vector by matrix multiplication.
var VecMul VecMulFunc = VecMulRef

// VecTMul is the best available vector by transposed matrix multiplication.
var VecTMul VecTMulFunc = VecTMulRef

// Variant is one implementation of a kernel together with the instruction
// set it needs.
type Variant[F any] struct {
	Name  string
	Level isa.Level
	Fn    F
}

// Available reports whether the variant can run on this CPU.
func (v Variant[F]) Available() bool {
	return isa.Has(v.Level)
}

type (
	MatMulVariant  = Variant[MatMulFunc]
	VecMulVariant  = Variant[VecMulFunc]
	VecTMulVariant = Variant[VecTMulFunc]
)

var (
	baseMatMulVariants = []MatMulVariant{
		{"matmult_ref", isa.Scalar, MatMulRef},
		{"matmult_novec", isa.Scalar, matMulNovec},
	}
	baseVecMulVariants = []VecMulVariant{
		{"vecmult_ref", isa.Scalar, VecMulRef},
		{"vecmult_novec", isa.Scalar, vecMulNovec},
	}
	baseVecTMulVariants = []VecTMulVariant{
		{"vecTmult_ref", isa.Scalar, VecTMulRef},
	}
)

// AllMatMulVariants returns every compiled matrix multiplication, including
// ones this CPU cannot run.
func AllMatMulVariants() []MatMulVariant {
	return slices.Concat(baseMatMulVariants, archMatMulVariants)
}

// AllVecMulVariants returns every compiled vector multiplication.
func AllVecMulVariants() []VecMulVariant {
	return slices.Concat(baseVecMulVariants, archVecMulVariants)
}

// AllVecTMulVariants returns every compiled transposed vector multiplication.
func AllVecTMulVariants() []VecTMulVariant {
	return slices.Concat(baseVecTMulVariants, archVecTMulVariants)
}

// MatMulVariants returns the matrix multiplications runnable on this CPU, in
// registration order (reference first).
func MatMulVariants() []MatMulVariant {
	return available(AllMatMulVariants())
}

// VecMulVariants returns the runnable vector multiplications.
func VecMulVariants() []VecMulVariant {
	return available(AllVecMulVariants())
}

// VecTMulVariants returns the runnable transposed vector multiplications.
func VecTMulVariants() []VecTMulVariant {
	return available(AllVecTMulVariants())
}

func available[F any](all []Variant[F]) []Variant[F] {
	return slices.DeleteFunc(all, func(v Variant[F]) bool { return !v.Available() })
}

// Filter keeps the variants for which keep returns true. A nil keep keeps
// everything.
func Filter[F any](variants []Variant[F], keep func(name string) bool) []Variant[F] {
	if keep == nil {
		return variants
	}
	return slices.DeleteFunc(slices.Clone(variants), func(v Variant[F]) bool { return !keep(v.Name) })
}

// Reselect points MatMul, VecMul and VecTMul at the best kernels for the
// current detection, e.g. after isa.Reset.
func Reselect() {
	selectKernels()
}
