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

//go:build !noasm && arm64

package mat4

import "github.com/kvr000/zbynek-go-exp/isa"

//go:noescape
func matMulNEON(out, a, b *Mat44)

//go:noescape
func matMulNEONPar2(out, a, b *Mat44)

//go:noescape
func matMulSVE(out, a, b *Mat44)

//go:noescape
func vecMulNEON(out, in *Vector4, n int, m *Mat44)

//go:noescape
func vecMulNEONPar2(out, in *Vector4, n int, m *Mat44)

//go:noescape
func vecTMulNEON(out *Vector4, mT *Mat44, in *Vector4, n int)

//go:noescape
func vecTMulNEONPar2(out *Vector4, mT *Mat44, in *Vector4, n int)

var (
	archMatMulVariants = []MatMulVariant{
		{"matmult_Neon", isa.NEON, matMulNEON},
		{"matmult_NeonPar2", isa.NEON, matMulNEONPar2},
		{"matmult_Sve", isa.SVE, matMulSVE},
	}
	archVecMulVariants = []VecMulVariant{
		{"vecmult_Neon", isa.NEON, vecKernel(vecMulNEON)},
		{"vecmult_NeonPar2", isa.NEON, vecKernel(vecMulNEONPar2)},
	}
	archVecTMulVariants = []VecTMulVariant{
		{"vecTmult_Neon", isa.NEON, vecTKernel(vecTMulNEON)},
		{"vecTmult_NeonPar2", isa.NEON, vecTKernel(vecTMulNEONPar2)},
	}
)
