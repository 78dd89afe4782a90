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

//go:build !noasm && amd64

package mat4

import "github.com/kvr000/zbynek-go-exp/isa"

// Kernels in mat4_amd64.s. Matrix kernels load every input row before the
// first store, so out may alias a or b.

//go:noescape
func matMulSSE(out, a, b *Mat44)

//go:noescape
func matMulAVX4Mem(out, a, b *Mat44)

//go:noescape
func matMulAVX8(out, a, b *Mat44)

//go:noescape
func matMulFMA(out, a, b *Mat44)

//go:noescape
func matMulFMAExp(out, a, b *Mat44)

//go:noescape
func matMulFMA256Exp(out, a, b *Mat44)

//go:noescape
func matMulFMA256Pre(out, a, b *Mat44)

//go:noescape
func matMulAVX512(out, a, b *Mat44)

//go:noescape
func vecMulSSE(out, in *Vector4, n int, m *Mat44)

//go:noescape
func vecMulSSEPar2(out, in *Vector4, n int, m *Mat44)

//go:noescape
func vecMulFMAExp(out, in *Vector4, n int, m *Mat44)

//go:noescape
func vecMulFMA256Exp(out, in *Vector4, n int, m *Mat44)

//go:noescape
func vecMulAVX512(out, in *Vector4, n int, m *Mat44)

//go:noescape
func vecTMulSSESingles(out *Vector4, mT *Mat44, in *Vector4, n int)

//go:noescape
func vecTMulAVX256Singles(out *Vector4, mT *Mat44, in *Vector4, n int)

//go:noescape
func vecTMulAVX512Singles(out *Vector4, mT *Mat44, in *Vector4, n int)

var (
	archMatMulVariants = []MatMulVariant{
		{"matmult_Sse", isa.SSE, matMulSSE},
		{"matmult_Avx4Mem", isa.AVX, matMulAVX4Mem},
		{"matmult_Avx8", isa.AVX, matMulAVX8},
		{"matmult_Fma", isa.FMA, matMulFMA},
		{"matmult_FmaExp", isa.FMA, matMulFMAExp},
		{"matmult_Fma256Exp", isa.FMA, matMulFMA256Exp},
		{"matmult_Fma256Pre", isa.FMA, matMulFMA256Pre},
		{"matmult_Avx512", isa.AVX512, matMulAVX512},
	}
	archVecMulVariants = []VecMulVariant{
		{"vecmult_Sse", isa.SSE, vecKernel(vecMulSSE)},
		{"vecmult_SsePar2", isa.SSE, vecKernel(vecMulSSEPar2)},
		{"vecmult_FmaExp", isa.FMA, vecKernel(vecMulFMAExp)},
		{"vecmult_Fma256Exp", isa.FMA, vecKernel(vecMulFMA256Exp)},
		{"vecmult_Avx512", isa.AVX512, vecKernel(vecMulAVX512)},
	}
	archVecTMulVariants = []VecTMulVariant{
		{"vecTmult_SseSingles", isa.SSE3, vecTKernel(vecTMulSSESingles)},
		{"vecTmult_Avx256Singles", isa.AVX, vecTKernel(vecTMulAVX256Singles)},
		{"vecTmult_TransFma256", isa.FMA, vecTMulTransFMA256},
		{"vecTmult_Avx512Singles", isa.AVX512, vecTKernel(vecTMulAVX512Singles)},
	}
)

// vecTMulTransFMA256 transposes mT back and runs the two-at-a-time FMA
// kernel on the recovered matrix.
func vecTMulTransFMA256(out []Vector4, mT *Mat44, in []Vector4) {
	checkVectors(out, in)
	if len(in) == 0 {
		return
	}
	m := Transpose(mT)
	vecMulFMA256Exp(&out[0], &in[0], len(in), &m)
}
