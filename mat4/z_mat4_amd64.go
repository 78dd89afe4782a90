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

// NOTE: This file is named "z_mat4_amd64.go" (starting with 'z') so its
// init() runs after the other files of the package.

package mat4

import "github.com/kvr000/zbynek-go-exp/isa"

func init() {
	selectKernels()
}

// selectKernels points MatMul, VecMul and VecTMul at the widest kernels the
// current isa detection allows.
func selectKernels() {
	MatMul, VecMul, VecTMul = MatMulRef, VecMulRef, VecTMulRef
	switch {
	case isa.Has(isa.AVX512):
		MatMul = matMulAVX512
		VecMul = vecKernel(vecMulAVX512)
		VecTMul = vecTMulTransFMA256
	case isa.Has(isa.FMA):
		MatMul = matMulFMA256Pre
		VecMul = vecKernel(vecMulFMA256Exp)
		VecTMul = vecTMulTransFMA256
	case isa.Has(isa.AVX):
		MatMul = matMulAVX8
		VecMul = vecKernel(vecMulSSEPar2)
		VecTMul = vecTKernel(vecTMulAVX256Singles)
	case isa.Has(isa.SSE):
		MatMul = matMulSSE
		VecMul = vecKernel(vecMulSSEPar2)
		if isa.Has(isa.SSE3) {
			VecTMul = vecTKernel(vecTMulSSESingles)
		}
	}
}
