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

func init() {
	selectKernels()
}

func selectKernels() {
	MatMul, VecMul, VecTMul = MatMulRef, VecMulRef, VecTMulRef
	if !isa.Has(isa.NEON) {
		return
	}
	MatMul = matMulNEONPar2
	VecMul = vecKernel(vecMulNEONPar2)
	VecTMul = vecTKernel(vecTMulNEONPar2)
	if isa.Has(isa.SVE) {
		MatMul = matMulSVE
	}
}
