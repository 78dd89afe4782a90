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

//go:build !noasm && (amd64 || arm64)

package mat4

// vecKernel adapts a pointer/count assembly kernel to VecMulFunc.
func vecKernel(k func(out, in *Vector4, n int, m *Mat44)) VecMulFunc {
	return func(out, in []Vector4, m *Mat44) {
		checkVectors(out, in)
		if len(in) == 0 {
			return
		}
		k(&out[0], &in[0], len(in), m)
	}
}

// vecTKernel adapts a pointer/count assembly kernel to VecTMulFunc.
func vecTKernel(k func(out *Vector4, mT *Mat44, in *Vector4, n int)) VecTMulFunc {
	return func(out []Vector4, mT *Mat44, in []Vector4) {
		checkVectors(out, in)
		if len(in) == 0 {
			return
		}
		k(&out[0], mT, &in[0], len(in))
	}
}
