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

// MatMulRef is the loop implementation every other variant is checked against.
func MatMulRef(out, a, b *Mat44) {
	var t Mat44
	for i := range 4 {
		for j := range 4 {
			t[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}
	*out = t
}

// VecMulRef is the loop implementation of out[c] = in[c] * m.
func VecMulRef(out, in []Vector4, m *Mat44) {
	checkVectors(out, in)
	for c := range in {
		v := in[c]
		var t Vector4
		for j := range 4 {
			t[j] = v[0]*m[0][j] + v[1]*m[1][j] + v[2]*m[2][j] + v[3]*m[3][j]
		}
		out[c] = t
	}
}

// VecTMulRef multiplies by the matrix whose transposition is mT.
func VecTMulRef(out []Vector4, mT *Mat44, in []Vector4) {
	checkVectors(out, in)
	for c := range in {
		v := in[c]
		var t Vector4
		for j := range 4 {
			t[j] = v[0]*mT[j][0] + v[1]*mT[j][1] + v[2]*mT[j][2] + v[3]*mT[j][3]
		}
		out[c] = t
	}
}

// matMulNovec is the fully unrolled scalar form: every element is a separate
// expression, no loop and no temporaries shared between rows.
//
//go:noinline
func matMulNovec(out, a, b *Mat44) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	*out = Mat44{
		{
			a0[0]*b0[0] + a0[1]*b1[0] + a0[2]*b2[0] + a0[3]*b3[0],
			a0[0]*b0[1] + a0[1]*b1[1] + a0[2]*b2[1] + a0[3]*b3[1],
			a0[0]*b0[2] + a0[1]*b1[2] + a0[2]*b2[2] + a0[3]*b3[2],
			a0[0]*b0[3] + a0[1]*b1[3] + a0[2]*b2[3] + a0[3]*b3[3],
		},
		{
			a1[0]*b0[0] + a1[1]*b1[0] + a1[2]*b2[0] + a1[3]*b3[0],
			a1[0]*b0[1] + a1[1]*b1[1] + a1[2]*b2[1] + a1[3]*b3[1],
			a1[0]*b0[2] + a1[1]*b1[2] + a1[2]*b2[2] + a1[3]*b3[2],
			a1[0]*b0[3] + a1[1]*b1[3] + a1[2]*b2[3] + a1[3]*b3[3],
		},
		{
			a2[0]*b0[0] + a2[1]*b1[0] + a2[2]*b2[0] + a2[3]*b3[0],
			a2[0]*b0[1] + a2[1]*b1[1] + a2[2]*b2[1] + a2[3]*b3[1],
			a2[0]*b0[2] + a2[1]*b1[2] + a2[2]*b2[2] + a2[3]*b3[2],
			a2[0]*b0[3] + a2[1]*b1[3] + a2[2]*b2[3] + a2[3]*b3[3],
		},
		{
			a3[0]*b0[0] + a3[1]*b1[0] + a3[2]*b2[0] + a3[3]*b3[0],
			a3[0]*b0[1] + a3[1]*b1[1] + a3[2]*b2[1] + a3[3]*b3[1],
			a3[0]*b0[2] + a3[1]*b1[2] + a3[2]*b2[2] + a3[3]*b3[2],
			a3[0]*b0[3] + a3[1]*b1[3] + a3[2]*b2[3] + a3[3]*b3[3],
		},
	}
}

//go:noinline
func vecMulNovec(out, in []Vector4, m *Mat44) {
	checkVectors(out, in)
	m0, m1, m2, m3 := m[0], m[1], m[2], m[3]
	for c := range in {
		v := in[c]
		out[c] = Vector4{
			v[0]*m0[0] + v[1]*m1[0] + v[2]*m2[0] + v[3]*m3[0],
			v[0]*m0[1] + v[1]*m1[1] + v[2]*m2[1] + v[3]*m3[1],
			v[0]*m0[2] + v[1]*m1[2] + v[2]*m2[2] + v[3]*m3[2],
			v[0]*m0[3] + v[1]*m1[3] + v[2]*m2[3] + v[3]*m3[3],
		}
	}
}
