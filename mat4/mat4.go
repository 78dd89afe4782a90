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

import "math"

// Mat44 is a row-major 4x4 float32 matrix. Rows are 16 bytes apart, so a row
// loads directly into one 128-bit register.
type Mat44 [4][4]float32

// Vector4 is a row vector of four float32 values.
type Vector4 [4]float32

// MatMulFunc computes out = a * b. out may alias a or b.
type MatMulFunc func(out, a, b *Mat44)

// VecMulFunc computes out[c] = in[c] * m for every c in in.
type VecMulFunc func(out, in []Vector4, m *Mat44)

// VecTMulFunc computes out[c] = in[c] * transpose(mT), i.e. the same result as
// VecMulFunc when given the transposed matrix.
type VecTMulFunc func(out []Vector4, mT *Mat44, in []Vector4)

// Transpose returns the transposition of in.
func Transpose(in *Mat44) Mat44 {
	return Mat44{
		{in[0][0], in[1][0], in[2][0], in[3][0]},
		{in[0][1], in[1][1], in[2][1], in[3][1]},
		{in[0][2], in[1][2], in[2][2], in[3][2]},
		{in[0][3], in[1][3], in[2][3], in[3][3]},
	}
}

var (
	minNormal     = math.Float32frombits(0x00800000)
	epsilon       = math.Nextafter32(1, 2) - 1
	zeroSlack     = minNormal * 1024
	relativeSlack = epsilon * 8
)

// EqualFloat reports whether r is within the tolerance used to compare kernel
// output against the reference l. With l == 0 the check is one-sided,
// r - l < FLT_MIN*1024; otherwise |r/l - 1| < FLT_EPSILON*8.
func EqualFloat(l, r float32) bool {
	if l == 0 {
		return r-l < zeroSlack
	}
	return float32(math.Abs(float64(r/l-1))) < relativeSlack
}

// EqualMatrix compares every element with EqualFloat.
func EqualMatrix(l, r *Mat44) bool {
	for i := range 4 {
		for j := range 4 {
			if !EqualFloat(l[i][j], r[i][j]) {
				return false
			}
		}
	}
	return true
}

// EqualVector compares every element with EqualFloat.
func EqualVector(l, r *Vector4) bool {
	for j := range 4 {
		if !EqualFloat(l[j], r[j]) {
			return false
		}
	}
	return true
}

func checkVectors(out, in []Vector4) {
	if len(out) < len(in) {
		panic("mat4: out too short")
	}
}
