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

//go:build noasm || !(amd64 || arm64)

package depchain

// Native reports whether the kernels are hand written assembly.
const Native = false

//go:noinline
func depend64(loops uint64) uint64 {
	var r0 uint64
	for range loops {
		for range 100 {
			r0++
		}
	}
	return r0
}

//go:noinline
func incAln64(loops uint64) uint64 {
	var r0, r1, r2, r3, r4, r5, r6, r7, r8, r9 uint64
	for range loops {
		for range 10 {
			r0++
			r1++
			r2++
			r3++
			r4++
			r5++
			r6++
			r7++
			r8++
			r9++
		}
	}
	sink64 = r1 ^ r2 ^ r3 ^ r4 ^ r5 ^ r6 ^ r7 ^ r8 ^ r9
	return r0
}

//go:noinline
func incAln32(loops uint64) uint64 {
	var r0, r1, r2, r3, r4, r5, r6, r7, r8, r9 uint32
	for range loops {
		for range 10 {
			r0++
			r1++
			r2++
			r3++
			r4++
			r5++
			r6++
			r7++
			r8++
			r9++
		}
	}
	sink32 = r1 ^ r2 ^ r3 ^ r4 ^ r5 ^ r6 ^ r7 ^ r8 ^ r9
	return uint64(r0)
}

//go:noinline
func incMov64(loops uint64) uint64 {
	var r0, r1, r2, r3, r4, r5, r6, r7, r8, r9 uint64
	for range loops {
		for range 10 {
			r0++
			r2 = r1
			r3++
			r5 = r4
			r6++
			r8 = r7
			r9++
			r1 = r0
			r2++
			r4 = r3
		}
	}
	sink64 = r1 ^ r2 ^ r3 ^ r4 ^ r5 ^ r6 ^ r7 ^ r8 ^ r9
	return r0
}

//go:noinline
func incMov32(loops uint64) uint64 {
	var r0, r1, r2, r3, r4, r5, r6, r7, r8, r9 uint32
	for range loops {
		for range 10 {
			r0++
			r2 = r1
			r3++
			r5 = r4
			r6++
			r8 = r7
			r9++
			r1 = r0
			r2++
			r4 = r3
		}
	}
	sink32 = r1 ^ r2 ^ r3 ^ r4 ^ r5 ^ r6 ^ r7 ^ r8 ^ r9
	return uint64(r0)
}

var (
	sink64 uint64
	sink32 uint32
)
