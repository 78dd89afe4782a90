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

// Package multiprec adds multi-limb unsigned integers stored as little-endian
// limb slices, each way a compiler may be coaxed into producing carry chains.
package multiprec

import (
	"math/bits"

	"github.com/holiman/uint256"
)

func checkLen(n, a, b int) {
	if a < n || b < n {
		panic("multiprec: operand shorter than result")
	}
}

// AddCompare sets result = a + b over len(result) limbs and returns the carry
// out. The carry of each limb is recovered by comparing the sum with a.
func AddCompare(result, a, b []uint32) uint32 {
	checkLen(len(result), len(a), len(b))
	var carry uint32
	for i := range result {
		sum := a[i] + b[i] + carry
		// sum == a happens both with no overflow (b+carry == 0) and with b+carry
		// wrapping to exactly 2^32, which only a carry in can cause.
		if sum < a[i] || (carry != 0 && sum == a[i]) {
			carry = 1
		} else {
			carry = 0
		}
		result[i] = sum
	}
	return carry
}

// AddWide is AddCompare with the carry taken from the high half of a 64-bit
// accumulator.
func AddWide(result, a, b []uint32) uint32 {
	checkLen(len(result), len(a), len(b))
	var sum uint64
	for i := range result {
		sum = uint64(a[i]) + uint64(b[i]) + sum>>32
		result[i] = uint32(sum)
	}
	return uint32(sum >> 32)
}

// AddBits adds 64-bit limbs with bits.Add64.
func AddBits(result, a, b []uint64) uint64 {
	checkLen(len(result), len(a), len(b))
	var carry uint64
	for i := range result {
		result[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

// Add256 adds two 256-bit numbers given as four little-endian limbs and
// reports the overflow.
func Add256(a, b [4]uint64) ([4]uint64, bool) {
	x, y := uint256.Int(a), uint256.Int(b)
	var z uint256.Int
	_, overflow := z.AddOverflow(&x, &y)
	return [4]uint64(z), overflow
}

// Widen packs 32-bit limbs into 64-bit limbs. An odd trailing limb gets a
// zero high half.
func Widen(limbs []uint32) []uint64 {
	wide := make([]uint64, (len(limbs)+1)/2)
	for i, l := range limbs {
		wide[i/2] |= uint64(l) << (32 * (i % 2))
	}
	return wide
}

// Narrow splits 64-bit limbs into twice as many 32-bit limbs.
func Narrow(limbs []uint64) []uint32 {
	narrow := make([]uint32, 2*len(limbs))
	for i, l := range limbs {
		narrow[2*i] = uint32(l)
		narrow[2*i+1] = uint32(l >> 32)
	}
	return narrow
}
