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

package multiprec

import (
	"math/rand/v2"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adder32 struct {
	name string
	fn   func(result, a, b []uint32) uint32
}

var adders32 = []adder32{
	{"compare", AddCompare},
	{"wide", AddWide},
}

func TestAddCarryEdges(t *testing.T) {
	for _, add := range adders32 {
		t.Run(add.name, func(t *testing.T) {
			// 0xffffffff + 0xffffffff with carry in from the lower limb: the
			// limb sum equals a, yet it overflowed.
			a := []uint32{1, 0xffffffff}
			b := []uint32{0xffffffff, 0xffffffff}
			result := make([]uint32, 2)
			carry := add.fn(result, a, b)
			assert.Equal(t, []uint32{0, 0xffffffff}, result)
			assert.Equal(t, uint32(1), carry)

			a = []uint32{0xffffffff, 0xffffffff, 0}
			b = []uint32{1, 0, 0}
			result = make([]uint32, 3)
			assert.Equal(t, uint32(0), add.fn(result, a, b))
			assert.Equal(t, []uint32{0, 0, 1}, result)

			assert.Equal(t, uint32(0), add.fn(nil, nil, nil))
		})
	}
}

func TestAddRandomMatchesUint256(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	limb := func() uint32 {
		// Bias towards all-ones limbs to exercise carry chains.
		if r.IntN(3) == 0 {
			return 0xffffffff
		}
		return r.Uint32()
	}
	for range 1000 {
		a, b := make([]uint32, 8), make([]uint32, 8)
		for i := range a {
			a[i], b[i] = limb(), limb()
		}
		want, wantOverflow := Add256([4]uint64(Widen(a)), [4]uint64(Widen(b)))

		for _, add := range adders32 {
			result := make([]uint32, 8)
			carry := add.fn(result, a, b)
			require.Equal(t, want[:], Widen(result), add.name)
			require.Equal(t, wantOverflow, carry == 1, add.name)
		}

		result := make([]uint64, 4)
		carry := AddBits(result, Widen(a), Widen(b))
		require.Equal(t, want[:], result)
		require.Equal(t, wantOverflow, carry == 1)
	}
}

func TestAdd256(t *testing.T) {
	allOnes := [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
	sum, overflow := Add256(allOnes, [4]uint64{1})
	assert.True(t, overflow)
	assert.Equal(t, [4]uint64{}, sum)

	x := uint256.MustFromHex("0x1000000000000000000000000ffffffffffffffff")
	sum, overflow = Add256([4]uint64(*x), [4]uint64{1})
	assert.False(t, overflow)
	want := uint256.MustFromHex("0x10000000000000000000000010000000000000000")
	assert.Equal(t, [4]uint64(*want), sum)
}

func TestWidenNarrow(t *testing.T) {
	assert.Equal(t, []uint64{0x0000000200000001, 0x3}, Widen([]uint32{1, 2, 3}))
	assert.Equal(t, []uint32{1, 2, 3, 0}, Narrow([]uint64{0x0000000200000001, 0x3}))
	assert.Empty(t, Widen(nil))
	limbs := []uint32{5, 6, 7, 8}
	assert.Equal(t, limbs, Narrow(Widen(limbs)))
}

func TestShortOperandPanics(t *testing.T) {
	assert.Panics(t, func() { AddCompare(make([]uint32, 3), make([]uint32, 2), make([]uint32, 3)) })
	assert.Panics(t, func() { AddWide(make([]uint32, 3), make([]uint32, 3), make([]uint32, 1)) })
	assert.Panics(t, func() { AddBits(make([]uint64, 2), nil, nil) })
}

func BenchmarkAdd(b *testing.B) {
	const limbs = 64
	a32, b32, r32 := make([]uint32, limbs), make([]uint32, limbs), make([]uint32, limbs)
	for i := range a32 {
		a32[i], b32[i] = uint32(i)*0x9e3779b9, ^uint32(i)
	}
	for _, add := range adders32 {
		b.Run(add.name, func(b *testing.B) {
			for b.Loop() {
				add.fn(r32, a32, b32)
			}
		})
	}
	a64, b64, r64 := Widen(a32), Widen(b32), make([]uint64, limbs/2)
	b.Run("bits", func(b *testing.B) {
		for b.Loop() {
			AddBits(r64, a64, b64)
		}
	})
}
