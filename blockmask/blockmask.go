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

// Package blockmask holds the position tests of a reader working through
// 1 GiB blocks in 8-byte words. They compile to a single TST with a logical
// immediate on arm64, which is what the package demonstrates.
package blockmask

// BlockSize is the block granularity, 1 GiB.
const BlockSize = 1 << 30

const (
	offsetMask = BlockSize - 1
	wordMask   = offsetMask &^ 7
)

// CrossesFirst reports whether the word ending at pos+7 lies past the first
// word of its block, i.e. ((pos+7) & ((BlockSize-1) &^ 7)) != 0.
func CrossesFirst(pos int64) bool {
	return (pos+7)&wordMask != 0
}

// FitsLast reports whether a full 8-byte word starting at pos fits before
// the end of its block.
func FitsLast(pos int64) bool {
	return pos&offsetMask <= BlockSize-8
}
