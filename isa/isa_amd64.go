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

//go:build amd64

package isa

import "golang.org/x/sys/cpu"

func detectFeatures(levels *[numLevels]bool) {
	// SSE2 is the amd64 baseline, x/sys/cpu reports it unconditionally.
	levels[SSE] = cpu.X86.HasSSE2
	levels[SSE3] = levels[SSE] && cpu.X86.HasSSE3

	// HasAVX is only set when the OS saves YMM state.
	levels[AVX] = cpu.X86.HasAVX
	levels[FMA] = levels[AVX] && cpu.X86.HasFMA

	// HasAVX512F is only set when the OS saves ZMM and opmask state.
	levels[AVX512] = levels[FMA] && cpu.X86.HasAVX512F
}

// SVEVectorBytes returns 0 on x86.
func SVEVectorBytes() int {
	return 0
}
