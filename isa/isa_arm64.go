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

//go:build arm64

package isa

import "golang.org/x/sys/cpu"

func detectFeatures(levels *[numLevels]bool) {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	levels[NEON] = cpu.ARM64.HasASIMD
	levels[SVE] = levels[NEON] && cpu.ARM64.HasSVE
}

// SVEVectorBytes returns the SVE register width in bytes, or 0 when SVE is
// not available (or disabled through ZEXP_NO_SVE).
func SVEVectorBytes() int {
	if !Has(SVE) {
		return 0
	}
	return sveVectorBytes()
}
