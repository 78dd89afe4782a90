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

// Package isa detects which SIMD instruction sets the running CPU offers.
//
// Detection runs once at init time in the architecture specific files
// (isa_amd64.go, isa_arm64.go, isa_other.go). Kernels elsewhere in the module
// consult Has to decide which of their variants may run.
//
// The environment variables ZEXP_NO_SIMD, ZEXP_NO_AVX512 and ZEXP_NO_SVE
// remove levels from the detected set, which is useful for testing the
// fallback paths on a capable machine.
package isa

import (
	"os"
	"strconv"
	"sync"
)

// Level is an instruction set a kernel variant may require.
type Level int

const (
	// Scalar is plain Go code, always available.
	Scalar Level = iota

	// SSE is 128-bit SSE/SSE2 (x86-64 baseline).
	SSE

	// SSE3 adds horizontal adds (HADDPS).
	SSE3

	// AVX is 256-bit AVX without FMA.
	AVX

	// FMA is AVX with fused multiply-add (FMA3).
	FMA

	// AVX512 is AVX-512 Foundation (512-bit).
	AVX512

	// NEON is ARM Advanced SIMD (128-bit), always present on arm64.
	NEON

	// SVE is ARM Scalable Vector Extension.
	SVE

	numLevels
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE:
		return "sse"
	case SSE3:
		return "sse3"
	case AVX:
		return "avx"
	case FMA:
		return "fma"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	case SVE:
		return "sve"
	default:
		return "unknown"
	}
}

var (
	mu        sync.RWMutex
	available [numLevels]bool
	current   Level
)

// Has reports whether kernels requiring level l may run on this CPU.
func Has(l Level) bool {
	if l < 0 || l >= numLevels {
		return false
	}
	mu.RLock()
	defer mu.RUnlock()
	return available[l]
}

// Current returns the most capable detected level.
func Current() Level {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Levels returns every available level, lowest first.
func Levels() []Level {
	mu.RLock()
	defer mu.RUnlock()
	var levels []Level
	for l := Scalar; l < numLevels; l++ {
		if available[l] {
			levels = append(levels, l)
		}
	}
	return levels
}

// Reset re-runs detection, picking up changed environment variables.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	detectLocked()
}

func init() {
	Reset()
}

func detectLocked() {
	available = [numLevels]bool{}
	available[Scalar] = true
	current = Scalar
	if NoSimdEnv() {
		return
	}

	detectFeatures(&available)

	if envSet("ZEXP_NO_AVX512") {
		available[AVX512] = false
	}
	if envSet("ZEXP_NO_SVE") {
		available[SVE] = false
	}
	for l := Scalar; l < numLevels; l++ {
		if available[l] {
			current = l
		}
	}
}

// NoSimdEnv checks if the ZEXP_NO_SIMD environment variable is set.
// When set, only scalar kernels are reported as available.
func NoSimdEnv() bool {
	return envSet("ZEXP_NO_SIMD")
}

func envSet(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
