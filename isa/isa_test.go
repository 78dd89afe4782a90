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

package isa

import (
	"runtime"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Scalar, "scalar"},
		{SSE, "sse"},
		{SSE3, "sse3"},
		{AVX, "avx"},
		{FMA, "fma"},
		{AVX512, "avx512"},
		{NEON, "neon"},
		{SVE, "sve"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestScalarAlwaysAvailable(t *testing.T) {
	if !Has(Scalar) {
		t.Fatal("Has(Scalar) = false")
	}
	levels := Levels()
	if len(levels) == 0 || levels[0] != Scalar {
		t.Fatalf("Levels() = %v, want Scalar first", levels)
	}
	if last := levels[len(levels)-1]; last != Current() {
		t.Errorf("Current() = %v, want last level %v", Current(), last)
	}
}

func TestHasOutOfRange(t *testing.T) {
	if Has(Level(-1)) || Has(numLevels) {
		t.Error("Has accepted an out of range level")
	}
}

func TestArchitectureBaseline(t *testing.T) {
	if NoSimdEnv() {
		t.Skip("ZEXP_NO_SIMD is set")
	}
	switch runtime.GOARCH {
	case "amd64":
		if !Has(SSE) {
			t.Error("amd64 without SSE")
		}
		if Has(NEON) || Has(SVE) {
			t.Error("amd64 reports ARM levels")
		}
	case "arm64":
		if !Has(NEON) {
			t.Error("arm64 without NEON")
		}
		if Has(SSE) || Has(AVX) {
			t.Error("arm64 reports x86 levels")
		}
	}
}

func TestLevelOrderingImplies(t *testing.T) {
	// Wider x86 levels are only reported together with their prerequisites.
	if Has(AVX512) && !Has(FMA) {
		t.Error("AVX512 without FMA")
	}
	if Has(FMA) && !Has(AVX) {
		t.Error("FMA without AVX")
	}
	if Has(SSE3) && !Has(SSE) {
		t.Error("SSE3 without SSE")
	}
	if Has(SVE) && !Has(NEON) {
		t.Error("SVE without NEON")
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("ZEXP_NO_SIMD", "1")
	Reset()
	t.Cleanup(Reset)

	if got := Levels(); len(got) != 1 || got[0] != Scalar {
		t.Errorf("Levels() with ZEXP_NO_SIMD = %v, want [scalar]", got)
	}
	if Current() != Scalar {
		t.Errorf("Current() = %v, want scalar", Current())
	}
}

func TestNoAVX512Env(t *testing.T) {
	t.Setenv("ZEXP_NO_AVX512", "true")
	Reset()
	t.Cleanup(Reset)

	if Has(AVX512) {
		t.Error("Has(AVX512) with ZEXP_NO_AVX512 set")
	}
}

func TestNoSimdEnvFalse(t *testing.T) {
	t.Setenv("ZEXP_NO_SIMD", "false")
	if NoSimdEnv() {
		t.Error("NoSimdEnv() = true for \"false\"")
	}
	t.Setenv("ZEXP_NO_SIMD", "yes please")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv() = false for a non-bool value")
	}
}

func TestDescribe(t *testing.T) {
	info := Describe()
	if info.Arch != runtime.GOARCH || info.OS != runtime.GOOS {
		t.Errorf("Describe() platform = %s/%s", info.OS, info.Arch)
	}
	if info.LogicalCores <= 0 {
		t.Errorf("LogicalCores = %d", info.LogicalCores)
	}
	if len(info.Levels) == 0 || info.Levels[0] != "scalar" {
		t.Errorf("Levels = %v", info.Levels)
	}
	if info.Best != Current().String() {
		t.Errorf("Best = %q, want %q", info.Best, Current())
	}
}
