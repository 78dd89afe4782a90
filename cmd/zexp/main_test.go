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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFeatures(t *testing.T) {
	out, err := runCmd(t, "features", "--json")
	require.NoError(t, err)
	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "best")
	assert.Contains(t, info["levels"], "scalar")
}

func TestMatMulSmall(t *testing.T) {
	out, err := runCmd(t, "matmul", "--iterations", "4096", "--runs", "2", "--hz", "1e9",
		"--variant", "matmult_ref", "--variant", "vecmult_ref")
	require.NoError(t, err)
	assert.Contains(t, out, "matmult_ref")
	assert.Contains(t, out, "vecmult_ref")
	assert.NotContains(t, out, "matmult_novec")
}

func TestMatMulBadCount(t *testing.T) {
	_, err := runCmd(t, "matmul", "zero")
	assert.Error(t, err)
	_, err = runCmd(t, "matmul", "0")
	assert.Error(t, err)
}

func TestMP(t *testing.T) {
	out, err := runCmd(t, "mp", "--iterations", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "uint256 reference: ok")
	assert.Contains(t, out, "mp_bits")

	_, err = runCmd(t, "mp", "--limbs", "3")
	assert.Error(t, err)
}

func TestBenchParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"BenchmarkMatMul/matmult_ref-8   \t 1000000\t      10.00 ns/op\n"), 0o644))
	out, err := runCmd(t, "benchparse", path, "--hz", "2e9", "--json")
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.InDelta(t, 20.0, results[0]["cycles"], 1e-9)

	_, err = runCmd(t, "benchparse", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestUnknownDualStackMode(t *testing.T) {
	_, err := runCmd(t, "dualstack", "--mode", "both", "--port", "0")
	assert.Error(t, err)
}
