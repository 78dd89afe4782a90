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

	"github.com/klauspost/cpuid/v2"
)

// Info summarises the CPU the process runs on.
type Info struct {
	OS             string   `json:"os"`
	Arch           string   `json:"arch"`
	Brand          string   `json:"brand"`
	Vendor         string   `json:"vendor"`
	PhysicalCores  int      `json:"physical_cores"`
	LogicalCores   int      `json:"logical_cores"`
	CacheLine      int      `json:"cache_line"`
	L1DataBytes    int      `json:"l1d_bytes"`
	L2Bytes        int      `json:"l2_bytes"`
	L3Bytes        int      `json:"l3_bytes"`
	Levels         []string `json:"levels"`
	Best           string   `json:"best"`
	SVEVectorBytes int      `json:"sve_vector_bytes,omitempty"`
	Features       []string `json:"features"`
}

// Describe collects Info from the detected levels and from CPUID (or the
// equivalent system registers on arm64).
func Describe() Info {
	c := cpuid.CPU
	info := Info{
		OS:             runtime.GOOS,
		Arch:           runtime.GOARCH,
		Brand:          c.BrandName,
		Vendor:         c.VendorString,
		PhysicalCores:  c.PhysicalCores,
		LogicalCores:   c.LogicalCores,
		CacheLine:      c.CacheLine,
		L1DataBytes:    c.Cache.L1D,
		L2Bytes:        c.Cache.L2,
		L3Bytes:        c.Cache.L3,
		Best:           Current().String(),
		SVEVectorBytes: SVEVectorBytes(),
		Features:       c.FeatureSet(),
	}
	if info.LogicalCores <= 0 {
		info.LogicalCores = runtime.NumCPU()
	}
	for _, l := range Levels() {
		info.Levels = append(info.Levels, l.String())
	}
	return info
}
