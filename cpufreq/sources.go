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

package cpufreq

import (
	"bufio"
	"bytes"
	"context"
	"io/fs"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"
)

// SysfsSource reads cpuinfo_max_freq (kHz) of the first CPU.
type SysfsSource struct {
	FS   fs.FS
	Path string
}

// NewSysfsSource reads the real sysfs.
func NewSysfsSource() *SysfsSource {
	return &SysfsSource{FS: os.DirFS("/"), Path: "sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"}
}

func (s *SysfsSource) Name() string { return "sysfs" }

var sysfsValueRegex = regexp.MustCompile(`^(\d+(?:\.\d*)?)$`)

func (s *SysfsSource) Frequency(ctx context.Context) (float64, error) {
	data, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return 0, errors.Wrapf(ErrUnavailable, "reading /%s: %v", s.Path, err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if m := sysfsValueRegex.FindStringSubmatch(scanner.Text()); m != nil {
			khz, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return 0, errors.Wrapf(err, "parsing /%s", s.Path)
			}
			return khz * 1000, nil
		}
	}
	return 0, errors.Wrapf(ErrUnavailable, "no value in /%s", s.Path)
}

// LscpuSource parses the "CPU max MHz:" line of lscpu.
type LscpuSource struct {
	Run CommandRunner
}

func (s *LscpuSource) Name() string { return "lscpu" }

func (s *LscpuSource) Frequency(ctx context.Context) (float64, error) {
	out, err := s.Run(ctx, "lscpu")
	if err != nil {
		return 0, errors.Wrapf(ErrUnavailable, "lscpu: %v", err)
	}
	for line := range strings.Lines(string(out)) {
		rest, ok := strings.CutPrefix(line, "CPU max MHz:")
		if !ok {
			continue
		}
		if mhz, ok := firstNumber(rest); ok {
			return mhz * 1e6, nil
		}
	}
	return 0, errors.Wrap(ErrUnavailable, "lscpu reports no CPU max MHz")
}

var numberRegex = regexp.MustCompile(`\d+(?:\.\d*)?`)

// firstNumber returns the first decimal number in s.
func firstNumber(s string) (float64, bool) {
	m := numberRegex.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	return v, err == nil
}

// ProcCPUInfoSource takes the highest "cpu MHz" of /proc/cpuinfo. It reports
// the current rather than the maximum clock, so it comes after the sources
// that know the maximum.
type ProcCPUInfoSource struct {
	FS   fs.FS
	Path string
}

// NewProcCPUInfoSource reads the real procfs.
func NewProcCPUInfoSource() *ProcCPUInfoSource {
	return &ProcCPUInfoSource{FS: os.DirFS("/"), Path: "proc/cpuinfo"}
}

func (s *ProcCPUInfoSource) Name() string { return "cpuinfo" }

var cpuMHzRegex = regexp.MustCompile(`^cpu MHz\s*:\s*(\d+(?:\.\d*)?)\s*$`)

func (s *ProcCPUInfoSource) Frequency(ctx context.Context) (float64, error) {
	data, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return 0, errors.Wrapf(ErrUnavailable, "reading /%s: %v", s.Path, err)
	}
	var best float64
	for line := range strings.Lines(string(data)) {
		m := cpuMHzRegex.FindStringSubmatch(strings.TrimRight(line, "\n"))
		if m == nil {
			continue
		}
		if mhz, err := strconv.ParseFloat(m[1], 64); err == nil {
			best = max(best, mhz)
		}
	}
	if best == 0 {
		return 0, errors.Wrapf(ErrUnavailable, "no cpu MHz in /%s", s.Path)
	}
	return best * 1e6, nil
}

// SysctlSource reads hw.cpufrequency, present on Intel Macs.
type SysctlSource struct{}

func (SysctlSource) Name() string { return "sysctl" }

func (SysctlSource) Frequency(ctx context.Context) (float64, error) {
	return sysctlFrequency()
}

// PowermetricsSource samples powermetrics once and takes the highest
// per-CPU active frequency. It needs password-less sudo.
type PowermetricsSource struct {
	Run CommandRunner
}

func (s *PowermetricsSource) Name() string { return "powermetrics" }

var residencyRegex = regexp.MustCompile(`^CPU \d+ active residency:.*(?:\s+|\()(\d+(?:\.\d+)?)\s+MHz:.*\s*$`)

func (s *PowermetricsSource) Frequency(ctx context.Context) (float64, error) {
	out, err := s.Run(ctx, "sudo", "-n", "powermetrics", "-s", "cpu_power", "-n", "1")
	if err != nil {
		return 0, errors.Wrapf(ErrUnavailable, "powermetrics: %v", err)
	}
	var best float64
	for line := range strings.Lines(string(out)) {
		m := residencyRegex.FindStringSubmatch(strings.TrimRight(line, "\n"))
		if m == nil {
			continue
		}
		if mhz, err := strconv.ParseFloat(m[1], 64); err == nil {
			best = max(best, math.Trunc(mhz)*1e6)
		}
	}
	if best == 0 {
		return 0, errors.Wrap(ErrUnavailable, "powermetrics reports no active residency")
	}
	return best, nil
}

// CPUIDSource uses the boost or nominal frequency that cpuid derives from
// the brand string and CPUID leaves.
type CPUIDSource struct{}

func (CPUIDSource) Name() string { return "cpuid" }

func (CPUIDSource) Frequency(ctx context.Context) (float64, error) {
	if cpuid.CPU.BoostFreq > 0 {
		return float64(cpuid.CPU.BoostFreq), nil
	}
	if cpuid.CPU.Hz > 0 {
		return float64(cpuid.CPU.Hz), nil
	}
	return 0, errors.Wrap(ErrUnavailable, "cpuid knows no frequency")
}
