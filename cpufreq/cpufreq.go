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

// Package cpufreq finds the maximum clock frequency of the CPU, used to turn
// CPU time into cycles.
//
// No single source works everywhere: Linux exposes cpufreq in sysfs only with
// a cpufreq driver loaded, virtual machines often report nothing but
// /proc/cpuinfo, and macOS on Apple silicon dropped hw.cpufrequency. A
// Detector therefore tries a list of sources and falls back to Default.
package cpufreq

import (
	"context"
	"os/exec"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Default is the frequency assumed when no source reports one.
const Default = 2.5e9

// DefaultSourceName is the Result.Source of the Default fallback.
const DefaultSourceName = "default"

// ErrUnavailable is returned (wrapped) by a source that has no data on this
// system.
var ErrUnavailable = errors.New("cpufreq: frequency unavailable")

// Source is one way of discovering the frequency.
type Source interface {
	// Name identifies the source in logs and results.
	Name() string

	// Frequency returns the maximum frequency in Hz.
	Frequency(ctx context.Context) (float64, error)
}

// CommandRunner runs a program and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return out, errors.Wrapf(err, "running %s", name)
	}
	return out, nil
}

// Result is a detected frequency and where it came from.
type Result struct {
	Hz     float64 `json:"hz"`
	Source string  `json:"source"`
}

// Probe is the outcome of asking one source.
type Probe struct {
	Source string  `json:"source"`
	Hz     float64 `json:"hz,omitempty"`
	Err    error   `json:"-"`
}

// Detector asks its sources in order.
type Detector struct {
	Sources []Source
}

// NewDetector returns a detector with the sources that make sense on the
// running operating system.
func NewDetector() *Detector {
	return &Detector{Sources: DefaultSources(runtime.GOOS)}
}

// DefaultSources lists the sources for goos in the order they are tried.
func DefaultSources(goos string) []Source {
	var sources []Source
	switch goos {
	case "linux":
		sources = append(sources,
			NewSysfsSource(),
			&LscpuSource{Run: ExecRunner},
			NewProcCPUInfoSource(),
		)
	case "darwin":
		sources = append(sources,
			SysctlSource{},
			&PowermetricsSource{Run: ExecRunner},
		)
	}
	return append(sources, CPUIDSource{})
}

// Detect returns the first positive frequency reported by a source, or
// Default when every source fails.
func (d *Detector) Detect(ctx context.Context) Result {
	for _, s := range d.Sources {
		hz, err := s.Frequency(ctx)
		if err != nil {
			klog.V(1).Infof("cpufreq: %s: %v", s.Name(), err)
			continue
		}
		if hz > 0 {
			klog.V(1).Infof("Found CPU frequency %.0f from %s", hz, s.Name())
			return Result{Hz: hz, Source: s.Name()}
		}
	}
	klog.Warningf("Failed to find CPU frequency, defaulting to %.3f", float64(Default))
	return Result{Hz: Default, Source: DefaultSourceName}
}

// ProbeAll asks every source and reports each answer.
func (d *Detector) ProbeAll(ctx context.Context) []Probe {
	probes := make([]Probe, 0, len(d.Sources))
	for _, s := range d.Sources {
		hz, err := s.Frequency(ctx)
		if err == nil && hz <= 0 {
			err = errors.Wrapf(ErrUnavailable, "%s reported %g", s.Name(), hz)
		}
		probes = append(probes, Probe{Source: s.Name(), Hz: hz, Err: err})
	}
	return probes
}

var cached = sync.OnceValue(func() Result {
	return NewDetector().Detect(context.Background())
})

// Cached returns the result of the first Detect with the default sources.
func Cached() Result {
	return cached()
}
