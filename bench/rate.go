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

package bench

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// RateResult is the throughput of a long running kernel.
type RateResult struct {
	Name string `json:"name"`
	Ops  uint64 `json:"ops"`

	// UserTime is the user CPU time the kernel consumed.
	UserTime time.Duration `json:"user_ns"`

	PerSecond float64 `json:"per_second"`
	PerTick   float64 `json:"per_tick"`
}

// String formats the result as "name: per-second=... per-tick=...".
func (r RateResult) String() string {
	return fmt.Sprintf("%s: per-second=%.6f per-tick=%.3f", r.Name, r.PerSecond, r.PerTick)
}

// ErrNoTime is returned when the kernel finished within the resolution of
// the user time counter.
var ErrNoTime = errors.New("bench: no user time elapsed")

// MeasureRate runs fn once and reports ops per second of user CPU time and
// ops per tick of a hz clock.
func MeasureRate(name string, ops uint64, hz float64, fn func()) (RateResult, error) {
	return measureRate(name, ops, hz, fn, userTime)
}

func measureRate(name string, ops uint64, hz float64, fn func(), utime func() (time.Duration, error)) (RateResult, error) {
	start, err := utime()
	if err != nil {
		return RateResult{}, err
	}
	fn()
	end, err := utime()
	if err != nil {
		return RateResult{}, err
	}

	res := RateResult{Name: name, Ops: ops, UserTime: end - start}
	if res.UserTime <= 0 {
		return res, errors.Wrapf(ErrNoTime, "measuring %s", name)
	}
	res.PerSecond = float64(ops) / res.UserTime.Seconds()
	if hz > 0 {
		res.PerTick = res.PerSecond / hz
	}
	return res, nil
}
