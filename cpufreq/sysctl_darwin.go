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
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func sysctlFrequency() (float64, error) {
	hz, err := unix.SysctlUint64("hw.cpufrequency")
	if err != nil {
		return 0, errors.Wrapf(ErrUnavailable, "sysctl hw.cpufrequency: %v", err)
	}
	if hz == 0 {
		return 0, errors.Wrap(ErrUnavailable, "sysctl hw.cpufrequency is zero")
	}
	return float64(hz), nil
}
