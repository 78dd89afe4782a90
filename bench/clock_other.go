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

//go:build !(linux || darwin)

package bench

import "time"

var processStart = time.Now()

// Without a process CPU clock, elapsed wall time stands in for CPU time.
func processCPUTime() time.Duration {
	return time.Since(processStart)
}

func userTime() (time.Duration, error) {
	return time.Since(processStart), nil
}
