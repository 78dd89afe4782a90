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
	"io"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/benchmark/parse"
)

// ParseGoBench converts `go test -bench` output into Results, so the Go
// benchmarks of the kernels can be printed in the same table as Runner
// output. Repeated lines of one benchmark (-count > 1) are merged: Cycles is
// the best line, AvgCycles the mean. Lines without ns/op are ignored.
func ParseGoBench(r io.Reader, hz float64) ([]Result, error) {
	if hz <= 0 {
		return nil, errors.Errorf("bench: invalid clock frequency %g", hz)
	}
	set, err := parse.ParseSet(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing go test -bench output")
	}

	type merged struct {
		ord    int
		res    Result
		sumNs  float64
		bestNs float64
	}
	var all []*merged
	for name, lines := range set {
		var m *merged
		for _, b := range lines {
			if b.Measured&parse.NsPerOp == 0 || b.NsPerOp <= 0 {
				continue
			}
			if m == nil {
				m = &merged{ord: b.Ord, res: Result{Name: name, Inner: 1}, bestNs: b.NsPerOp}
			}
			m.ord = min(m.ord, b.Ord)
			m.bestNs = min(m.bestNs, b.NsPerOp)
			m.sumNs += b.NsPerOp
			m.res.Runs++
			m.res.Repeat += b.N
			m.res.Wall += time.Duration(b.NsPerOp * float64(b.N))
		}
		if m != nil {
			all = append(all, m)
		}
	}
	slices.SortFunc(all, func(a, b *merged) int { return a.ord - b.ord })

	results := make([]Result, 0, len(all))
	for _, m := range all {
		avgNs := m.sumNs / float64(m.res.Runs)
		m.res.Cycles = m.bestNs * hz / 1e9
		m.res.AvgCycles = avgNs * hz / 1e9
		m.res.MOPS = 1e3 / avgNs
		results = append(results, m.res)
	}
	return results, nil
}
