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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kvr000/zbynek-go-exp/bench"
	"github.com/kvr000/zbynek-go-exp/cpufreq"
)

func newBenchParseCmd() *cobra.Command {
	var (
		hz     float64
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "benchparse FILE",
		Short: "Convert 'go test -bench' output to cycles per operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening benchmark output")
			}
			defer f.Close()
			if hz <= 0 {
				hz = cpufreq.Cached().Hz
			}
			results, err := bench.ParseGoBench(f, hz)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, results)
			}
			for _, r := range results {
				fmt.Fprintln(w, r)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&hz, "hz", 0, "Clock frequency, 0 to detect")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
