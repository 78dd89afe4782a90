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

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kvr000/zbynek-go-exp/cpufreq"
)

func formatHz(hz float64) string {
	return humanize.SIWithDigits(hz, 3, "Hz")
}

func newFreqCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Find the CPU clock frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			d := cpufreq.NewDetector()
			if all {
				for _, p := range d.ProbeAll(cmd.Context()) {
					if p.Err != nil {
						fmt.Fprintf(w, "%-14s failed: %v\n", p.Source+":", p.Err)
						continue
					}
					fmt.Fprintf(w, "%-14s %s\n", p.Source+":", formatHz(p.Hz))
				}
				return nil
			}
			res := d.Detect(cmd.Context())
			fmt.Fprintf(w, "CPU frequency: %s (%s)\n", formatHz(res.Hz), res.Source)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Ask every source and print each answer")
	return cmd
}
