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

	"github.com/kvr000/zbynek-go-exp/depchain"
)

func newDepChainCmd() *cobra.Command {
	var (
		cfg     depchain.Config
		kernels []string
	)
	cmd := &cobra.Command{
		Use:   "depchain",
		Short: "Time chains of dependent and independent register operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Keep = keepNames(kernels)
			w := cmd.OutOrStdout()
			results, err := depchain.Run(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(w, "%s (%s)\n", r, humanize.SIWithDigits(r.PerSecond, 3, "op/s"))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Uint64Var(&cfg.Loops, "loops", depchain.DefaultLoops, "Iterations per kernel")
	flags.Uint64Var(&cfg.WarmupLoops, "warmup", depchain.DefaultWarmupLoops, "Warm-up iterations")
	flags.Float64Var(&cfg.Hz, "hz", 0, "Clock frequency, 0 to detect")
	flags.StringSliceVar(&kernels, "kernel", nil, "Only these kernels (repeatable), e.g. runDepend64")
	return cmd
}
