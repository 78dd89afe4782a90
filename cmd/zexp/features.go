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
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kvr000/zbynek-go-exp/isa"
)

func newFeaturesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the CPU and the detected instruction set levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := isa.Describe()
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, info)
			}
			fmt.Fprintf(w, "Platform:  %s/%s\n", info.OS, info.Arch)
			fmt.Fprintf(w, "CPU:       %s (%s)\n", info.Brand, info.Vendor)
			fmt.Fprintf(w, "Cores:     %d physical, %d logical\n", info.PhysicalCores, info.LogicalCores)
			fmt.Fprintf(w, "Caches:    L1d %s, L2 %s, L3 %s, line %d bytes\n",
				cacheSize(info.L1DataBytes), cacheSize(info.L2Bytes), cacheSize(info.L3Bytes), info.CacheLine)
			fmt.Fprintf(w, "Levels:    %s\n", strings.Join(info.Levels, ", "))
			fmt.Fprintf(w, "Best:      %s\n", info.Best)
			if info.SVEVectorBytes > 0 {
				fmt.Fprintf(w, "SVE width: %d bytes\n", info.SVEVectorBytes)
			}
			fmt.Fprintf(w, "Features:  %s\n", strings.Join(info.Features, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func cacheSize(n int) string {
	if n <= 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}
