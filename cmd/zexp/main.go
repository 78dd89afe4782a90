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

// Command zexp runs the CPU experiments of this module: ISA and frequency
// discovery, matrix kernel verification and benchmarks, dependency chain
// timing, ELF program headers, multi-limb addition and dual-stack sockets.
//
// Usage:
//
//	zexp features [--json]
//	zexp freq [--all]
//	zexp matmul [count] [--no-verify] [--runs N] [--json] [--variant NAME]...
//	zexp depchain [--loops N] [--warmup N]
//	zexp elf [--file PATH] [--fixups SECTION]
//	zexp mp [--limbs N] [--iterations N]
//	zexp dualstack [--port N] [--mode MODE]
//	zexp benchparse FILE [--hz HZ]
//
// klog flags (-v, --logtostderr ...) are accepted by every subcommand.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "zexp",
		Short:        "CPU and system behaviour experiments",
		SilenceUsage: true,
	}
	addKlogFlags(root.PersistentFlags())

	root.AddCommand(
		newFeaturesCmd(),
		newFreqCmd(),
		newMatMulCmd(),
		newDepChainCmd(),
		newElfCmd(),
		newMPCmd(),
		newDualStackCmd(),
		newBenchParseCmd(),
	)
	return root
}

func addKlogFlags(fs *pflag.FlagSet) {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)
}

// keepNames returns a filter accepting the given names, or nil (everything)
// when names is empty.
func keepNames(names []string) func(string) bool {
	if len(names) == 0 {
		return nil
	}
	return func(name string) bool { return slices.Contains(names, name) }
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
