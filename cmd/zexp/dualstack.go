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

	"github.com/spf13/cobra"

	"github.com/kvr000/zbynek-go-exp/dualstack"
)

func newDualStackCmd() *cobra.Command {
	var (
		port  int
		modes []string
	)
	cmd := &cobra.Command{
		Use:   "dualstack",
		Short: "Bind IPv4 and IPv6 wildcard addresses to one IPv6 socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range modes {
				mode, err := dualstack.ParseMode(name)
				if err != nil {
					return err
				}
				report, err := dualstack.Probe(port, mode)
				if err != nil {
					return err
				}
				fmt.Fprint(w, report)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&port, "port", dualstack.DefaultPort, "Port to bind")
	flags.StringSliceVar(&modes, "mode", []string{dualstack.ModeDefault.String(), dualstack.ModeDualStack.String()},
		"IPV6_V6ONLY handling: default, dual-stack or v6-only (repeatable)")
	return cmd
}
