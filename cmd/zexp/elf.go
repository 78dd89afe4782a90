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
	"debug/elf"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kvr000/zbynek-go-exp/elfphdr"
)

func newElfCmd() *cobra.Command {
	var (
		file   string
		fixups string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "elf",
		Short: "List program headers of the loaded objects or of an ELF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if fixups != "" {
				return printFixups(cmd, file, fixups)
			}
			var objects []elfphdr.Object
			if file != "" {
				obj, err := elfphdr.ReadFile(file, 0)
				if err != nil {
					return err
				}
				objects = []elfphdr.Object{obj}
			} else {
				var err error
				if objects, err = elfphdr.Loaded(); err != nil {
					return err
				}
			}
			if asJSON {
				return writeJSON(w, objects)
			}
			return elfphdr.Write(w, objects)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&file, "file", "", "ELF file to read instead of the loaded objects")
	flags.StringVar(&fixups, "fixups", "", "Decode the fixup table in this section (e.g. "+elfphdr.DefaultFixupSection+")")
	flags.BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func printFixups(cmd *cobra.Command, file, section string) error {
	if file == "" {
		exe, err := os.Executable()
		if err != nil {
			return errors.Wrap(err, "locating executable")
		}
		file = exe
	}
	f, err := elf.Open(file)
	if err != nil {
		return errors.Wrapf(err, "opening %s", file)
	}
	defer f.Close()
	table, err := elfphdr.FixupTable(f, section)
	if err != nil {
		return err
	}
	sec := f.Section(section)
	return elfphdr.WriteFixups(cmd.OutOrStdout(), section, sec.Addr, sec.Addr+sec.Size, table)
}
