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

// Package elfphdr lists ELF program headers: of a file on disk, or of every
// object loaded into the running process with the addresses the dynamic
// loader relocated them to.
package elfphdr

import (
	"debug/elf"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Segment is one program header.
type Segment struct {
	Index int          `json:"index"`
	Type  elf.ProgType `json:"type"`
	// Addr is the virtual address after relocation by the object's bias.
	Addr  uint64       `json:"addr"`
	Memsz uint64       `json:"memsz"`
	Flags elf.ProgFlag `json:"flags"`
}

// Object is an ELF file and its program headers.
type Object struct {
	Name string `json:"name"`
	// Bias is the difference between run-time and link-time addresses.
	Bias     uint64    `json:"bias"`
	Segments []Segment `json:"segments"`
}

// TypeName returns the PT_ constant name of the types the report knows, and
// "[other (0x...)]" for anything else.
func TypeName(t elf.ProgType) string {
	switch t {
	case elf.PT_LOAD:
		return "PT_LOAD"
	case elf.PT_DYNAMIC:
		return "PT_DYNAMIC"
	case elf.PT_INTERP:
		return "PT_INTERP"
	case elf.PT_NOTE:
		return "PT_NOTE"
	case elf.PT_PHDR:
		return "PT_PHDR"
	case elf.PT_TLS:
		return "PT_TLS"
	case elf.PT_GNU_EH_FRAME:
		return "PT_GNU_EH_FRAME"
	case elf.PT_GNU_STACK:
		return "PT_GNU_STACK"
	case elf.PT_GNU_RELRO:
		return "PT_GNU_RELRO"
	}
	return fmt.Sprintf("[other (0x%x)]", uint32(t))
}

// ReadFile reads the program headers of the ELF file at path, relocating
// addresses by bias.
func ReadFile(path string, bias uint64) (Object, error) {
	f, err := elf.Open(path)
	if err != nil {
		return Object{}, errors.Wrapf(err, "opening ELF file %q", path)
	}
	defer f.Close()
	return FromFile(path, f, bias), nil
}

// FromFile converts the program headers of an open ELF file.
func FromFile(name string, f *elf.File, bias uint64) Object {
	obj := Object{Name: name, Bias: bias, Segments: make([]Segment, 0, len(f.Progs))}
	for i, p := range f.Progs {
		obj.Segments = append(obj.Segments, Segment{
			Index: i,
			Type:  p.Type,
			Addr:  bias + p.Vaddr,
			Memsz: p.Memsz,
			Flags: p.Flags,
		})
	}
	return obj
}

// Write prints objects in the dl_iterate_phdr walk format:
//
//	Name: "/usr/lib/libc.so.6" (14 segments)
//	     0: [0x7f2a3c428000; memsz:  28000] flags: 0x4; PT_LOAD
func Write(w io.Writer, objects []Object) error {
	for _, obj := range objects {
		if _, err := fmt.Fprintf(w, "Name: %q (%d segments)\n", obj.Name, len(obj.Segments)); err != nil {
			return err
		}
		for _, s := range obj.Segments {
			addr := fmt.Sprintf("%#x", s.Addr)
			if _, err := fmt.Fprintf(w, "    %2d: [%14s; memsz:%7x] flags: 0x%x; %s\n",
				s.Index, addr, s.Memsz, uint32(s.Flags), TypeName(s.Type)); err != nil {
				return err
			}
		}
	}
	return nil
}
