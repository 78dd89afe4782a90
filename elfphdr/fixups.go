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

package elfphdr

import (
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// DefaultFixupSection is the section runner objects put their fixup entries
// in.
const DefaultFixupSection = ".__switch_fallback"

// Fixup is one entry of a fallback table: code in [Start, End) is switched
// to Fallback. Reserved is kept as stored.
type Fixup struct {
	Start    uint64 `json:"start"`
	End      uint64 `json:"end"`
	Fallback uint64 `json:"fallback"`
	Reserved uint64 `json:"reserved"`
}

// DecodeFixups decodes a table of four-word entries loaded at addr. The first
// three words of each entry are self-relative: they hold the target minus
// the address of the word itself.
func DecodeFixups(data []byte, addr uint64, order binary.ByteOrder, ptrSize int) ([]Fixup, error) {
	var word func([]byte) uint64
	switch ptrSize {
	case 8:
		word = order.Uint64
	case 4:
		word = func(b []byte) uint64 { return uint64(int64(int32(order.Uint32(b)))) }
	default:
		return nil, errors.Errorf("elfphdr: unsupported pointer size %d", ptrSize)
	}
	entrySize := 4 * ptrSize
	if len(data)%entrySize != 0 {
		return nil, errors.Errorf("elfphdr: fixup table size %d is not a multiple of %d", len(data), entrySize)
	}

	fixups := make([]Fixup, 0, len(data)/entrySize)
	for off := 0; off < len(data); off += entrySize {
		at := func(i int) (uint64, uint64) {
			pos := off + i*ptrSize
			return addr + uint64(pos), word(data[pos:])
		}
		var f Fixup
		for i, dst := range []*uint64{&f.Start, &f.End, &f.Fallback} {
			place, rel := at(i)
			*dst = place + rel
		}
		_, f.Reserved = at(3)
		if ptrSize == 4 {
			f.Start, f.End, f.Fallback = uint64(uint32(f.Start)), uint64(uint32(f.End)), uint64(uint32(f.Fallback))
			f.Reserved = uint64(uint32(f.Reserved))
		}
		fixups = append(fixups, f)
	}
	return fixups, nil
}

// FixupTable decodes the named section of f. Addresses are link-time
// addresses.
func FixupTable(f *elf.File, section string) ([]Fixup, error) {
	sec := f.Section(section)
	if sec == nil {
		return nil, errors.Errorf("elfphdr: no section %q", section)
	}
	data, err := sec.Data()
	if err != nil {
		return nil, errors.Wrapf(err, "reading section %q", section)
	}
	ptrSize := 8
	if f.Class == elf.ELFCLASS32 {
		ptrSize = 4
	}
	return DecodeFixups(data, sec.Addr, f.ByteOrder, ptrSize)
}

// WriteFixups prints a fixup table the way the runner reports it.
func WriteFixups(w io.Writer, section string, start, end uint64, fixups []Fixup) error {
	if _, err := fmt.Fprintf(w, "%s: %#x - %#x\n", section, start, end); err != nil {
		return err
	}
	for _, f := range fixups {
		if _, err := fmt.Fprintf(w, "start=%#x end=%#x fallback=%#x reserved=%#x\n", f.Start, f.End, f.Fallback, f.Reserved); err != nil {
			return err
		}
	}
	return nil
}
