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
	"bufio"
	"debug/elf"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// mapping is one line of /proc/<pid>/maps.
type mapping struct {
	start, end uint64
	offset     uint64
	path       string
}

func parseMaps(r io.Reader) ([]mapping, error) {
	var maps []mapping
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 {
			continue
		}
		lo, hi, ok := strings.Cut(fields[0], "-")
		if !ok {
			return nil, errors.Errorf("elfphdr: malformed address range %q", fields[0])
		}
		var m mapping
		var err error
		if m.start, err = strconv.ParseUint(lo, 16, 64); err != nil {
			return nil, errors.Wrapf(err, "parsing %q", fields[0])
		}
		if m.end, err = strconv.ParseUint(hi, 16, 64); err != nil {
			return nil, errors.Wrapf(err, "parsing %q", fields[0])
		}
		if m.offset, err = strconv.ParseUint(fields[2], 16, 64); err != nil {
			return nil, errors.Wrapf(err, "parsing offset %q", fields[2])
		}
		if len(fields) >= 6 {
			m.path = strings.Join(fields[5:], " ")
		}
		maps = append(maps, m)
	}
	return maps, errors.Wrap(scanner.Err(), "reading maps")
}

// Loaded lists the ELF objects mapped into the current process, the main
// executable first and the rest in address order. Anonymous and pseudo
// mappings ([vdso], [heap], ...) and files that are not ELF are skipped.
func Loaded() ([]Object, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return nil, errors.Wrap(err, "elfphdr: listing loaded objects")
	}
	defer f.Close()
	maps, err := parseMaps(f)
	if err != nil {
		return nil, err
	}
	exe, err := os.Executable()
	if err != nil {
		klog.V(1).Infof("elfphdr: executable path unknown: %v", err)
	} else if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return objectsFromMaps(maps, exe, elf.Open), nil
}

func objectsFromMaps(maps []mapping, exe string, open func(string) (*elf.File, error)) []Object {
	var objects []Object
	seen := make(map[string]bool)
	for _, m := range maps {
		if !strings.HasPrefix(m.path, "/") || m.offset != 0 || seen[m.path] {
			continue
		}
		seen[m.path] = true
		f, err := open(m.path)
		if err != nil {
			klog.V(2).Infof("elfphdr: skipping %s: %v", m.path, err)
			continue
		}
		objects = append(objects, FromFile(m.path, f, loadBias(f, m.start)))
		f.Close()
	}
	slices.SortStableFunc(objects, func(a, b Object) int {
		switch {
		case a.Name == exe && b.Name != exe:
			return -1
		case b.Name == exe && a.Name != exe:
			return 1
		}
		return 0
	})
	return objects
}

// loadBias derives the bias from the mapping of file offset 0, which holds
// the PT_LOAD segment with the lowest file offset.
func loadBias(f *elf.File, start uint64) uint64 {
	var first *elf.Prog
	for _, p := range f.Progs {
		if p.Type == elf.PT_LOAD && (first == nil || p.Off < first.Off) {
			first = p
		}
	}
	if first == nil {
		return 0
	}
	align := first.Align
	if align == 0 {
		align = 1
	}
	return start - first.Vaddr&^(align-1)
}
