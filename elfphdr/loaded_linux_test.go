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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMaps = `55d0c0a00000-55d0c0a28000 r--p 00000000 08:01 1234 /usr/bin/cat
55d0c0a28000-55d0c0a40000 r-xp 00028000 08:01 1234 /usr/bin/cat
55d0c1a00000-55d0c1a21000 rw-p 00000000 00:00 0 [heap]
7f1a2b000000-7f1a2b028000 r--p 00000000 08:01 5678 /usr/lib/x86_64-linux-gnu/libc.so.6
7ffd1a1fe000-7ffd1a200000 r-xp 00000000 00:00 0 [vdso]
7ffd1a300000-7ffd1a301000 r--p 00000000 08:01 9 /tmp/dir with space/file
`

func TestParseMaps(t *testing.T) {
	maps, err := parseMaps(strings.NewReader(sampleMaps))
	require.NoError(t, err)
	require.Len(t, maps, 6)
	assert.Equal(t, mapping{start: 0x55d0c0a00000, end: 0x55d0c0a28000, path: "/usr/bin/cat"}, maps[0])
	assert.Equal(t, uint64(0x28000), maps[1].offset)
	assert.Equal(t, "[heap]", maps[2].path)
	assert.Equal(t, "/tmp/dir with space/file", maps[5].path)

	_, err = parseMaps(strings.NewReader("zzzz r--p 0 0:0 0 /x\n"))
	assert.Error(t, err)
}

func TestObjectsFromMaps(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)
	maps, err := parseMaps(strings.NewReader(sampleMaps))
	require.NoError(t, err)

	var opened []string
	open := func(path string) (*elf.File, error) {
		opened = append(opened, path)
		if strings.HasPrefix(path, "/tmp/") {
			return nil, os.ErrNotExist
		}
		return elf.Open(exe)
	}
	objects := objectsFromMaps(maps, "/usr/lib/x86_64-linux-gnu/libc.so.6", open)
	assert.Equal(t, []string{"/usr/bin/cat", "/usr/lib/x86_64-linux-gnu/libc.so.6", "/tmp/dir with space/file"}, opened)
	require.Len(t, objects, 2)
	assert.Equal(t, "/usr/lib/x86_64-linux-gnu/libc.so.6", objects[0].Name)
	assert.Equal(t, "/usr/bin/cat", objects[1].Name)
}

func TestLoaded(t *testing.T) {
	objects, err := Loaded()
	require.NoError(t, err)
	require.NotEmpty(t, objects)

	exe, err := os.Executable()
	require.NoError(t, err)
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	assert.Equal(t, exe, objects[0].Name)

	// parseMaps is code of this executable, so its entry lies inside one
	// of the relocated PT_LOAD segments.
	pc := uint64(reflect.ValueOf(parseMaps).Pointer())
	var inside bool
	for _, s := range objects[0].Segments {
		if s.Type == elf.PT_LOAD && pc >= s.Addr && pc < s.Addr+s.Memsz {
			inside = true
		}
	}
	assert.True(t, inside, "pc %#x outside every PT_LOAD of %s", pc, exe)
}
