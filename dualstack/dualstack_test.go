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

package dualstack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeDefault, ModeDualStack, ModeV6Only} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("both")
	assert.Error(t, err)
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestReportString(t *testing.T) {
	einval := errors.New("invalid argument")
	r := Report{Mode: ModeDefault, Port: 13123, Bind4Err: einval}
	assert.Equal(t, "mode default, port 13123\n"+
		"Expected, failed to bind inet4 to inet6 socket: invalid argument\n"+
		"Bound inet6 to inet6 socket\n", r.String())

	r = Report{Mode: ModeDualStack, Port: 1, SockoptErr: einval, Bind4Err: einval, Bind6Err: einval}
	assert.Equal(t, "mode dual-stack, port 1\n"+
		"setsockopt to IPV6_V6ONLY=0 failed: invalid argument\n"+
		"Failed to bind inet4 to inet6 socket: invalid argument\n"+
		"Failed to bind inet6 to inet6 socket: invalid argument\n", r.String())

	r = Report{Mode: ModeV6Only, Port: 2, SockoptErr: einval}
	assert.Contains(t, r.String(), "setsockopt to IPV6_V6ONLY=1 failed")
	assert.Contains(t, r.String(), "Bound inet4 to inet6 socket\n")
}
