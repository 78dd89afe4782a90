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

//go:build linux || darwin

package dualstack

import (
	"context"
	"net"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutIPv6(t *testing.T) {
	t.Helper()
	l, err := net.Listen("tcp6", "[::1]:0")
	if err != nil {
		t.Skipf("IPv6 unavailable: %v", err)
	}
	l.Close()
}

func TestProbe(t *testing.T) {
	skipWithoutIPv6(t)
	for _, mode := range []Mode{ModeDefault, ModeDualStack, ModeV6Only} {
		t.Run(mode.String(), func(t *testing.T) {
			report, err := Probe(0, mode)
			require.NoError(t, err)
			assert.NoError(t, report.SockoptErr)
			if runtime.GOOS == "linux" {
				// inet6_bind rejects the short sockaddr_in.
				assert.Error(t, report.Bind4Err)
			}
			assert.NoError(t, report.Bind6Err)
		})
	}
}

func TestListenDualStack(t *testing.T) {
	skipWithoutIPv6(t)
	ctx := context.Background()
	l, err := Listen(ctx, "tcp6", "[::]:0", ModeDualStack)
	require.NoError(t, err)
	defer l.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := l.Accept()
		if err == nil {
			accepted <- c
		}
		close(accepted)
	}()

	port := l.Addr().(*net.TCPAddr).Port
	conn, err := net.DialTimeout("tcp4", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), 5*time.Second)
	require.NoError(t, err)
	defer conn.Close()
	c, ok := <-accepted
	require.True(t, ok)
	defer c.Close()
	remote := c.RemoteAddr().(*net.TCPAddr)
	assert.NotNil(t, remote.IP.To4(), "IPv4 client seen as %s", remote.IP)
}

func TestListenV6Only(t *testing.T) {
	skipWithoutIPv6(t)
	l, err := Listen(context.Background(), "tcp6", "[::]:0", ModeV6Only)
	require.NoError(t, err)
	defer l.Close()

	port := l.Addr().(*net.TCPAddr).Port
	conn, err := net.DialTimeout("tcp4", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), 5*time.Second)
	if err == nil {
		conn.Close()
	}
	assert.Error(t, err)
}
