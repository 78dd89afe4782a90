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

// Package dualstack probes how an IPv6 socket treats IPv4 traffic: whether an
// IPv4 address can be bound to it, and whether IPv4 clients reach an IPv6
// wildcard listener depending on IPV6_V6ONLY.
package dualstack

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPort is the port the probe binds when none is given.
const DefaultPort = 13123

// Mode selects the IPV6_V6ONLY setting applied before binding.
type Mode int

const (
	// ModeDefault leaves the system default (net.ipv6.bindv6only on linux).
	ModeDefault Mode = iota
	// ModeDualStack clears IPV6_V6ONLY.
	ModeDualStack
	// ModeV6Only sets IPV6_V6ONLY.
	ModeV6Only
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeDualStack:
		return "dual-stack"
	case ModeV6Only:
		return "v6-only"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for m := ModeDefault; m <= ModeV6Only; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, errors.Errorf("dualstack: unknown mode %q (want default, dual-stack or v6-only)", s)
}

// v6only returns the option value, ok is false for ModeDefault.
func (m Mode) v6only() (value int, ok bool) {
	switch m {
	case ModeDualStack:
		return 0, true
	case ModeV6Only:
		return 1, true
	}
	return 0, false
}

// Report is the outcome of Probe. A nil error means the step succeeded.
type Report struct {
	Mode       Mode
	Port       int
	SockoptErr error
	Bind4Err   error
	Bind6Err   error
}

// String renders the failures the way perror would, one per line.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mode %s, port %d\n", r.Mode, r.Port)
	if r.SockoptErr != nil {
		v, _ := r.Mode.v6only()
		fmt.Fprintf(&sb, "setsockopt to IPV6_V6ONLY=%d failed: %v\n", v, r.SockoptErr)
	}
	if r.Bind4Err != nil {
		if r.Mode == ModeDualStack {
			fmt.Fprintf(&sb, "Failed to bind inet4 to inet6 socket: %v\n", r.Bind4Err)
		} else {
			fmt.Fprintf(&sb, "Expected, failed to bind inet4 to inet6 socket: %v\n", r.Bind4Err)
		}
	} else {
		sb.WriteString("Bound inet4 to inet6 socket\n")
	}
	if r.Bind6Err != nil {
		fmt.Fprintf(&sb, "Failed to bind inet6 to inet6 socket: %v\n", r.Bind6Err)
	} else {
		sb.WriteString("Bound inet6 to inet6 socket\n")
	}
	return sb.String()
}
