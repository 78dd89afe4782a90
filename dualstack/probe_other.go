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

//go:build !(linux || darwin)

package dualstack

import (
	"context"
	"net"

	"github.com/pkg/errors"
)

// ErrUnsupported is returned on platforms without the raw socket calls.
var ErrUnsupported = errors.New("dualstack: not supported on this platform")

// Probe is not implemented on this platform.
func Probe(port int, mode Mode) (Report, error) {
	return Report{Mode: mode, Port: port}, ErrUnsupported
}

// Listen is not implemented on this platform.
func Listen(ctx context.Context, network, address string, mode Mode) (net.Listener, error) {
	return nil, ErrUnsupported
}
