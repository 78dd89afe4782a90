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
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"
)

// Probe opens a TCP AF_INET6 socket, applies mode, then binds the IPv4
// wildcard and the IPv6 wildcard on port to that same socket. Only the
// failure to create the socket is returned as an error; everything else is
// recorded in the Report.
func Probe(port int, mode Mode) (Report, error) {
	report := Report{Mode: mode, Port: port}
	fd, err := unix.Socket(unix.AF_INET6, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return report, errors.Wrap(err, "dualstack: creating AF_INET6 socket")
	}
	defer unix.Close(fd)

	if v, ok := mode.v6only(); ok {
		report.SockoptErr = unix.SetsockoptInt(fd, unix.IPPROTO_IPV6, unix.IPV6_V6ONLY, v)
	}
	report.Bind4Err = unix.Bind(fd, &unix.SockaddrInet4{Port: port})
	report.Bind6Err = unix.Bind(fd, &unix.SockaddrInet6{Port: port})
	klog.V(1).Infof("dualstack: probe %s port %d: sockopt=%v bind4=%v bind6=%v",
		mode, port, report.SockoptErr, report.Bind4Err, report.Bind6Err)
	return report, nil
}

// Listen is net.Listen with IPV6_V6ONLY set according to mode before the
// socket is bound. The option is only touched on IPv6 sockets.
func Listen(ctx context.Context, network, address string, mode Mode) (net.Listener, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			v, ok := mode.v6only()
			if !ok || network != "tcp6" {
				return nil
			}
			var sockErr error
			if err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_IPV6, unix.IPV6_V6ONLY, v)
			}); err != nil {
				return err
			}
			return errors.Wrapf(sockErr, "setting IPV6_V6ONLY=%d", v)
		},
	}
	l, err := lc.Listen(ctx, network, address)
	if err != nil {
		return nil, errors.Wrapf(err, "dualstack: listening on %s %s (%s)", network, address, mode)
	}
	return l, nil
}
