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

//go:build !linux

package elfphdr

import "github.com/pkg/errors"

// ErrUnsupported is returned by Loaded where the process mappings cannot be
// listed.
var ErrUnsupported = errors.New("elfphdr: listing loaded objects is only supported on linux")

// Loaded is only implemented on linux.
func Loaded() ([]Object, error) {
	return nil, ErrUnsupported
}
