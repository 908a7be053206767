// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package eval

import (
	"errors"
)

// Options bounds the resources which a single evaluation context may consume.
// Exceeding any limit makes the offending expression unevaluable and records
// an error in the context.
type Options struct {
	// Maximum number of nested calls to user-defined subroutines.
	MaxCallDepth uint
	// Maximum nesting of expression evaluation (including across calls).
	MaxExprDepth uint
	// Maximum number of statements executed across all calls.
	MaxSteps uint
	// Maximum width of any bit-vector produced.
	MaxWidth uint
}

// DefaultOptions returns a reasonable set of limits.
func DefaultOptions() Options {
	return Options{
		MaxCallDepth: 128,
		MaxExprDepth: 4096,
		MaxSteps:     100000,
		MaxWidth:     1 << 24,
	}
}

var (
	// ErrCallDepth is reported when calls are nested too deeply.
	ErrCallDepth = errors.New("maximum call depth exceeded")
	// ErrExprDepth is reported when expressions are nested too deeply.
	ErrExprDepth = errors.New("maximum expression depth exceeded")
	// ErrStepLimit is reported when too many statements are executed.
	ErrStepLimit = errors.New("maximum number of steps exceeded")
	// ErrWidthLimit is reported when a bit-vector would be too wide.
	ErrWidthLimit = errors.New("maximum vector width exceeded")
)
