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
package termio

import (
	"fmt"
	"strings"
)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal.  The zero value applies no formatting at all.
type AnsiEscape struct {
	codes []string
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{}
}

// BoldAnsiEscape constructs an escape which emboldens text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"1"}}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	var codes = make([]string, len(p.codes), len(p.codes)+1)
	//
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, fmt.Sprintf("%d", col+30))}
}

// Build constructs the final escape, or the empty string if no formatting is
// applied.
func (p AnsiEscape) Build() string {
	if len(p.codes) == 0 {
		return ""
	}
	//
	return fmt.Sprintf("\033[%sm", strings.Join(p.codes, ";"))
}

// Wrap applies this escape to a given piece of text, resetting the terminal
// afterwards.
func (p AnsiEscape) Wrap(text string) string {
	if len(p.codes) == 0 {
		return text
	}
	//
	return fmt.Sprintf("%s%s\033[0m", p.Build(), text)
}
