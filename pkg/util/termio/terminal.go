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
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether a given file is attached to a terminal, as opposed
// to (for example) being redirected into a file or a pipe.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Highlighter determines the escapes used when reporting errors.  When output
// is not to a terminal, these apply no formatting.
type Highlighter struct {
	// Escape for error messages
	Message AnsiEscape
	// Escape for the marker underlining the offending text
	Marker AnsiEscape
	// Escape for passing results
	Success AnsiEscape
}

// NewHighlighter constructs a highlighter for a given output file, which uses
// colours only when requested and that file is a terminal.
func NewHighlighter(file *os.File, colour bool) Highlighter {
	if !colour || !IsTerminal(file) {
		return Highlighter{}
	}
	//
	return Highlighter{
		Message: BoldAnsiEscape(),
		Marker:  BoldAnsiEscape().FgColour(TERM_RED),
		Success: NewAnsiEscape().FgColour(TERM_GREEN),
	}
}
