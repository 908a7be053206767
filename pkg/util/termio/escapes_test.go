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
	"testing"

	"github.com/consensys/go-svfold/pkg/util/assert"
)

func Test_Escapes_00(t *testing.T) {
	assert.Equal(t, "", NewAnsiEscape().Build())
	assert.Equal(t, "text", NewAnsiEscape().Wrap("text"))
	assert.Equal(t, "\033[1m", BoldAnsiEscape().Build())
	assert.Equal(t, "\033[31m", NewAnsiEscape().FgColour(TERM_RED).Build())
}

func Test_Escapes_01(t *testing.T) {
	var (
		bold = BoldAnsiEscape()
		red  = bold.FgColour(TERM_RED)
	)
	// Adding a colour does not affect the original
	assert.Equal(t, "\033[1m", bold.Build())
	assert.Equal(t, "\033[1;31m", red.Build())
	assert.Equal(t, "\033[1;31m^^\033[0m", red.Wrap("^^"))
}

func Test_Escapes_02(t *testing.T) {
	// Zero values apply no formatting
	var h Highlighter
	//
	assert.Equal(t, "msg", h.Message.Wrap("msg"))
	assert.Equal(t, "^", h.Marker.Wrap("^"))
}
