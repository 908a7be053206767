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
package util

import (
	"fmt"
	"os"
	"testing"

	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/loader"
	"github.com/consensys/go-svfold/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the fixture files (lisp) are found.
const TestDir = "../../testdata"

// Check that every assertion of a given fixture holds, when evaluated with
// the default options.
func Check(t *testing.T, test string) {
	CheckWithOptions(t, test, eval.DefaultOptions())
}

// CheckWithOptions checks that every assertion of a given fixture holds, when
// evaluated with the given options.  Fixtures without any assertion are
// considered broken.
func CheckWithOptions(t *testing.T, test string, options eval.Options) {
	var filename = fmt.Sprintf("%s/valid/%s.lisp", TestDir, test)
	// Enable testing each fixture in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	program, errs := loader.Load(srcfile, options)
	//
	if len(errs) > 0 {
		for _, err := range errs {
			t.Error(errorToString(err))
		}
		//
		t.FailNow()
	}
	// Record how many assertions executed.
	nTests := 0
	//
	for _, outcome := range program.Run(options) {
		if outcome.Item.Kind != loader.Assertion {
			continue
		} else if !outcome.Passed() {
			err := program.Error(outcome.Item, outcome.Message())
			t.Error(errorToString(*err))
		}
		//
		nTests++
	}
	// Sanity check at least one assertion found.
	if nTests == 0 {
		panic(fmt.Sprintf("missing any assertions for %s", test))
	}
}

func readSourceFile(t *testing.T, filename string) *source.File {
	// Read fixture file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

// Convert a span into a useful human readable string.
func errorToString(err source.SyntaxError) string {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	return fmt.Sprintf("%s:%d:%d-%d %s", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
}
