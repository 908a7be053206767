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
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/loader"
	"github.com/consensys/go-svfold/pkg/util/source"
)

// CheckInvalid checks that a given fixture fails to load, producing exactly
// the errors given by the ";;error" lines at the start of the file.
func CheckInvalid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/invalid/%s.lisp", TestDir, test)
	// Enable testing each fixture in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Load source file to produce errors
	_, actual := loader.Load(srcfile, eval.DefaultOptions())
	// Extract expected errors for comparison
	expected, errs := ExtractAttributes(srcfile, extractSyntaxError)
	//
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	// Check program did not load!
	checkExpectedErrors(t, srcfile, actual, expected)
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []source.SyntaxError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have loaded\n", srcfile.Filename())
	}
	//
	var (
		failed = false
		// Construct initial message
		msg = fmt.Sprintf("Error %s\n", srcfile.Filename())
	)
	//
	for i := 0; i < max(len(actual), len(expected)); i++ {
		if i < len(actual) && i < len(expected) {
			// Check whether message OK
			if expected[i].Message() == actual[i].Message() && expected[i].Span() == actual[i].Span() {
				continue
			}
		}
		// Indicate error arose
		failed = true
		// actual
		if i < len(actual) {
			msg = fmt.Sprintf("%s unexpected error %s\n", msg, errorToString(actual[i]))
		}
		// expected
		if i < len(expected) {
			msg = fmt.Sprintf("%s   expected error %s\n", msg, errorToString(expected[i]))
		}
	}
	//
	if failed {
		t.Fatal(msg)
	}
}
