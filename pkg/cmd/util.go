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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/loader"
	"github.com/consensys/go-svfold/pkg/util/source"
	"github.com/consensys/go-svfold/pkg/util/termio"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or exit if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Format a constant value for printing in a given radix, where zero means its
// natural radix.
func formatValue(value constant.Value, radix string) string {
	if radix == "" || !value.IsInteger() {
		return value.String()
	}
	//
	return value.Integer().Format(radix[0])
}

// Determine the line on which a given item starts.
func lineOf(program *loader.Program, item *loader.Item) int {
	var (
		err  = program.Error(item, "")
		line = err.FirstEnclosingLine()
	)
	//
	return line.Number()
}

// Print every syntax error arising from the given files, returning true if
// there were any.
func printSyntaxErrors(results []fileResult, highlighter termio.Highlighter) bool {
	var failed = false
	//
	for _, r := range results {
		for _, err := range r.errors {
			printSyntaxError(&err, highlighter)
			//
			failed = true
		}
	}
	//
	return failed
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError, highlighter termio.Highlighter) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, highlighter.Message.Wrap(err.Message()))
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(highlighter.Marker.Wrap(strings.Repeat("^", length)))
}
