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

	"github.com/consensys/go-svfold/pkg/loader"
	"github.com/consensys/go-svfold/pkg/util/termio"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] file ...",
	Short: "Evaluate the expressions of one or more fixture files.",
	Long: `Evaluate every (eval ...) item of one or more fixture files, printing
	the constant value of each.  Non-constant expressions are reported as
	unevaluable.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			cfg         = getConfig(cmd)
			highlighter = termio.NewHighlighter(os.Stdout, cfg.AnsiEscapes)
			results     = runFiles(args, cfg)
		)
		// Report any errors
		if printSyntaxErrors(results, highlighter) {
			os.Exit(3)
		}
		//
		for _, r := range results {
			printEvaluations(r, cfg.Radix)
		}
	},
}

func printEvaluations(r fileResult, radix string) {
	for _, outcome := range r.outcomes {
		if outcome.Item.Kind != loader.Evaluation {
			continue
		}
		//
		fmt.Printf("%s:%d: %s = %s", r.srcfile.Filename(), lineOf(r.program, outcome.Item),
			r.program.Text(outcome.Item), formatValue(outcome.Value, radix))
		// Explain why evaluation stopped
		if outcome.Err != nil {
			fmt.Printf(" (%s)", outcome.Err)
		}
		//
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
