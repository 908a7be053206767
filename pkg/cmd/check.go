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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file ...",
	Short: "Check the assertions of one or more fixture files.",
	Long: `Check every (assert ...) item of one or more fixture files, reporting
	those whose value differs from that expected.  The exit status is 4 when any
	assertion fails.`,
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
		var total, failed uint
		//
		for _, r := range results {
			nTotal, nFailed := checkAssertions(r, highlighter)
			total += nTotal
			failed += nFailed
		}
		//
		if failed > 0 {
			fmt.Printf("%d of %d assertions failed\n", failed, total)
			os.Exit(4)
		}
		//
		fmt.Println(highlighter.Success.Wrap(fmt.Sprintf("%d assertions passed", total)))
	},
}

// Check the assertions of a given file, returning the number checked and the
// number which failed.
func checkAssertions(r fileResult, highlighter termio.Highlighter) (uint, uint) {
	var total, failed uint
	//
	for _, outcome := range r.outcomes {
		if outcome.Item.Kind != loader.Assertion {
			continue
		} else if !outcome.Passed() {
			printSyntaxError(r.program.Error(outcome.Item, outcome.Message()), highlighter)
			//
			failed++
		}
		//
		total++
	}
	//
	log.Debugf("%s: %d of %d assertions passed", r.srcfile.Filename(), total-failed, total)
	//
	return total, failed
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
