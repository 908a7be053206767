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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svfold",
	Short: "A constant folder for SystemVerilog expressions.",
	Long: `A constant expression evaluator for SystemVerilog, operating over
	four-state bit-vectors.  Expressions, parameters and constant functions
	are given in fixture files (lisp).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		switch {
		case getFlag(cmd, "trace"):
			log.SetLevel(log.TraceLevel)
		case getFlag(cmd, "verbose"):
			log.SetLevel(log.DebugLevel)
		default:
			log.SetLevel(log.InfoLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("svfold ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("trace", false, "log every call to a constant function")
	rootCmd.PersistentFlags().StringP("config", "c", "", "read configuration from a given file (default svfold.yaml)")
	rootCmd.PersistentFlags().Uint("max-call-depth", 0, "maximum nesting of function calls")
	rootCmd.PersistentFlags().Uint("max-expr-depth", 0, "maximum nesting of expressions")
	rootCmd.PersistentFlags().Uint("max-steps", 0, "maximum number of statements executed per item")
	rootCmd.PersistentFlags().Uint("max-width", 0, "maximum width of any bit-vector")
	rootCmd.PersistentFlags().String("radix", "", "radix for printing results (b, o, d or h)")
	rootCmd.PersistentFlags().UintP("jobs", "j", 0, "number of files processed concurrently (default all CPUs)")
	rootCmd.PersistentFlags().Bool("ansi-escapes", true, "highlight errors when writing to a terminal")
}
