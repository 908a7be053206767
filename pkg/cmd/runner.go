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
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/loader"
	"github.com/consensys/go-svfold/pkg/util"
	"github.com/consensys/go-svfold/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// fileResult captures the outcome of loading and running a single fixture
// file.  Either errors is non-empty, or program is set.
type fileResult struct {
	srcfile  *source.File
	program  *loader.Program
	errors   []source.SyntaxError
	outcomes []loader.Outcome
}

// Load and run every given fixture file, exiting if any cannot be read.
// Results are returned in the order of the filenames.
func runFiles(filenames []string, cfg config) []fileResult {
	stats := util.NewPerfStats()
	results, err := processFiles(context.Background(), filenames, cfg.Options(), cfg.Jobs)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	stats.Log(fmt.Sprintf("Processing %d file(s)", len(filenames)))
	//
	return results
}

// Process the given files concurrently, with at most jobs files in flight at
// any one time (where zero means one per CPU).  Each file is evaluated within
// its own context, hence sharing nothing with its siblings.  Processing stops
// at the first file which cannot be read.
func processFiles(ctx context.Context, filenames []string, options eval.Options, jobs uint) ([]fileResult,
	error) {
	var (
		results     = make([]fileResult, len(filenames))
		group, gctx = errgroup.WithContext(ctx)
	)
	//
	if jobs == 0 {
		jobs = uint(runtime.NumCPU())
	}
	//
	group.SetLimit(int(jobs))
	//
	for i, filename := range filenames {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			//
			bytes, err := os.ReadFile(filename)
			//
			if err != nil {
				return err
			}
			//
			results[i] = processFile(source.NewSourceFile(filename, bytes), options)
			//
			return nil
		})
	}
	//
	return results, group.Wait()
}

func processFile(srcfile *source.File, options eval.Options) fileResult {
	log.Debugf("processing %s", srcfile.Filename())
	//
	program, errs := loader.Load(srcfile, options)
	//
	if len(errs) > 0 {
		return fileResult{srcfile, nil, errs, nil}
	}
	//
	return fileResult{srcfile, program, nil, program.Run(options)}
}
