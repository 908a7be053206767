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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/loader"
	"github.com/consensys/go-svfold/pkg/logic"
	"github.com/consensys/go-svfold/pkg/util/assert"
	"github.com/consensys/go-svfold/pkg/util/source"
)

func Test_Runner_00(t *testing.T) {
	var (
		dir   = t.TempDir()
		files = []string{
			writeFixture(t, dir, "a.lisp", "(eval (+ 1 2))"),
			writeFixture(t, dir, "b.lisp", "(eval y)"),
			writeFixture(t, dir, "c.lisp", "(assert (* 4'd3 4'd3) 4'd9)\n(eval 8'hff)"),
		}
	)
	//
	results, err := processFiles(context.Background(), files, eval.DefaultOptions(), 2)
	//
	assert.True(t, err == nil)
	assert.Equal(t, 3, len(results))
	// Results follow the order of the files
	for i, r := range results {
		assert.Equal(t, files[i], r.srcfile.Filename())
	}
	//
	assert.Equal(t, 0, len(results[0].errors))
	assert.Equal(t, "32'sd3", results[0].outcomes[0].Value.String())
	assert.Equal(t, 1, len(results[1].errors))
	assert.True(t, results[1].program == nil)
	assert.Equal(t, 2, len(results[2].outcomes))
	assert.True(t, results[2].outcomes[0].Passed())
}

func Test_Runner_01(t *testing.T) {
	var files = []string{filepath.Join(t.TempDir(), "missing.lisp")}
	//
	_, err := processFiles(context.Background(), files, eval.DefaultOptions(), 0)
	//
	assert.True(t, err != nil)
}

func Test_Runner_02(t *testing.T) {
	var (
		dir    = t.TempDir()
		file   = writeFixture(t, dir, "a.lisp", "\n(eval 1)\n\n(eval (+ 1 1))")
		r      = processFile(readFixture(t, file), eval.DefaultOptions())
		second = r.outcomes[1].Item
	)
	//
	assert.Equal(t, loader.Evaluation, second.Kind)
	assert.Equal(t, 4, lineOf(r.program, second))
	assert.Equal(t, "(+ 1 1)", r.program.Text(second))
}

func Test_Runner_03(t *testing.T) {
	var v = constant.FromVector(logic.FromUint64(8, false, 0xab))
	//
	assert.Equal(t, "8'd171", formatValue(v, ""))
	assert.Equal(t, "8'hab", formatValue(v, "h"))
	assert.Equal(t, "8'b10101011", formatValue(v, "b"))
	assert.Equal(t, "null", formatValue(constant.NullValue(), "h"))
}

// ===================================================================
// Test Helpers
// ===================================================================

func writeFixture(t *testing.T, dir string, name string, contents string) string {
	t.Helper()
	//
	var filename = filepath.Join(dir, name)
	//
	if err := os.WriteFile(filename, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	//
	return filename
}

func readFixture(t *testing.T, filename string) *source.File {
	t.Helper()
	//
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return source.NewSourceFile(filename, bytes)
}
