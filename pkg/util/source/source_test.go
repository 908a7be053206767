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
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-svfold/pkg/util/assert"
)

func Test_Source_00(t *testing.T) {
	var srcfile = NewSourceFile("test.lisp", []byte("first\nsecond line\n\nlast"))
	//
	check_Line(t, srcfile, 0, 1, "first")
	check_Line(t, srcfile, 4, 1, "first")
	check_Line(t, srcfile, 6, 2, "second line")
	check_Line(t, srcfile, 17, 2, "second line")
	check_Line(t, srcfile, 18, 3, "")
	check_Line(t, srcfile, 19, 4, "last")
	check_Line(t, srcfile, 23, 4, "last")
}

func Test_Source_01(t *testing.T) {
	var (
		srcfile = NewSourceFile("test.lisp", []byte("(eval x)\n  (eval (+ y 1))"))
		err     = srcfile.SyntaxError(NewSpan(20, 21), "unknown identifier y")
	)
	//
	assert.Equal(t, "y", srcfile.Text(err.Span()))
	assert.Equal(t, "test.lisp:2:12: unknown identifier y", err.Error())
}

func Test_Source_02(t *testing.T) {
	// Multi-byte characters occupy a single position
	var srcfile = NewSourceFile("test.lisp", []byte("λ (x)"))
	//
	assert.Equal(t, "(x)", srcfile.Text(NewSpan(2, 5)))
}

func Test_Source_03(t *testing.T) {
	var span = NewSpan(3, 7)
	//
	assert.Equal(t, 3, span.Start())
	assert.Equal(t, 7, span.End())
	assert.Equal(t, 4, span.Length())
	assert.Panics(t, func() { NewSpan(2, 1) })
}

func Test_Source_04(t *testing.T) {
	var (
		srcmap = NewSourceMap[string](*NewSourceFile("test.lisp", nil))
		span   = NewSpan(0, 1)
	)
	//
	srcmap.Put("a", span)
	//
	assert.True(t, srcmap.Has("a"))
	assert.False(t, srcmap.Has("b"))
	assert.Equal(t, span, srcmap.Get("a"))
	assert.Panics(t, func() { srcmap.Put("a", span) })
	assert.Panics(t, func() { srcmap.Get("b") })
}

func Test_Source_05(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "a.lisp")
	)
	//
	if err := os.WriteFile(filename, []byte("(eval 1)"), 0o600); err != nil {
		t.Fatal(err)
	}
	//
	files, err := ReadFiles(filename)
	//
	assert.True(t, err == nil)
	assert.Equal(t, 1, len(files))
	assert.Equal(t, filename, files[0].Filename())
	assert.Equal(t, "(eval 1)", string(files[0].Contents()))
	//
	_, err = ReadFiles(filepath.Join(dir, "missing.lisp"))
	//
	assert.True(t, err != nil)
}

func Test_Source_06(t *testing.T) {
	var lines = NewSourceFile("test.lisp", []byte("ab\n\ncde")).Lines()
	//
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "ab", lines[0].String())
	assert.Equal(t, "", lines[1].String())
	assert.Equal(t, "cde", lines[2].String())
	assert.Equal(t, 3, lines[2].Number())
	assert.Equal(t, 4, lines[2].Start())
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Line(t *testing.T, srcfile *File, offset int, number int, text string) {
	t.Helper()
	//
	line := srcfile.FindFirstEnclosingLine(NewSpan(offset, offset))
	//
	assert.Equal(t, number, line.Number())
	assert.Equal(t, text, line.String())
}
