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
package sexp

import (
	"errors"
	"strconv"
	"testing"

	"github.com/consensys/go-svfold/pkg/util/assert"
	"github.com/consensys/go-svfold/pkg/util/source"
)

func TestTranslator_00(t *testing.T) {
	CheckTranslate(t, "1", 1)
	CheckTranslate(t, "(+ 1 2)", 3)
	CheckTranslate(t, "(+ (* 2 3) 4)", 10)
	CheckTranslate(t, "(sum 1 2 3 4)", 10)
	CheckTranslate(t, "(double (+ 1 2))", 6)
}

func TestTranslator_01(t *testing.T) {
	CheckTranslateErr(t, "x", "unknown symbol \"x\"", 0)
	CheckTranslateErr(t, "(+ 1 y)", "unknown symbol \"y\"", 5)
	CheckTranslateErr(t, "(* 1 2 3)", "expected two arguments", 0)
	CheckTranslateErr(t, "(double)", "expected one argument", 0)
	CheckTranslateErr(t, "((+ 1 2))", "invalid list", 0)
	CheckTranslateErr(t, "(+ 1 -)", "negative", 5)
}

func TestTranslator_02(t *testing.T) {
	// Broken arguments are not given to the rule, but all are reported
	_, errs := translate(t, "(+ a (* b 1))")
	//
	assert.Equal(t, 2, len(errs))
}

func TestTranslator_03(t *testing.T) {
	var (
		srcfile         = source.NewSourceFile("test", []byte("(+ 1 (* 2 3))"))
		term, srcmap, _ = Parse(srcfile)
		translator      = newTranslator(srcfile, srcmap)
		root, errs      = translator.Translate(term)
	)
	//
	assert.Equal(t, 0, len(errs))
	//
	var (
		innerSpan = translator.SourceMap().Get(root.args[1])
		outerSpan = translator.SourceMap().Get(root)
	)
	//
	assert.Equal(t, 0, outerSpan.Start())
	assert.Equal(t, 13, outerSpan.End())
	assert.Equal(t, "(* 2 3)", srcfile.Text(innerSpan))
}

// ============================================================================
// Helpers
// ============================================================================

// Simple arithmetic terms, evaluated as they are translated.
type node struct {
	value int
	args  []*node
}

func newTranslator(srcfile *source.File, srcmap *source.Map[SExp]) *Translator[*node] {
	p := NewTranslator[*node](srcfile, srcmap)
	//
	p.AddSymbolRule(func(s string) (*node, bool, error) {
		if s == "-" {
			return nil, true, errors.New("negative")
		} else if n, err := strconv.Atoi(s); err == nil {
			return &node{n, nil}, true, nil
		}
		//
		return nil, false, nil
	})
	p.AddRecursiveListRule("+", binaryRule(func(x, y int) int { return x + y }))
	p.AddRecursiveListRule("*", binaryRule(func(x, y int) int { return x * y }))
	p.AddRecursiveListRule("sum", func(_ string, args []*node) (*node, error) {
		var total int
		//
		for _, arg := range args {
			total += arg.value
		}
		//
		return &node{total, args}, nil
	})
	p.AddListRule("double", func(l *List) (*node, []source.SyntaxError) {
		if l.Len() != 2 {
			return nil, p.SyntaxErrors(l, "expected one argument")
		}
		//
		arg, errs := p.Translate(l.Get(1))
		//
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return &node{2 * arg.value, []*node{arg}}, nil
	})
	//
	return p
}

func binaryRule(fn func(int, int) int) RecursiveRule[*node] {
	return func(_ string, args []*node) (*node, error) {
		if len(args) != 2 {
			return nil, errors.New("expected two arguments")
		}
		//
		return &node{fn(args[0].value, args[1].value), args}, nil
	}
}

func translate(t *testing.T, input string) (*node, []source.SyntaxError) {
	var srcfile = source.NewSourceFile("test", []byte(input))
	//
	term, srcmap, err := Parse(srcfile)
	//
	if err != nil {
		t.Fatal(err.Error())
	}
	//
	return newTranslator(srcfile, srcmap).Translate(term)
}

func CheckTranslate(t *testing.T, input string, expected int) {
	root, errs := translate(t, input)
	//
	if len(errs) > 0 {
		t.Errorf("%s: %s", input, errs[0].Message())
	} else if root.value != expected {
		t.Errorf("%s: expected %d, got %d", input, expected, root.value)
	}
}

func CheckTranslateErr(t *testing.T, input string, msg string, position int) {
	_, errs := translate(t, input)
	//
	if len(errs) != 1 {
		t.Errorf("%s: expected one error, got %d", input, len(errs))
	} else if errs[0].Message() != msg {
		t.Errorf("%s: expected error \"%s\", got \"%s\"", input, msg, errs[0].Message())
	} else if span := errs[0].Span(); span.Start() != position {
		t.Errorf("%s: error reported at %d, expected %d", input, span.Start(), position)
	}
}
