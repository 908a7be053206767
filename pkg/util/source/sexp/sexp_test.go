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
	"reflect"
	"testing"

	"github.com/consensys/go-svfold/pkg/util/assert"
	"github.com/consensys/go-svfold/pkg/util/source"
)

func TestSexp_1(t *testing.T) {
	e1 := List{nil}
	CheckOk(t, &e1, "()")
}

func TestSexp_2(t *testing.T) {
	e1 := List{nil}
	e2 := List{[]SExp{&e1}}
	CheckOk(t, &e2, "(())")
}

func TestSexp_3(t *testing.T) {
	e1 := Symbol{"symbol"}
	CheckOk(t, &e1, "symbol")
}

func TestSexp_4(t *testing.T) {
	e1 := Symbol{"8'sh_ff"}
	CheckOk(t, &e1, "8'sh_ff")
}

func TestSexp_5(t *testing.T) {
	e1 := Symbol{"+"}
	e2 := Symbol{"'1"}
	e3 := List{[]SExp{&e1, &e2}}
	CheckOk(t, &e3, "(+ '1)")
}

func TestSexp_6(t *testing.T) {
	e1 := Symbol{"hello"}
	e2 := Symbol{"world"}
	e3 := List{[]SExp{&e2}}
	e4 := List{[]SExp{&e1, &e3}}
	CheckOk(t, &e4, "(hello (world))")
}

func TestSexp_7(t *testing.T) {
	e1 := Symbol{"$clog2"}
	e2 := Symbol{"x"}
	e3 := List{[]SExp{&e1, &e2}}
	CheckOk(t, &e3, "  ; comment\n($clog2 ; another\n x)\n")
}

func TestSexp_8(t *testing.T) {
	terms, srcmap, err := ParseAll(source.NewSourceFile("test", []byte("(a b)\n c ; d\n(e)")))
	//
	assert.True(t, err == nil)
	assert.Equal(t, 3, len(terms))
	assert.Equal(t, "(a b)", terms[0].String())
	assert.Equal(t, "c", terms[1].String())
	assert.Equal(t, "(e)", terms[2].String())
	// Spans cover each term exactly
	span := srcmap.Get(terms[1])
	assert.Equal(t, 7, span.Start())
	assert.Equal(t, 8, span.End())
	//
	b := terms[0].AsList().Get(1)
	span = srcmap.Get(b)
	assert.Equal(t, 3, span.Start())
}

func TestSexp_9(t *testing.T) {
	terms, _, err := ParseAll(source.NewSourceFile("test", []byte(" ; nothing")))
	//
	assert.True(t, err == nil)
	assert.Equal(t, 0, len(terms))
}

func TestSexp_10(t *testing.T) {
	l := NewList([]SExp{NewSymbol("range"), NewSymbol("x"), NewList(nil)})
	//
	assert.Equal(t, "range", l.Head())
	assert.True(t, l.MatchSymbols(2, "range", "x"))
	assert.True(t, l.MatchSymbols(3, "range"))
	assert.False(t, l.MatchSymbols(4, "range"))
	assert.False(t, l.MatchSymbols(1, "range", "x"))
	assert.Equal(t, "", NewList([]SExp{l}).Head())
	assert.Equal(t, "", NewList(nil).Head())
}

// ============================================================================
// Negative Tests
// ============================================================================

// unexpected end of list
func TestSexp_Err1(t *testing.T) {
	CheckErr(t, ")", 0)
}

// unexpected end of list
func TestSexp_Err2(t *testing.T) {
	CheckErr(t, "())", 2)
}

// unexpected end of file
func TestSexp_Err3(t *testing.T) {
	CheckErr(t, "(string", 7)
}

// unexpected remainder
func TestSexp_Err4(t *testing.T) {
	CheckErr(t, "(a) b", 4)
}

// unexpected end of file
func TestSexp_Err5(t *testing.T) {
	CheckErr(t, "", 0)
}

// ============================================================================
// Helpers
// ============================================================================

func CheckOk(t *testing.T, sexp1 SExp, input string) {
	sexp2, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err != nil {
		t.Error(err.Error())
	} else if !reflect.DeepEqual(sexp1, sexp2) {
		t.Errorf("%s != %s", sexp1, sexp2)
	}
}

func CheckErr(t *testing.T, input string, position int) {
	_, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err == nil {
		t.Errorf("input should not have parsed!")
	} else if span := err.Span(); span.Start() != position {
		t.Errorf("error reported at %d, expected %d", span.Start(), position)
	}
}
