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
package loader

import (
	"strings"
	"testing"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/util/assert"
	"github.com/consensys/go-svfold/pkg/util/source"
	"github.com/consensys/go-svfold/pkg/util/source/sexp"
)

// ===================================================================
// Expressions
// ===================================================================

func Test_Loader_Arithmetic_00(t *testing.T) {
	check_Eval(t, "(+ 4'd3 4'd5)", "4'd8")
	check_Eval(t, "(+ 4'd15 8'd1)", "8'd16")
	check_Eval(t, "(* 3 4)", "32'sd12")
	check_Eval(t, "(- 10)", "-32'sd10")
	check_Eval(t, "(/ 7 0)", "32'sb"+strings.Repeat("x", 32))
}

func Test_Loader_Arithmetic_01(t *testing.T) {
	// An unsigned context zero extends signed operands
	check_Eval(t, "(+ -4'sd1 8'd0)", "8'd15")
	check_Eval(t, "(+ -4'sd1 8'sd0)", "-8'sd1")
	// Shifts take the type of their left operand
	check_Eval(t, "(<< 4'd3 8'd2)", "4'd12")
	check_Eval(t, "(>>> 4'sb1000 1)", "-4'sd4")
}

func Test_Loader_Comparison_00(t *testing.T) {
	check_Eval(t, "(< 4'd3 4'd5)", "1'd1")
	check_Eval(t, "(== 4'b10x1 4'b10x1)", "1'bx")
	check_Eval(t, "(=== 4'b10x1 4'b10x1)", "1'd1")
	check_Eval(t, "(==? 4'b1011 4'b10x1)", "1'd1")
	// Signed comparison only when both are signed
	check_Eval(t, "(< -1 0)", "1'd1")
	check_Eval(t, "(< -1 4'd0)", "1'd0")
}

func Test_Loader_Logical_00(t *testing.T) {
	check_Eval(t, "(&& 1 0)", "1'd0")
	check_Eval(t, "(|| 4'b00x0 1)", "1'd1")
	check_Eval(t, "(! 4'b0000)", "1'd1")
	check_Eval(t, "(& 4'b1111)", "1'd1")
	check_Eval(t, "(^~ 4'b1000)", "1'd0")
}

func Test_Loader_Unbased_00(t *testing.T) {
	// Unbased unsized literals fill their context
	check_Eval(t, "(+ '1 8'd0)", "8'd255")
	check_Eval(t, "(| 4'b0000 'x)", "4'bxxxx")
	check_Program(t, `
		(variable v (bit 3 0) 'x)
		(assert v 4'b0000)`)
}

func Test_Loader_Select_00(t *testing.T) {
	check_Program(t, `
		(variable v (logic 7 0) 8'b1010_0110)
		(assert (index v 1) 1'b1)
		(assert (index v 0) 1'b0)
		(assert (index v 8) 1'bx)
		(assert (range v 7 4) 4'b1010)
		(assert (+: v 2 3) 3'b001)
		(assert (-: v 7 2) 2'b10)`)
}

func Test_Loader_Select_01(t *testing.T) {
	// Big-endian declarations are indexed from the left
	check_Program(t, `
		(variable v (logic 0 7) 8'b1010_0110)
		(assert (index v 0) 1'b1)
		(assert (range v 0 3) 4'b1010)`)
}

func Test_Loader_Concatenation_00(t *testing.T) {
	check_Eval(t, "(concat 4'hA 4'h5)", "8'd165")
	check_Eval(t, "(repl 3 2'b10)", "6'd42")
	check_Eval(t, "(repl 2 1'b1 1'b0)", "4'd10")
}

func Test_Loader_Concatenation_01(t *testing.T) {
	check_Eval(t, "(concat 2'b10 (repl 0 1'b1))", "2'd2")
	check_Eval(t, "(concat (repl 0 4'hf) 3'd5 (repl 0 1'b0))", "3'd5")
	check_Eval(t, "(repl 2 (repl 0 1'b1) 2'b01)", "4'd5")
	// No value has zero width
	check_Eval(t, "(repl 0 4'b1)", "unevaluable")
}

func Test_Loader_Conditional_00(t *testing.T) {
	check_Eval(t, "(? 1 4'd3 8'd5)", "8'd3")
	check_Eval(t, "(? 1'bx 4'b1100 4'b1010)", "4'b1xx0")
}

func Test_Loader_Cast_00(t *testing.T) {
	check_Eval(t, "(cast (logic 3 0) 8'hab)", "4'd11")
	check_Eval(t, "(cast int 2.6)", "32'sd3")
	check_Eval(t, "(cast (signed (logic 3 0)) 4'b1111)", "-4'sd1")
	check_Eval(t, "(cast real 3)", "3")
	check_Eval(t, "(cast shortreal 0.1)", "0.10000000149011612")
}

func Test_Loader_Real_00(t *testing.T) {
	// Reals are not supported by operators or comparisons
	check_Program(t, `
		(assert (+ 1.5 2) unevaluable)
		(assert (< 1.5 2) unevaluable)
		(assert 1.5 1.5)`)
}

func Test_Loader_System_00(t *testing.T) {
	check_Program(t, `
		(variable v (logic 15 8))
		(assert ($clog2 256) 8)
		(assert ($clog2 257) 9)
		(assert ($bits v) 8)
		(assert ($left v) 15)
		(assert ($low v) 8)
		(assert ($countones 8'b1011_0001) 4)
		(assert ($onehot 8'b0001_0000) 1'b1)
		(assert ($isunknown 4'b1z00) 1'b1)
		(assert ($signed 4'b1111) -4'sd1)`)
}

// ===================================================================
// Declarations
// ===================================================================

func Test_Loader_Parameter_00(t *testing.T) {
	check_Program(t, `
		(parameter W int 8)
		(parameter M (logic (- W 1) 0) '1)
		(assert (+ W 1) 9)
		(assert M 8'hff)
		(assert ($bits M) 8)`)
}

func Test_Loader_Variable_00(t *testing.T) {
	check_Program(t, `
		(variable x int 3)
		(variable y int (* x 2))
		(variable z logic)
		(assert y 6)
		(assert z 1'bx)
		(eval (= x 10))
		(assert x 10)`)
}

func Test_Loader_Variable_01(t *testing.T) {
	var (
		program  = load(t, "(variable x (logic 3 0) 4'd9)\n(eval (+ x 1))")
		outcomes = program.Run(eval.DefaultOptions())
	)
	//
	assert.Equal(t, 2, len(outcomes))
	assert.Equal(t, Declaration, outcomes[0].Item.Kind)
	assert.Equal(t, "4'd9", outcomes[0].Value.String())
	assert.Equal(t, "32'd10", outcomes[1].Value.String())
	assert.Equal(t, "(+ x 1)", program.Text(outcomes[1].Item))
}

// ===================================================================
// Functions
// ===================================================================

func Test_Loader_Function_00(t *testing.T) {
	check_Program(t, `
		(function fact int ((n int))
		  (if (<= n 1) (return 1) (return (* n (fact (- n 1))))))
		(assert (fact 0) 1)
		(assert (fact 5) 120)
		(assert (fact 10) 3628800)`)
}

func Test_Loader_Function_01(t *testing.T) {
	check_Program(t, `
		(function sum int ((n int))
		  (var acc int 0)
		  (for (var i int 0) (< i n) (post++ i)
		    (+= acc i))
		  (return acc))
		(assert (sum 0) 0)
		(assert (sum 5) 10)`)
}

func Test_Loader_Function_02(t *testing.T) {
	// Assigning to the name of a function sets its result
	check_Program(t, `
		(function log2 int ((n int))
		  (= log2 0)
		  (while (> n 1)
		    (begin
		      (>>= n 1)
		      (++ log2))))
		(assert (log2 1) 0)
		(assert (log2 1024) 10)`)
}

func Test_Loader_Function_03(t *testing.T) {
	check_Program(t, `
		(function f int ((n int))
		  (for _ _ _
		    (begin
		      (if (> n 3) (break))
		      (++ n)
		      (continue)))
		  (return n))
		(assert (f 0) 4)
		(assert (f 10) 10)`)
}

func Test_Loader_Function_04(t *testing.T) {
	// Arguments and results are fitted to their declared types
	check_Program(t, `
		(function narrow (logic 3 0) ((x (logic 7 0)))
		  (return x))
		(assert (narrow 8'hab) 4'hb)
		(assert (narrow '1) 4'hf)`)
}

func Test_Loader_Function_05(t *testing.T) {
	// Functions can use parameters, but not variables
	check_Program(t, `
		(parameter K int 7)
		(function f int ()
		  (return K))
		(assert (f) 7)`)
	check_Errors(t, `
		(variable v int 7)
		(function f int ()
		  (return v))`, "not visible")
}

func Test_Loader_Function_06(t *testing.T) {
	// Exceeding the call depth is not constant
	check_Program(t, `
		(function forever int ((n int))
		  (return (forever n)))
		(assert (forever 1) unevaluable)`)
}

func Test_Loader_Function_07(t *testing.T) {
	// Void functions produce null
	check_Program(t, `
		(function nothing void ((n int))
		  (return))
		(assert (nothing 1) null)`)
}

// ===================================================================
// Errors
// ===================================================================

func Test_Loader_Error_00(t *testing.T) {
	check_Errors(t, "(eval y)", "unknown identifier y")
	check_Errors(t, "(eval (f 1))", "unknown function f")
	check_Errors(t, "(eval ($nope 1))", "unknown system function")
	check_Errors(t, "(eval (+ 1 2 3))", "incorrect number of arguments")
	check_Errors(t, "(frobnicate)", "unknown declaration")
	check_Errors(t, "(eval (concat '1 4'd0))", "unsized literal")
}

func Test_Loader_Error_01(t *testing.T) {
	check_Errors(t, "(variable x int)\n(eval (range x x 0))", "not constant")
	check_Errors(t, "(eval (repl -1 1'b1))", "must be non-negative")
	check_Errors(t, "(eval (concat (repl 0 1'b1)))", "empty concatenation")
	check_Errors(t, "(variable x (logic 1 0 2))", "malformed type")
	check_Errors(t, "(variable x int)\n(variable x int)", "already declared")
	check_Errors(t, "(parameter P int 1)\n(eval (= P 2))", "cannot assign")
	check_Errors(t, "(eval (& 1.5 1))", "integral operands expected")
}

func Test_Loader_Error_02(t *testing.T) {
	check_Errors(t, "(function f int () (break))", "outside of loop")
	check_Errors(t, "(function f void () (return 1))", "cannot return a value")
	check_Errors(t, "(function f int ((x int)) (var x int))", "already declared")
	check_Errors(t, "(function f int ((x int)))\n(eval (f))", "expects 1 arguments")
	check_Errors(t, "(function f int ())\n(eval f)", "used as a value")
}

func Test_Loader_Error_03(t *testing.T) {
	// Errors identify their position in the file
	_, errs := Load(source.NewSourceFile("test.lisp", []byte("(eval 1)\n(eval (+ 1 y))")), eval.DefaultOptions())
	//
	assert.Equal(t, 1, len(errs))
	//
	line := errs[0].FirstEnclosingLine()
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "y", errs[0].SourceFile().Text(errs[0].Span()))
}

// ===================================================================
// Types
// ===================================================================

func Test_Loader_Type_00(t *testing.T) {
	check_Type(t, "int", "bit signed [31:0]")
	check_Type(t, "integer", "logic signed [31:0]")
	check_Type(t, "byte", "bit signed [7:0]")
	check_Type(t, "(logic 0 7)", "logic [0:7]")
	check_Type(t, "(signed (bit 3 0))", "bit signed [3:0]")
	check_Type(t, "(unsigned integer)", "logic [31:0]")
	check_Type(t, "shortreal", "shortreal")
}

func Test_Loader_Type_01(t *testing.T) {
	check_Errors(t, "(variable x wibble)", "unknown type")
	check_Errors(t, "(variable x (signed real))", "integral type expected")
	check_Errors(t, "(variable x (logic 16777216 0))", "wider than")
}

// ===================================================================
// Test Helpers
// ===================================================================

func load(t *testing.T, text string) *Program {
	t.Helper()
	//
	program, errs := Load(source.NewSourceFile("test.lisp", []byte(text)), eval.DefaultOptions())
	//
	for _, err := range errs {
		t.Errorf("%s", err.Error())
	}
	//
	if len(errs) > 0 {
		t.FailNow()
	}
	//
	return program
}

// Check every item of a program passes.
func check_Program(t *testing.T, text string) {
	t.Helper()
	//
	program := load(t, text)
	//
	for _, outcome := range program.Run(eval.DefaultOptions()) {
		if !outcome.Passed() {
			t.Errorf("%s: %s", program.Text(outcome.Item), outcome.Message())
		}
	}
}

// Check a single expression evaluates to a given value.
func check_Eval(t *testing.T, expr string, expected string) {
	t.Helper()
	//
	var (
		program  = load(t, "(eval "+expr+")")
		outcomes = program.Run(eval.DefaultOptions())
	)
	//
	assert.Equal(t, 1, len(outcomes))
	assert.Equal(t, expected, outcomes[0].Value.String(), "evaluating %s", expr)
}

// Check loading a program fails with an error containing a given message.
func check_Errors(t *testing.T, text string, msg string) {
	t.Helper()
	//
	_, errs := Load(source.NewSourceFile("test.lisp", []byte(text)), eval.DefaultOptions())
	//
	for _, err := range errs {
		if strings.Contains(err.Message(), msg) {
			return
		}
	}
	//
	t.Errorf("expected error \"%s\" loading %s, got %v", msg, text, errs)
}

func check_Type(t *testing.T, text string, expected string) {
	t.Helper()
	//
	var srcfile = source.NewSourceFile("test.lisp", []byte(text))
	//
	term, srcmap, err := sexp.Parse(srcfile)
	//
	if err != nil {
		t.Fatal(err.Error())
	}
	//
	typ, serr := NewBinder(srcfile, srcmap, eval.DefaultOptions()).parseType(term)
	//
	if serr != nil {
		t.Fatal(serr.Message())
	}
	//
	assert.Equal(t, expected, typ.String())
	//
	if it := ast.AsIntegral(typ); it != nil {
		assert.True(t, it.Width() > 0)
	}
}
