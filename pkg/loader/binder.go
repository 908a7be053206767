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
	"fmt"
	"strconv"
	"unicode"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/logic"
	"github.com/consensys/go-svfold/pkg/util/collection/stack"
	"github.com/consensys/go-svfold/pkg/util/source"
	"github.com/consensys/go-svfold/pkg/util/source/sexp"
)

// SyntaxError is a problem found whilst loading a fixture file.
type SyntaxError = source.SyntaxError

// Load parses and binds a fixture file into a program.  The options bound the
// evaluation of constant expressions needed during binding (for example, the
// bounds of a range select).
func Load(srcfile *source.File, options eval.Options) (*Program, []SyntaxError) {
	var errors []SyntaxError
	//
	terms, srcmap, err := sexp.ParseAll(srcfile)
	//
	if err != nil {
		return nil, []SyntaxError{*err}
	}
	//
	binder := NewBinder(srcfile, srcmap, options)
	//
	for _, term := range terms {
		errors = append(errors, binder.bindItem(term)...)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return &Program{srcfile, binder.items}, nil
}

// Binder resolves the names of a fixture file, and determines the type of
// every expression therein.  Conversions are inserted wherever an operand must
// be brought to the type of its context.
type Binder struct {
	srcfile    *source.File
	translator *sexp.Translator[ast.Expression]
	// Parameters and variables declared at the top level.
	globals map[string]ast.Symbol
	// Functions declared at the top level.
	functions map[string]*ast.Subroutine
	// Function currently being bound (or nil at the top level).
	subroutine *ast.Subroutine
	// Nested scopes of locals within the function being bound.
	scopes *stack.Stack[map[string]*ast.Variable]
	// Number of loops enclosing the statement being bound.
	loops uint
	// Used for evaluating constant expressions.
	ctx *eval.Context
	// Top-level items bound so far.
	items []Item
}

// NewBinder constructs a binder for a given (parsed) file.
func NewBinder(srcfile *source.File, srcmap *source.Map[sexp.SExp], options eval.Options) *Binder {
	var (
		t = sexp.NewTranslator[ast.Expression](srcfile, srcmap)
		b = &Binder{
			srcfile:    srcfile,
			translator: t,
			globals:    make(map[string]ast.Symbol),
			functions:  make(map[string]*ast.Subroutine),
			scopes:     stack.NewStack[map[string]*ast.Variable](),
			ctx:        eval.NewContext(options),
		}
	)
	//
	t.AddSymbolRule(literalRule)
	t.AddSymbolRule(b.identifierRule)
	//
	for _, token := range operatorTokens() {
		t.AddRecursiveListRule(token, b.operatorRule)
	}
	//
	t.AddRecursiveListRule("?", conditionalRule)
	t.AddRecursiveListRule("index", indexRule)
	t.AddRecursiveListRule("range", b.rangeRule)
	t.AddRecursiveListRule("+:", b.rangeRule)
	t.AddRecursiveListRule("-:", b.rangeRule)
	t.AddRecursiveListRule("concat", b.concatRule)
	t.AddRecursiveListRule("repl", b.replicationRule)
	t.AddListRule("cast", b.castRule)
	t.AddDefaultListRule(b.invokeRule)
	//
	return b
}

// ===================================================================
// Top-Level Items
// ===================================================================

func (b *Binder) bindItem(term sexp.SExp) []SyntaxError {
	var list = term.AsList()
	//
	if list == nil || list.Head() == "" {
		return b.translator.SyntaxErrors(term, "invalid declaration")
	}
	//
	switch list.Head() {
	case "parameter":
		return b.bindParameter(list)
	case "variable":
		return b.bindVariable(list)
	case "function":
		return b.bindFunction(list)
	case "eval":
		return b.bindEvaluation(list)
	case "assert":
		return b.bindAssertion(list)
	}
	//
	return b.translator.SyntaxErrors(list.Get(0), fmt.Sprintf("unknown declaration \"%s\"", list.Head()))
}

// (parameter NAME TYPE EXPR)
func (b *Binder) bindParameter(list *sexp.List) []SyntaxError {
	if list.Len() != 4 {
		return b.translator.SyntaxErrors(list, "expected (parameter name type value)")
	}
	//
	name, errs := b.declarableName(list.Get(1))
	typ, err := b.parseType(list.Get(2))
	expr, errors := b.translator.Translate(list.Get(3))
	//
	if errors = append(errors, errs...); err != nil {
		errors = append(errors, *err)
	}
	//
	if len(errors) > 0 {
		return errors
	}
	// Parameters must be constant
	b.ctx.Reset()
	//
	value := eval.Evaluate(fit(expr, typ), b.ctx)
	//
	if !value.IsValid() {
		return b.translator.SyntaxErrors(list.Get(3), "parameter value is not constant")
	}
	//
	b.globals[name] = ast.NewParameter(name, typ, value)
	//
	return nil
}

// (variable NAME TYPE [EXPR])
func (b *Binder) bindVariable(list *sexp.List) []SyntaxError {
	if list.Len() != 3 && list.Len() != 4 {
		return b.translator.SyntaxErrors(list, "expected (variable name type [value])")
	}
	//
	if _, errors := b.declarableName(list.Get(1)); len(errors) > 0 {
		return errors
	}
	//
	decl, errors := b.bindDeclaration(list)
	//
	if len(errors) > 0 {
		return errors
	}
	//
	b.globals[decl.Symbol.Name()] = decl.Symbol
	b.items = append(b.items, Item{Kind: Declaration, Span: b.translator.SpanOf(list), Declaration: decl})
	//
	return nil
}

// (function NAME TYPE ((ARG TYPE) ...) STMT ...)
func (b *Binder) bindFunction(list *sexp.List) []SyntaxError {
	if list.Len() < 4 || list.Get(3).AsList() == nil {
		return b.translator.SyntaxErrors(list, "expected (function name type (args ...) body ...)")
	}
	//
	name, errors := b.declarableName(list.Get(1))
	ret, err := b.parseReturnType(list.Get(2))
	//
	if err != nil {
		errors = append(errors, *err)
	}
	//
	scope := make(map[string]*ast.Variable)
	args, errs := b.bindArguments(list.Get(3).AsList(), scope)
	//
	if errors = append(errors, errs...); len(errors) > 0 {
		return errors
	}
	// Register first, so the body can be recursive
	b.subroutine = ast.NewSubroutine(name, ret, args)
	b.functions[name] = b.subroutine
	b.scopes.Push(scope)
	//
	body := make([]ast.Statement, list.Len()-4)
	//
	for i, s := range list.Elements[4:] {
		var errs []SyntaxError
		body[i], errs = b.bindStatement(s)
		errors = append(errors, errs...)
	}
	//
	b.scopes.Pop()
	b.subroutine.Body = &ast.Block{Statements: body}
	b.subroutine = nil
	//
	return errors
}

func (b *Binder) bindArguments(list *sexp.List, scope map[string]*ast.Variable) ([]*ast.Variable,
	[]SyntaxError) {
	var (
		args   = make([]*ast.Variable, list.Len())
		errors []SyntaxError
	)
	//
	for i, element := range list.Elements {
		arg := element.AsList()
		//
		if arg == nil || arg.Len() != 2 || !isIdentifier(arg.Get(0)) {
			errors = append(errors, *b.translator.SyntaxError(element, "malformed argument declaration"))
			continue
		}
		//
		name := arg.Get(0).AsSymbol().Value
		typ, err := b.parseType(arg.Get(1))
		//
		if err != nil {
			errors = append(errors, *err)
		} else if _, ok := scope[name]; ok {
			errors = append(errors, *b.translator.SyntaxError(element, "duplicate argument"))
		} else {
			args[i] = ast.NewVariable(name, typ)
			scope[name] = args[i]
		}
	}
	//
	return args, errors
}

// (eval EXPR)
func (b *Binder) bindEvaluation(list *sexp.List) []SyntaxError {
	if list.Len() != 2 {
		return b.translator.SyntaxErrors(list, "expected (eval expr)")
	}
	//
	expr, errors := b.translator.Translate(list.Get(1))
	//
	if len(errors) == 0 {
		b.items = append(b.items, Item{Kind: Evaluation, Span: b.translator.SpanOf(list.Get(1)), Expr: expr})
	}
	//
	return errors
}

// (assert EXPR EXPECTED)
func (b *Binder) bindAssertion(list *sexp.List) []SyntaxError {
	if list.Len() != 3 {
		return b.translator.SyntaxErrors(list, "expected (assert expr expected)")
	}
	//
	expr, errors := b.translator.Translate(list.Get(1))
	expected, err := b.parseExpected(list.Get(2))
	//
	if err != nil {
		errors = append(errors, *err)
	}
	//
	if len(errors) == 0 {
		item := Item{Kind: Assertion, Span: b.translator.SpanOf(list), Expr: expr, Expected: expected}
		b.items = append(b.items, item)
	}
	//
	return errors
}

// Expected values are literals, reals, "null" or "unevaluable".
func (b *Binder) parseExpected(s sexp.SExp) (constant.Value, *SyntaxError) {
	if symbol := s.AsSymbol(); symbol != nil {
		switch symbol.Value {
		case "null":
			return constant.NullValue(), nil
		case "unevaluable":
			return constant.Value{}, nil
		}
		//
		if v, err := logic.Parse(symbol.Value); err == nil {
			return constant.FromVector(v), nil
		} else if f, err := strconv.ParseFloat(symbol.Value, 64); err == nil && isNumeric(symbol.Value) {
			return constant.FromReal(f), nil
		}
	}
	//
	return constant.Value{}, b.translator.SyntaxError(s, "invalid expected value")
}

// ===================================================================
// Names
// ===================================================================

var keywords = map[string]bool{
	"begin": true, "var": true, "return": true, "if": true, "while": true, "for": true, "break": true,
	"continue": true, "cast": true, "concat": true, "repl": true, "index": true, "range": true,
	"parameter": true, "variable": true, "function": true, "eval": true, "assert": true, "null": true,
	"unevaluable": true, "_": true,
}

// Check a top-level name is a fresh identifier.
func (b *Binder) declarableName(s sexp.SExp) (string, []SyntaxError) {
	if !isIdentifier(s) {
		return "", b.translator.SyntaxErrors(s, "invalid name")
	}
	//
	name := s.AsSymbol().Value
	//
	if _, ok := b.globals[name]; ok {
		return "", b.translator.SyntaxErrors(s, fmt.Sprintf("%s already declared", name))
	} else if _, ok := b.functions[name]; ok {
		return "", b.translator.SyntaxErrors(s, fmt.Sprintf("%s already declared", name))
	}
	//
	return name, nil
}

// Resolve an identifier used as an expression.  Within a function, only its
// locals, its own name (i.e. its return value) and parameters are visible.
func (b *Binder) identifierRule(name string) (ast.Expression, bool, error) {
	if !isIdentifierString(name) {
		return nil, false, nil
	}
	//
	if b.subroutine != nil {
		if scope, ok := b.scopes.Find(func(m map[string]*ast.Variable) bool { return m[name] != nil }); ok {
			return ast.NewVariableRef(scope[name]), true, nil
		} else if name == b.subroutine.Name() {
			if _, ok := b.subroutine.Type().(*ast.VoidType); ok {
				return nil, true, fmt.Errorf("void function %s has no result", name)
			}
			//
			return ast.NewVariableRef(b.subroutine.ReturnVar), true, nil
		}
	}
	//
	switch symbol := b.globals[name].(type) {
	case *ast.Parameter:
		return ast.NewParameterRef(symbol), true, nil
	case *ast.Variable:
		if b.subroutine != nil {
			return nil, true, fmt.Errorf("variable %s not visible within function %s", name, b.subroutine.Name())
		}
		//
		return ast.NewVariableRef(symbol), true, nil
	}
	//
	if _, ok := b.functions[name]; ok {
		return nil, true, fmt.Errorf("function %s used as a value", name)
	}
	//
	return nil, true, fmt.Errorf("unknown identifier %s", name)
}

func isIdentifier(s sexp.SExp) bool {
	return s.AsSymbol() != nil && isIdentifierString(s.AsSymbol().Value)
}

func isIdentifierString(name string) bool {
	if name == "" || keywords[name] {
		return false
	}
	//
	for i, c := range name {
		if !unicode.IsLetter(c) && c != '_' && (i == 0 || !unicode.IsDigit(c)) {
			return false
		}
	}
	//
	return true
}

// Check whether a symbol looks like a number (as opposed to an identifier).
func isNumeric(symbol string) bool {
	switch {
	case symbol == "":
		return false
	case symbol[0] == '-' && len(symbol) > 1:
		return unicode.IsDigit(rune(symbol[1])) || symbol[1] == '\''
	default:
		return unicode.IsDigit(rune(symbol[0])) || symbol[0] == '\''
	}
}
