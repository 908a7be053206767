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

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/util/source/sexp"
)

// Bind the name, type and optional initialiser found at positions 1, 2 and 3
// of a declaration, such as "(var NAME TYPE [EXPR])".  The initialiser is bound
// before the variable is in scope.
func (b *Binder) bindDeclaration(list *sexp.List) (*ast.VariableDeclaration, []SyntaxError) {
	var (
		errors []SyntaxError
		init   ast.Expression
	)
	//
	if !isIdentifier(list.Get(1)) {
		errors = b.translator.SyntaxErrors(list.Get(1), "invalid name")
	}
	//
	typ, err := b.parseType(list.Get(2))
	//
	if err != nil {
		errors = append(errors, *err)
	}
	//
	if list.Len() == 4 {
		var errs []SyntaxError
		init, errs = b.translator.Translate(list.Get(3))
		errors = append(errors, errs...)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	} else if init != nil {
		init = fit(init, typ)
	}
	//
	symbol := ast.NewVariable(list.Get(1).AsSymbol().Value, typ)
	//
	return &ast.VariableDeclaration{Symbol: symbol, Initializer: init}, nil
}

// Bind a statement within the body of the function currently being bound.
func (b *Binder) bindStatement(term sexp.SExp) (ast.Statement, []SyntaxError) {
	var list = term.AsList()
	//
	if list == nil {
		return b.bindExpressionStatement(term)
	}
	//
	switch list.Head() {
	case "begin":
		return b.bindBlock(list)
	case "var":
		return b.bindLocal(list)
	case "return":
		return b.bindReturn(list)
	case "if":
		return b.bindIf(list)
	case "while":
		return b.bindWhile(list)
	case "for":
		return b.bindFor(list)
	case "break":
		if list.Len() != 1 || b.loops == 0 {
			return nil, b.translator.SyntaxErrors(list, "break outside of loop")
		}
		//
		return &ast.Break{}, nil
	case "continue":
		if list.Len() != 1 || b.loops == 0 {
			return nil, b.translator.SyntaxErrors(list, "continue outside of loop")
		}
		//
		return &ast.Continue{}, nil
	}
	//
	return b.bindExpressionStatement(term)
}

// (begin STMT ...)
func (b *Binder) bindBlock(list *sexp.List) (ast.Statement, []SyntaxError) {
	var (
		stmts  = make([]ast.Statement, list.Len()-1)
		errors []SyntaxError
	)
	//
	b.scopes.Push(make(map[string]*ast.Variable))
	//
	for i, s := range list.Elements[1:] {
		var errs []SyntaxError
		stmts[i], errs = b.bindStatement(s)
		errors = append(errors, errs...)
	}
	//
	b.scopes.Pop()
	//
	return &ast.Block{Statements: stmts}, errors
}

// (var NAME TYPE [EXPR])
func (b *Binder) bindLocal(list *sexp.List) (ast.Statement, []SyntaxError) {
	if list.Len() != 3 && list.Len() != 4 {
		return nil, b.translator.SyntaxErrors(list, "expected (var name type [value])")
	}
	//
	decl, errors := b.bindDeclaration(list)
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	var (
		scope = *b.scopes.Top()
		name  = decl.Symbol.Name()
	)
	//
	if _, ok := scope[name]; ok {
		return nil, b.translator.SyntaxErrors(list.Get(1), fmt.Sprintf("%s already declared", name))
	}
	//
	scope[name] = decl.Symbol
	//
	return decl, nil
}

// (return [EXPR])
func (b *Binder) bindReturn(list *sexp.List) (ast.Statement, []SyntaxError) {
	var (
		ret     = b.subroutine.Type()
		_, void = ret.(*ast.VoidType)
	)
	//
	switch {
	case list.Len() == 1:
		return &ast.Return{}, nil
	case list.Len() != 2:
		return nil, b.translator.SyntaxErrors(list, "expected (return [value])")
	case void:
		return nil, b.translator.SyntaxErrors(list, "void function cannot return a value")
	}
	//
	value, errors := b.translator.Translate(list.Get(1))
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return &ast.Return{Value: fit(value, ret)}, nil
}

// (if COND THEN [ELSE])
func (b *Binder) bindIf(list *sexp.List) (ast.Statement, []SyntaxError) {
	if list.Len() != 3 && list.Len() != 4 {
		return nil, b.translator.SyntaxErrors(list, "expected (if cond then [else])")
	}
	//
	var (
		stmt   = &ast.Conditional{}
		errors []SyntaxError
		errs   []SyntaxError
	)
	//
	stmt.Condition, errors = b.bindCondition(list.Get(1))
	stmt.Then, errs = b.bindStatement(list.Get(2))
	errors = append(errors, errs...)
	//
	if list.Len() == 4 {
		stmt.Else, errs = b.bindStatement(list.Get(3))
		errors = append(errors, errs...)
	}
	//
	return stmt, errors
}

// (while COND BODY)
func (b *Binder) bindWhile(list *sexp.List) (ast.Statement, []SyntaxError) {
	if list.Len() != 3 {
		return nil, b.translator.SyntaxErrors(list, "expected (while cond body)")
	}
	//
	var stmt = &ast.While{}
	//
	cond, errors := b.bindCondition(list.Get(1))
	stmt.Condition = cond
	//
	b.loops++
	body, errs := b.bindStatement(list.Get(2))
	stmt.Body = body
	b.loops--
	//
	return stmt, append(errors, errs...)
}

// (for INIT COND STEP BODY), where "_" marks an absent initialiser, condition
// or step.  Variables declared by the initialiser are scoped to the loop.
func (b *Binder) bindFor(list *sexp.List) (ast.Statement, []SyntaxError) {
	if list.Len() != 5 {
		return nil, b.translator.SyntaxErrors(list, "expected (for init cond step body)")
	}
	//
	var (
		stmt   = &ast.For{}
		errors []SyntaxError
		errs   []SyntaxError
	)
	//
	b.scopes.Push(make(map[string]*ast.Variable))
	//
	if !isAbsent(list.Get(1)) {
		stmt.Init, errs = b.bindStatement(list.Get(1))
		errors = append(errors, errs...)
	}
	//
	if !isAbsent(list.Get(2)) {
		stmt.Condition, errs = b.bindCondition(list.Get(2))
		errors = append(errors, errs...)
	}
	//
	if !isAbsent(list.Get(3)) {
		stmt.Step, errs = b.translator.Translate(list.Get(3))
		errors = append(errors, errs...)
	}
	//
	b.loops++
	stmt.Body, errs = b.bindStatement(list.Get(4))
	errors = append(errors, errs...)
	b.loops--
	//
	b.scopes.Pop()
	//
	return stmt, errors
}

func (b *Binder) bindCondition(term sexp.SExp) (ast.Expression, []SyntaxError) {
	cond, errors := b.translator.Translate(term)
	//
	if len(errors) == 0 && ast.AsIntegral(cond.Type()) == nil {
		return nil, b.translator.SyntaxErrors(term, "integral condition expected")
	}
	//
	return cond, errors
}

func (b *Binder) bindExpressionStatement(term sexp.SExp) (ast.Statement, []SyntaxError) {
	expr, errors := b.translator.Translate(term)
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return &ast.ExpressionStatement{Expr: expr}, nil
}

func isAbsent(term sexp.SExp) bool {
	return term.AsSymbol() != nil && term.AsSymbol().Value == "_"
}
