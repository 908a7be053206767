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
package eval

import (
	"fmt"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/logic"
)

// Outcome of executing a statement, which determines where control goes next.
type outcome uint8

const (
	// Continue with the following statement.
	next outcome = iota
	// Leave the enclosing subroutine.
	returned
	// Leave the innermost loop.
	breaking
	// Begin the next iteration of the innermost loop.
	continuing
	// Stop executing, since something was not constant.
	aborted
)

// Execute a statement within the innermost frame of a given context, returning
// false if it could not be executed in full (e.g. because some expression was
// not constant).  This is how variables of the root frame are declared.
// Control should not escape the statement, hence a break, continue or return
// at this level causes a panic.
func Execute(stmt ast.Statement, ctx *Context) bool {
	switch execute(stmt, ctx) {
	case next:
		return true
	case aborted:
		return false
	default:
		panic("control escaped statement")
	}
}

// Execute a statement within the innermost frame.  Each statement executed
// consumes one step from the context's budget, and any expression which is
// unevaluable aborts execution.
func execute(stmt ast.Statement, ctx *Context) outcome {
	if !ctx.step() {
		return aborted
	}
	//
	switch s := stmt.(type) {
	case *ast.Block:
		for _, ith := range s.Statements {
			if r := execute(ith, ctx); r != next {
				return r
			}
		}
		//
		return next
	case *ast.ExpressionStatement:
		return check(Evaluate(s.Expr, ctx))
	case *ast.VariableDeclaration:
		return executeDeclaration(s, ctx)
	case *ast.Return:
		return executeReturn(s, ctx)
	case *ast.Conditional:
		return executeConditional(s, ctx)
	case *ast.While:
		return executeLoop(nil, s.Condition, nil, s.Body, ctx)
	case *ast.For:
		return executeLoop(s.Init, s.Condition, s.Step, s.Body, ctx)
	case *ast.Break:
		return breaking
	case *ast.Continue:
		return continuing
	}
	//
	panic(fmt.Sprintf("unknown statement encountered (%T)", stmt))
}

// Locals without an initialiser start out as X (four-state) or zero
// (two-state).
func executeDeclaration(s *ast.VariableDeclaration, ctx *Context) outcome {
	var value constant.Value
	//
	if s.Initializer != nil {
		if value = Evaluate(s.Initializer, ctx); !value.IsValid() {
			return aborted
		}
	} else if t := ast.AsIntegral(s.Symbol.Type()); t != nil && t.FourState {
		value = constant.FromVector(logic.Fill(t.Width(), t.Signed, logic.X))
	} else if t != nil {
		value = constant.FromVector(logic.Fill(t.Width(), t.Signed, logic.Zero))
	} else {
		value = constant.FromReal(0)
	}
	//
	ctx.Declare(s.Symbol, coerce(value, s.Symbol.Type()))
	//
	return next
}

func executeReturn(s *ast.Return, ctx *Context) outcome {
	var subroutine = ctx.Subroutine()
	//
	if subroutine == nil {
		panic("return outside of subroutine")
	} else if s.Value == nil {
		return returned
	}
	//
	value := Evaluate(s.Value, ctx)
	//
	if !value.IsValid() {
		return aborted
	}
	//
	slot, _ := ctx.Lookup(subroutine.ReturnVar)
	ctx.Store(slot, coerce(value, subroutine.Type()))
	//
	return returned
}

// An unknown condition selects the else branch.
func executeConditional(s *ast.Conditional, ctx *Context) outcome {
	cond := Evaluate(s.Condition, ctx)
	//
	if !cond.IsInteger() {
		return aborted
	} else if cond.Integer().Truth() == logic.One {
		return execute(s.Then, ctx)
	} else if s.Else != nil {
		return execute(s.Else, ctx)
	}
	//
	return next
}

// Loops run until their condition is not true.  An absent condition is always
// true, and every iteration consumes a step regardless of the body.
func executeLoop(init ast.Statement, cond ast.Expression, step ast.Expression, body ast.Statement,
	ctx *Context) outcome {
	if init != nil {
		if r := execute(init, ctx); r != next {
			return r
		}
	}
	//
	for {
		if !ctx.step() {
			return aborted
		} else if cond != nil {
			c := Evaluate(cond, ctx)
			//
			if !c.IsInteger() {
				return aborted
			} else if c.Integer().Truth() != logic.One {
				return next
			}
		}
		//
		switch execute(body, ctx) {
		case returned:
			return returned
		case aborted:
			return aborted
		case breaking:
			return next
		}
		//
		if step != nil && check(Evaluate(step, ctx)) == aborted {
			return aborted
		}
	}
}

func check(value constant.Value) outcome {
	if value.IsValid() {
		return next
	}
	//
	return aborted
}
