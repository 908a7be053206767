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
	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/logic"
)

// Convert an operand to the common type of its context.  In such case, a
// signed operand of an unsigned context is first reinterpreted as unsigned,
// hence is zero extended.
func convert(expr ast.Expression, to ast.Type) ast.Expression {
	if e, ok := retype(expr, to); ok {
		return e
	} else if from := ast.AsIntegral(expr.Type()); from != nil && from.Signed {
		if t := ast.AsIntegral(to); t != nil && !t.Signed {
			expr = ast.NewConversion(ast.IntExtension, expr, from.WithSign(false))
		}
	}
	//
	return cast(expr, to)
}

// Fit a value to the type of the variable (or argument) it is assigned into.
func fit(expr ast.Expression, to ast.Type) ast.Expression {
	if e, ok := retype(expr, to); ok {
		return e
	}
	//
	return cast(expr, to)
}

// Cast an expression to a given type using (at most) one conversion.
func cast(expr ast.Expression, to ast.Type) ast.Expression {
	var from = expr.Type()
	//
	if sameType(from, to) {
		return expr
	}
	//
	switch {
	case ast.AsIntegral(from) != nil && ast.IsReal(to):
		return ast.NewConversion(ast.IntToFloat, expr, to)
	case ast.IsReal(from) && ast.AsIntegral(to) != nil:
		return ast.NewConversion(ast.FloatToInt, expr, to)
	case ast.IsReal(from) && ast.IsReal(to):
		return ast.NewConversion(ast.FloatExtension, expr, to)
	case ast.AsIntegral(from) != nil && ast.AsIntegral(to) != nil:
		return resize(expr, ast.AsIntegral(from), ast.AsIntegral(to))
	}
	//
	return expr
}

// Narrowing truncates, whilst anything else extends (possibly just changing
// signedness).
func resize(expr ast.Expression, from *ast.IntegralType, to *ast.IntegralType) ast.Expression {
	if to.Width() < from.Width() {
		return ast.NewConversion(ast.IntTruncation, expr, to)
	}
	//
	return ast.NewConversion(ast.IntExtension, expr, to)
}

// Unbased unsized literals fill whatever integral type they are placed into.
// Unknown digits cannot be represented in a two-state type, and become zero.
func retype(expr ast.Expression, to ast.Type) (ast.Expression, bool) {
	var (
		lit, ok = expr.(*ast.UnbasedUnsizedLiteral)
		t       = ast.AsIntegral(to)
	)
	//
	if !ok || t == nil {
		return nil, false
	} else if lit.Digit.IsUnknown() && !t.FourState {
		return ast.NewUnbasedUnsizedLiteral(logic.Zero, t), true
	}
	//
	return ast.NewUnbasedUnsizedLiteral(lit.Digit, t), true
}

func sameType(lhs ast.Type, rhs ast.Type) bool {
	switch l := lhs.(type) {
	case *ast.IntegralType:
		r, ok := rhs.(*ast.IntegralType)
		//
		return ok && l.Width() == r.Width() && l.Signed == r.Signed && l.FourState == r.FourState
	case *ast.RealType:
		r, ok := rhs.(*ast.RealType)
		//
		return ok && l.Bits == r.Bits
	case *ast.VoidType:
		_, ok := rhs.(*ast.VoidType)
		//
		return ok
	}
	//
	return false
}
