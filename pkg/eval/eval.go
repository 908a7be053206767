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

// Returned for anything which is not constant.
var unevaluable constant.Value

// Evaluate an expression within a given context, producing either its value or
// an unevaluable value when the expression is not constant (or a resource
// limit was exceeded, see Context.Err).  Expressions which violate the
// contract of a well-typed tree (for example, an assignment whose target is
// not a variable) cause a panic.
func Evaluate(expr ast.Expression, ctx *Context) constant.Value {
	if cached := expr.Constant(); cached != nil {
		return *cached
	} else if !ctx.enter() {
		return unevaluable
	}
	//
	defer ctx.leave()
	//
	value := evaluate(expr, ctx)
	//
	if value.IsInteger() && !ctx.checkWidth(uint64(value.Integer().Width())) {
		return unevaluable
	} else if value.IsValid() && expr.Foldable() {
		expr.SetConstant(value)
	}
	//
	return value
}

// EvaluateBool evaluates an expression and coerces its value to a truth value.
// Any unknown digit gives false, as does any value which is not an integer.
func EvaluateBool(expr ast.Expression, ctx *Context) bool {
	value := Evaluate(expr, ctx)
	//
	return value.IsInteger() && value.Integer().Truth() == logic.One
}

func evaluate(expr ast.Expression, ctx *Context) constant.Value {
	switch e := expr.(type) {
	case *ast.Invalid:
		return unevaluable
	case *ast.IntegerLiteral:
		return evalIntegerLiteral(e)
	case *ast.RealLiteral:
		return constant.FromReal(e.Value)
	case *ast.UnbasedUnsizedLiteral:
		return evalUnbasedUnsizedLiteral(e)
	case *ast.VariableRef:
		return evalVariableRef(e, ctx)
	case *ast.ParameterRef:
		return e.Symbol.Value()
	case *ast.UnaryOp:
		return evalUnaryOp(e, ctx)
	case *ast.BinaryOp:
		return evalBinaryOp(e, ctx)
	case *ast.ConditionalOp:
		return evalConditionalOp(e, ctx)
	case *ast.ElementSelect:
		return evalElementSelect(e, ctx)
	case *ast.RangeSelect:
		return evalRangeSelect(e, ctx)
	case *ast.Concatenation:
		return evalConcatenation(e, ctx)
	case *ast.Call:
		return evalCall(e, ctx)
	case *ast.Conversion:
		return evalConversion(e, ctx)
	}
	//
	panic(fmt.Sprintf("unknown expression encountered (%T)", expr))
}

// ============================================================================
// Literals & References
// ============================================================================

// Literals are brought to the width of their type, by extension or truncation.
func evalIntegerLiteral(e *ast.IntegerLiteral) constant.Value {
	t := integralType(e)
	//
	return constant.FromVector(e.Value.Resize(t.Width(), t.Signed))
}

func evalUnbasedUnsizedLiteral(e *ast.UnbasedUnsizedLiteral) constant.Value {
	t := integralType(e)
	//
	return constant.FromVector(logic.Fill(t.Width(), t.Signed, e.Digit))
}

// A variable absent from the innermost frame is not constant.
func evalVariableRef(e *ast.VariableRef, ctx *Context) constant.Value {
	if value, ok := ctx.Local(e.Symbol); ok {
		return value
	}
	//
	return unevaluable
}

// ============================================================================
// Conversions
// ============================================================================

func evalConversion(e *ast.Conversion, ctx *Context) constant.Value {
	value := Evaluate(e.Operand, ctx)
	//
	switch e.Method {
	case ast.IntToFloat:
		if !value.IsInteger() {
			return unevaluable
		}
		//
		return coerce(constant.FromReal(value.Integer().Float64()), e.Type())
	case ast.IntExtension, ast.IntTruncation:
		if !value.IsInteger() {
			return unevaluable
		}
		//
		return coerce(value, e.Type())
	case ast.FloatExtension:
		if !value.IsReal() {
			return unevaluable
		}
		//
		return coerce(value, e.Type())
	case ast.FloatToInt:
		if !value.IsReal() {
			return unevaluable
		}
		//
		return coerce(value, e.Type())
	}
	//
	panic(fmt.Sprintf("unknown conversion %s", e.Method))
}

// Coerce a value into a given type, as happens when it is assigned into a
// variable of that type.  Integers are resized to the width and signedness of
// the type (extending according to their own signedness), with unknown digits
// becoming zero for two-state types.  Reals and
// integers are converted into one another as necessary.  Anything else (for
// example, null) is returned as is.
func coerce(value constant.Value, typ ast.Type) constant.Value {
	switch t := typ.(type) {
	case *ast.IntegralType:
		var v logic.Vector
		//
		switch {
		case value.IsInteger():
			// Extension follows the signedness of the value itself
			i := value.Integer()
			v = i.Resize(max(t.Width(), i.Width()), i.IsSigned()).Resize(t.Width(), t.Signed)
		case value.IsReal():
			v = logic.FromFloat64(t.Width(), t.Signed, value.Real())
		default:
			return value
		}
		//
		if !t.FourState {
			v = v.TwoState()
		}
		//
		return constant.FromVector(v)
	case *ast.RealType:
		var f float64
		//
		switch {
		case value.IsReal():
			f = value.Real()
		case value.IsInteger():
			f = value.Integer().Float64()
		default:
			return value
		}
		//
		if t.Bits == 32 {
			f = float64(float32(f))
		}
		//
		return constant.FromReal(f)
	}
	//
	return value
}

// Every expression producing a bit-vector must have an integral type.
func integralType(e ast.Expression) *ast.IntegralType {
	if t := ast.AsIntegral(e.Type()); t != nil {
		return t
	}
	//
	panic(fmt.Sprintf("expected integral type, found %s", e.Type()))
}
