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

// ============================================================================
// Unary
// ============================================================================

func evalUnaryOp(e *ast.UnaryOp, ctx *Context) constant.Value {
	if e.Op.IsAssignment() {
		return evalIncrement(e, ctx)
	}
	//
	operand := Evaluate(e.Operand, ctx)
	//
	if operand.IsReal() {
		return evalRealUnaryOp(e.Op, operand.Real())
	} else if !operand.IsInteger() {
		return unevaluable
	}
	//
	var v = operand.Integer()
	//
	switch e.Op {
	case ast.Plus:
		return operand
	case ast.Minus:
		return constant.FromVector(v.Neg())
	case ast.BitwiseNot:
		return constant.FromVector(v.Not())
	case ast.ReduceAnd:
		return fromBit(v.ReduceAnd())
	case ast.ReduceOr:
		return fromBit(v.ReduceOr())
	case ast.ReduceXor:
		return fromBit(v.ReduceXor())
	case ast.ReduceNand:
		return fromBit(v.ReduceAnd().Not())
	case ast.ReduceNor:
		return fromBit(v.ReduceOr().Not())
	case ast.ReduceXnor:
		return fromBit(v.ReduceXor().Not())
	case ast.LogicalNot:
		return fromBit(v.Truth().Not())
	}
	//
	panic(fmt.Sprintf("unknown unary operator %s", e.Op))
}

// Only sign operators apply to reals.
func evalRealUnaryOp(op ast.UnaryOperator, f float64) constant.Value {
	switch op {
	case ast.Plus:
		return constant.FromReal(f)
	case ast.Minus:
		return constant.FromReal(-f)
	}
	//
	return unevaluable
}

// Increment and decrement write the updated value back into the operand, and
// produce either the updated value (prefix) or the original (postfix).
func evalIncrement(e *ast.UnaryOp, ctx *Context) constant.Value {
	var (
		slot    = assignable(e.Operand, ctx)
		operand = ctx.Load(slot)
	)
	//
	if !operand.IsInteger() {
		return unevaluable
	}
	//
	var (
		v       = operand.Integer()
		one     = logic.FromInt64(v.Width(), v.IsSigned(), 1)
		updated logic.Vector
	)
	//
	switch e.Op {
	case ast.PreIncrement, ast.PostIncrement:
		updated = v.Add(one)
	default:
		updated = v.Sub(one)
	}
	//
	written := coerce(constant.FromVector(updated), e.Operand.Type())
	ctx.Store(slot, written)
	//
	if e.Op == ast.PostIncrement || e.Op == ast.PostDecrement {
		return operand
	}
	//
	return written
}

// ============================================================================
// Binary
// ============================================================================

func evalBinaryOp(e *ast.BinaryOp, ctx *Context) constant.Value {
	if e.Op.IsAssignment() {
		return evalAssignment(e, ctx)
	}
	//
	var (
		lhs = Evaluate(e.Lhs, ctx)
		rhs = Evaluate(e.Rhs, ctx)
	)
	// Reals are not supported by binary operators
	if !lhs.IsInteger() || !rhs.IsInteger() {
		return unevaluable
	} else if e.Op == ast.Replication {
		return replicate(lhs.Integer(), rhs.Integer(), ctx)
	}
	//
	return applyBinary(e.Op, lhs.Integer(), rhs.Integer())
}

// Apply a (non-assignment) binary operator over two bit-vectors.
func applyBinary(op ast.BinaryOperator, l logic.Vector, r logic.Vector) constant.Value {
	switch op {
	case ast.Add:
		return constant.FromVector(l.Add(r))
	case ast.Subtract:
		return constant.FromVector(l.Sub(r))
	case ast.Multiply:
		return constant.FromVector(l.Mul(r))
	case ast.Divide:
		return constant.FromVector(l.Div(r))
	case ast.Mod:
		return constant.FromVector(l.Mod(r))
	case ast.BinaryAnd:
		return constant.FromVector(l.And(r))
	case ast.BinaryOr:
		return constant.FromVector(l.Or(r))
	case ast.BinaryXor:
		return constant.FromVector(l.Xor(r))
	case ast.BinaryXnor:
		return constant.FromVector(l.Xnor(r))
	case ast.Equality:
		return fromBit(l.Equal(r))
	case ast.Inequality:
		return fromBit(l.NotEqual(r))
	case ast.CaseEquality:
		return fromBool(l.CaseEqual(r))
	case ast.CaseInequality:
		return fromBool(!l.CaseEqual(r))
	case ast.WildcardEquality:
		return fromBool(l.WildcardEqual(r))
	case ast.WildcardInequality:
		return fromBool(!l.WildcardEqual(r))
	case ast.GreaterThanEqual:
		return fromBit(l.GreaterEqual(r))
	case ast.GreaterThan:
		return fromBit(l.Greater(r))
	case ast.LessThanEqual:
		return fromBit(l.LessEqual(r))
	case ast.LessThan:
		return fromBit(l.Less(r))
	case ast.LogicalAnd:
		return fromBit(l.LogicalAnd(r))
	case ast.LogicalOr:
		return fromBit(l.LogicalOr(r))
	case ast.LogicalImplication:
		return fromBit(l.LogicalImplication(r))
	case ast.LogicalEquivalence:
		return fromBit(l.LogicalEquivalence(r))
	case ast.LogicalShiftLeft, ast.ArithmeticShiftLeft:
		return constant.FromVector(l.Shl(r))
	case ast.LogicalShiftRight:
		return constant.FromVector(l.Lshr(r))
	case ast.ArithmeticShiftRight:
		return constant.FromVector(l.Ashr(r))
	case ast.Power:
		return constant.FromVector(l.Pow(r))
	}
	//
	panic(fmt.Sprintf("unknown binary operator %s", op))
}

// Replicate the right operand by a count given by the left.  The count must be
// known and non-negative.  A zero count yields no digits, so is unevaluable
// outside of a concatenation (which skips it).
func replicate(count logic.Vector, v logic.Vector, ctx *Context) constant.Value {
	n, ok := count.Int64()
	//
	if !ok || n <= 0 {
		return unevaluable
	} else if !ctx.checkWidth(uint64(n) * uint64(v.Width())) {
		return unevaluable
	}
	//
	return constant.FromVector(v.Replicate(uint(n)))
}

// ============================================================================
// Assignment
// ============================================================================

// Assignments write into the slot of the target variable, and produce the
// value written.  Plain assignment never reads the target, whilst compound
// assignments apply their underlying operator to the current value first.
func evalAssignment(e *ast.BinaryOp, ctx *Context) constant.Value {
	var (
		slot = assignable(e.Lhs, ctx)
		rhs  = Evaluate(e.Rhs, ctx)
	)
	//
	if !rhs.IsValid() {
		return unevaluable
	} else if e.Op != ast.Assignment {
		lhs := ctx.Load(slot)
		//
		if !lhs.IsInteger() || !rhs.IsInteger() {
			return unevaluable
		}
		//
		rhs = applyBinary(e.Op.Underlying(), lhs.Integer(), rhs.Integer())
	}
	//
	written := coerce(rhs, e.Lhs.Type())
	ctx.Store(slot, written)
	//
	return written
}

// Resolve the slot targeted by an assignment.  The target must be a reference
// to a variable declared in the innermost frame.
func assignable(target ast.Expression, ctx *Context) Slot {
	if ref, ok := target.(*ast.VariableRef); ok {
		if slot, ok := ctx.Lookup(ref.Symbol); ok {
			return slot
		}
		//
		panic(fmt.Sprintf("assignment to undeclared variable %s", ref.Symbol.Name()))
	}
	//
	panic(fmt.Sprintf("invalid assignment target (%T)", target))
}

// ============================================================================
// Conditional
// ============================================================================

// A known condition selects, and evaluates, exactly one branch.  An unknown
// condition evaluates both, blending them bit by bit.
func evalConditionalOp(e *ast.ConditionalOp, ctx *Context) constant.Value {
	cond := Evaluate(e.Condition, ctx)
	//
	if !cond.IsInteger() {
		return unevaluable
	}
	//
	switch cond.Integer().Truth() {
	case logic.One:
		return Evaluate(e.Then, ctx)
	case logic.Zero:
		return Evaluate(e.Else, ctx)
	}
	//
	var (
		lhs = Evaluate(e.Then, ctx)
		rhs = Evaluate(e.Else, ctx)
	)
	//
	if !lhs.IsInteger() || !rhs.IsInteger() {
		return unevaluable
	}
	//
	return constant.FromVector(logic.Blend(lhs.Integer(), rhs.Integer()))
}

// ============================================================================
// Helpers
// ============================================================================

func fromBit(b logic.Bit) constant.Value {
	return constant.FromVector(logic.FromBit(b))
}

func fromBool(b bool) constant.Value {
	return constant.FromVector(logic.FromBool(b))
}
