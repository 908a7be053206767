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
package ast

import (
	"testing"

	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/logic"
	"github.com/consensys/go-svfold/pkg/util/assert"
)

func Test_Operator_00(t *testing.T) {
	for _, token := range []string{"+", "-", "~&", "!", "post--"} {
		op, ok := LookupUnaryOperator(token)
		//
		assert.True(t, ok)
		assert.Equal(t, token, op.String())
	}
	//
	op, ok := LookupUnaryOperator("^~")
	//
	assert.True(t, ok)
	assert.Equal(t, ReduceXnor, op)
}

func Test_Operator_01(t *testing.T) {
	for _, token := range []string{"+", "===", "==?", "<->", ">>>", "**", ">>>="} {
		op, ok := LookupBinaryOperator(token)
		//
		assert.True(t, ok)
		assert.Equal(t, token, op.String())
	}
	//
	_, ok := LookupBinaryOperator("repl")
	assert.False(t, ok)
}

func Test_Operator_02(t *testing.T) {
	assert.Equal(t, Add, AddAssignment.Underlying())
	assert.Equal(t, ArithmeticShiftRight, ArithmeticRightShiftAssignment.Underlying())
	assert.Equal(t, Assignment, Assignment.Underlying())
	assert.True(t, XorAssignment.IsAssignment())
	assert.False(t, Power.IsAssignment())
	assert.True(t, WildcardInequality.IsComparison())
	assert.True(t, Power.IsSelfDetermined())
	assert.True(t, PostIncrement.IsAssignment())
	assert.True(t, LogicalNot.IsReduction())
	assert.False(t, BitwiseNot.IsReduction())
}

func Test_Foldable_00(t *testing.T) {
	var (
		lit = NewIntegerLiteral(logic.FromInt64(32, true, 1), Int())
		par = NewParameterRef(NewParameter("P", Int(), constant.FromVector(logic.FromInt64(32, true, 2))))
		v   = NewVariableRef(NewVariable("v", Int()))
	)
	//
	assert.True(t, NewBinaryOp(Add, lit, par, Int()).Foldable())
	assert.False(t, NewBinaryOp(Add, lit, v, Int()).Foldable())
	assert.False(t, NewBinaryOp(Assignment, lit, par, Int()).Foldable())
	assert.False(t, NewUnaryOp(PreIncrement, lit, Int()).Foldable())
	assert.Panics(t, func() { v.SetConstant(constant.NullValue()) })
}

func Test_Foldable_01(t *testing.T) {
	var (
		v    = NewVariableRef(NewVariable("v", Logic(7, 0)))
		bits = NewSystemSubroutine(BitsOf)
		cl   = NewSystemSubroutine(Clog2)
		fn   = NewSubroutine("f", Int(), nil)
	)
	//
	assert.True(t, NewCall(bits, []Expression{v}, Int()).Foldable())
	assert.False(t, NewCall(cl, []Expression{v}, Int()).Foldable())
	assert.False(t, NewCall(fn, nil, Int()).Foldable())
}

func Test_Type_00(t *testing.T) {
	l := Logic(0, 7)
	//
	assert.Equal(t, 8, l.Width())
	assert.False(t, l.Range.IsLittleEndian())
	assert.Equal(t, "logic [0:7]", l.String())
	assert.Equal(t, "bit signed [31:0]", Int().String())
}

func Test_Type_01(t *testing.T) {
	c := AsIntegral(CommonType(Logic(7, 0), Int()))
	//
	assert.Equal(t, 32, c.Width())
	assert.False(t, c.Signed)
	assert.True(t, c.FourState)
	assert.True(t, IsReal(CommonType(Int(), Real())))
	assert.True(t, CommonType(Int(), Void()) == nil)
}

func Test_System_00(t *testing.T) {
	f, ok := LookupSystemFunction("$clog2")
	//
	assert.True(t, ok)
	assert.Equal(t, Clog2, f)
	assert.Equal(t, "$clog2", f.String())
	assert.True(t, Left.IsIntrospection())
	assert.False(t, OneHot.IsIntrospection())
}
