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
	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/logic"
)

// ExpressionKind tags each alternative of Expression.
type ExpressionKind uint8

const (
	InvalidKind ExpressionKind = iota
	IntegerLiteralKind
	RealLiteralKind
	UnbasedUnsizedLiteralKind
	VariableRefKind
	ParameterRefKind
	UnaryOpKind
	BinaryOpKind
	ConditionalOpKind
	ElementSelectKind
	RangeSelectKind
	ConcatenationKind
	CallKind
	ConversionKind
)

// Expression represents a fully typed and bound expression.  The set of
// expressions is closed: every implementation lives in this package.
type Expression interface {
	// Kind returns the tag identifying which alternative this is.
	Kind() ExpressionKind
	// Type returns the resolved type of this expression.
	Type() Type
	// Constant returns the cached value of this expression, or nil if none
	// has been recorded.
	Constant() *constant.Value
	// SetConstant caches the value of this expression.  This is only
	// permitted for expressions which are Foldable, and is not safe for
	// concurrent use.
	SetConstant(constant.Value)
	// Foldable checks whether the value of this expression is independent of
	// any evaluation context.  That is, when it contains no variable
	// references, calls to user-defined subroutines or assignments.
	Foldable() bool
}

// Common state shared by all expressions.
type expression struct {
	typ      Type
	foldable bool
	cached   *constant.Value
}

func (e *expression) Type() Type {
	return e.typ
}

func (e *expression) Constant() *constant.Value {
	return e.cached
}

func (e *expression) SetConstant(value constant.Value) {
	if !e.foldable {
		panic("cannot cache value of non-foldable expression")
	}
	//
	e.cached = &value
}

func (e *expression) Foldable() bool {
	return e.foldable
}

// ============================================================================
// Invalid
// ============================================================================

// Invalid represents an expression which failed to bind.  It never has a
// value.
type Invalid struct {
	expression
}

var _ Expression = (*Invalid)(nil)

// NewInvalid constructs an invalid expression.
func NewInvalid(typ Type) *Invalid {
	return &Invalid{expression{typ, false, nil}}
}

// Kind implementation for Expression interface.
func (e *Invalid) Kind() ExpressionKind { return InvalidKind }

// ============================================================================
// Literals
// ============================================================================

// IntegerLiteral is an integer literal, such as "8'hff".  The value is the
// literal as written, which may be narrower than the literal's type.
type IntegerLiteral struct {
	expression
	Value logic.Vector
}

var _ Expression = (*IntegerLiteral)(nil)

// NewIntegerLiteral constructs an integer literal of a given type.
func NewIntegerLiteral(value logic.Vector, typ Type) *IntegerLiteral {
	return &IntegerLiteral{expression{typ, true, nil}, value}
}

// Kind implementation for Expression interface.
func (e *IntegerLiteral) Kind() ExpressionKind { return IntegerLiteralKind }

// RealLiteral is a floating point literal, such as "1.5".
type RealLiteral struct {
	expression
	Value float64
}

var _ Expression = (*RealLiteral)(nil)

// NewRealLiteral constructs a real literal of a given type.
func NewRealLiteral(value float64, typ Type) *RealLiteral {
	return &RealLiteral{expression{typ, true, nil}, value}
}

// Kind implementation for Expression interface.
func (e *RealLiteral) Kind() ExpressionKind { return RealLiteralKind }

// UnbasedUnsizedLiteral is one of "'0", "'1", "'x" or "'z", which fills its
// type with the given digit.
type UnbasedUnsizedLiteral struct {
	expression
	Digit logic.Bit
}

var _ Expression = (*UnbasedUnsizedLiteral)(nil)

// NewUnbasedUnsizedLiteral constructs an unbased unsized literal.
func NewUnbasedUnsizedLiteral(digit logic.Bit, typ Type) *UnbasedUnsizedLiteral {
	return &UnbasedUnsizedLiteral{expression{typ, true, nil}, digit}
}

// Kind implementation for Expression interface.
func (e *UnbasedUnsizedLiteral) Kind() ExpressionKind { return UnbasedUnsizedLiteralKind }

// ============================================================================
// References
// ============================================================================

// VariableRef refers to a variable, whose value is found in the evaluation
// context.
type VariableRef struct {
	expression
	Symbol *Variable
}

var _ Expression = (*VariableRef)(nil)

// NewVariableRef constructs a reference to a given variable.
func NewVariableRef(symbol *Variable) *VariableRef {
	return &VariableRef{expression{symbol.Type(), false, nil}, symbol}
}

// Kind implementation for Expression interface.
func (e *VariableRef) Kind() ExpressionKind { return VariableRefKind }

// ParameterRef refers to a parameter, whose value is fixed.
type ParameterRef struct {
	expression
	Symbol *Parameter
}

var _ Expression = (*ParameterRef)(nil)

// NewParameterRef constructs a reference to a given parameter.
func NewParameterRef(symbol *Parameter) *ParameterRef {
	return &ParameterRef{expression{symbol.Type(), true, nil}, symbol}
}

// Kind implementation for Expression interface.
func (e *ParameterRef) Kind() ExpressionKind { return ParameterRefKind }

// ============================================================================
// Operators
// ============================================================================

// UnaryOp applies a unary operator.
type UnaryOp struct {
	expression
	Op      UnaryOperator
	Operand Expression
}

var _ Expression = (*UnaryOp)(nil)

// NewUnaryOp constructs a unary expression of a given type.
func NewUnaryOp(op UnaryOperator, operand Expression, typ Type) *UnaryOp {
	foldable := !op.IsAssignment() && operand.Foldable()
	//
	return &UnaryOp{expression{typ, foldable, nil}, op, operand}
}

// Kind implementation for Expression interface.
func (e *UnaryOp) Kind() ExpressionKind { return UnaryOpKind }

// BinaryOp applies a binary operator.  For replication, the left operand is
// the count.
type BinaryOp struct {
	expression
	Op  BinaryOperator
	Lhs Expression
	Rhs Expression
}

var _ Expression = (*BinaryOp)(nil)

// NewBinaryOp constructs a binary expression of a given type.
func NewBinaryOp(op BinaryOperator, lhs Expression, rhs Expression, typ Type) *BinaryOp {
	foldable := !op.IsAssignment() && lhs.Foldable() && rhs.Foldable()
	//
	return &BinaryOp{expression{typ, foldable, nil}, op, lhs, rhs}
}

// Kind implementation for Expression interface.
func (e *BinaryOp) Kind() ExpressionKind { return BinaryOpKind }

// ConditionalOp represents "c ? a : b".
type ConditionalOp struct {
	expression
	Condition Expression
	Then      Expression
	Else      Expression
}

var _ Expression = (*ConditionalOp)(nil)

// NewConditionalOp constructs a conditional expression of a given type.
func NewConditionalOp(cond Expression, then Expression, otherwise Expression, typ Type) *ConditionalOp {
	foldable := cond.Foldable() && then.Foldable() && otherwise.Foldable()
	//
	return &ConditionalOp{expression{typ, foldable, nil}, cond, then, otherwise}
}

// Kind implementation for Expression interface.
func (e *ConditionalOp) Kind() ExpressionKind { return ConditionalOpKind }

// ============================================================================
// Selects
// ============================================================================

// ElementSelect represents "v[i]", where the index is given in the declared
// range of v.
type ElementSelect struct {
	expression
	Value    Expression
	Selector Expression
}

var _ Expression = (*ElementSelect)(nil)

// NewElementSelect constructs an element select of a given type.
func NewElementSelect(value Expression, selector Expression, typ Type) *ElementSelect {
	foldable := value.Foldable() && selector.Foldable()
	//
	return &ElementSelect{expression{typ, foldable, nil}, value, selector}
}

// Kind implementation for Expression interface.
func (e *ElementSelect) Kind() ExpressionKind { return ElementSelectKind }

// RangeSelection determines how the bounds of a range select are interpreted.
type RangeSelection uint8

const (
	// Simple selects are written "v[msb:lsb]".
	Simple RangeSelection = iota
	// IndexedUp selects are written "v[base +: width]".
	IndexedUp
	// IndexedDown selects are written "v[base -: width]".
	IndexedDown
)

// RangeSelect represents a part select over the declared range of v.  For
// simple selects, Left and Right are the given bounds.  Otherwise, Left is the
// base and Right is the width.
type RangeSelect struct {
	expression
	Selection RangeSelection
	Value     Expression
	Left      Expression
	Right     Expression
}

var _ Expression = (*RangeSelect)(nil)

// NewRangeSelect constructs a range select of a given type.
func NewRangeSelect(selection RangeSelection, value Expression, left Expression, right Expression,
	typ Type) *RangeSelect {
	foldable := value.Foldable() && left.Foldable() && right.Foldable()
	//
	return &RangeSelect{expression{typ, foldable, nil}, selection, value, left, right}
}

// Kind implementation for Expression interface.
func (e *RangeSelect) Kind() ExpressionKind { return RangeSelectKind }

// ============================================================================
// Concatenation
// ============================================================================

// Concatenation represents "{a, b, ...}", where the first operand supplies the
// most significant bits.
type Concatenation struct {
	expression
	Operands []Expression
}

var _ Expression = (*Concatenation)(nil)

// NewConcatenation constructs a concatenation of a given type.
func NewConcatenation(operands []Expression, typ Type) *Concatenation {
	return &Concatenation{expression{typ, allFoldable(operands), nil}, operands}
}

// Kind implementation for Expression interface.
func (e *Concatenation) Kind() ExpressionKind { return ConcatenationKind }

// ============================================================================
// Call
// ============================================================================

// Call represents the invocation of a subroutine.
type Call struct {
	expression
	Subroutine *Subroutine
	Arguments  []Expression
}

var _ Expression = (*Call)(nil)

// NewCall constructs a call of a given type.  Calls to system functions are
// foldable when their arguments are, whilst calls to user-defined subroutines
// never are.
func NewCall(subroutine *Subroutine, args []Expression, typ Type) *Call {
	foldable := subroutine.IsSystem() && (subroutine.System.IsIntrospection() || allFoldable(args))
	//
	return &Call{expression{typ, foldable, nil}, subroutine, args}
}

// Kind implementation for Expression interface.
func (e *Call) Kind() ExpressionKind { return CallKind }

// ============================================================================
// Conversion
// ============================================================================

// ConversionMethod determines how a conversion changes its operand.
type ConversionMethod uint8

const (
	// IntToFloat converts an integer into a real.
	IntToFloat ConversionMethod = iota
	// IntExtension widens an integer (and may change its signedness).
	IntExtension
	// FloatExtension widens a real, which has no effect on its value.
	FloatExtension
	// IntTruncation narrows an integer.
	IntTruncation
	// FloatToInt rounds a real to an integer.
	FloatToInt
)

func (m ConversionMethod) String() string {
	switch m {
	case IntToFloat:
		return "int-to-float"
	case IntExtension:
		return "int-extension"
	case FloatExtension:
		return "float-extension"
	case IntTruncation:
		return "int-truncation"
	case FloatToInt:
		return "float-to-int"
	}
	//
	return "unknown"
}

// Conversion represents an implicit or explicit change of type.
type Conversion struct {
	expression
	Method  ConversionMethod
	Operand Expression
}

var _ Expression = (*Conversion)(nil)

// NewConversion constructs a conversion to a given type.
func NewConversion(method ConversionMethod, operand Expression, typ Type) *Conversion {
	return &Conversion{expression{typ, operand.Foldable(), nil}, method, operand}
}

// Kind implementation for Expression interface.
func (e *Conversion) Kind() ExpressionKind { return ConversionKind }

func allFoldable(exprs []Expression) bool {
	for _, e := range exprs {
		if !e.Foldable() {
			return false
		}
	}
	//
	return true
}
