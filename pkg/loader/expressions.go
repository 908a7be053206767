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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/logic"
	"github.com/consensys/go-svfold/pkg/util/source/sexp"
)

// ===================================================================
// Literals
// ===================================================================

// Integer literals take the width and signedness of their text, whilst
// unbased unsized literals are one bit wide until placed in a context.
func literalRule(symbol string) (ast.Expression, bool, error) {
	if digit, ok := logic.ParseUnbasedUnsized(symbol); ok {
		return ast.NewUnbasedUnsizedLiteral(digit, ast.OfWidth(1, false, digit.IsUnknown())), true, nil
	} else if !isNumeric(symbol) {
		return nil, false, nil
	}
	//
	v, err := logic.Parse(symbol)
	//
	if err == nil {
		return ast.NewIntegerLiteral(v, ast.OfWidth(v.Width(), v.IsSigned(), true)), true, nil
	} else if f, ferr := strconv.ParseFloat(symbol, 64); ferr == nil {
		return ast.NewRealLiteral(f, ast.Real()), true, nil
	}
	//
	return nil, true, err
}

// ===================================================================
// Operators
// ===================================================================

func operatorTokens() []string {
	var tokens = []string{"^~"}
	//
	for op := ast.Plus; op <= ast.PostDecrement; op++ {
		tokens = append(tokens, op.String())
	}
	//
	for op := ast.Add; op <= ast.ArithmeticRightShiftAssignment; op++ {
		if op != ast.Replication {
			tokens = append(tokens, op.String())
		}
	}
	//
	return tokens
}

// Operators serve as both unary and binary forms, as determined by the number
// of arguments.
func (b *Binder) operatorRule(head string, args []ast.Expression) (ast.Expression, error) {
	if len(args) == 1 {
		if op, ok := ast.LookupUnaryOperator(head); ok {
			return unaryRule(op, args[0])
		}
	} else if len(args) == 2 {
		if op, ok := ast.LookupBinaryOperator(head); ok {
			return binaryRule(op, args[0], args[1])
		}
	}
	//
	return nil, fmt.Errorf("incorrect number of arguments for %s", head)
}

func unaryRule(op ast.UnaryOperator, arg ast.Expression) (ast.Expression, error) {
	if op.IsAssignment() {
		ref, err := assignable(arg)
		//
		if err != nil {
			return nil, err
		} else if ast.AsIntegral(ref.Type()) == nil {
			return nil, errors.New("integral operand expected")
		}
		//
		return ast.NewUnaryOp(op, ref, ref.Type()), nil
	} else if ast.IsReal(arg.Type()) && (op == ast.Plus || op == ast.Minus) {
		return ast.NewUnaryOp(op, arg, arg.Type()), nil
	}
	//
	t := ast.AsIntegral(arg.Type())
	//
	switch {
	case t == nil:
		return nil, errors.New("integral operand expected")
	case op.IsReduction():
		return ast.NewUnaryOp(op, arg, ast.OfWidth(1, false, t.FourState)), nil
	default:
		return ast.NewUnaryOp(op, arg, t), nil
	}
}

func binaryRule(op ast.BinaryOperator, lhs ast.Expression, rhs ast.Expression) (ast.Expression, error) {
	switch {
	case op.IsAssignment():
		return assignmentRule(op, lhs, rhs)
	case op.IsLogical():
		return ast.NewBinaryOp(op, lhs, rhs, ast.Logic(0, 0)), nil
	case op.IsSelfDetermined():
		// The right-hand side is self-determined
		if ast.IsReal(lhs.Type()) && op == ast.Power {
			return ast.NewBinaryOp(op, lhs, rhs, lhs.Type()), nil
		} else if t := ast.AsIntegral(lhs.Type()); t != nil && ast.AsIntegral(rhs.Type()) != nil {
			return ast.NewBinaryOp(op, lhs, rhs, t), nil
		}
		//
		return nil, errors.New("integral operands expected")
	}
	//
	common := ast.CommonType(lhs.Type(), rhs.Type())
	//
	switch {
	case common == nil:
		return nil, errors.New("incompatible operands")
	case ast.IsReal(common) && isBitwise(op):
		return nil, errors.New("integral operands expected")
	case op.IsComparison():
		var result = ast.Logic(0, 0)
		//
		if t := ast.AsIntegral(common); t != nil && !t.FourState {
			result = ast.Bits(0, 0)
		}
		//
		return ast.NewBinaryOp(op, convert(lhs, common), convert(rhs, common), result), nil
	default:
		return ast.NewBinaryOp(op, convert(lhs, common), convert(rhs, common), common), nil
	}
}

func assignmentRule(op ast.BinaryOperator, lhs ast.Expression, rhs ast.Expression) (ast.Expression, error) {
	ref, err := assignable(lhs)
	//
	if err != nil {
		return nil, err
	} else if op != ast.Assignment && (ast.AsIntegral(ref.Type()) == nil || ast.AsIntegral(rhs.Type()) == nil) {
		return nil, errors.New("integral operands expected")
	}
	//
	return ast.NewBinaryOp(op, ref, fit(rhs, ref.Type()), ref.Type()), nil
}

func assignable(expr ast.Expression) (*ast.VariableRef, error) {
	switch e := expr.(type) {
	case *ast.VariableRef:
		return e, nil
	case *ast.ParameterRef:
		return nil, fmt.Errorf("cannot assign to parameter %s", e.Symbol.Name())
	default:
		return nil, errors.New("invalid assignment target")
	}
}

func isBitwise(op ast.BinaryOperator) bool {
	return op >= ast.BinaryAnd && op <= ast.BinaryXnor
}

// (? COND THEN ELSE)
func conditionalRule(_ string, args []ast.Expression) (ast.Expression, error) {
	if len(args) != 3 {
		return nil, errors.New("expected (? cond then else)")
	}
	//
	common := ast.CommonType(args[1].Type(), args[2].Type())
	//
	if common == nil {
		return nil, errors.New("incompatible branches")
	}
	//
	return ast.NewConditionalOp(args[0], convert(args[1], common), convert(args[2], common), common), nil
}

// ===================================================================
// Selects
// ===================================================================

// (index VALUE INDEX)
func indexRule(_ string, args []ast.Expression) (ast.Expression, error) {
	if len(args) != 2 {
		return nil, errors.New("expected (index value index)")
	}
	//
	t := ast.AsIntegral(args[0].Type())
	//
	if t == nil || ast.AsIntegral(args[1].Type()) == nil {
		return nil, errors.New("integral operands expected")
	}
	//
	return ast.NewElementSelect(args[0], args[1], ast.OfWidth(1, false, t.FourState)), nil
}

// (range VALUE MSB LSB), (+: VALUE BASE WIDTH) or (-: VALUE BASE WIDTH).  The
// width of the selection must be constant, though the base of an indexed
// select need not be.
func (b *Binder) rangeRule(head string, args []ast.Expression) (ast.Expression, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("expected (%s value left right)", head)
	}
	//
	t := ast.AsIntegral(args[0].Type())
	//
	if t == nil || ast.AsIntegral(args[1].Type()) == nil || ast.AsIntegral(args[2].Type()) == nil {
		return nil, errors.New("integral operands expected")
	}
	//
	var (
		selection = ast.Simple
		width     int64
	)
	//
	switch head {
	case "range":
		left, err1 := b.constant(args[1])
		right, err2 := b.constant(args[2])
		//
		if err := errors.Join(err1, err2); err != nil {
			return nil, err
		}
		//
		width = max(left-right, right-left) + 1
	default:
		var err error
		//
		if width, err = b.constant(args[2]); err != nil {
			return nil, err
		} else if width <= 0 {
			return nil, errors.New("width must be positive")
		}
		//
		if selection = ast.IndexedUp; head == "-:" {
			selection = ast.IndexedDown
		}
	}
	//
	if err := b.checkWidth(width); err != nil {
		return nil, err
	}
	//
	typ := ast.OfWidth(uint(width), false, t.FourState)
	//
	return ast.NewRangeSelect(selection, args[0], args[1], args[2], typ), nil
}

// ===================================================================
// Concatenation
// ===================================================================

// (concat OPERAND ...)
func (b *Binder) concatRule(_ string, args []ast.Expression) (ast.Expression, error) {
	typ, err := b.concatType(args)
	//
	if err != nil {
		return nil, err
	}
	//
	return ast.NewConcatenation(args, typ), nil
}

// (repl COUNT OPERAND ...), where the count must be constant and non-negative.
// A zero count contributes nothing to an enclosing concatenation.  Since no
// value has zero width, it is typed as a single copy of its operands and is
// unevaluable anywhere else.
func (b *Binder) replicationRule(_ string, args []ast.Expression) (ast.Expression, error) {
	if len(args) < 2 {
		return nil, errors.New("expected (repl count operand ...)")
	} else if ast.AsIntegral(args[0].Type()) == nil {
		return nil, errors.New("integral count expected")
	}
	//
	count, err := b.constant(args[0])
	//
	if err != nil {
		return nil, err
	} else if count < 0 {
		return nil, errors.New("replication count must be non-negative")
	}
	//
	typ, err := b.concatType(args[1:])
	//
	if err != nil {
		return nil, err
	} else if err = b.checkWidth(count * int64(typ.Width())); err != nil {
		return nil, err
	}
	//
	var (
		concat = ast.NewConcatenation(args[1:], typ)
		result = ast.OfWidth(uint(max(count, 1))*typ.Width(), false, typ.FourState)
	)
	//
	return ast.NewBinaryOp(ast.Replication, args[0], concat, result), nil
}

// Determine the type of a concatenation, which is unsigned and as wide as all
// of its operands combined.  Zero replications occupy no width, but at least
// one operand must.
func (b *Binder) concatType(args []ast.Expression) (*ast.IntegralType, error) {
	var (
		width     uint
		fourState bool
	)
	//
	for _, arg := range args {
		t := ast.AsIntegral(arg.Type())
		//
		if _, ok := arg.(*ast.UnbasedUnsizedLiteral); ok {
			return nil, errors.New("unsized literal in concatenation")
		} else if t == nil {
			return nil, errors.New("integral operands expected")
		} else if eval.IsEmptyReplication(arg, b.ctx) {
			continue
		}
		//
		width += t.Width()
		fourState = fourState || t.FourState
	}
	//
	if width == 0 {
		return nil, errors.New("empty concatenation")
	}
	//
	return ast.OfWidth(width, false, fourState), nil
}

func (b *Binder) checkWidth(width int64) error {
	if maxima := b.ctx.Options().MaxWidth; width > int64(maxima) {
		return fmt.Errorf("wider than %d bits", maxima)
	}
	//
	return nil
}

// ===================================================================
// Casts & Calls
// ===================================================================

// (cast TYPE EXPR)
func (b *Binder) castRule(list *sexp.List) (ast.Expression, []SyntaxError) {
	if list.Len() != 3 {
		return nil, b.translator.SyntaxErrors(list, "expected (cast type expr)")
	}
	//
	typ, err := b.parseType(list.Get(1))
	arg, errors := b.translator.Translate(list.Get(2))
	//
	if err != nil {
		errors = append(errors, *err)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return cast(arg, typ), nil
}

// Any other list is a call to either a system function or a user-defined
// function.
func (b *Binder) invokeRule(list *sexp.List) (ast.Expression, []SyntaxError) {
	var (
		name   = list.Head()
		args   = make([]ast.Expression, list.Len()-1)
		errors []SyntaxError
	)
	//
	for i := range args {
		var errs []SyntaxError
		args[i], errs = b.translator.Translate(list.Get(i + 1))
		errors = append(errors, errs...)
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	var (
		call ast.Expression
		err  error
	)
	//
	if strings.HasPrefix(name, "$") {
		call, err = systemCall(name, args)
	} else {
		call, err = b.userCall(name, args)
	}
	//
	if err != nil {
		return nil, b.translator.SyntaxErrors(list, err.Error())
	}
	//
	return call, nil
}

func systemCall(name string, args []ast.Expression) (ast.Expression, error) {
	fn, ok := ast.LookupSystemFunction(name)
	//
	if !ok {
		return nil, fmt.Errorf("unknown system function %s", name)
	} else if len(args) != 1 {
		return nil, fmt.Errorf("%s expects one argument", name)
	}
	//
	var (
		t   = ast.AsIntegral(args[0].Type())
		typ ast.Type
	)
	//
	switch {
	case fn == ast.BitsOf:
		if _, ok := args[0].Type().(*ast.VoidType); ok {
			return nil, errors.New("void argument")
		}
		//
		typ = ast.Int()
	case t == nil:
		return nil, errors.New("integral argument expected")
	case fn == ast.Signed || fn == ast.Unsigned:
		typ = t.WithSign(fn == ast.Signed)
	case fn == ast.OneHot || fn == ast.OneHot0 || fn == ast.IsUnknown:
		typ = ast.Bits(0, 0)
	case fn == ast.Clog2:
		typ = ast.Integer()
	default:
		typ = ast.Int()
	}
	//
	return ast.NewCall(ast.NewSystemSubroutine(fn), args, typ), nil
}

func (b *Binder) userCall(name string, args []ast.Expression) (ast.Expression, error) {
	fn, ok := b.functions[name]
	//
	if !ok {
		return nil, fmt.Errorf("unknown function %s", name)
	} else if len(args) != len(fn.Arguments) {
		return nil, fmt.Errorf("%s expects %d arguments, given %d", name, len(fn.Arguments), len(args))
	}
	//
	for i, formal := range fn.Arguments {
		args[i] = fit(args[i], formal.Type())
	}
	//
	return ast.NewCall(fn, args, fn.Type()), nil
}
