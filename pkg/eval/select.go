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

// Indices are given in the declared range of the value being selected from,
// and must be translated into canonical (little-endian, zero-based) positions.
// An index with any unknown digit selects nothing in particular, hence the
// whole result is X.  Likewise, positions falling outside the declared range
// read as X.

func evalElementSelect(e *ast.ElementSelect, ctx *Context) constant.Value {
	var (
		value    = Evaluate(e.Value, ctx)
		selector = Evaluate(e.Selector, ctx)
	)
	//
	if !value.IsInteger() || !selector.IsInteger() {
		return unevaluable
	} else if selector.Integer().HasUnknown() {
		return unknownSelect(e)
	}
	//
	index, ok := selector.Integer().Int64()
	// Too large to be within range
	if !ok {
		return fromBit(logic.X)
	}
	//
	rng := integralType(e.Value).Range
	//
	return fromBit(value.Integer().Bit(rng.Translate(index)))
}

func evalRangeSelect(e *ast.RangeSelect, ctx *Context) constant.Value {
	var (
		value = Evaluate(e.Value, ctx)
		left  = Evaluate(e.Left, ctx)
		right = Evaluate(e.Right, ctx)
	)
	//
	if !value.IsInteger() || !left.IsInteger() || !right.IsInteger() {
		return unevaluable
	} else if left.Integer().HasUnknown() || right.Integer().HasUnknown() {
		return unknownSelect(e)
	}
	//
	l, ok1 := left.Integer().Int64()
	r, ok2 := right.Integer().Int64()
	//
	if !ok1 || !ok2 {
		return unknownSelect(e)
	}
	//
	msb, lsb, ok := selectBounds(e.Selection, integralType(e.Value).Range, l, r)
	//
	if !ok {
		return unevaluable
	} else if !ctx.checkWidth(uint64(msb - lsb + 1)) {
		return unevaluable
	}
	//
	return constant.FromVector(value.Integer().Slice(msb, lsb))
}

// Determine the canonical bounds of a range select.  Simple selects must be
// written in the same direction as the declared range.  Indexed selects cover
// the declared indices "base .. base+width-1" (ascending) or
// "base-width+1 .. base" (descending), and must have a positive width.
func selectBounds(selection ast.RangeSelection, rng logic.Range, left int64, right int64) (int64, int64, bool) {
	var first, last int64
	//
	switch selection {
	case ast.Simple:
		msb, lsb := rng.Translate(left), rng.Translate(right)
		//
		return msb, lsb, msb >= lsb
	case ast.IndexedUp:
		first, last = left, left+right-1
	case ast.IndexedDown:
		first, last = left-right+1, left
	default:
		panic(fmt.Sprintf("unknown range selection %d", selection))
	}
	//
	if right <= 0 {
		return 0, 0, false
	}
	//
	var (
		a = rng.Translate(first)
		b = rng.Translate(last)
	)
	//
	return max(a, b), min(a, b), true
}

func unknownSelect(e ast.Expression) constant.Value {
	return constant.FromVector(logic.Fill(integralType(e).Width(), false, logic.X))
}

// ============================================================================
// Concatenation
// ============================================================================

func evalConcatenation(e *ast.Concatenation, ctx *Context) constant.Value {
	if len(e.Operands) == 0 {
		panic("empty concatenation")
	}
	//
	var items = make([]logic.Vector, 0, len(e.Operands))
	//
	for _, operand := range e.Operands {
		if IsEmptyReplication(operand, ctx) {
			continue
		}
		//
		value := Evaluate(operand, ctx)
		//
		if !value.IsInteger() {
			return unevaluable
		}
		//
		items = append(items, value.Integer())
	}
	// Every operand was an empty replication
	if len(items) == 0 {
		return unevaluable
	}
	//
	return constant.FromVector(logic.Concatenate(items...))
}

// IsEmptyReplication checks whether a given expression replicates its operands
// zero times, hence contributes no digits to an enclosing concatenation.
func IsEmptyReplication(expr ast.Expression, ctx *Context) bool {
	if e, ok := expr.(*ast.BinaryOp); ok && e.Op == ast.Replication {
		count := Evaluate(e.Lhs, ctx)
		//
		if count.IsInteger() {
			n, ok := count.Integer().Int64()
			//
			return ok && n == 0
		}
	}
	//
	return false
}
