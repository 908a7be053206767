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
	"math"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/logic"
	"github.com/consensys/go-svfold/pkg/util/source/sexp"
)

// Parse a type, which is either one of the builtin types or a parameterised
// form such as "(logic 7 0)" or "(signed T)".
func (b *Binder) parseType(term sexp.SExp) (ast.Type, *SyntaxError) {
	if symbol := term.AsSymbol(); symbol != nil {
		switch symbol.Value {
		case "bit":
			return ast.Bits(0, 0), nil
		case "logic":
			return ast.Logic(0, 0), nil
		case "byte":
			return ast.NewIntegralType(logic.RangeOfWidth(8), true, false), nil
		case "shortint":
			return ast.NewIntegralType(logic.RangeOfWidth(16), true, false), nil
		case "int":
			return ast.Int(), nil
		case "longint":
			return ast.NewIntegralType(logic.RangeOfWidth(64), true, false), nil
		case "integer":
			return ast.Integer(), nil
		case "real":
			return ast.Real(), nil
		case "shortreal":
			return ast.ShortReal(), nil
		}
		//
		return nil, b.translator.SyntaxError(term, fmt.Sprintf("unknown type \"%s\"", symbol.Value))
	}
	//
	list := term.AsList()
	//
	switch {
	case list.MatchSymbols(3, "logic") && list.Len() == 3:
		return b.parseVectorType(list, true)
	case list.MatchSymbols(3, "bit") && list.Len() == 3:
		return b.parseVectorType(list, false)
	case list.MatchSymbols(2, "signed") && list.Len() == 2:
		return b.parseSignedType(list, true)
	case list.MatchSymbols(2, "unsigned") && list.Len() == 2:
		return b.parseSignedType(list, false)
	}
	//
	return nil, b.translator.SyntaxError(term, "malformed type")
}

// Function return types may, additionally, be void.
func (b *Binder) parseReturnType(term sexp.SExp) (ast.Type, *SyntaxError) {
	if symbol := term.AsSymbol(); symbol != nil && symbol.Value == "void" {
		return ast.Void(), nil
	}
	//
	return b.parseType(term)
}

// (logic MSB LSB) or (bit MSB LSB)
func (b *Binder) parseVectorType(list *sexp.List, fourState bool) (ast.Type, *SyntaxError) {
	var bounds [2]int
	//
	for i := range bounds {
		n, err := b.constantBound(list.Get(i + 1))
		//
		if err != nil {
			return nil, err
		}
		//
		bounds[i] = n
	}
	//
	var (
		rng    = logic.NewRange(bounds[0], bounds[1])
		maxima = b.ctx.Options().MaxWidth
	)
	//
	if rng.Width() > maxima {
		return nil, b.translator.SyntaxError(list, fmt.Sprintf("type wider than %d bits", maxima))
	}
	//
	return ast.NewIntegralType(rng, false, fourState), nil
}

// (signed T) or (unsigned T)
func (b *Binder) parseSignedType(list *sexp.List, signed bool) (ast.Type, *SyntaxError) {
	typ, err := b.parseType(list.Get(1))
	//
	if err != nil {
		return nil, err
	} else if t := ast.AsIntegral(typ); t != nil {
		return t.WithSign(signed), nil
	}
	//
	return nil, b.translator.SyntaxError(list.Get(1), "integral type expected")
}

// Translate and evaluate an expression which must be constant, such as the
// bound of a type or a range select.
func (b *Binder) constantBound(term sexp.SExp) (int, *SyntaxError) {
	expr, errs := b.translator.Translate(term)
	//
	if len(errs) > 0 {
		return 0, &errs[0]
	}
	//
	n, err := b.constant(expr)
	//
	if err != nil {
		return 0, b.translator.SyntaxError(term, err.Error())
	}
	//
	return int(n), nil
}

// Evaluate an expression which must be a known integer of modest size.
func (b *Binder) constant(expr ast.Expression) (int64, error) {
	b.ctx.Reset()
	//
	value := eval.Evaluate(expr, b.ctx)
	//
	if !value.IsInteger() {
		return 0, errors.New("expression is not constant")
	}
	//
	n, ok := value.Integer().Int64()
	//
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errors.New("constant is unknown or out of range")
	}
	//
	return n, nil
}
