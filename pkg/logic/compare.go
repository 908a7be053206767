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
package logic

import (
	"math/big"
)

// Equal implements logical equality ("==").  If either operand has an unknown
// digit, then the result is X.
func (v Vector) Equal(o Vector) Bit {
	return relation(v, o, func(c int) bool { return c == 0 })
}

// NotEqual implements logical inequality ("!=").  If either operand has an
// unknown digit, then the result is X.
func (v Vector) NotEqual(o Vector) Bit {
	return relation(v, o, func(c int) bool { return c != 0 })
}

// Less implements "<".
func (v Vector) Less(o Vector) Bit {
	return relation(v, o, func(c int) bool { return c < 0 })
}

// LessEqual implements "<=".
func (v Vector) LessEqual(o Vector) Bit {
	return relation(v, o, func(c int) bool { return c <= 0 })
}

// Greater implements ">".
func (v Vector) Greater(o Vector) Bit {
	return relation(v, o, func(c int) bool { return c > 0 })
}

// GreaterEqual implements ">=".
func (v Vector) GreaterEqual(o Vector) Bit {
	return relation(v, o, func(c int) bool { return c >= 0 })
}

// CaseEqual implements case equality ("===").  This compares digit patterns
// exactly, such that X only matches X and Z only matches Z.  Hence, the result
// is never unknown.
func (v Vector) CaseEqual(o Vector) bool {
	l, r := unify(v, o)
	//
	return l.value.Cmp(r.value) == 0 && l.unknownPlane().Cmp(r.unknownPlane()) == 0
}

// WildcardEqual implements wildcard equality ("==?").  Any position at which
// either operand holds X or Z matches anything, whilst all other positions must
// agree exactly.  Hence, the result is never unknown.
func (v Vector) WildcardEqual(o Vector) bool {
	var (
		l, r = unify(v, o)
		care = new(big.Int).AndNot(mask(l.width), unknownOf(l, r))
		lhs  = new(big.Int).And(l.value, care)
		rhs  = new(big.Int).And(r.value, care)
	)
	//
	return lhs.Cmp(rhs) == 0
}

// Compare two known vectors after unification, returning the result of the
// given predicate over the three-way comparison.  Comparison is signed only
// when both operands are signed.
func relation(lhs Vector, rhs Vector, fn func(int) bool) Bit {
	l, r := unify(lhs, rhs)
	//
	if l.unknown != nil || r.unknown != nil {
		return X
	}
	//
	return BitOf(fn(l.BigInt().Cmp(r.BigInt())))
}
