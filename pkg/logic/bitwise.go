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

// ============================================================================
// Bitwise
// ============================================================================
//
// Bitwise operators follow the four-state truth tables digit by digit, where Z
// is treated as X.  These are implemented over whole planes at once.

// And returns the bitwise conjunction of two vectors.  A known zero in either
// operand forces a zero, regardless of the other.
func (v Vector) And(o Vector) Vector {
	var (
		l, r = unify(v, o)
		ones = new(big.Int).And(l.ones(), r.ones())
		zero = new(big.Int).Or(l.zeros(), r.zeros())
	)
	//
	return fromPlanes(l.width, l.signed, ones, zero)
}

// Or returns the bitwise disjunction of two vectors.  A known one in either
// operand forces a one, regardless of the other.
func (v Vector) Or(o Vector) Vector {
	var (
		l, r = unify(v, o)
		ones = new(big.Int).Or(l.ones(), r.ones())
		zero = new(big.Int).And(l.zeros(), r.zeros())
	)
	//
	return fromPlanes(l.width, l.signed, ones, zero)
}

// Xor returns the bitwise exclusive-or of two vectors.  Any unknown digit in
// either operand produces an X at that position.
func (v Vector) Xor(o Vector) Vector {
	var (
		l, r = unify(v, o)
		unk  = unknownOf(l, r)
		val  = new(big.Int).Xor(l.value, r.value)
	)
	//
	return newVector(l.width, l.signed, val.AndNot(val, unk), unk)
}

// Xnor returns the bitwise exclusive-nor of two vectors.
func (v Vector) Xnor(o Vector) Vector {
	return v.Xor(o).Not()
}

// Not returns the bitwise negation of this vector.  Unknown digits become X.
func (v Vector) Not() Vector {
	var (
		unk = v.unknownPlane()
		val = new(big.Int).AndNot(mask(v.width), v.value)
	)
	//
	return newVector(v.width, v.signed, val.AndNot(val, unk), unk)
}

// Construct a vector from the set of digits known to be one, and the set of
// digits known to be zero.  Everything else is X.
func fromPlanes(width uint, signed bool, ones *big.Int, zeros *big.Int) Vector {
	var unk = new(big.Int).AndNot(mask(width), new(big.Int).Or(ones, zeros))
	//
	return newVector(width, signed, ones, unk)
}

// ============================================================================
// Reduction
// ============================================================================

// ReduceAnd folds all digits of this vector using conjunction.
func (v Vector) ReduceAnd() Bit {
	switch {
	case v.zeros().Sign() != 0:
		return Zero
	case v.unknown != nil:
		return X
	default:
		return One
	}
}

// ReduceOr folds all digits of this vector using disjunction.
func (v Vector) ReduceOr() Bit {
	switch {
	case v.ones().Sign() != 0:
		return One
	case v.unknown != nil:
		return X
	default:
		return Zero
	}
}

// ReduceXor folds all digits of this vector using exclusive-or.
func (v Vector) ReduceXor() Bit {
	if v.unknown != nil {
		return X
	}
	//
	return BitOf(popCount(v.value)%2 == 1)
}

// ============================================================================
// Logical
// ============================================================================

// Truth returns the four-state truth value of this vector: X if any digit is
// unknown, otherwise one if the vector is nonzero and zero if it is not.
func (v Vector) Truth() Bit {
	switch {
	case v.unknown != nil:
		return X
	case v.value.Sign() != 0:
		return One
	default:
		return Zero
	}
}

// LogicalAnd returns the four-state conjunction of two truth values.
func (v Vector) LogicalAnd(o Vector) Bit {
	return v.Truth().And(o.Truth())
}

// LogicalOr returns the four-state disjunction of two truth values.
func (v Vector) LogicalOr(o Vector) Bit {
	return v.Truth().Or(o.Truth())
}

// LogicalImplication returns the four-state value of "v -> o", which is
// equivalent to "!v || o".
func (v Vector) LogicalImplication(o Vector) Bit {
	return v.Truth().Not().Or(o.Truth())
}

// LogicalEquivalence returns the four-state value of "v <-> o".
func (v Vector) LogicalEquivalence(o Vector) Bit {
	return v.Truth().Xor(o.Truth()).Not()
}

// ============================================================================
// Helpers
// ============================================================================

// Digits known to be one.
func (v Vector) ones() *big.Int {
	return v.known()
}

// Digits known to be zero.
func (v Vector) zeros() *big.Int {
	var z = new(big.Int).AndNot(mask(v.width), v.value)
	//
	if v.unknown != nil {
		z.AndNot(z, v.unknown)
	}
	//
	return z
}

// The unknown plane, materialised as zero when nothing is unknown.
func (v Vector) unknownPlane() *big.Int {
	if v.unknown == nil {
		return big.NewInt(0)
	}
	//
	return new(big.Int).Set(v.unknown)
}

// Union of the unknown planes of two vectors.
func unknownOf(l Vector, r Vector) *big.Int {
	return new(big.Int).Or(l.unknownPlane(), r.unknownPlane())
}
