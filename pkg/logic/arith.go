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
// Arithmetic
// ============================================================================
//
// Arithmetic operators first bring both operands to a common width and
// signedness (see unify).  If either operand contains an unknown digit, then
// the entire result is X.

// Add returns the sum of two vectors, modulo the common width.
func (v Vector) Add(o Vector) Vector {
	return arithmetic(v, o, func(l, r Vector) *big.Int {
		return new(big.Int).Add(l.value, r.value)
	})
}

// Sub returns the difference of two vectors, modulo the common width.
func (v Vector) Sub(o Vector) Vector {
	return arithmetic(v, o, func(l, r Vector) *big.Int {
		return new(big.Int).Sub(l.value, r.value)
	})
}

// Mul returns the product of two vectors, modulo the common width.
func (v Vector) Mul(o Vector) Vector {
	return arithmetic(v, o, func(l, r Vector) *big.Int {
		return new(big.Int).Mul(l.value, r.value)
	})
}

// Div returns the quotient of two vectors.  Signed division truncates towards
// zero, and division by zero yields X.
func (v Vector) Div(o Vector) Vector {
	return arithmetic(v, o, func(l, r Vector) *big.Int {
		if r.IsZero() {
			return nil
		}
		//
		return new(big.Int).Quo(l.BigInt(), r.BigInt())
	})
}

// Mod returns the remainder of dividing two vectors, whose sign follows the
// dividend.  Modulo zero yields X.
func (v Vector) Mod(o Vector) Vector {
	return arithmetic(v, o, func(l, r Vector) *big.Int {
		if r.IsZero() {
			return nil
		}
		//
		return new(big.Int).Rem(l.BigInt(), r.BigInt())
	})
}

// Neg returns the two's complement negation of this vector.
func (v Vector) Neg() Vector {
	if v.unknown != nil {
		return Fill(v.width, v.signed, X)
	}
	//
	return NewVector(v.width, v.signed, new(big.Int).Neg(v.value))
}

// Pow raises this vector to the power of another.  The result has the width
// and signedness of this vector.  A negative exponent (only possible when the
// exponent is signed) yields X for a zero base, one for a base of one, plus or
// minus one for a base of minus one (depending on parity) and zero otherwise.
func (v Vector) Pow(o Vector) Vector {
	if v.unknown != nil || o.unknown != nil {
		return Fill(v.width, v.signed, X)
	}
	//
	var (
		base = v.BigInt()
		exp  = o.BigInt()
	)
	//
	switch {
	case exp.Sign() < 0 && base.Sign() == 0:
		return Fill(v.width, v.signed, X)
	case exp.Sign() < 0 && base.IsInt64() && base.Int64() == 1:
		return FromInt64(v.width, v.signed, 1)
	case exp.Sign() < 0 && base.IsInt64() && base.Int64() == -1:
		if exp.Bit(0) == 0 {
			return FromInt64(v.width, v.signed, 1)
		}
		//
		return FromInt64(v.width, v.signed, -1)
	case exp.Sign() < 0:
		return FromInt64(v.width, v.signed, 0)
	}
	// Working modulo 2^n means the raw digit pattern can be used as the base.
	modulus := new(big.Int).Lsh(big.NewInt(1), v.width)
	//
	return NewVector(v.width, v.signed, new(big.Int).Exp(v.value, exp, modulus))
}

// ============================================================================
// Shifts
// ============================================================================
//
// Shifts always produce a result with the width and signedness of the value
// being shifted.  The shift amount is treated as unsigned, and an unknown
// amount yields X.

// Shl shifts this vector left, filling with zeros.
func (v Vector) Shl(o Vector) Vector {
	n, ok := shiftAmount(v, o)
	//
	switch {
	case !ok:
		return Fill(v.width, v.signed, X)
	case n >= v.width:
		return Fill(v.width, v.signed, Zero)
	}
	//
	return newVector(v.width, v.signed, new(big.Int).Lsh(v.value, n), lsh(v.unknown, n))
}

// Lshr shifts this vector right, filling with zeros.
func (v Vector) Lshr(o Vector) Vector {
	n, ok := shiftAmount(v, o)
	//
	switch {
	case !ok:
		return Fill(v.width, v.signed, X)
	case n >= v.width:
		return Fill(v.width, v.signed, Zero)
	}
	//
	return newVector(v.width, v.signed, new(big.Int).Rsh(v.value, n), rsh(v.unknown, n))
}

// Ashr shifts this vector right, replicating the sign digit.  For an unsigned
// vector this is identical to a logical shift.
func (v Vector) Ashr(o Vector) Vector {
	if !v.signed {
		return v.Lshr(o)
	}
	//
	n, ok := shiftAmount(v, o)
	//
	switch {
	case !ok:
		return Fill(v.width, v.signed, X)
	case n >= v.width:
		return Fill(v.width, v.signed, v.MSB())
	case n == 0:
		return v
	}
	// Shift then sign extend back to the original width
	shifted := newVector(v.width-n, true, new(big.Int).Rsh(v.value, n), rsh(v.unknown, n))
	//
	return shifted.Extend(v.width, true)
}

// Determine the shift amount, saturating at the width of the vector being
// shifted.  This fails if the amount contains unknown digits.
func shiftAmount(v Vector, o Vector) (uint, bool) {
	if o.unknown != nil {
		return 0, false
	} else if o.value.BitLen() > 32 || o.value.Uint64() >= uint64(v.width) {
		return v.width, true
	}
	//
	return uint(o.value.Uint64()), true
}

// Apply an arithmetic function over the unified operands.  A nil result from
// the function indicates X.
func arithmetic(lhs Vector, rhs Vector, fn func(Vector, Vector) *big.Int) Vector {
	l, r := unify(lhs, rhs)
	//
	if l.unknown != nil || r.unknown != nil {
		return Fill(l.width, l.signed, X)
	} else if val := fn(l, r); val != nil {
		return NewVector(l.width, l.signed, val)
	}
	//
	return Fill(l.width, l.signed, X)
}

func lsh(val *big.Int, n uint) *big.Int {
	if val == nil {
		return nil
	}
	//
	return new(big.Int).Lsh(val, n)
}

func rsh(val *big.Int, n uint) *big.Int {
	if val == nil {
		return nil
	}
	//
	return new(big.Int).Rsh(val, n)
}
