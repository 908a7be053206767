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
	"fmt"
	"math/big"
)

// Extend this vector to a given (larger) width.  When signed holds, the most
// significant digit is replicated into the new digits (including when that
// digit is X or Z).  Otherwise, the new digits are zero.  The resulting vector
// takes the given signedness.
func (v Vector) Extend(width uint, signed bool) Vector {
	if width < v.width {
		panic(fmt.Sprintf("cannot extend %d bits to %d bits", v.width, width))
	} else if width == v.width {
		return v.AsSigned(signed)
	} else if !signed {
		return Vector{width, false, v.value, v.unknown}
	}
	//
	var (
		high = maskRange(v.width, width-1)
		val  = new(big.Int).Set(v.value)
		unk  *big.Int
	)
	//
	switch v.MSB() {
	case One:
		val.Or(val, high)
		unk = v.unknown
	case X:
		unk = new(big.Int).Or(v.unknown, high)
	case Z:
		val.Or(val, high)
		unk = new(big.Int).Or(v.unknown, high)
	default:
		unk = v.unknown
	}
	//
	return newVector(width, true, val, unk)
}

// Truncate this vector to a given (smaller) width by discarding the most
// significant digits.  Signedness is retained.
func (v Vector) Truncate(width uint) Vector {
	if width > v.width {
		panic(fmt.Sprintf("cannot truncate %d bits to %d bits", v.width, width))
	} else if width == v.width {
		return v
	}
	//
	return newVector(width, v.signed, v.value, v.unknown)
}

// Resize this vector to a given width and signedness, either by extending or
// by truncating as necessary.  Extension is according to the given
// signedness.
func (v Vector) Resize(width uint, signed bool) Vector {
	if width > v.width {
		return v.Extend(width, signed)
	}
	//
	return v.Truncate(width).AsSigned(signed)
}

// AsSigned returns a vector with identical digits, but the given signedness.
func (v Vector) AsSigned(signed bool) Vector {
	return Vector{v.width, signed, v.value, v.unknown}
}

// Slice extracts the digits between two canonical indices (inclusive), where
// msb must be at least lsb.  Any positions falling outside this vector are X.
// The result is always unsigned.
func (v Vector) Slice(msb int64, lsb int64) Vector {
	if msb < lsb {
		panic(fmt.Sprintf("invalid slice [%d:%d]", msb, lsb))
	}
	//
	var (
		width = uint(msb - lsb + 1)
		// Result positions which map onto digits of this vector
		lo = max(0, -lsb)
		hi = min(int64(width)-1, int64(v.width)-1-lsb)
	)
	// Check for no overlap at all
	if lo > hi {
		return Fill(width, false, X)
	}
	//
	var (
		inside = maskRange(uint(lo), uint(hi))
		val    = shift(v.value, lsb)
		unk    = new(big.Int).AndNot(mask(width), inside)
	)
	//
	val.And(val, inside)
	//
	if v.unknown != nil {
		u := shift(v.unknown, lsb)
		unk.Or(unk, u.And(u, inside))
	}
	//
	return newVector(width, false, val, unk)
}

// Replicate constructs n copies of this vector concatenated together.  The
// result is unsigned, and n must be positive.
func (v Vector) Replicate(n uint) Vector {
	if n == 0 {
		panic("zero replication")
	}
	//
	var items = make([]Vector, n)
	//
	for i := range n {
		items[i] = v
	}
	//
	return Concatenate(items...)
}

// Concatenate one or more vectors together, where the first vector provides
// the most significant digits.  The result is unsigned.
func Concatenate(items ...Vector) Vector {
	var (
		width = uint(0)
		val   = big.NewInt(0)
		unk   = big.NewInt(0)
	)
	//
	for _, item := range items {
		width += item.width
		val.Lsh(val, item.width)
		val.Or(val, item.value)
		unk.Lsh(unk, item.width)
		//
		if item.unknown != nil {
			unk.Or(unk, item.unknown)
		}
	}
	//
	return newVector(width, false, val, unk)
}

// Blend combines two vectors digit by digit, as required for a conditional
// whose predicate is unknown.  Positions where both vectors have the same
// known digit retain that digit, and all other positions become X.
func Blend(lhs Vector, rhs Vector) Vector {
	var (
		l, r = unify(lhs, rhs)
		diff = new(big.Int).Xor(l.value, r.value)
	)
	//
	if l.unknown != nil {
		diff.Or(diff, l.unknown)
	}
	//
	if r.unknown != nil {
		diff.Or(diff, r.unknown)
	}
	//
	return newVector(l.width, l.signed, new(big.Int).AndNot(l.value, diff), diff)
}

// Bring two operands to a common width and signedness.  The common width is
// the larger of the two, and the result is signed only if both operands are.
// Extension follows the common signedness.
func unify(lhs Vector, rhs Vector) (Vector, Vector) {
	var (
		width  = max(lhs.width, rhs.width)
		signed = lhs.signed && rhs.signed
	)
	//
	return lhs.Extend(width, signed), rhs.Extend(width, signed)
}

// Shift a (non-negative) integer right by n bits, or left when n is negative.
func shift(val *big.Int, n int64) *big.Int {
	if n >= 0 {
		return new(big.Int).Rsh(val, uint(n))
	}
	//
	return new(big.Int).Lsh(val, uint(-n))
}
