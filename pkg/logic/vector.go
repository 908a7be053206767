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
	"math"
	"math/big"
	"math/bits"
)

// Vector is an arbitrary width, optionally signed, four-state integer.  The
// representation uses two planes over the same width: a value plane, and an
// unknown plane identifying which digits are X or Z.  For unknown digits, the
// value plane distinguishes X (0) from Z (1).  Both planes are normalised so
// that no bit at or above the width is ever set.
//
// Vectors are immutable.  Every operation returns a fresh vector, and the
// underlying planes are never modified once constructed.  This means vectors
// can be freely copied by value.
type Vector struct {
	width  uint
	signed bool
	value  *big.Int
	// Nil when every digit is known.
	unknown *big.Int
}

// NewVector constructs a fully known vector of the given width from a given
// integer.  Negative integers are represented in two's complement, and any
// bits beyond the width are discarded.
func NewVector(width uint, signed bool, val *big.Int) Vector {
	return newVector(width, signed, val, nil)
}

// FromInt64 constructs a fully known vector from a machine integer.
func FromInt64(width uint, signed bool, val int64) Vector {
	return NewVector(width, signed, big.NewInt(val))
}

// FromUint64 constructs a fully known vector from an unsigned machine integer.
func FromUint64(width uint, signed bool, val uint64) Vector {
	return NewVector(width, signed, new(big.Int).SetUint64(val))
}

// FromBit constructs a single-bit unsigned vector holding the given digit.
func FromBit(b Bit) Vector {
	return Fill(1, false, b)
}

// FromBool constructs a single-bit unsigned vector which is 1 for true and 0
// for false.
func FromBool(b bool) Vector {
	return FromBit(BitOf(b))
}

// Fill constructs a vector of the given width where every digit is b.
func Fill(width uint, signed bool, b Bit) Vector {
	var all = mask(width)
	//
	switch b {
	case Zero:
		return newVector(width, signed, big.NewInt(0), nil)
	case One:
		return newVector(width, signed, all, nil)
	case X:
		return newVector(width, signed, big.NewInt(0), all)
	case Z:
		return newVector(width, signed, all, all)
	}
	//
	panic("invalid bit")
}

// AllOnes constructs a vector of the given width with every bit set.
func AllOnes(width uint, signed bool) Vector {
	return Fill(width, signed, One)
}

// Construct a vector from its two planes, normalising both.
func newVector(width uint, signed bool, value *big.Int, unknown *big.Int) Vector {
	if width == 0 {
		panic("zero width vector")
	}
	//
	var (
		all = mask(width)
		val = new(big.Int).And(value, all)
		unk *big.Int
	)
	//
	if unknown != nil && unknown.Sign() != 0 {
		unk = new(big.Int).And(unknown, all)
		// Normalisation could leave nothing behind
		if unk.Sign() == 0 {
			unk = nil
		}
	}
	//
	return Vector{width, signed, val, unk}
}

// IsValid checks whether this vector was properly constructed.  The zero value
// of Vector is not valid.
func (v Vector) IsValid() bool {
	return v.width > 0
}

// Width returns the number of digits in this vector.
func (v Vector) Width() uint {
	return v.width
}

// IsSigned returns true if this vector should be interpreted as a two's
// complement signed integer.
func (v Vector) IsSigned() bool {
	return v.signed
}

// HasUnknown checks whether any digit is X or Z.
func (v Vector) HasUnknown() bool {
	return v.unknown != nil
}

// Bit returns the digit at a given canonical index.  Indices outside the
// vector yield X.
func (v Vector) Bit(index int64) Bit {
	if index < 0 || index >= int64(v.width) {
		return X
	}
	//
	var (
		i   = int(index)
		val = v.value.Bit(i) == 1
	)
	//
	switch {
	case v.unknown != nil && v.unknown.Bit(i) == 1 && val:
		return Z
	case v.unknown != nil && v.unknown.Bit(i) == 1:
		return X
	case val:
		return One
	default:
		return Zero
	}
}

// MSB returns the most significant digit.
func (v Vector) MSB() Bit {
	return v.Bit(int64(v.width) - 1)
}

// IsNegative checks whether this is a signed vector whose sign bit is one.
func (v Vector) IsNegative() bool {
	return v.signed && v.MSB() == One
}

// IsZero checks whether every digit is a known zero.
func (v Vector) IsZero() bool {
	return v.unknown == nil && v.value.Sign() == 0
}

// BigInt returns the integer value of this vector, taking signedness into
// account.  Unknown digits are read as zero.
func (v Vector) BigInt() *big.Int {
	var val = v.known()
	//
	if v.signed && val.Bit(int(v.width)-1) == 1 {
		val.Sub(val, new(big.Int).Lsh(big.NewInt(1), v.width))
	}
	//
	return val
}

// Int64 returns the value of this vector as a machine integer.  This fails if
// the vector has unknown digits, or its value does not fit.
func (v Vector) Int64() (int64, bool) {
	if v.unknown != nil {
		return 0, false
	}
	//
	val := v.BigInt()
	//
	if !val.IsInt64() {
		return 0, false
	}
	//
	return val.Int64(), true
}

// Uint64 returns the unsigned value of this vector, ignoring signedness.  This
// fails if the vector has unknown digits, or its value does not fit.
func (v Vector) Uint64() (uint64, bool) {
	if v.unknown != nil || !v.value.IsUint64() {
		return 0, false
	}
	//
	return v.value.Uint64(), true
}

// Float64 converts this vector into a double.  Unknown digits are read as zero,
// and the conversion takes signedness into account.  Hence, an unsigned vector
// whose top bit is set converts to a positive value, even at 64 bits.
func (v Vector) Float64() float64 {
	if v.width <= 64 {
		// Anything fitting a signed 64bit integer converts directly
		if val := v.BigInt(); val.IsInt64() {
			return float64(val.Int64())
		}
	}
	//
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	//
	return f
}

// FromFloat64 converts a double into a vector by rounding to the nearest
// integer (ties away from zero).  NaN and infinities produce an X filled
// vector.
func FromFloat64(width uint, signed bool, f float64) Vector {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fill(width, signed, X)
	}
	//
	val, _ := new(big.Float).SetFloat64(math.Round(f)).Int(nil)
	//
	return NewVector(width, signed, val)
}

// CountOnes counts the number of digits which are known to be one.
func (v Vector) CountOnes() uint {
	return popCount(v.known())
}

// CountUnknown counts the number of digits which are X or Z.
func (v Vector) CountUnknown() uint {
	if v.unknown == nil {
		return 0
	}
	//
	return popCount(v.unknown)
}

// Clog2 returns the ceiling of the base two logarithm of this vector, treating
// it as unsigned.  By convention, the result for zero is zero.
func (v Vector) Clog2() uint {
	var val = v.known()
	//
	if val.Sign() == 0 {
		return 0
	}
	//
	return uint(val.Sub(val, big.NewInt(1)).BitLen())
}

// TwoState returns this vector with every X or Z digit replaced by zero, as
// happens when a four-state value is stored into a two-state variable.
func (v Vector) TwoState() Vector {
	if v.unknown == nil {
		return v
	}
	//
	return Vector{v.width, v.signed, v.known(), nil}
}

// Returns the value plane with any unknown digits cleared.
func (v Vector) known() *big.Int {
	var val = new(big.Int).Set(v.value)
	//
	if v.unknown != nil {
		val.AndNot(val, v.unknown)
	}
	//
	return val
}

// Construct a mask covering bits [0,width).
func mask(width uint) *big.Int {
	var m = new(big.Int).Lsh(big.NewInt(1), width)
	//
	return m.Sub(m, big.NewInt(1))
}

// Construct a mask covering bits [lo,hi].
func maskRange(lo uint, hi uint) *big.Int {
	var m = mask(hi - lo + 1)
	//
	return m.Lsh(m, lo)
}

func popCount(val *big.Int) uint {
	var count = 0
	//
	for _, w := range val.Bits() {
		count += bits.OnesCount(uint(w))
	}
	//
	return uint(count)
}
