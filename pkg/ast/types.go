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
	"fmt"

	"github.com/consensys/go-svfold/pkg/logic"
)

// Type represents the resolved type attached to every expression.
type Type interface {
	// Width returns the number of bits required to hold a value of this type.
	Width() uint
	// String returns a human-readable representation of this type.
	String() string
}

// ============================================================================
// Integral
// ============================================================================

// IntegralType is a packed bit-vector type, such as "logic [7:0]" or "int".
type IntegralType struct {
	// Declared range, which determines both width and endianness.
	Range logic.Range
	// Signed integral types use two's complement.
	Signed bool
	// Four-state types admit X and Z digits, whilst two-state types do not.
	FourState bool
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Type = (*IntegralType)(nil)

// NewIntegralType constructs an integral type over a given declared range.
func NewIntegralType(rng logic.Range, signed bool, fourState bool) *IntegralType {
	return &IntegralType{rng, signed, fourState}
}

// Int returns the 32-bit signed two-state type "int".
func Int() *IntegralType {
	return NewIntegralType(logic.NewRange(31, 0), true, false)
}

// Integer returns the 32-bit signed four-state type "integer".
func Integer() *IntegralType {
	return NewIntegralType(logic.NewRange(31, 0), true, true)
}

// Logic returns an unsigned four-state vector type declared with the given
// bounds.
func Logic(msb int, lsb int) *IntegralType {
	return NewIntegralType(logic.NewRange(msb, lsb), false, true)
}

// Bits returns an unsigned two-state vector type declared with the given
// bounds.
func Bits(msb int, lsb int) *IntegralType {
	return NewIntegralType(logic.NewRange(msb, lsb), false, false)
}

// OfWidth returns a type of the given width, declared as "[width-1:0]".
func OfWidth(width uint, signed bool, fourState bool) *IntegralType {
	return NewIntegralType(logic.RangeOfWidth(width), signed, fourState)
}

// Width implementation for Type interface.
func (t *IntegralType) Width() uint {
	return t.Range.Width()
}

// WithSign returns a type identical to this, except for its signedness.
func (t *IntegralType) WithSign(signed bool) *IntegralType {
	return NewIntegralType(t.Range, signed, t.FourState)
}

func (t *IntegralType) String() string {
	var (
		name = "bit"
		sign = ""
	)
	//
	if t.FourState {
		name = "logic"
	}
	//
	if t.Signed {
		sign = " signed"
	}
	//
	return fmt.Sprintf("%s%s [%d:%d]", name, sign, t.Range.Left, t.Range.Right)
}

// ============================================================================
// Real
// ============================================================================

// RealType is a floating point type, either "real" (64 bits) or "shortreal"
// (32 bits).
type RealType struct {
	Bits uint
}

var _ Type = (*RealType)(nil)

// Real returns the type "real".
func Real() *RealType {
	return &RealType{64}
}

// ShortReal returns the type "shortreal".
func ShortReal() *RealType {
	return &RealType{32}
}

// Width implementation for Type interface.
func (t *RealType) Width() uint {
	return t.Bits
}

func (t *RealType) String() string {
	if t.Bits == 32 {
		return "shortreal"
	}
	//
	return "real"
}

// ============================================================================
// Void
// ============================================================================

// VoidType is the return type of functions which produce no value.
type VoidType struct{}

var _ Type = (*VoidType)(nil)

// Void returns the type "void".
func Void() *VoidType {
	return &VoidType{}
}

// Width implementation for Type interface.
func (t *VoidType) Width() uint {
	return 0
}

func (t *VoidType) String() string {
	return "void"
}

// ============================================================================
// Helpers
// ============================================================================

// AsIntegral returns the given type as an integral type, or nil if it is not
// one.
func AsIntegral(t Type) *IntegralType {
	if it, ok := t.(*IntegralType); ok {
		return it
	}
	//
	return nil
}

// IsReal checks whether the given type is a floating point type.
func IsReal(t Type) bool {
	_, ok := t.(*RealType)
	return ok
}

// CommonType determines the type to which both operands of an arithmetic or
// bitwise operator are converted.  If either operand is real, the result is
// real.  Otherwise, the common type is as wide as the widest operand, signed
// only if both operands are signed, and four-state if either is.
func CommonType(lhs Type, rhs Type) Type {
	var (
		l = AsIntegral(lhs)
		r = AsIntegral(rhs)
	)
	//
	switch {
	case IsReal(lhs) || IsReal(rhs):
		return Real()
	case l == nil || r == nil:
		return nil
	}
	//
	return OfWidth(max(l.Width(), r.Width()), l.Signed && r.Signed, l.FourState || r.FourState)
}
