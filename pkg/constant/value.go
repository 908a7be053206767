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
package constant

import (
	"fmt"
	"math"
	"strconv"

	"github.com/consensys/go-svfold/pkg/logic"
)

// Kind identifies which alternative of a constant value is held.
type Kind uint8

const (
	// Unevaluable signals that an expression is not constant.  This is the
	// kind of the zero value.
	Unevaluable Kind = iota
	// Integer values hold a four-state bit-vector.
	Integer
	// Real values hold a double.
	Real
	// Null is a placeholder, such as the initial value of a function's return
	// slot.
	Null
)

func (k Kind) String() string {
	switch k {
	case Unevaluable:
		return "unevaluable"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Null:
		return "null"
	}
	//
	panic("unreachable")
}

// Value is the result of constant evaluation.  Its zero value is unevaluable,
// which means "not constant" and should be propagated by any operation which
// consumes it.
type Value struct {
	kind    Kind
	integer logic.Vector
	real    float64
}

// FromVector constructs an integer value.
func FromVector(v logic.Vector) Value {
	if !v.IsValid() {
		panic("invalid vector")
	}
	//
	return Value{kind: Integer, integer: v}
}

// FromReal constructs a real value.
func FromReal(f float64) Value {
	return Value{kind: Real, real: f}
}

// NullValue constructs the null placeholder.
func NullValue() Value {
	return Value{kind: Null}
}

// Kind returns the kind of this value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid returns false for an unevaluable value, and true otherwise.
func (v Value) IsValid() bool {
	return v.kind != Unevaluable
}

// IsInteger checks whether this is an integer value.
func (v Value) IsInteger() bool {
	return v.kind == Integer
}

// IsReal checks whether this is a real value.
func (v Value) IsReal() bool {
	return v.kind == Real
}

// IsNull checks whether this is the null placeholder.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// Integer returns the bit-vector held by an integer value.
func (v Value) Integer() logic.Vector {
	if v.kind != Integer {
		panic(fmt.Sprintf("%s value is not an integer", v.kind))
	}
	//
	return v.integer
}

// Real returns the double held by a real value.
func (v Value) Real() float64 {
	if v.kind != Real {
		panic(fmt.Sprintf("%s value is not a real", v.kind))
	}
	//
	return v.real
}

// Identical checks whether two values are of the same kind and hold the same
// thing.  Integers must have the same width and the same digits (including X
// and Z), though signedness is ignored.  Reals are compared bit for bit, so NaN
// is identical to itself.
func (v Value) Identical(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	//
	switch v.kind {
	case Integer:
		return v.integer.Width() == o.integer.Width() && v.integer.CaseEqual(o.integer)
	case Real:
		return math.Float64bits(v.real) == math.Float64bits(o.real)
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case Integer:
		return v.integer.String()
	case Real:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	default:
		return v.kind.String()
	}
}
