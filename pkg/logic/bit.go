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

import "fmt"

// Bit represents a single four-state digit.  That is, a digit which is either
// logic zero, logic one, unknown (X) or high-impedance (Z).
type Bit uint8

const (
	// Zero is logic zero.
	Zero Bit = iota
	// One is logic one.
	One
	// X is the unknown value.
	X
	// Z is the high-impedance value.
	Z
)

// BitOf converts a boolean into a (known) bit.
func BitOf(b bool) Bit {
	if b {
		return One
	}
	//
	return Zero
}

// IsUnknown checks whether this bit is either X or Z.
func (b Bit) IsUnknown() bool {
	return b == X || b == Z
}

// IsKnown checks whether this bit is either zero or one.
func (b Bit) IsKnown() bool {
	return b == Zero || b == One
}

// Bool returns true only when this bit is logic one.  Observe that both X and Z
// are considered false here.
func (b Bit) Bool() bool {
	return b == One
}

// Not returns the four-state logical negation of this bit.
func (b Bit) Not() Bit {
	switch b {
	case Zero:
		return One
	case One:
		return Zero
	default:
		return X
	}
}

// And returns the four-state conjunction of two bits.  A known zero dominates
// an unknown.
func (b Bit) And(o Bit) Bit {
	switch {
	case b == Zero || o == Zero:
		return Zero
	case b == One && o == One:
		return One
	default:
		return X
	}
}

// Or returns the four-state disjunction of two bits.  A known one dominates an
// unknown.
func (b Bit) Or(o Bit) Bit {
	switch {
	case b == One || o == One:
		return One
	case b == Zero && o == Zero:
		return Zero
	default:
		return X
	}
}

// Xor returns the four-state exclusive-or of two bits.
func (b Bit) Xor(o Bit) Bit {
	if b.IsUnknown() || o.IsUnknown() {
		return X
	}
	//
	return BitOf(b != o)
}

// Rune returns the character used to print this bit in a binary literal.
func (b Bit) Rune() rune {
	switch b {
	case Zero:
		return '0'
	case One:
		return '1'
	case X:
		return 'x'
	case Z:
		return 'z'
	}
	//
	panic(fmt.Sprintf("invalid bit (%d)", uint8(b)))
}

func (b Bit) String() string {
	return string(b.Rune())
}
