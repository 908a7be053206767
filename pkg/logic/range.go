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

// Range represents a declared bit range, such as "[7:0]" or "[0:31]".  The
// bounds are retained in declaration order, so that "Left" is always the bound
// written first.  A range is little-endian when its left bound is at least its
// right bound, and big-endian otherwise.  Vectors themselves always use a
// zero-based little-endian index space (referred to as the "canonical" space),
// and a range is used to translate declared indices into that space.
type Range struct {
	Left  int
	Right int
}

// NewRange constructs a range from bounds given in declaration order.
func NewRange(left int, right int) Range {
	return Range{left, right}
}

// RangeOfWidth constructs the conventional little-endian range "[width-1:0]".
func RangeOfWidth(width uint) Range {
	if width == 0 {
		panic("zero width range")
	}
	//
	return Range{int(width) - 1, 0}
}

// Lower returns the numerically smaller of the two bounds.
func (r Range) Lower() int {
	return min(r.Left, r.Right)
}

// Upper returns the numerically larger of the two bounds.
func (r Range) Upper() int {
	return max(r.Left, r.Right)
}

// Width returns the number of bits covered by this range.
func (r Range) Width() uint {
	return uint(r.Upper()-r.Lower()) + 1
}

// IsLittleEndian checks whether the left bound is the most significant one.
func (r Range) IsLittleEndian() bool {
	return r.Left >= r.Right
}

// Contains checks whether a declared index falls within this range.
func (r Range) Contains(index int64) bool {
	return index >= int64(r.Lower()) && index <= int64(r.Upper())
}

// Translate maps an index given in declaration order into the canonical index
// space.  No bounds check is performed here, hence the result may be negative
// or beyond the width.
func (r Range) Translate(index int64) int64 {
	offset := index - int64(r.Lower())
	//
	if r.IsLittleEndian() {
		return offset
	}
	//
	return int64(r.Width()) - 1 - offset
}

// Increment returns 1 for a little-endian range, and -1 otherwise.  This
// corresponds to the direction in which declared indices increase.
func (r Range) Increment() int {
	if r.IsLittleEndian() {
		return 1
	}
	//
	return -1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d]", r.Left, r.Right)
}
