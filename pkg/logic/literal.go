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
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// DefaultWidth is the width given to unsized literals, such as "'hff" or "123".
const DefaultWidth = 32

// ParseUnbasedUnsized recognises one of the unbased unsized literals "'0",
// "'1", "'x" or "'z", returning the digit which should fill the destination.
func ParseUnbasedUnsized(text string) (Bit, bool) {
	switch strings.ToLower(text) {
	case "'0":
		return Zero, true
	case "'1":
		return One, true
	case "'x":
		return X, true
	case "'z":
		return Z, true
	}
	//
	return Zero, false
}

// Parse an integer literal written using the usual syntax, for example
// "4'b10xz", "8'shff", "'o17", "16'd42", "32'dx" or simply "42" and "-3".
// Digits may be separated with underscores, and "?" is accepted in place of
// Z.  When a sized literal has fewer digits than its size, it is extended with
// zeros unless the leftmost digit is X or Z (in which case it is extended with
// that digit).  When a literal has more digits than its size, the most
// significant digits are discarded.
func Parse(text string) (Vector, error) {
	var negative = false
	//
	if strings.HasPrefix(text, "-") {
		negative, text = true, text[1:]
	}
	//
	v, err := parseUnsigned(text)
	//
	if err != nil {
		return Vector{}, err
	} else if negative {
		return v.Neg(), nil
	}
	//
	return v, nil
}

func parseUnsigned(text string) (Vector, error) {
	var tick = strings.IndexByte(text, '\'')
	//
	if tick < 0 {
		return parseDecimal(text)
	} else if _, ok := ParseUnbasedUnsized(text); ok {
		return Vector{}, fmt.Errorf("unbased unsized literal %s requires a context", text)
	}
	//
	var (
		size   = uint(0)
		sized  = tick > 0
		rest   = text[tick+1:]
		signed = false
	)
	// Parse size (when given)
	if sized {
		n, err := strconv.ParseUint(strings.ReplaceAll(text[:tick], "_", ""), 10, 32)
		if err != nil || n == 0 {
			return Vector{}, fmt.Errorf("invalid literal size \"%s\"", text[:tick])
		}
		//
		size = uint(n)
	}
	// Parse signedness
	if len(rest) > 0 && (rest[0] == 's' || rest[0] == 'S') {
		signed, rest = true, rest[1:]
	}
	//
	if len(rest) < 2 {
		return Vector{}, fmt.Errorf("malformed literal \"%s\"", text)
	}
	//
	var (
		digits = strings.ReplaceAll(rest[1:], "_", "")
		b      = builder{}
		err    error
	)
	//
	switch rest[0] {
	case 'b', 'B':
		err = b.appendDigits(digits, 1)
	case 'o', 'O':
		err = b.appendDigits(digits, 3)
	case 'h', 'H':
		err = b.appendDigits(digits, 4)
	case 'd', 'D':
		err = b.appendDecimal(digits, size)
	default:
		err = fmt.Errorf("unknown base '%c'", rest[0])
	}
	//
	if err != nil {
		return Vector{}, fmt.Errorf("malformed literal \"%s\" (%w)", text, err)
	} else if !sized {
		size = max(DefaultWidth, b.width)
	}
	//
	return b.finish(size, signed), nil
}

// Plain decimals are signed, and at least 32 bits wide.
func parseDecimal(text string) (Vector, error) {
	var val, ok = new(big.Int).SetString(strings.ReplaceAll(text, "_", ""), 10)
	//
	if !ok || val.Sign() < 0 || strings.HasPrefix(text, "_") {
		return Vector{}, fmt.Errorf("malformed integer \"%s\"", text)
	}
	// Leave room for the sign bit
	width := max(DefaultWidth, uint(val.BitLen())+1)
	//
	return NewVector(width, true, val), nil
}

// builder accumulates the digits of a based literal, most significant first.
type builder struct {
	width   uint
	value   big.Int
	unknown big.Int
	// Leftmost digit seen
	first Bit
}

func (p *builder) appendDigits(digits string, bits uint) error {
	if len(digits) == 0 {
		return errors.New("missing digits")
	}
	//
	var limit = uint64(1) << bits
	//
	for i, c := range digits {
		var (
			val  uint64
			fill Bit
		)
		//
		switch c {
		case 'x', 'X':
			fill = X
		case 'z', 'Z', '?':
			fill = Z
		default:
			n, err := strconv.ParseUint(string(c), 16, 8)
			if err != nil || n >= limit {
				return fmt.Errorf("invalid digit '%c'", c)
			}
			//
			val, fill = n, Zero
		}
		//
		if i == 0 {
			p.first = fill
		}
		//
		p.append(bits, val, fill)
	}
	//
	return nil
}

func (p *builder) appendDecimal(digits string, size uint) error {
	switch strings.ToLower(digits) {
	case "x":
		p.first, p.width = X, max(size, 1)
		p.unknown.Set(mask(p.width))
		//
		return nil
	case "z", "?":
		p.first, p.width = Z, max(size, 1)
		p.unknown.Set(mask(p.width))
		p.value.Set(mask(p.width))
		//
		return nil
	}
	//
	val, ok := new(big.Int).SetString(digits, 10)
	if !ok || val.Sign() < 0 {
		return fmt.Errorf("invalid decimal digits \"%s\"", digits)
	}
	//
	p.value.Set(val)
	p.width = max(uint(val.BitLen()), 1)
	//
	return nil
}

// Append a digit of a given number of bits.  The fill indicates whether the
// digit is known (Zero) or entirely X or Z.
func (p *builder) append(bits uint, val uint64, fill Bit) {
	p.value.Lsh(&p.value, bits)
	p.unknown.Lsh(&p.unknown, bits)
	p.width += bits
	//
	switch fill {
	case X:
		p.unknown.Or(&p.unknown, mask(bits))
	case Z:
		p.unknown.Or(&p.unknown, mask(bits))
		p.value.Or(&p.value, mask(bits))
	default:
		p.value.Or(&p.value, new(big.Int).SetUint64(val))
	}
}

// Finish the literal by resizing to the given width.
func (p *builder) finish(size uint, signed bool) Vector {
	var v = newVector(max(p.width, 1), false, &p.value, &p.unknown)
	//
	if size <= v.width {
		return v.Truncate(size).AsSigned(signed)
	} else if p.first.IsUnknown() {
		// Extend with the leftmost unknown digit
		return v.AsSigned(true).Extend(size, true).AsSigned(signed)
	}
	//
	return v.Extend(size, false).AsSigned(signed)
}

// ============================================================================
// Formatting
// ============================================================================

// String returns this vector as a literal.  Fully known vectors are written in
// decimal (e.g. "8'd170" or "-4'sd3"), whilst vectors with unknown digits are
// written in binary (e.g. "4'b10xz").
func (v Vector) String() string {
	if v.unknown != nil {
		return v.Format('b')
	}
	//
	return v.Format('d')
}

// Format writes this vector as a sized literal in a given radix, which is one
// of 'b', 'o', 'd' or 'h'.  Octal and hexadecimal digits covering a mixture
// of known and unknown bits are written as X.  Decimal with unknown digits is
// only possible when all digits are X or all are Z.  Otherwise, binary is used
// instead.
func (v Vector) Format(radix byte) string {
	var sign = ""
	//
	if v.signed {
		sign = "s"
	}
	//
	switch radix {
	case 'd':
		return v.formatDecimal(sign)
	case 'o':
		return fmt.Sprintf("%d'%so%s", v.width, sign, v.digits(3))
	case 'h':
		return fmt.Sprintf("%d'%sh%s", v.width, sign, v.digits(4))
	default:
		return fmt.Sprintf("%d'%sb%s", v.width, sign, v.Binary())
	}
}

// Binary returns the digits of this vector, most significant first.
func (v Vector) Binary() string {
	var builder strings.Builder
	//
	for i := int64(v.width) - 1; i >= 0; i-- {
		builder.WriteRune(v.Bit(i).Rune())
	}
	//
	return builder.String()
}

func (v Vector) formatDecimal(sign string) string {
	switch {
	case v.unknown != nil && v.CountUnknown() == v.width && v.value.Sign() == 0:
		return fmt.Sprintf("%d'%sdx", v.width, sign)
	case v.unknown != nil && v.CountUnknown() == v.width && v.value.Cmp(v.unknown) == 0:
		return fmt.Sprintf("%d'%sdz", v.width, sign)
	case v.unknown != nil:
		return v.Format('b')
	}
	//
	var val = v.BigInt()
	//
	if val.Sign() < 0 {
		return fmt.Sprintf("-%d'%sd%s", v.width, sign, new(big.Int).Neg(val).String())
	}
	//
	return fmt.Sprintf("%d'%sd%s", v.width, sign, val.String())
}

// Group digits into chunks of a given number of bits (for octal and hex).
func (v Vector) digits(bits uint) string {
	var (
		builder strings.Builder
		n       = (v.width + bits - 1) / bits
	)
	//
	for i := int64(n) - 1; i >= 0; i-- {
		var (
			lsb   = i * int64(bits)
			chunk = v.Slice(min(lsb+int64(bits), int64(v.width))-1, lsb)
		)
		//
		switch {
		case !chunk.HasUnknown():
			builder.WriteString(strconv.FormatUint(chunk.value.Uint64(), 16))
		case chunk.CountUnknown() == chunk.width && chunk.value.Cmp(chunk.unknown) == 0:
			builder.WriteRune('z')
		case chunk.CountUnknown() == chunk.width && chunk.value.Sign() == 0:
			builder.WriteRune('x')
		default:
			builder.WriteRune('X')
		}
	}
	//
	return builder.String()
}
