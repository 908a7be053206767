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

// UnaryOperator identifies the operator of a unary expression.
type UnaryOperator uint8

const (
	Plus UnaryOperator = iota // +
	Minus                     // -
	BitwiseNot                // ~
	ReduceAnd                 // &
	ReduceOr                  // |
	ReduceXor                 // ^
	ReduceNand                // ~&
	ReduceNor                 // ~|
	ReduceXnor                // ~^
	LogicalNot                // !
	PreIncrement              // ++x
	PreDecrement              // --x
	PostIncrement             // x++
	PostDecrement             // x--
)

var unaryOperators = []string{
	"+", "-", "~", "&", "|", "^", "~&", "~|", "~^", "!", "++", "--", "post++", "post--",
}

// LookupUnaryOperator finds the unary operator written with the given token.
func LookupUnaryOperator(token string) (UnaryOperator, bool) {
	for i, s := range unaryOperators {
		if s == token {
			return UnaryOperator(i), true
		}
	}
	//
	if token == "^~" {
		return ReduceXnor, true
	}
	//
	return 0, false
}

// IsAssignment checks whether this operator writes its operand (i.e. is an
// increment or decrement).
func (op UnaryOperator) IsAssignment() bool {
	return op >= PreIncrement
}

// IsReduction checks whether this operator produces a single bit from its
// operand.
func (op UnaryOperator) IsReduction() bool {
	return op >= ReduceAnd && op <= LogicalNot
}

func (op UnaryOperator) String() string {
	return unaryOperators[op]
}

// BinaryOperator identifies the operator of a binary expression.
type BinaryOperator uint8

const (
	Add                            BinaryOperator = iota // +
	Subtract                                             // -
	Multiply                                             // *
	Divide                                               // /
	Mod                                                  // %
	BinaryAnd                                            // &
	BinaryOr                                             // |
	BinaryXor                                            // ^
	BinaryXnor                                           // ~^
	Equality                                             // ==
	Inequality                                           // !=
	CaseEquality                                         // ===
	CaseInequality                                       // !==
	WildcardEquality                                     // ==?
	WildcardInequality                                   // !=?
	GreaterThanEqual                                     // >=
	GreaterThan                                          // >
	LessThanEqual                                        // <=
	LessThan                                             // <
	LogicalAnd                                           // &&
	LogicalOr                                            // ||
	LogicalImplication                                   // ->
	LogicalEquivalence                                   // <->
	LogicalShiftLeft                                     // <<
	LogicalShiftRight                                    // >>
	ArithmeticShiftLeft                                  // <<<
	ArithmeticShiftRight                                 // >>>
	Power                                                // **
	Replication                                          // {n{...}}
	Assignment                                           // =
	AddAssignment                                        // +=
	SubtractAssignment                                   // -=
	MultiplyAssignment                                   // *=
	DivideAssignment                                     // /=
	ModAssignment                                        // %=
	AndAssignment                                        // &=
	OrAssignment                                         // |=
	XorAssignment                                        // ^=
	LogicalLeftShiftAssignment                           // <<=
	LogicalRightShiftAssignment                          // >>=
	ArithmeticLeftShiftAssignment                        // <<<=
	ArithmeticRightShiftAssignment                       // >>>=
)

var binaryOperators = []string{
	"+", "-", "*", "/", "%", "&", "|", "^", "~^", "==", "!=", "===", "!==", "==?", "!=?",
	">=", ">", "<=", "<", "&&", "||", "->", "<->", "<<", ">>", "<<<", ">>>", "**", "repl",
	"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=", "<<<=", ">>>=",
}

// LookupBinaryOperator finds the binary operator written with the given token.
// Replication has no token of its own, hence is never returned.
func LookupBinaryOperator(token string) (BinaryOperator, bool) {
	for i, s := range binaryOperators {
		if s == token && BinaryOperator(i) != Replication {
			return BinaryOperator(i), true
		}
	}
	//
	if token == "^~" {
		return BinaryXnor, true
	}
	//
	return 0, false
}

// IsAssignment checks whether this operator writes its left operand.
func (op BinaryOperator) IsAssignment() bool {
	return op >= Assignment
}

// Underlying returns the operator applied by a compound assignment, for
// example Add for AddAssignment.  For plain assignment, and for operators
// which are not assignments, the operator itself is returned.
func (op BinaryOperator) Underlying() BinaryOperator {
	switch op {
	case AddAssignment:
		return Add
	case SubtractAssignment:
		return Subtract
	case MultiplyAssignment:
		return Multiply
	case DivideAssignment:
		return Divide
	case ModAssignment:
		return Mod
	case AndAssignment:
		return BinaryAnd
	case OrAssignment:
		return BinaryOr
	case XorAssignment:
		return BinaryXor
	case LogicalLeftShiftAssignment:
		return LogicalShiftLeft
	case LogicalRightShiftAssignment:
		return LogicalShiftRight
	case ArithmeticLeftShiftAssignment:
		return ArithmeticShiftLeft
	case ArithmeticRightShiftAssignment:
		return ArithmeticShiftRight
	default:
		return op
	}
}

// IsComparison checks whether this operator compares its operands, producing
// a single bit.
func (op BinaryOperator) IsComparison() bool {
	return op >= Equality && op <= LessThan
}

// IsLogical checks whether this operator combines the truth values of its
// operands.
func (op BinaryOperator) IsLogical() bool {
	return op >= LogicalAnd && op <= LogicalEquivalence
}

// IsSelfDetermined checks whether the right operand of this operator is sized
// independently of the left (i.e. for shifts and power).  In such case, the
// result takes the type of the left operand.
func (op BinaryOperator) IsSelfDetermined() bool {
	return op >= LogicalShiftLeft && op <= Power
}

func (op BinaryOperator) String() string {
	return binaryOperators[op]
}
