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

// Statement represents a statement within the body of a subroutine.
type Statement interface {
	isStatement()
}

// Block is a sequence of statements executed in order.
type Block struct {
	Statements []Statement
}

// ExpressionStatement evaluates an expression for its side effects, such as
// an assignment or a call.
type ExpressionStatement struct {
	Expr Expression
}

// VariableDeclaration declares a local variable, with an optional initialiser.
type VariableDeclaration struct {
	Symbol *Variable
	// Initialiser (or nil)
	Initializer Expression
}

// Return leaves the enclosing subroutine, optionally writing a value into its
// return slot first.
type Return struct {
	// Returned value (or nil)
	Value Expression
}

// Conditional represents "if (c) s1 else s2".
type Conditional struct {
	Condition Expression
	Then      Statement
	// Else branch (or nil)
	Else Statement
}

// While represents "while (c) s".
type While struct {
	Condition Expression
	Body      Statement
}

// For represents "for (init; cond; step) s".  Any of the initialiser,
// condition or step may be nil, and an absent condition holds.
type For struct {
	Init      Statement
	Condition Expression
	Step      Expression
	Body      Statement
}

// Break leaves the innermost enclosing loop.
type Break struct{}

// Continue begins the next iteration of the innermost enclosing loop.
type Continue struct{}

func (*Block) isStatement()               {}
func (*ExpressionStatement) isStatement() {}
func (*VariableDeclaration) isStatement() {}
func (*Return) isStatement()              {}
func (*Conditional) isStatement()         {}
func (*While) isStatement()               {}
func (*For) isStatement()                 {}
func (*Break) isStatement()               {}
func (*Continue) isStatement()            {}
