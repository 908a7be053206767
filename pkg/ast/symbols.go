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
	"github.com/consensys/go-svfold/pkg/constant"
)

// Symbol is a named entity to which a reference can be resolved.  Symbols are
// compared by identity, hence they are always held by pointer.
type Symbol interface {
	// Name of this symbol as declared.
	Name() string
	// Type of this symbol.
	Type() Type
}

// ============================================================================
// Variable
// ============================================================================

// Variable represents a variable, formal argument or local.  Variables carry
// no value of their own: their values live in an evaluation context.
type Variable struct {
	name string
	typ  Type
}

var _ Symbol = (*Variable)(nil)

// NewVariable constructs a new variable symbol.
func NewVariable(name string, typ Type) *Variable {
	return &Variable{name, typ}
}

// Name implementation for Symbol interface.
func (p *Variable) Name() string {
	return p.name
}

// Type implementation for Symbol interface.
func (p *Variable) Type() Type {
	return p.typ
}

// ============================================================================
// Parameter
// ============================================================================

// Parameter represents an elaboration-time parameter whose value has already
// been determined.
type Parameter struct {
	name  string
	typ   Type
	value constant.Value
}

var _ Symbol = (*Parameter)(nil)

// NewParameter constructs a parameter with a precomputed value.
func NewParameter(name string, typ Type, value constant.Value) *Parameter {
	return &Parameter{name, typ, value}
}

// Name implementation for Symbol interface.
func (p *Parameter) Name() string {
	return p.name
}

// Type implementation for Symbol interface.
func (p *Parameter) Type() Type {
	return p.typ
}

// Value returns the precomputed value of this parameter.
func (p *Parameter) Value() constant.Value {
	return p.value
}

// ============================================================================
// Subroutine
// ============================================================================

// SystemFunction identifies a built-in function, such as $clog2.
type SystemFunction uint8

// NotSystem is used for user-defined subroutines.
const (
	NotSystem SystemFunction = iota
	Clog2
	BitsOf
	Low
	High
	Left
	Right
	Size
	Increment
	Signed
	Unsigned
	CountOnes
	OneHot
	OneHot0
	IsUnknown
)

var systemFunctions = map[string]SystemFunction{
	"$clog2":     Clog2,
	"$bits":      BitsOf,
	"$low":       Low,
	"$high":      High,
	"$left":      Left,
	"$right":     Right,
	"$size":      Size,
	"$increment": Increment,
	"$signed":    Signed,
	"$unsigned":  Unsigned,
	"$countones": CountOnes,
	"$onehot":    OneHot,
	"$onehot0":   OneHot0,
	"$isunknown": IsUnknown,
}

// LookupSystemFunction finds the system function with the given name
// (including its leading '$').
func LookupSystemFunction(name string) (SystemFunction, bool) {
	f, ok := systemFunctions[name]
	return f, ok
}

// IsIntrospection checks whether this system function only examines the type
// of its argument, rather than its value.
func (f SystemFunction) IsIntrospection() bool {
	switch f {
	case BitsOf, Low, High, Left, Right, Size, Increment:
		return true
	default:
		return false
	}
}

func (f SystemFunction) String() string {
	for name, g := range systemFunctions {
		if f == g {
			return name
		}
	}
	//
	return "<user>"
}

// Subroutine represents a function which can be invoked from an expression.
// User-defined subroutines have a body, whilst system functions are
// implemented directly by the evaluator.
type Subroutine struct {
	name       string
	returnType Type
	// Formal arguments, in declaration order.
	Arguments []*Variable
	// Synthetic variable named for the function, which accumulates its
	// return value during a call.
	ReturnVar *Variable
	// Statement making up the body (nil for system functions).
	Body Statement
	// Identifies the system function, or NotSystem.
	System SystemFunction
}

var _ Symbol = (*Subroutine)(nil)

// NewSubroutine constructs a user-defined subroutine.  The body is set once
// parsed, since it may refer to the subroutine itself.
func NewSubroutine(name string, returnType Type, args []*Variable) *Subroutine {
	return &Subroutine{name, returnType, args, NewVariable(name, returnType), nil, NotSystem}
}

// NewSystemSubroutine constructs a subroutine representing a system
// function.
func NewSystemSubroutine(fn SystemFunction) *Subroutine {
	return &Subroutine{fn.String(), Void(), nil, nil, nil, fn}
}

// Name implementation for Symbol interface.
func (p *Subroutine) Name() string {
	return p.name
}

// Type implementation for Symbol interface.  This is the return type.
func (p *Subroutine) Type() Type {
	return p.returnType
}

// IsSystem checks whether this is a system function.
func (p *Subroutine) IsSystem() bool {
	return p.System != NotSystem
}
