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
package eval

import (
	"fmt"
	"strings"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/logic"
	log "github.com/sirupsen/logrus"
)

func evalCall(e *ast.Call, ctx *Context) constant.Value {
	var subroutine = e.Subroutine
	// Introspection examines argument types only
	if subroutine.System.IsIntrospection() {
		return evalIntrospection(e)
	}
	// Evaluate arguments in the caller's frame
	args := make([]constant.Value, len(e.Arguments))
	//
	for i, arg := range e.Arguments {
		if args[i] = Evaluate(arg, ctx); !args[i].IsValid() {
			return unevaluable
		}
	}
	//
	if subroutine.IsSystem() {
		return evalSystemCall(e, args)
	}
	//
	return invoke(subroutine, args, ctx)
}

// Invoke a user-defined subroutine with the given (evaluated) arguments.  A
// frame is pushed for the duration of the call, in which each formal argument
// is bound to its value and the return variable is bound to null.  The result
// is whatever remains in the return variable once the body completes, or
// unevaluable if the body could not be executed.
func invoke(subroutine *ast.Subroutine, args []constant.Value, ctx *Context) constant.Value {
	if len(args) != len(subroutine.Arguments) {
		panic(fmt.Sprintf("%s expects %d arguments, given %d", subroutine.Name(), len(subroutine.Arguments), len(args)))
	} else if subroutine.Body == nil {
		return unevaluable
	}
	//
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("call %s(%s) at depth %d", subroutine.Name(), formatArgs(args), ctx.CallDepth()+1)
	}
	//
	if !ctx.PushFrame(subroutine) {
		return unevaluable
	}
	//
	defer ctx.PopFrame()
	//
	for i, formal := range subroutine.Arguments {
		ctx.Declare(formal, coerce(args[i], formal.Type()))
	}
	//
	slot := ctx.Declare(subroutine.ReturnVar, constant.NullValue())
	//
	if execute(subroutine.Body, ctx) == aborted {
		return unevaluable
	}
	//
	result := ctx.Load(slot)
	//
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("return %s from %s", result, subroutine.Name())
	}
	//
	return result
}

func formatArgs(args []constant.Value) string {
	var items = make([]string, len(args))
	//
	for i, arg := range args {
		items[i] = arg.String()
	}
	//
	return strings.Join(items, ", ")
}

// ============================================================================
// System Functions
// ============================================================================

// Introspection functions read the declared range (or width) of their
// argument's type.  The argument itself is never evaluated.
func evalIntrospection(e *ast.Call) constant.Value {
	var (
		argType = e.Arguments[0].Type()
		it      = ast.AsIntegral(argType)
	)
	//
	if e.Subroutine.System == ast.BitsOf {
		return integerResult(e, int64(argType.Width()))
	} else if it == nil {
		return unevaluable
	}
	//
	var rng = it.Range
	//
	switch e.Subroutine.System {
	case ast.Low:
		return integerResult(e, int64(rng.Lower()))
	case ast.High:
		return integerResult(e, int64(rng.Upper()))
	case ast.Left:
		return integerResult(e, int64(rng.Left))
	case ast.Right:
		return integerResult(e, int64(rng.Right))
	case ast.Size:
		return integerResult(e, int64(rng.Width()))
	case ast.Increment:
		return integerResult(e, int64(rng.Increment()))
	}
	//
	panic(fmt.Sprintf("unknown system function %s", e.Subroutine.System))
}

// Functions of the argument's value.
func evalSystemCall(e *ast.Call, args []constant.Value) constant.Value {
	if !args[0].IsInteger() {
		return unevaluable
	}
	//
	var v = args[0].Integer()
	//
	switch e.Subroutine.System {
	case ast.Clog2:
		if v.HasUnknown() {
			t := integralType(e)
			return constant.FromVector(logic.Fill(t.Width(), t.Signed, logic.X))
		}
		//
		return integerResult(e, int64(v.Clog2()))
	case ast.Signed:
		return coerce(constant.FromVector(v.AsSigned(true)), e.Type())
	case ast.Unsigned:
		return coerce(constant.FromVector(v.AsSigned(false)), e.Type())
	case ast.CountOnes:
		return integerResult(e, int64(v.CountOnes()))
	case ast.OneHot:
		return coerce(fromBool(v.CountOnes() == 1), e.Type())
	case ast.OneHot0:
		return coerce(fromBool(v.CountOnes() <= 1), e.Type())
	case ast.IsUnknown:
		return coerce(fromBool(v.HasUnknown()), e.Type())
	}
	//
	panic(fmt.Sprintf("unknown system function %s", e.Subroutine.System))
}

// Construct an integer result of the call's type.
func integerResult(e *ast.Call, value int64) constant.Value {
	t := integralType(e)
	//
	return constant.FromVector(logic.FromInt64(t.Width(), t.Signed, value))
}
