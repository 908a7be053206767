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
	"errors"
	"testing"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/util/assert"
)

func Test_Context_00(t *testing.T) {
	var ctx = newContext()
	//
	assert.Equal(t, 1, ctx.FrameCount())
	assert.Equal(t, 0, ctx.CallDepth())
	assert.True(t, ctx.Subroutine() == nil)
	assert.True(t, ctx.Err() == nil)
	assert.Panics(t, func() { ctx.PopFrame() })
}

func Test_Context_01(t *testing.T) {
	var (
		ctx = newContext()
		x   = ast.NewVariable("x", ast.Int())
		y   = ast.NewVariable("y", ast.Int())
	)
	//
	s1 := ctx.Declare(x, intValue(1))
	s2 := ctx.Declare(y, intValue(2))
	// Redeclaring reuses the slot
	s3 := ctx.Declare(x, intValue(3))
	//
	assert.True(t, s1 == s3)
	assert.False(t, s1 == s2)
	check_Int(t, ctx.Load(s1), 3)
	//
	ctx.Store(s2, intValue(4))
	v, ok := ctx.Local(y)
	//
	assert.True(t, ok)
	check_Int(t, v, 4)
}

func Test_Context_02(t *testing.T) {
	var (
		ctx = newContext()
		x   = ast.NewVariable("x", ast.Int())
		f   = ast.NewSubroutine("f", ast.Int(), nil)
	)
	//
	ctx.Declare(x, intValue(1))
	assert.True(t, ctx.PushFrame(f))
	// Root locals are hidden
	_, ok := ctx.Lookup(x)
	assert.False(t, ok)
	assert.True(t, ctx.Subroutine() == f)
	assert.Equal(t, 1, ctx.CallDepth())
	// Shadow within callee
	inner := ctx.Declare(x, intValue(2))
	check_Int(t, ctx.Load(inner), 2)
	//
	ctx.PopFrame()
	//
	v, ok := ctx.Local(x)
	assert.True(t, ok)
	check_Int(t, v, 1)
	// Slots of popped frames are stale
	assert.Panics(t, func() { ctx.Load(inner) })
	assert.Panics(t, func() { ctx.Store(inner, constant.NullValue()) })
}

func Test_Context_03(t *testing.T) {
	var (
		options = DefaultOptions()
		f       = ast.NewSubroutine("f", ast.Int(), nil)
	)
	//
	options.MaxCallDepth = 2
	ctx := NewContext(options)
	//
	assert.True(t, ctx.PushFrame(f))
	assert.True(t, ctx.PushFrame(f))
	assert.False(t, ctx.PushFrame(f))
	assert.True(t, errors.Is(ctx.Err(), ErrCallDepth))
	assert.Equal(t, 3, ctx.FrameCount())
	//
	ctx.PopFrame()
	ctx.PopFrame()
	ctx.Reset()
	//
	assert.True(t, ctx.Err() == nil)
	assert.Equal(t, 0, ctx.Steps())
}

func Test_Context_04(t *testing.T) {
	var (
		ctx = newContext()
		x   = ast.NewVariable("x", ast.Int())
		f   = ast.NewSubroutine("f", ast.Int(), nil)
	)
	// Slots of enclosing frames remain valid whilst those frames are live
	outer := ctx.Declare(x, intValue(1))
	//
	ctx.PushFrame(f)
	ctx.Declare(x, intValue(2))
	//
	check_Int(t, ctx.Load(outer), 1)
	ctx.PopFrame()
}
