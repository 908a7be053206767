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
package test

import (
	"testing"

	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/test/util"
)

// ===================================================================
// Operators
// ===================================================================

func Test_Valid_Arith_01(t *testing.T) {
	util.Check(t, "arith_01")
}

func Test_Valid_Power_01(t *testing.T) {
	util.Check(t, "power_01")
}

func Test_Valid_Shift_01(t *testing.T) {
	util.Check(t, "shift_01")
}

func Test_Valid_Bitwise_01(t *testing.T) {
	util.Check(t, "bitwise_01")
}

func Test_Valid_Reduction_01(t *testing.T) {
	util.Check(t, "reduction_01")
}

func Test_Valid_Compare_01(t *testing.T) {
	util.Check(t, "compare_01")
}

func Test_Valid_Compare_02(t *testing.T) {
	util.Check(t, "compare_02")
}

func Test_Valid_Compare_03(t *testing.T) {
	util.Check(t, "compare_03")
}

func Test_Valid_Logical_01(t *testing.T) {
	util.Check(t, "logical_01")
}

func Test_Valid_Conditional_01(t *testing.T) {
	util.Check(t, "conditional_01")
}

// ===================================================================
// Selects & Concatenation
// ===================================================================

func Test_Valid_Select_01(t *testing.T) {
	util.Check(t, "select_01")
}

func Test_Valid_Select_02(t *testing.T) {
	util.Check(t, "select_02")
}

func Test_Valid_Concat_01(t *testing.T) {
	util.Check(t, "concat_01")
}

// ===================================================================
// Conversions
// ===================================================================

func Test_Valid_Cast_01(t *testing.T) {
	util.Check(t, "cast_01")
}

func Test_Valid_Real_01(t *testing.T) {
	util.Check(t, "real_01")
}

func Test_Valid_Unbased_01(t *testing.T) {
	util.Check(t, "unbased_01")
}

func Test_Valid_System_01(t *testing.T) {
	util.Check(t, "system_01")
}

// ===================================================================
// Declarations & Functions
// ===================================================================

func Test_Valid_Variable_01(t *testing.T) {
	util.Check(t, "variable_01")
}

func Test_Valid_Parameter_01(t *testing.T) {
	util.Check(t, "parameter_01")
}

func Test_Valid_Function_01(t *testing.T) {
	util.Check(t, "function_01")
}

func Test_Valid_Function_02(t *testing.T) {
	util.Check(t, "function_02")
}

// ===================================================================
// Limits
// ===================================================================

func Test_Valid_Limits_01(t *testing.T) {
	util.Check(t, "limits_01")
}

func Test_Valid_Limits_02(t *testing.T) {
	options := eval.DefaultOptions()
	options.MaxCallDepth = 4
	options.MaxSteps = 100
	//
	util.CheckWithOptions(t, "limits_02", options)
}
