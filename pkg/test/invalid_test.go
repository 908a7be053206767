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

	"github.com/consensys/go-svfold/pkg/test/util"
)

func Test_Invalid_Parse_01(t *testing.T) {
	util.CheckInvalid(t, "parse_01")
}

func Test_Invalid_Unknown_01(t *testing.T) {
	util.CheckInvalid(t, "unknown_01")
}

func Test_Invalid_Declaration_01(t *testing.T) {
	util.CheckInvalid(t, "declaration_01")
}

func Test_Invalid_Parameter_01(t *testing.T) {
	util.CheckInvalid(t, "parameter_01")
}

func Test_Invalid_Call_01(t *testing.T) {
	util.CheckInvalid(t, "call_01")
}

func Test_Invalid_Operator_01(t *testing.T) {
	util.CheckInvalid(t, "operator_01")
}

func Test_Invalid_Assign_01(t *testing.T) {
	util.CheckInvalid(t, "assign_01")
}

func Test_Invalid_Select_01(t *testing.T) {
	util.CheckInvalid(t, "select_01")
}

func Test_Invalid_Concat_01(t *testing.T) {
	util.CheckInvalid(t, "concat_01")
}

func Test_Invalid_Statement_01(t *testing.T) {
	util.CheckInvalid(t, "statement_01")
}
