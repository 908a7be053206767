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
package assert

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

// Equal fails the test if actual is not equal to expected.  Integers of
// differing types are compared by value, so Equal(t, 8, width) works when
// width is a uint.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}
	//
	fail(t, fmt.Sprintf("expected: %v, actual: %v", expected, actual), msg)
}

// True fails the test if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		fail(t, "condition is false", msg)
	}
}

// False fails the test if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		fail(t, "condition is true", msg)
	}
}

// Panics fails the test if fn returns without panicking.
func Panics(t *testing.T, fn func(), msg ...any) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			fail(t, "expected panic", msg)
		}
	}()
	//
	fn()
}

func fail(t *testing.T, reason string, msg []any) {
	t.Helper()
	t.Error(reason)
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

// intEqual checks whether expected and actual are both integers and, if so,
// whether they hold the same value.
func intEqual(expected, actual any) bool {
	a, aInt64 := asInt64(expected)
	b, bInt64 := asInt64(actual)
	//
	if aInt64 != bInt64 {
		return false
	} else if aInt64 {
		return a == b
	}
	// Only remaining possibility is two large uint64 values
	x, aUint64 := expected.(uint64)
	y, bUint64 := actual.(uint64)
	//
	return aUint64 && bUint64 && x == y
}

// asInt64 tries to convert x into an int64, failing if x is not an integer or
// is a uint64 which does not fit.
func asInt64(x any) (int64, bool) {
	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), x <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	}
	//
	return 0, false
}
