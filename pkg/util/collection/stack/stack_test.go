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
package stack

import (
	"testing"

	"github.com/consensys/go-svfold/pkg/util/assert"
)

func Test_Stack_00(t *testing.T) {
	s := NewStack[int]()
	//
	assert.True(t, s.IsEmpty())
	assert.Panics(t, func() { s.Pop() })
	assert.Panics(t, func() { s.Peek(0) })
}

func Test_Stack_01(t *testing.T) {
	s := NewStack[int]()
	//
	for i := range 5 {
		s.Push(i)
	}
	//
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 4, s.Peek(0))
	assert.Equal(t, 0, s.Peek(4))
	//
	*s.Top() = 10
	//
	assert.Equal(t, 10, s.Pop())
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 3, s.Len())
}

func Test_Stack_02(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("bb")
	s.Push("c")
	//
	item, ok := s.Find(func(s string) bool { return len(s) == 1 })
	//
	assert.True(t, ok)
	assert.Equal(t, "c", item)
	//
	_, ok = s.Find(func(s string) bool { return len(s) == 3 })
	//
	assert.False(t, ok)
}
