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
package source

import (
	"fmt"
)

// Span is a contiguous region "[start, end)" of a source file.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span, where start may not exceed end.
func NewSpan(start int, end int) Span {
	if start > end {
		panic(fmt.Sprintf("invalid span [%d,%d)", start, end))
	}
	//
	return Span{start, end}
}

// Start returns the first character of this span.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last character of this span.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p *Span) Length() int {
	return p.end - p.start
}

// Map associates nodes built from a source file with the spans from which
// they were constructed, so that errors can be reported against them.
type Map[T comparable] struct {
	mapping map[T]Span
	srcfile File
}

// NewSourceMap constructs an empty source map for a given file.
func NewSourceMap[T comparable](srcfile File) *Map[T] {
	return &Map[T]{make(map[T]Span), srcfile}
}

// Source returns the file to which this map refers.
func (p *Map[T]) Source() File {
	return p.srcfile
}

// Put records the span of a node, which must not already be present.
func (p *Map[T]) Put(item T, span Span) {
	if _, ok := p.mapping[item]; ok {
		panic(fmt.Sprintf("source map key already exists: %v", any(item)))
	}
	//
	p.mapping[item] = span
}

// Has checks whether a node has a recorded span.
func (p *Map[T]) Has(item T) bool {
	_, ok := p.mapping[item]
	return ok
}

// Get returns the recorded span of a node, which must be present.
func (p *Map[T]) Get(item T) Span {
	if s, ok := p.mapping[item]; ok {
		return s
	}
	//
	panic(fmt.Sprintf("invalid source map key: %v", any(item)))
}
