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

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/util/collection/stack"
	log "github.com/sirupsen/logrus"
)

// Slot is a handle onto the storage of a single local within a Context.  A
// slot remains valid until the frame in which it was declared is popped.
type Slot struct {
	// Depth of the frame owning this slot (root is 0).
	frame uint
	// Index into the context's slot arena.
	index uint
}

// Frame holds the locals of a single subroutine invocation.
type Frame struct {
	// Subroutine being invoked (nil for the root frame).
	subroutine *ast.Subroutine
	// First arena index owned by this frame.
	base uint
	// Maps each declared symbol to its slot.
	locals map[ast.Symbol]Slot
}

// Context holds the transient state of an in-progress evaluation: a stack of
// frames whose locals are stored in a single arena, along with the counters
// used to enforce resource limits.  A context must not be shared between
// concurrent evaluations.
//
// The bottom frame (the root) always exists, and can be seeded with values for
// any variables visible to top-level expressions.
type Context struct {
	options Options
	frames  *stack.Stack[Frame]
	slots   []constant.Value
	// Current nesting of expression evaluation.
	depth uint
	// Statements executed since last reset.
	steps uint
	// First limit exceeded (if any).
	err error
}

// NewContext constructs an empty context bounded by the given options.
func NewContext(options Options) *Context {
	var ctx = &Context{options: options, frames: stack.NewStack[Frame]()}
	//
	ctx.frames.Push(Frame{nil, 0, make(map[ast.Symbol]Slot)})
	//
	return ctx
}

// Options returns the limits governing this context.
func (p *Context) Options() Options {
	return p.options
}

// FrameCount returns the number of frames, including the root frame.
func (p *Context) FrameCount() uint {
	return p.frames.Len()
}

// CallDepth returns the number of active subroutine invocations.
func (p *Context) CallDepth() uint {
	return p.frames.Len() - 1
}

// Subroutine returns the subroutine owning the innermost frame, or nil when
// that is the root frame.
func (p *Context) Subroutine() *ast.Subroutine {
	return p.frames.Top().subroutine
}

// PushFrame pushes a new (empty) frame for an invocation of the given
// subroutine.  This fails, recording ErrCallDepth, if calls would be nested
// too deeply.
func (p *Context) PushFrame(subroutine *ast.Subroutine) bool {
	if p.CallDepth() >= p.options.MaxCallDepth {
		p.fail(ErrCallDepth, "calling %s", subroutine.Name())
		return false
	}
	//
	p.frames.Push(Frame{subroutine, uint(len(p.slots)), make(map[ast.Symbol]Slot)})
	//
	return true
}

// PopFrame pops the innermost frame, discarding its locals.
func (p *Context) PopFrame() {
	if p.frames.Len() == 1 {
		panic("cannot pop root frame")
	}
	//
	frame := p.frames.Pop()
	//
	clear(p.slots[frame.base:])
	p.slots = p.slots[:frame.base]
}

// Declare a local in the innermost frame with the given initial value.  If the
// symbol is already declared in that frame, its existing slot is reused.
func (p *Context) Declare(symbol ast.Symbol, value constant.Value) Slot {
	var frame = p.frames.Top()
	//
	if slot, ok := frame.locals[symbol]; ok {
		p.slots[slot.index] = value
		return slot
	}
	//
	slot := Slot{p.frames.Len() - 1, uint(len(p.slots))}
	p.slots = append(p.slots, value)
	frame.locals[symbol] = slot
	//
	return slot
}

// Lookup the slot for a given symbol in the innermost frame only.  Locals of
// enclosing frames are never visible.
func (p *Context) Lookup(symbol ast.Symbol) (Slot, bool) {
	slot, ok := p.frames.Top().locals[symbol]
	//
	return slot, ok
}

// Local returns the value of a given symbol in the innermost frame, if it is
// declared there.
func (p *Context) Local(symbol ast.Symbol) (constant.Value, bool) {
	if slot, ok := p.Lookup(symbol); ok {
		return p.Load(slot), true
	}
	//
	return constant.Value{}, false
}

// Load the value held in a given slot.
func (p *Context) Load(slot Slot) constant.Value {
	p.checkSlot(slot)
	//
	return p.slots[slot.index]
}

// Store a value into a given slot.
func (p *Context) Store(slot Slot, value constant.Value) {
	p.checkSlot(slot)
	//
	p.slots[slot.index] = value
}

// Err returns the first limit exceeded since this context was last reset, or
// nil if none.  Once set, every subsequent evaluation is unevaluable.
func (p *Context) Err() error {
	return p.err
}

// Steps returns the number of statements executed since this context was last
// reset.
func (p *Context) Steps() uint {
	return p.steps
}

// Reset clears any recorded error and the step counter, ready for another
// top-level evaluation.  Locals of the root frame are retained.
func (p *Context) Reset() {
	p.err = nil
	p.steps = 0
}

// ============================================================================
// Limits
// ============================================================================

// Enter a nested expression evaluation.
func (p *Context) enter() bool {
	if p.err != nil {
		return false
	} else if p.depth >= p.options.MaxExprDepth {
		p.fail(ErrExprDepth, "depth %d", p.depth)
		return false
	}
	//
	p.depth++
	//
	return true
}

// Leave a nested expression evaluation.
func (p *Context) leave() {
	p.depth--
}

// Consume one step of the statement budget.
func (p *Context) step() bool {
	if p.err != nil {
		return false
	} else if p.steps >= p.options.MaxSteps {
		p.fail(ErrStepLimit, "%d steps", p.steps)
		return false
	}
	//
	p.steps++
	//
	return true
}

// Check a vector of the given width may be constructed.
func (p *Context) checkWidth(width uint64) bool {
	if width > uint64(p.options.MaxWidth) {
		p.fail(ErrWidthLimit, "%d bits", width)
		return false
	}
	//
	return true
}

func (p *Context) fail(err error, format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w (%s)", err, fmt.Sprintf(format, args...))
		log.Debugf("evaluation aborted: %s", p.err)
	}
}

func (p *Context) checkSlot(slot Slot) {
	if slot.frame >= p.frames.Len() || slot.index >= uint(len(p.slots)) ||
		slot.index < p.frames.Peek(p.frames.Len()-1-slot.frame).base {
		panic(fmt.Sprintf("stale slot %d (frame %d)", slot.index, slot.frame))
	}
}
