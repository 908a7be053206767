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
package loader

import (
	"fmt"

	"github.com/consensys/go-svfold/pkg/ast"
	"github.com/consensys/go-svfold/pkg/constant"
	"github.com/consensys/go-svfold/pkg/eval"
	"github.com/consensys/go-svfold/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// ItemKind distinguishes the top-level items of a program.
type ItemKind uint8

const (
	// Declaration of a variable in the root frame.
	Declaration ItemKind = iota
	// Evaluation of an expression, whose value is reported.
	Evaluation
	// Assertion that an expression evaluates to an expected value.
	Assertion
)

// Item is a single top-level item of a program, executed in order.
type Item struct {
	Kind ItemKind
	// Span of the item in its source file.
	Span source.Span
	// Variable being declared (Declaration only).
	Declaration *ast.VariableDeclaration
	// Expression being evaluated (Evaluation and Assertion only).
	Expr ast.Expression
	// Expected value (Assertion only), which may be unevaluable.
	Expected constant.Value
}

// Program is a fixture file whose contents have been bound into typed trees.
// Parameters and functions are resolved at load time, whilst variables,
// evaluations and assertions form the items executed when it is run.
type Program struct {
	srcfile *source.File
	items   []Item
}

// SourceFile returns the file from which this program was loaded.
func (p *Program) SourceFile() *source.File {
	return p.srcfile
}

// Items returns the top-level items of this program.
func (p *Program) Items() []Item {
	return p.items
}

// Text returns the source text of a given item.
func (p *Program) Text(item *Item) string {
	return p.srcfile.Text(item.Span)
}

// Error constructs an error reported against a given item.
func (p *Program) Error(item *Item, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(item.Span, msg)
}

// Outcome records the result of executing a single item.
type Outcome struct {
	Item *Item
	// Value of the evaluated expression, or the declared variable.
	Value constant.Value
	// Limit exceeded during evaluation (if any).
	Err error
}

// Passed checks whether this outcome is as expected.  Only assertions can
// fail.
func (o *Outcome) Passed() bool {
	return o.Item.Kind != Assertion || o.Item.Expected.Identical(o.Value)
}

// Message describes a failed outcome.
func (o *Outcome) Message() string {
	if o.Err != nil {
		return fmt.Sprintf("expected %s, got %s (%s)", o.Item.Expected, o.Value, o.Err)
	}
	//
	return fmt.Sprintf("expected %s, got %s", o.Item.Expected, o.Value)
}

// Run executes every item of this program in order, within a fresh context
// bounded by the given options.  Variables are declared in the root frame of
// that context, hence are visible to subsequent items (but not from within
// functions).  Limits are applied to each item separately.
func (p *Program) Run(options eval.Options) []Outcome {
	var (
		ctx      = eval.NewContext(options)
		outcomes = make([]Outcome, len(p.items))
	)
	//
	for i := range p.items {
		item := &p.items[i]
		//
		ctx.Reset()
		//
		outcomes[i] = Outcome{Item: item, Value: p.execute(item, ctx), Err: ctx.Err()}
		//
		if outcomes[i].Err != nil {
			log.Debugf("%s: %s", p.srcfile.Filename(), outcomes[i].Err)
		}
	}
	//
	return outcomes
}

func (p *Program) execute(item *Item, ctx *eval.Context) constant.Value {
	switch item.Kind {
	case Declaration:
		if !eval.Execute(item.Declaration, ctx) {
			return constant.Value{}
		}
		//
		value, _ := ctx.Local(item.Declaration.Symbol)
		//
		return value
	case Evaluation, Assertion:
		return eval.Evaluate(item.Expr, ctx)
	}
	//
	panic(fmt.Sprintf("unknown item kind %d", item.Kind))
}
