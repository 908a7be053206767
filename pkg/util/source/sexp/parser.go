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
package sexp

import (
	"unicode"

	"github.com/consensys/go-svfold/pkg/util/source"
)

// Parse a given file into exactly one S-expression, or return an error if the
// file is malformed.  A source map is also returned for reporting errors.
func Parse(s *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	//
	sExp, err := p.Parse()
	//
	if err != nil {
		return nil, nil, err
	} else if sExp == nil {
		return nil, nil, p.error("unexpected end-of-file")
	}
	//
	p.SkipWhiteSpace()
	//
	if p.index != len(p.text) {
		return nil, nil, p.error("unexpected remainder")
	}
	//
	return sExp, p.SourceMap(), nil
}

// ParseAll converts a given file into zero or more S-expressions, or returns
// an error if the file is malformed.  The key distinction from Parse is that
// this continues parsing after the first S-expression is encountered.
func ParseAll(s *source.File) ([]SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(s)
	//
	terms := make([]SExp, 0)
	//
	for {
		term, err := p.Parse()
		//
		if err != nil {
			return terms, p.srcmap, err
		} else if term == nil {
			// EOF reached
			return terms, p.srcmap, nil
		}
		//
		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given file into one
// or more S-expressions.  Comments start with ';' and run to the end of the
// line.
type Parser struct {
	srcfile *source.File
	// Cache (for simplicity)
	text []rune
	// Current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		srcmap:  source.NewSourceMap[SExp](*srcfile),
	}
}

// SourceMap returns the internal source map constructing during parsing.  Using
// this one can determine, for each SExp, where in the original text it
// originated.
func (p *Parser) SourceMap() *source.Map[SExp] {
	return p.srcmap
}

// Parse the next S-Expression, returning nil at the end of the file.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	var term SExp
	// Skip whitespace first, to get the correct starting point for this term.
	p.SkipWhiteSpace()
	//
	start := p.index
	token := p.next()
	//
	switch {
	case token == nil:
		return nil, nil
	case len(token) == 1 && token[0] == ')':
		p.index-- // backup
		return nil, p.error("unexpected end-of-list")
	case len(token) == 1 && token[0] == '(':
		elements, err := p.parseSequence()
		//
		if err != nil {
			return nil, err
		}
		//
		term = &List{elements}
	default:
		term = &Symbol{string(token)}
	}
	//
	p.srcmap.Put(term, source.NewSpan(start, p.index))
	//
	return term, nil
}

// SkipWhiteSpace skips over any whitespace, including comments.
func (p *Parser) SkipWhiteSpace() {
	for p.index < len(p.text) {
		switch c := p.text[p.index]; {
		case c == ';':
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		case unicode.IsSpace(c):
			p.index++
		default:
			return
		}
	}
}

// Extract the next token, which is either a bracket or a symbol.
func (p *Parser) next() []rune {
	p.SkipWhiteSpace()
	//
	if p.index == len(p.text) {
		return nil
	} else if c := p.text[p.index]; c == '(' || c == ')' {
		p.index++
		return p.text[p.index-1 : p.index]
	}
	//
	start := p.index
	//
	for p.index < len(p.text) && isSymbolLetter(p.text[p.index]) {
		p.index++
	}
	//
	return p.text[start:p.index]
}

func (p *Parser) parseSequence() ([]SExp, *source.SyntaxError) {
	var elements []SExp
	//
	for {
		p.SkipWhiteSpace()
		//
		if p.index == len(p.text) {
			return nil, p.error("unexpected end-of-file")
		} else if p.text[p.index] == ')' {
			p.index++
			return elements, nil
		}
		//
		element, err := p.Parse()
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *source.SyntaxError {
	end := min(p.index+1, len(p.text))
	//
	return p.srcfile.SyntaxError(source.NewSpan(min(p.index, end), end), msg)
}

func isSymbolLetter(r rune) bool {
	return r != '(' && r != ')' && r != ';' && !unicode.IsSpace(r)
}
