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
	"os"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// File represents a fixture file, whose contents are held as runes so that
// spans can index them directly.
type File struct {
	filename string
	contents []rune
}

// NewSourceFile constructs a source file from its raw bytes.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// Filename returns the name of this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the text covered by a given span of this file.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// Lines splits this file into its lines, omitting their line endings.
func (s *File) Lines() []Line {
	var (
		lines []Line
		start = 0
	)
	//
	for i, c := range s.contents {
		if c == '\n' {
			lines = append(lines, Line{s.contents, Span{start, i}, len(lines) + 1})
			start = i + 1
		}
	}
	//
	return append(lines, Line{s.contents, Span{start, len(s.contents)}, len(lines) + 1})
}

// SyntaxError constructs an error covering a given span of this file.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the line containing the start of a given
// span.  A span starting at the end of the file belongs to the last line.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		num   = 1
		start = 0
	)
	//
	for i := 0; i < span.start && i < len(s.contents); i++ {
		if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	end := start
	//
	for end < len(s.contents) && s.contents[end] != '\n' {
		end++
	}
	//
	return Line{s.contents, Span{start, end}, num}
}

// Line identifies a single line of a source file.
type Line struct {
	text []rune
	span Span
	// Counting from 1
	number int
}

func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number returns the line number (counting from 1).
func (p *Line) Number() int {
	return p.number
}

// Start returns the offset of the first character of this line.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// SyntaxError is a problem found in a fixture file, covering some span of it.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the file in which this error arose.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the offending span.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the error message.
func (p *SyntaxError) Message() string {
	return p.msg
}

func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	//
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, line.Number(), p.span.start-line.Start()+1, p.msg)
}

// FirstEnclosingLine returns the line on which this error starts.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
