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

// Span represents a contiguous slice of the original string.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.  This allows us to do certain things, such as determine the
// enclosing line, etc.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the original
// string.
func (p *Span) Length() int {
	return p.end - p.start
}

// Join returns the smallest span enclosing both this span and the other.
func (p Span) Join(o Span) Span {
	return Span{min(p.start, o.start), max(p.end, o.end)}
}

func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.start, p.end)
}

// Map maps nodes from an AST to slices of their originating string.  This is
// important for error handling when we wish to highlight exactly where, in the
// original source text, a given error has arisen.
type Map[T comparable] struct {
	// Maps a given AST node to a span in the original string.
	mapping map[T]Span
	// Enclosing source file
	srcfile *File
}

// NewSourceMap constructs an initially empty source map for a given file.
func NewSourceMap[T comparable](srcfile *File) *Map[T] {
	return &Map[T]{make(map[T]Span), srcfile}
}

// Source returns the source file to which this map refers.
func (p *Map[T]) Source() *File {
	return p.srcfile
}

// Put registers a new AST node with this source mapping.  A node which is
// already registered keeps its original span.
func (p *Map[T]) Put(node T, span Span) {
	if _, ok := p.mapping[node]; !ok {
		p.mapping[node] = span
	}
}

// Has checks whether a given node is registered in this source mapping.
func (p *Map[T]) Has(node T) bool {
	_, ok := p.mapping[node]
	return ok
}

// Get determines the span associated with a given AST node.  This panics if
// the node is not registered.
func (p *Map[T]) Get(node T) Span {
	if s, ok := p.mapping[node]; ok {
		return s
	}
	//
	panic(fmt.Sprintf("invalid source map key: %v", node))
}

// SyntaxError constructs a syntax error for a given node, or for the whole file
// when the node is not registered.
func (p *Map[T]) SyntaxError(node T, msg string) *SyntaxError {
	if s, ok := p.mapping[node]; ok {
		return p.srcfile.SyntaxError(s, msg)
	}
	//
	return p.srcfile.SyntaxError(NewSpan(0, len(p.srcfile.contents)), msg)
}
