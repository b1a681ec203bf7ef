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
package lex

import (
	"slices"
	"testing"

	"github.com/consensys/go-tnt/pkg/util/assert"
	"github.com/consensys/go-tnt/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	checkLexer(t, "", 0, Token{END_OF, source.NewSpan(0, 0)})
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "(", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 3)},
		{RBRACE, source.NewSpan(3, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "(  )", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	checkLexer(t, "X", 1)
}

func TestLexer_04(t *testing.T) {
	var tokens = []Token{
		{NAME, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "x", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{NAME, source.NewSpan(1, 4)},
		{RBRACE, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "(x'')", 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens = []Token{
		{NAME, source.NewSpan(0, 2)},
		{NAME, source.NewSpan(2, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}
	// The apostrophe binds to the preceding letter only.
	checkLexer(t, "a'b'", 0, tokens...)
}

func TestScanner_Then(t *testing.T) {
	assert.Equal(t, 1, name([]rune("a")))
	assert.Equal(t, 3, name([]rune("a''b")))
	assert.Equal(t, 0, name([]rune("'a")))
}

func TestScanner_Many(t *testing.T) {
	rule := Many(Unit('a', 'b'))
	assert.Equal(t, 4, rule([]rune("ababa")))
	assert.Equal(t, 0, rule([]rune("ba")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const NAME uint = 4

// Rule for describing whitespace
var whitespace Scanner[rune] = Many(Or(Unit(' '), Unit('\t')))

// Rule for describing names, which may not start with an apostrophe.
var name Scanner[rune] = Then(Within('a', 'z'), Many(Unit('\'')))

// lexing rules
var rules []LexRule[rune] = []LexRule[rune]{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(whitespace, WSPACE),
	Rule(name, NAME),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer[rune](items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
