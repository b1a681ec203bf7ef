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
package parser

import (
	"github.com/consensys/go-tnt/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// ZERO signals the constant 0
const ZERO uint = 2

// SUCC signals the successor operator S
const SUCC uint = 3

// VARIABLE signals a variable (e.g. a, b')
const VARIABLE uint = 4

// LBRACE signals "left brace", which opens an arithmetic term.
const LBRACE uint = 5

// RBRACE signals "right brace", which closes an arithmetic term.
const RBRACE uint = 6

// LBRACKET signals "left bracket", which opens a compound formula.
const LBRACKET uint = 7

// RBRACKET signals "right bracket", which closes a compound formula.
const RBRACKET uint = 8

// ADD represents integer addition
const ADD uint = 9

// MUL represents integer multiplication
const MUL uint = 10

// EQUALS signals an equality
const EQUALS uint = 11

// AND represents logical conjunction
const AND uint = 12

// OR represents logical disjunction
const OR uint = 13

// IMPLIES represents logical implication
const IMPLIES uint = 14

// NOT represents logical negation
const NOT uint = 15

// FORALL represents universal quantification
const FORALL uint = 16

// EXISTS represents existential quantification
const EXISTS uint = 17

// COLON separates a quantified variable from its body
const COLON uint = 18

// CONNECTIVES captures the set of binary logical connectives.
var CONNECTIVES = []uint{AND, OR, IMPLIES}

// BINOPS captures the set of binary arithmetic operations.
var BINOPS = []uint{ADD, MUL}

// QUANTIFIERS captures the set of quantifiers.
var QUANTIFIERS = []uint{FORALL, EXISTS}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t')))

// Rule for describing variables: a lowercase letter followed by zero or more
// apostrophes.
var variable lex.Scanner[rune] = lex.Then(lex.Within('a', 'z'), lex.Many(lex.Unit('\'')))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('0'), ZERO),
	lex.Rule(lex.Unit('S'), SUCC),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('['), LBRACKET),
	lex.Rule(lex.Unit(']'), RBRACKET),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.Unit('>'), IMPLIES),
	lex.Rule(lex.Unit('~'), NOT),
	lex.Rule(lex.Unit('A'), FORALL),
	lex.Rule(lex.Unit('E'), EXISTS),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(variable, VARIABLE),
	lex.Rule(lex.Eof[rune](), END_OF),
}
