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
package render

import (
	"strings"

	"github.com/samber/lo"
)

// Substitution maps a single symbol of the canonical text onto its replacement.
type Substitution struct {
	Symbol string
	Text   string
}

// LATEX_TABLE gives the substitutions used to typeset canonical text in LaTeX
// (math mode).
var LATEX_TABLE = []Substitution{
	{"A", `\forall `},
	{"E", `\exists `},
	{"&", ` \land `},
	{"|", ` \lor `},
	{">", ` \supset `},
	{"~", `\lnot `},
	{"*", ` \cdot `},
	{"[", `\langle `},
	{"]", ` \rangle`},
}

// ENGLISH_TABLE gives the substitutions used to read canonical text aloud.
var ENGLISH_TABLE = []Substitution{
	{"A", "for all "},
	{"E", "there exists "},
	{":", ", "},
	{"&", " and "},
	{"|", " or "},
	{">", " implies "},
	{"~", "not "},
	{"=", " equals "},
	{"+", " plus "},
	{"*", " times "},
	{"S", "successor of "},
	{"0", "zero"},
	{"[", ""},
	{"]", ""},
	{"(", ""},
	{")", ""},
}

var latex = newReplacer(LATEX_TABLE)

var english = newReplacer(ENGLISH_TABLE)

// LaTeX renders the canonical text of a term or formula in LaTeX.  For
// example, Aa:~Sa=0 becomes \forall a:\lnot Sa=0.
func LaTeX(text string) string {
	return latex.Replace(text)
}

// English renders the canonical text of a term or formula in plain English.
// For example, Aa:~Sa=0 becomes "for all a, not successor of a equals zero".
func English(text string) string {
	return english.Replace(text)
}

// Apply a given substitution table to some text.  Symbols are replaced in a
// single left-to-right pass, so replacement text is never itself rewritten.
func Apply(table []Substitution, text string) string {
	return newReplacer(table).Replace(text)
}

func newReplacer(table []Substitution) *strings.Replacer {
	pairs := lo.FlatMap(table, func(s Substitution, _ int) []string {
		return []string{s.Symbol, s.Text}
	})
	//
	return strings.NewReplacer(pairs...)
}
