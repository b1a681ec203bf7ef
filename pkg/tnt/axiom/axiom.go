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
package axiom

import (
	"slices"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/parser"
)

// PEANO_TEXT gives the canonical text of the five Peano-style axioms.
var PEANO_TEXT = []string{
	"~Sa=0",
	"(a+0)=a",
	"(a+Sb)=S(a+b)",
	"(a*0)=0",
	"(a*Sb)=((a*b)+a)",
}

// The axioms are parsed exactly once and never modified afterwards, hence they
// can be shared freely (including between goroutines).
var peano = parseAll(PEANO_TEXT)

// Peano returns the five Peano-style axioms.  The returned slice is fresh, but
// the formulas themselves are shared (and immutable).
func Peano() []ast.Formula {
	return slices.Clone(peano)
}

// Key returns the form of a formula used to decide whether it is an axiom.  This
// strips outermost universal quantifiers, universally closes the result and,
// finally, computes its austere form.  Thus (a+0)=a, Aa:(a+0)=a and
// Ab:(b+0)=b all share the same key, whilst an instance such as (S0+0)=S0 does
// not.
func Key(f ast.Formula) ast.Formula {
	return ast.Austere(ast.Closure(ast.StripForAll(f)))
}

// Find determines the position of a formula within a given list of axioms,
// using Key to compare them.  This returns false if no axiom matches.
func Find(f ast.Formula, axioms []ast.Formula) (int, bool) {
	key := Key(f)
	//
	for i, axiom := range axioms {
		if key.Equals(Key(axiom)) {
			return i, true
		}
	}
	//
	return -1, false
}

func parseAll(texts []string) []ast.Formula {
	formulas := make([]ast.Formula, len(texts))
	//
	for i, text := range texts {
		formulas[i] = parser.MustParseFormula(text)
	}
	//
	return formulas
}
