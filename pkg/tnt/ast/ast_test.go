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
package ast_test

import (
	"errors"
	"testing"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/parser"
	"github.com/consensys/go-tnt/pkg/util/assert"
	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Variables
// ============================================================================

func Test_Variable_01(t *testing.T) {
	for _, name := range []string{"a", "z", "b'", "c'''"} {
		v, err := ast.NewVariable(name)
		assert.NoError(t, err)
		assert.Equal(t, name, v.String())
	}
}

func Test_Variable_02(t *testing.T) {
	for _, name := range []string{"", "A", "ab", "'a", "a'b", "0", "a '"} {
		_, err := ast.NewVariable(name)
		assert.ErrorIs(t, err, ast.ErrInvalidVariable, "name \"%s\"", name)
	}
}

func Test_Variable_03(t *testing.T) {
	v := ast.MustVariable("a")
	assert.Equal(t, 0, v.Primes())
	assert.Equal(t, "a''", v.Prime().Prime().String())
	assert.Equal(t, 2, v.Prime().Prime().Primes())
}

// ============================================================================
// Terms
// ============================================================================

func Test_Term_01(t *testing.T) {
	term := parser.MustParseTerm("S(a+(b*S0))")
	assert.True(t, term.ContainsVar("a"))
	assert.True(t, term.ContainsVar("b"))
	assert.False(t, term.ContainsVar("c"))
	assert.Equal(t, "{a,b}", ast.Vars(term).String())
}

func Test_Term_02(t *testing.T) {
	term := parser.MustParseTerm("(a+Sa)")
	replaced := term.Replace("a", parser.MustParseTerm("(b*0)"))
	assert.Equal(t, "((b*0)+S(b*0))", replaced.String())
	// Original is unchanged
	assert.Equal(t, "(a+Sa)", term.String())
}

func Test_Term_03(t *testing.T) {
	assert.Equal(t, "SSS0", ast.Numeral(3).String())
	assert.True(t, ast.ONE.Equals(ast.Numeral(1)))
	_, ok := ast.AsNumeral(parser.MustParseTerm("SSa"))
	assert.False(t, ok)
}

func Test_Term_04(t *testing.T) {
	term := parser.MustParseTerm("(S0+(S0*S0))")
	replaced := ast.ReplaceSubterm(term, ast.ONE, ast.NewVar("x"))
	assert.Equal(t, "(x+(x*x))", replaced.String())
	assert.True(t, ast.ContainsSubterm(term, parser.MustParseTerm("(S0*S0)")))
	assert.False(t, ast.ContainsSubterm(term, parser.MustParseTerm("SS0")))
}

func Test_Term_05(t *testing.T) {
	assert.True(t, parser.MustParseTerm("(a*Sb)").Equals(parser.MustParseTerm("(a*Sb)")))
	assert.False(t, parser.MustParseTerm("(a*Sb)").Equals(parser.MustParseTerm("(a+Sb)")))
	assert.False(t, parser.MustParseTerm("a").Equals(parser.MustParseTerm("a'")))
}

// ============================================================================
// Free and bound variables
// ============================================================================

func Test_Vars_01(t *testing.T) {
	f := parser.MustParseFormula("Aa:[(a+b)=c>Ed:d=a]")
	assert.Equal(t, "{b,c}", ast.FreeVars(f).String())
	assert.Equal(t, "{a,d}", ast.BoundVars(f).String())
	assert.Equal(t, "{a,b,c,d}", ast.AllVars(f).String())
	assert.True(t, ast.IsFree(f, "b"))
	assert.False(t, ast.IsFree(f, "a"))
	assert.True(t, ast.ContainsVar(f, "d"))
	assert.False(t, ast.ContainsVar(f, "e"))
}

func Test_Vars_02(t *testing.T) {
	f := parser.MustParseFormula("[(c+b)=a&Ed:d=c]")
	//
	if diff := cmp.Diff([]ast.Variable{"c", "b", "a"}, ast.FreeVarsInOrder(f)); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Substitution
// ============================================================================

func Test_Substitute_01(t *testing.T) {
	f := parser.MustParseFormula("[a=b>Ec:(c+a)=b]")
	g := ast.Substitute(f, "a", parser.MustParseTerm("SS0"))
	assert.Equal(t, "[SS0=b>Ec:(c+SS0)=b]", g.String())
}

func Test_Substitute_02(t *testing.T) {
	// Bound occurrences are not replaced
	f := ast.NewAnd(parser.MustParseFormula("a=0"), parser.MustParseFormula("Ea:a=0"))
	g := ast.Substitute(f, "a", ast.ONE)
	assert.Equal(t, "[S0=0&Ea:a=0]", g.String())
}

func Test_ReplaceTerm_01(t *testing.T) {
	f := parser.MustParseFormula("[(S0+S0)=SS0&Ea:(a+S0)=S0]")
	g := ast.ReplaceTerm(f, ast.ONE, ast.NewVar("b"))
	assert.Equal(t, "[(b+b)=Sb&Ea:(a+b)=b]", g.String())
	assert.True(t, ast.ContainsTerm(f, ast.ONE))
}

func Test_ReplaceTerm_02(t *testing.T) {
	// Occurrences beneath a binder of the target's variables are skipped
	f := ast.NewAnd(parser.MustParseFormula("Sa=S0"), parser.MustParseFormula("Aa:Sa=Sa"))
	g := ast.ReplaceTerm(f, parser.MustParseTerm("Sa"), ast.NewVar("b"))
	assert.Equal(t, "[b=S0&Aa:Sa=Sa]", g.String())
	assert.False(t, ast.ContainsTerm(parser.MustParseFormula("Aa:Sa=Sa"), parser.MustParseTerm("Sa")))
}

// ============================================================================
// Rewriting
// ============================================================================

func Test_RewriteNth_01(t *testing.T) {
	f := parser.MustParseFormula("[~0=0&~~S0=S0]")
	isNot := func(f ast.Formula) (ast.Formula, bool) {
		if n, ok := ast.AsNot(f); ok {
			return n.Body, true
		}
		//
		return nil, false
	}
	//
	g, ok := ast.RewriteNth(f, 0, isNot)
	assert.True(t, ok)
	assert.Equal(t, "[0=0&~~S0=S0]", g.String())
	g, ok = ast.RewriteNth(f, 2, isNot)
	assert.True(t, ok)
	assert.Equal(t, "[~0=0&~S0=S0]", g.String())
	_, ok = ast.RewriteNth(f, 3, isNot)
	assert.False(t, ok)
	// Original unchanged
	assert.Equal(t, "[~0=0&~~S0=S0]", f.String())
}

func Test_CountMatches_01(t *testing.T) {
	f := parser.MustParseFormula("Aa:[~a=0>Eb:~Sb=a]")
	count := ast.CountMatches(f, func(f ast.Formula) bool {
		_, ok := ast.AsNot(f)
		return ok
	})
	assert.Equal(t, 2, count)
	// Every node matched
	assert.Equal(t, 7, ast.CountMatches(f, func(ast.Formula) bool { return true }))
}

// ============================================================================
// Austere form
// ============================================================================

func Test_Austere_01(t *testing.T) {
	checkAustere(t, "Ab:Ec:(b+c)=SS0", "Aa:Ea':(a+a')=SS0")
}

func Test_Austere_02(t *testing.T) {
	// Free variables are kept, and never captured
	checkAustere(t, "Ab:(a+b)=b", "Aa':(a+a')=a'")
}

func Test_Austere_03(t *testing.T) {
	// Sibling binders receive distinct names
	checkAustere(t, "[Ax:x=x&Ay:y=y]", "[Aa:a=a&Aa':a'=a']")
	checkAustere(t, "[Aa:a=a&Aa:a=a]", "[Aa:a=a&Aa':a'=a']")
}

func Test_Austere_04(t *testing.T) {
	checkAustere(t, "[a=a'>Eb:Ec:b=c]", "[a=a'>Ea'':Ea''':a''=a''']")
}

func Test_Austere_05(t *testing.T) {
	for _, input := range []string{"0=0", "Ab:Ec:(b+c)=SS0", "[a=a'>Eb:Ec:b=c]", "~Eu':Az:[(u'*z)=0|~z=z]"} {
		f := parser.MustParseFormula(input)
		once := ast.Austere(f)
		twice := ast.Austere(once)
		assert.True(t, once.Equals(twice), "austere not idempotent for %s", input)
		assert.NoError(t, ast.CheckWellFormed(once))
	}
}

func Test_Austere_06(t *testing.T) {
	f := parser.MustParseFormula("Ax:Ey:(x+y)=0")
	g := parser.MustParseFormula("Ap:Eq:(p+q)=0")
	h := parser.MustParseFormula("Ap:Eq:(q+p)=0")
	assert.True(t, ast.AustereEquals(f, g))
	assert.False(t, ast.AustereEquals(f, h))
}

func Test_Fresh_01(t *testing.T) {
	assert.Equal(t, "a", ast.Fresh(ast.Vars(parser.MustParseTerm("b"))).String())
	assert.Equal(t, "a''", ast.Fresh(ast.Vars(parser.MustParseTerm("(a+a')"))).String())
}

// ============================================================================
// Closure
// ============================================================================

func Test_Closure_01(t *testing.T) {
	f := parser.MustParseFormula("(a+Sb)=S(a+b)")
	assert.Equal(t, "Aa:Ab:(a+Sb)=S(a+b)", ast.Closure(f).String())
	assert.Equal(t, "(a+Sb)=S(a+b)", ast.StripForAll(ast.Closure(f)).String())
}

func Test_Closure_02(t *testing.T) {
	f := parser.MustParseFormula("Ea:(a+b)=0")
	assert.Equal(t, "Ab:Ea:(a+b)=0", ast.Closure(f).String())
	assert.Equal(t, "Ea:(a+b)=0", ast.StripForAll(f).String())
}

// ============================================================================
// Well-formedness
// ============================================================================

func Test_WellFormed_01(t *testing.T) {
	assert.NoError(t, ast.CheckWellFormed(parser.MustParseFormula("[Aa:a=a&Ab:b=b]")))
	assert.NoError(t, ast.CheckWellFormed(parser.MustParseFormula("[a=b>Ec:c=b]")))
}

func Test_WellFormed_02(t *testing.T) {
	// Constructed directly, since the parser rejects it
	f := ast.NewForAll("a", ast.NewExists("a", parser.MustParseFormula("a=0")))
	err := ast.CheckWellFormed(f)
	assert.ErrorIs(t, err, ast.ErrMalformedFormula)
	//
	var merr *ast.MalformedFormulaError
	assert.True(t, errors.As(err, &merr))
	assert.Equal(t, "a", merr.Variable.String())
	assert.Equal(t, "Ea:a=0", merr.Formula.String())
}

func Test_WellFormed_03(t *testing.T) {
	f := ast.NewImplies(parser.MustParseFormula("Ab:b=0"), parser.MustParseFormula("b=0"))
	err := ast.CheckWellFormed(f)
	assert.ErrorIs(t, err, ast.ErrMalformedFormula)
}

// ============================================================================
// Helpers
// ============================================================================

func checkAustere(t *testing.T, input string, expected string) {
	f := parser.MustParseFormula(input)
	assert.Equal(t, expected, ast.Austere(f).String())
}
