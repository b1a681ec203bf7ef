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
package deduction

import (
	"errors"
	"testing"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/axiom"
	"github.com/consensys/go-tnt/pkg/tnt/parser"
	"github.com/consensys/go-tnt/pkg/util/assert"
)

// ============================================================================
// Axioms & Specification
// ============================================================================

func Test_Deduction_01(t *testing.T) {
	p := New("addition", axiom.Peano())
	checkTheorem(t, "Aa:(a+0)=a")(p.AddAxiom(formula("Aa:(a+0)=a")))
	checkTheorem(t, "(S0+0)=S0")(p.Specification(0, "a", term("S0")))
	//
	steps := p.Steps()
	assert.Equal(t, "axiom 2", steps[0].Annotation)
	assert.Equal(t, "specification 0, a:=S0", steps[1].Annotation)
	assert.Equal(t, "addition", p.Title())
}

func Test_Deduction_02(t *testing.T) {
	p := New("", axiom.Peano())
	checkTheorem(t, "~Sa=0")(p.AddAxiom(formula("~Sa=0")))
	checkTheorem(t, "Ab:(b*0)=0")(p.AddAxiom(formula("Ab:(b*0)=0")))
	checkFailure(t, p, ErrAxiom)(p.AddAxiom(formula("(S0+0)=S0")))
	checkFailure(t, p, ErrAxiom)(p.AddAxiom(formula("0=0")))
}

func Test_Deduction_03(t *testing.T) {
	// Custom axioms
	p := New("", []ast.Formula{formula("0=0")})
	checkTheorem(t, "0=0")(p.AddAxiom(formula("0=0")))
	checkFailure(t, p, ErrAxiom)(p.AddAxiom(formula("~Sa=0")))
}

func Test_Specification_01(t *testing.T) {
	p := given("Aa:[a=a&Eb:b=a]")
	checkTheorem(t, "[(c+0)=(c+0)&Eb:b=(c+0)]")(p.Specification(0, "a", term("(c+0)")))
	// Specifying with v itself is fine
	checkTheorem(t, "[Sa=Sa&Eb:b=Sa]")(p.Specification(0, "a", term("Sa")))
}

func Test_Specification_02(t *testing.T) {
	p := given("a=b", "Ab:b=0")
	// No outer quantifier
	checkFailure(t, p, ErrScope)(p.Specification(0, "a", ast.ZERO))
	// Wrong variable
	checkFailure(t, p, ErrScope)(p.Specification(1, "a", ast.ZERO))
}

func Test_Specification_03(t *testing.T) {
	p := given("Aa:Eb:a=b")
	checkFailure(t, p, ErrCapture)(p.Specification(0, "a", term("Sb")))
	checkFailure(t, p, ErrCapture)(p.Specification(0, "a", term("(c*b)")))
	checkTheorem(t, "Eb:Sc=b")(p.Specification(0, "a", term("Sc")))
}

func Test_Specification_04(t *testing.T) {
	var rerr *RuleError
	//
	p := given("Aa:Eb:a=b")
	_, err := p.Specification(0, "a", term("Sb"))
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, "specification", rerr.Rule)
	assert.Equal(t, 1, len(rerr.Variables))
	assert.Equal(t, ast.Variable("b"), rerr.Variables[0])
	assert.Equal(t, "Aa:Eb:a=b", rerr.Formulas[0].String())
}

// ============================================================================
// Generalization & Existence
// ============================================================================

func Test_Generalization_01(t *testing.T) {
	p := given("(a+0)=a", "Aa:a=a")
	checkTheorem(t, "Aa:(a+0)=a")(p.Generalization(0, "a"))
	checkTheorem(t, "Ab:(a+0)=a")(p.Generalization(0, "b"))
	checkFailure(t, p, ErrGeneralization)(p.Generalization(1, "a"))
}

func Test_Generalization_02(t *testing.T) {
	p := New("", axiom.Peano())
	checkTheorem(t, "a=0")(p.Supposition(formula("a=0")))
	checkTheorem(t, "0=a")(p.Symmetry(0))
	// a is free in the premise
	checkFailure(t, p, ErrGeneralization)(p.Generalization(1, "a"))
	checkTheorem(t, "Ab:0=a")(p.Generalization(1, "b"))
	checkTheorem(t, "[a=0>Ab:0=a]")(p.Implication())
	// a is no longer restricted
	checkTheorem(t, "Aa:[a=0>Ab:0=a]")(p.Generalization(3, "a"))
}

func Test_Existence_01(t *testing.T) {
	p := given("(S0+0)=S0", "(0+0)=0", "a=a")
	checkTheorem(t, "Eb:(b+0)=b")(p.Existence(0, term("S0"), "b"))
	checkTheorem(t, "Eb:(b+b)=b")(p.Existence(1, ast.ZERO, "b"))
	checkTheorem(t, "Ea:a=a")(p.Existence(2, term("a"), "a"))
	checkTheorem(t, "Eb:b=b")(p.Existence(2, term("a"), "b"))
}

func Test_Existence_02(t *testing.T) {
	p := given("(a+0)=a", "Ab:b=b")
	// a occurs outside of the replaced term
	checkFailure(t, p, ErrGeneralization)(p.Existence(0, ast.ZERO, "a"))
	// b already bound
	checkFailure(t, p, ErrGeneralization)(p.Existence(1, ast.ZERO, "b"))
}

// ============================================================================
// Equality rules
// ============================================================================

func Test_Equality_01(t *testing.T) {
	p := given("a=b", "~a=b")
	checkTheorem(t, "Sa=Sb")(p.Successor(0))
	checkTheorem(t, "a=b")(p.Predecessor(2))
	checkTheorem(t, "b=a")(p.Symmetry(0))
	checkFailure(t, p, ErrStructure)(p.Predecessor(0))
	checkFailure(t, p, ErrStructure)(p.Successor(1))
	checkFailure(t, p, ErrStructure)(p.Symmetry(1))
}

func Test_Transitivity_01(t *testing.T) {
	p := given("a=b", "b=c", "c=d", "~a=b")
	checkTheorem(t, "a=c")(p.Transitivity(0, 1))
	checkFailure(t, p, ErrMismatch)(p.Transitivity(0, 2))
	checkFailure(t, p, ErrMismatch)(p.Transitivity(3, 1))
	checkTheorem(t, "a=d")(p.Transitivity(4, 2))
}

// ============================================================================
// Interchange
// ============================================================================

func Test_Interchange_01(t *testing.T) {
	p := given("Aa:~Eu':(a+u')=Sa")
	checkTheorem(t, "Aa:Au':~(a+u')=Sa")(p.InterchangeEA(0, "u'", 0))
	checkTheorem(t, "Aa:~Eu':(a+u')=Sa")(p.InterchangeAE(1, "u'", 0))
	checkFailure(t, p, ErrScope)(p.InterchangeEA(0, "u'", 1))
	checkFailure(t, p, ErrScope)(p.InterchangeEA(0, "u", 0))
	checkFailure(t, p, ErrScope)(p.InterchangeAE(0, "u'", 0))
}

func Test_Interchange_02(t *testing.T) {
	p := given("[~Eb:b=0&~Eb:Sb=0]")
	checkTheorem(t, "[~Eb:b=0&Ab:~Sb=0]")(p.InterchangeEA(0, "b", 1))
	checkTheorem(t, "[Ab:~b=0&~Eb:Sb=0]")(p.InterchangeEA(0, "b", 0))
	checkTheorem(t, "[~Eb:b=0&~Eb:Sb=0]")(p.InterchangeAE(2, "b", 0))
}

// ============================================================================
// Suppositions
// ============================================================================

func Test_Supposition_01(t *testing.T) {
	p := New("", axiom.Peano())
	checkTheorem(t, "a=b")(p.Supposition(formula("a=b")))
	assert.Equal(t, uint(1), p.Depth())
	checkTheorem(t, "b=a")(p.Symmetry(0))
	checkTheorem(t, "[a=b>b=a]")(p.Implication())
	assert.Equal(t, uint(0), p.Depth())
	//
	steps := p.Steps()
	assert.Equal(t, uint(1), steps[1].Depth)
	assert.Equal(t, uint(0), steps[1].ScopeStart)
	assert.Equal(t, uint(0), steps[2].Depth)
	// Theorems from the closed supposition are inaccessible
	checkFailure(t, p, ErrScope)(p.Symmetry(0))
	checkFailure(t, p, ErrScope)(p.Symmetry(1))
	checkTheorem(t, "[a=b>b=a]")(p.Theorem(2))
}

func Test_Supposition_02(t *testing.T) {
	p := New("", axiom.Peano())
	checkFailure(t, p, ErrNoSupposition)(p.Implication())
	checkTheorem(t, "a=0")(p.Supposition(formula("a=0")))
	checkFailure(t, p, ErrNestedSupposition)(p.Supposition(formula("b=0")))
	assert.Equal(t, uint(1), p.Depth())
	checkTheorem(t, "[a=0>a=0]")(p.Implication())
	checkFailure(t, p, ErrNoSupposition)(p.Implication())
}

func Test_Supposition_03(t *testing.T) {
	p := New("", axiom.Peano())
	malformed := ast.NewAnd(formula("Aa:a=a"), formula("a=0"))
	checkFailure(t, p, ast.ErrMalformedFormula)(p.Supposition(malformed))
	assert.Equal(t, uint(0), p.Depth())
}

func Test_Supposition_04(t *testing.T) {
	// Two consecutive suppositions, each closed before the next.
	p := given("0=0")
	checkTheorem(t, "a=0")(p.Supposition(formula("a=0")))
	checkTheorem(t, "0=0")(p.Symmetry(0))
	checkTheorem(t, "[a=0>0=0]")(p.Implication())
	checkTheorem(t, "b=0")(p.Supposition(formula("b=0")))
	checkFailure(t, p, ErrScope)(p.Symmetry(1))
	checkTheorem(t, "0=b")(p.Symmetry(4))
	checkTheorem(t, "[b=0>0=b]")(p.Implication())
	assert.Equal(t, uint(7), p.Len())
}

// ============================================================================
// Induction
// ============================================================================

func Test_Induction_01(t *testing.T) {
	p := given("0=0", "Ax:[x=x>Sx=Sx]")
	checkTheorem(t, "Ax:x=x")(p.Induction("x", 0, 1))
	assert.Equal(t, "induction x, 0, 1", p.Steps()[2].Annotation)
}

func Test_Induction_02(t *testing.T) {
	p := given("0=0", "Ax:[x=x>Sx=x]", "Ax:[x=x>x=Sx]", "Ax:x=x", "Ay:[y=y>Sy=Sy]")
	// Consequent not P(Sx)
	checkFailure(t, p, ErrInduction)(p.Induction("x", 0, 1))
	checkFailure(t, p, ErrInduction)(p.Induction("x", 0, 2))
	// General case not an implication
	checkFailure(t, p, ErrInduction)(p.Induction("x", 0, 3))
	// Wrong variable
	checkFailure(t, p, ErrInduction)(p.Induction("x", 0, 4))
	checkTheorem(t, "Ay:y=y")(p.Induction("y", 0, 4))
}

func Test_Induction_03(t *testing.T) {
	p := given("S0=S0", "x=x", "Ax:[x=x>Sx=Sx]")
	// Base case does not match P(0)
	checkFailure(t, p, ErrInduction)(p.Induction("x", 0, 2))
	// Base case mentions x
	checkFailure(t, p, ErrInduction)(p.Induction("x", 1, 2))
}

func Test_Induction_04(t *testing.T) {
	p := given("(0+0)=0", "Ab:[(b+0)=b>(Sb+0)=Sb]")
	checkTheorem(t, "Ab:(b+0)=b")(p.Induction("b", 0, 1))
}

// ============================================================================
// Propositional rules
// ============================================================================

func Test_Joining_01(t *testing.T) {
	p := given("a=0", "b=0", "~a=0")
	checkTheorem(t, "[a=0&b=0]")(p.Joining(0, 1))
	checkTheorem(t, "b=0")(p.Separation(3, true))
	checkTheorem(t, "a=0")(p.Separation(3, false))
	checkFailure(t, p, ErrStructure)(p.Separation(2, false))
}

func Test_Joining_02(t *testing.T) {
	// Joining must not produce a malformed formula.
	p := given("Aa:a=a", "a=0")
	checkFailure(t, p, ast.ErrMalformedFormula)(p.Joining(0, 1))
}

func Test_Detachment_01(t *testing.T) {
	p := given("a=0", "[a=0>b=0]", "b=0")
	checkTheorem(t, "b=0")(p.Detachment(0, 1))
	checkFailure(t, p, ErrMismatch)(p.Detachment(2, 1))
	checkFailure(t, p, ErrStructure)(p.Detachment(0, 2))
}

func Test_Contrapositive_01(t *testing.T) {
	p := given("[a=0>b=0]", "a=0")
	checkTheorem(t, "[~b=0>~a=0]")(p.Contrapositive(0))
	checkTheorem(t, "[a=0>b=0]")(p.Contrapositive(2))
	checkFailure(t, p, ErrStructure)(p.Contrapositive(1))
}

func Test_DeMorgan_01(t *testing.T) {
	p := given("[~a=0&~b=0]", "[a=0&b=0]")
	checkTheorem(t, "~[a=0|b=0]")(p.DeMorgan(0))
	checkTheorem(t, "[~a=0&~b=0]")(p.DeMorgan(2))
	checkFailure(t, p, ErrStructure)(p.DeMorgan(1))
}

func Test_Switcheroo_01(t *testing.T) {
	p := given("[a=0|b=0]", "[a=0>b=0]")
	checkTheorem(t, "[~a=0>b=0]")(p.Switcheroo(0))
	checkTheorem(t, "[a=0|b=0]")(p.Switcheroo(2))
	checkFailure(t, p, ErrStructure)(p.Switcheroo(1))
}

func Test_DoubleTilde_01(t *testing.T) {
	p := given("[a=0&b=0]")
	checkTheorem(t, "[a=0&~~b=0]")(p.AddDoubleTilde(0, 2))
	checkTheorem(t, "~~[a=0&b=0]")(p.AddDoubleTilde(0, 0))
	checkTheorem(t, "[a=0&b=0]")(p.RemoveDoubleTilde(1, 0))
	checkFailure(t, p, ErrScope)(p.RemoveDoubleTilde(1, 1))
	checkFailure(t, p, ErrScope)(p.AddDoubleTilde(0, 3))
}

// ============================================================================
// Accessors & errors
// ============================================================================

func Test_Accessors_01(t *testing.T) {
	p := New("", axiom.Peano())
	_, err := p.LastTheorem()
	assert.ErrorIs(t, err, ErrIndex)
	checkFailure(t, p, ErrIndex)(p.Symmetry(0))
	checkFailure(t, p, ErrIndex)(p.Theorem(0))
	//
	p = given("a=b", "b=c")
	checkTheorem(t, "b=c")(p.LastTheorem())
	checkFailure(t, p, ErrIndex)(p.Transitivity(0, 2))
	assert.Equal(t, 2, len(p.AllTheorems()))
	assert.Equal(t, "a=b", p.AllTheorems()[0].String())
}

func Test_Accessors_02(t *testing.T) {
	axioms := axiom.Peano()
	p := New("", axioms)
	axioms[0] = formula("0=0")
	// Deduction unaffected by changes to original axioms
	assert.Equal(t, "~Sa=0", p.Axioms()[0].String())
	checkFailure(t, p, ErrAxiom)(p.AddAxiom(formula("0=0")))
}

func Test_KindOf_01(t *testing.T) {
	for _, name := range []string{"axiom", "scope", "capture", "generalization", "mismatch", "structure",
		"nested_supposition", "no_supposition", "induction", "index", "malformed"} {
		_, ok := KindOf(name)
		assert.True(t, ok, "unknown kind %s", name)
	}
	//
	kind, _ := KindOf("Capture")
	assert.True(t, kind == ErrCapture)
	_, ok := KindOf("unknown")
	assert.False(t, ok)
}

// ============================================================================
// Helpers
// ============================================================================

func formula(text string) ast.Formula {
	return parser.MustParseFormula(text)
}

func term(text string) ast.Term {
	return parser.MustParseTerm(text)
}

// given constructs a deduction whose initial theorems are the given formulas.
// This bypasses the rules, allowing tests to start from arbitrary theorems.
func given(texts ...string) *Deduction {
	p := New("", axiom.Peano())
	//
	for _, text := range texts {
		p.append(formula(text), "given")
	}
	//
	return p
}

func checkTheorem(t *testing.T, expected string) func(ast.Formula, error) {
	return func(actual ast.Formula, err error) {
		t.Helper()
		assert.NoError(t, err)
		assert.Equal(t, expected, actual.String())
	}
}

// checkFailure checks a rule failed with the given kind of error, and that the
// deduction was left unchanged.
func checkFailure(t *testing.T, p *Deduction, kind error) func(ast.Formula, error) {
	length, depth := p.Len(), p.Depth()
	//
	return func(actual ast.Formula, err error) {
		t.Helper()
		assert.ErrorIs(t, err, kind)
		assert.True(t, actual == nil, "unexpected theorem %v", actual)
		assert.Equal(t, length, p.Len())
		assert.Equal(t, depth, p.Depth())
	}
}
