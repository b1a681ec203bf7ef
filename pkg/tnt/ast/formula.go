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
package ast

import (
	"fmt"
)

// Formula represents a logical statement built from term equality, the
// connectives, negation and the two quantifiers.  Like terms, formulas are
// immutable and every rewrite produces a new tree.  The String() form of a
// formula is its canonical text, and parsing it again yields a structurally
// identical formula.
type Formula interface {
	fmt.Stringer
	// Equals checks whether this formula is structurally identical to another.
	Equals(Formula) bool
}

// ============================================================================
// Equality
// ============================================================================

// Equality asserts that two terms are equal, written l=r.  Observe that the
// operands are always terms, hence equality can never relate two formulas.
type Equality struct {
	Left  Term
	Right Term
}

// NewEquality constructs an equality between two terms.
func NewEquality(left Term, right Term) *Equality {
	return &Equality{left, right}
}

// Equals implementation for Formula interface.
func (f *Equality) Equals(o Formula) bool {
	if e, ok := o.(*Equality); ok {
		return f.Left.Equals(e.Left) && f.Right.Equals(e.Right)
	}
	//
	return false
}

func (f *Equality) String() string {
	return fmt.Sprintf("%s=%s", f.Left, f.Right)
}

// ============================================================================
// Not
// ============================================================================

// Not represents the negation of a formula, written ~F.
type Not struct {
	Body Formula
}

// NewNot constructs the negation of a given formula.
func NewNot(body Formula) *Not {
	return &Not{body}
}

// Equals implementation for Formula interface.
func (f *Not) Equals(o Formula) bool {
	if n, ok := o.(*Not); ok {
		return f.Body.Equals(n.Body)
	}
	//
	return false
}

func (f *Not) String() string {
	return "~" + f.Body.String()
}

// ============================================================================
// Binary
// ============================================================================

// Connective identifies one of the binary logical connectives.
type Connective uint8

const (
	// AND represents logical conjunction, written [L&R].
	AND Connective = iota
	// OR represents logical disjunction, written [L|R].
	OR
	// IMPLIES represents logical implication, written [L>R].
	IMPLIES
)

// Symbol returns the concrete symbol used for this connective.
func (c Connective) Symbol() string {
	switch c {
	case AND:
		return "&"
	case OR:
		return "|"
	case IMPLIES:
		return ">"
	}
	//
	panic(fmt.Sprintf("unknown connective %d", c))
}

// Binary represents the application of a binary connective.
type Binary struct {
	Op    Connective
	Left  Formula
	Right Formula
}

// NewAnd constructs the conjunction of two formulas.
func NewAnd(left Formula, right Formula) *Binary {
	return &Binary{AND, left, right}
}

// NewOr constructs the disjunction of two formulas.
func NewOr(left Formula, right Formula) *Binary {
	return &Binary{OR, left, right}
}

// NewImplies constructs the implication of two formulas.
func NewImplies(left Formula, right Formula) *Binary {
	return &Binary{IMPLIES, left, right}
}

// Equals implementation for Formula interface.
func (f *Binary) Equals(o Formula) bool {
	if b, ok := o.(*Binary); ok {
		return f.Op == b.Op && f.Left.Equals(b.Left) && f.Right.Equals(b.Right)
	}
	//
	return false
}

func (f *Binary) String() string {
	return fmt.Sprintf("[%s%s%s]", f.Left, f.Op.Symbol(), f.Right)
}

// ============================================================================
// Quantifier
// ============================================================================

// QuantifierKind distinguishes universal from existential quantification.
type QuantifierKind uint8

const (
	// FORALL represents universal quantification, written Av:F.
	FORALL QuantifierKind = iota
	// EXISTS represents existential quantification, written Ev:F.
	EXISTS
)

// Symbol returns the concrete symbol used for this quantifier.
func (k QuantifierKind) Symbol() string {
	if k == FORALL {
		return "A"
	}
	//
	return "E"
}

// Quantifier binds a variable within a formula.
type Quantifier struct {
	Kind QuantifierKind
	Var  Variable
	Body Formula
}

// NewForAll constructs a universally quantified formula.
func NewForAll(v Variable, body Formula) *Quantifier {
	return &Quantifier{FORALL, v, body}
}

// NewExists constructs an existentially quantified formula.
func NewExists(v Variable, body Formula) *Quantifier {
	return &Quantifier{EXISTS, v, body}
}

// Equals implementation for Formula interface.
func (f *Quantifier) Equals(o Formula) bool {
	if q, ok := o.(*Quantifier); ok {
		return f.Kind == q.Kind && f.Var == q.Var && f.Body.Equals(q.Body)
	}
	//
	return false
}

func (f *Quantifier) String() string {
	return fmt.Sprintf("%s%s:%s", f.Kind.Symbol(), f.Var, f.Body)
}

// ============================================================================
// Matchers
// ============================================================================

// AsEquality returns the given formula as an equality, if it is one.
func AsEquality(f Formula) (*Equality, bool) {
	e, ok := f.(*Equality)
	return e, ok
}

// AsForAll returns the given formula as a universal quantifier, if it is one.
func AsForAll(f Formula) (*Quantifier, bool) {
	if q, ok := f.(*Quantifier); ok && q.Kind == FORALL {
		return q, true
	}
	//
	return nil, false
}

// AsExists returns the given formula as an existential quantifier, if it is one.
func AsExists(f Formula) (*Quantifier, bool) {
	if q, ok := f.(*Quantifier); ok && q.Kind == EXISTS {
		return q, true
	}
	//
	return nil, false
}

// AsBinary returns the given formula as an application of a given connective,
// if it is one.
func AsBinary(f Formula, op Connective) (*Binary, bool) {
	if b, ok := f.(*Binary); ok && b.Op == op {
		return b, true
	}
	//
	return nil, false
}

// AsNot returns the given formula as a negation, if it is one.
func AsNot(f Formula) (*Not, bool) {
	n, ok := f.(*Not)
	return n, ok
}
