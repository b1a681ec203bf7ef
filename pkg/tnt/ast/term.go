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

	"github.com/consensys/go-tnt/pkg/util/collection/set"
)

// Term represents an arithmetic expression over zero, variables, successor,
// sum and product.  Terms are immutable once constructed; operations which
// rewrite a term always return a new tree (though unchanged subtrees may be
// shared, since they can never be modified).
type Term interface {
	fmt.Stringer
	// ContainsVar checks whether a given variable occurs anywhere in this term.
	ContainsVar(Variable) bool
	// Replace substitutes every occurrence of a given variable with a given
	// term.  Terms contain no binders, hence no capture checking is done here.
	Replace(Variable, Term) Term
	// Equals checks whether this term is structurally identical to another.
	Equals(Term) bool
	// Visit every variable occurrence in this term, in textual order.
	visitVars(func(Variable))
	// Apply a renaming to every variable in this term.
	mapVars(func(Variable) Variable) Term
}

// ZERO is the (shared) zero term.
var ZERO Term = &Zero{}

// ONE is the (shared) term S0.
var ONE Term = &Succ{ZERO}

// Vars returns the set of variables used within a given term.
func Vars(t Term) *set.SortedSet[Variable] {
	vars := set.NewSortedSet[Variable]()
	t.visitVars(vars.Insert)
	//
	return vars
}

// Numeral constructs the term SS...S0 representing a given natural number.
func Numeral(n uint) Term {
	var t = ZERO
	//
	for i := uint(0); i < n; i++ {
		t = &Succ{t}
	}
	//
	return t
}

// AsNumeral determines whether a given term is a numeral (i.e. of the form
// SS...S0) and, if so, returns its value.
func AsNumeral(t Term) (uint, bool) {
	var n uint
	//
	for {
		switch e := t.(type) {
		case *Zero:
			return n, true
		case *Succ:
			n++
			t = e.Arg
		default:
			return 0, false
		}
	}
}

// ============================================================================
// Zero
// ============================================================================

// Zero represents the constant 0.
type Zero struct{}

// ContainsVar implementation for Term interface.
func (e *Zero) ContainsVar(Variable) bool {
	return false
}

// Replace implementation for Term interface.
func (e *Zero) Replace(Variable, Term) Term {
	return e
}

// Equals implementation for Term interface.
func (e *Zero) Equals(o Term) bool {
	_, ok := o.(*Zero)
	return ok
}

func (e *Zero) visitVars(func(Variable)) {}

func (e *Zero) mapVars(func(Variable) Variable) Term {
	return e
}

func (e *Zero) String() string {
	return "0"
}

// ============================================================================
// Var
// ============================================================================

// Var represents the use of a variable within a term.
type Var struct {
	Name Variable
}

// NewVar constructs a term which uses a given variable.
func NewVar(v Variable) *Var {
	return &Var{v}
}

// ContainsVar implementation for Term interface.
func (e *Var) ContainsVar(v Variable) bool {
	return e.Name == v
}

// Replace implementation for Term interface.
func (e *Var) Replace(v Variable, t Term) Term {
	if e.Name == v {
		return t
	}
	//
	return e
}

// Equals implementation for Term interface.
func (e *Var) Equals(o Term) bool {
	if v, ok := o.(*Var); ok {
		return e.Name == v.Name
	}
	//
	return false
}

func (e *Var) visitVars(visit func(Variable)) {
	visit(e.Name)
}

func (e *Var) mapVars(fn func(Variable) Variable) Term {
	if n := fn(e.Name); n != e.Name {
		return &Var{n}
	}
	//
	return e
}

func (e *Var) String() string {
	return string(e.Name)
}

// ============================================================================
// Succ
// ============================================================================

// Succ represents the successor of a term (i.e. St).
type Succ struct {
	Arg Term
}

// NewSucc constructs the successor of a given term.
func NewSucc(arg Term) *Succ {
	return &Succ{arg}
}

// ContainsVar implementation for Term interface.
func (e *Succ) ContainsVar(v Variable) bool {
	return e.Arg.ContainsVar(v)
}

// Replace implementation for Term interface.
func (e *Succ) Replace(v Variable, t Term) Term {
	return &Succ{e.Arg.Replace(v, t)}
}

// Equals implementation for Term interface.
func (e *Succ) Equals(o Term) bool {
	if s, ok := o.(*Succ); ok {
		return e.Arg.Equals(s.Arg)
	}
	//
	return false
}

func (e *Succ) visitVars(visit func(Variable)) {
	e.Arg.visitVars(visit)
}

func (e *Succ) mapVars(fn func(Variable) Variable) Term {
	return &Succ{e.Arg.mapVars(fn)}
}

func (e *Succ) String() string {
	return "S" + e.Arg.String()
}

// ============================================================================
// Sum
// ============================================================================

// Sum represents the addition of two terms, written (l+r).
type Sum struct {
	Left  Term
	Right Term
}

// NewSum constructs the sum of two terms.
func NewSum(left Term, right Term) *Sum {
	return &Sum{left, right}
}

// ContainsVar implementation for Term interface.
func (e *Sum) ContainsVar(v Variable) bool {
	return e.Left.ContainsVar(v) || e.Right.ContainsVar(v)
}

// Replace implementation for Term interface.
func (e *Sum) Replace(v Variable, t Term) Term {
	return &Sum{e.Left.Replace(v, t), e.Right.Replace(v, t)}
}

// Equals implementation for Term interface.
func (e *Sum) Equals(o Term) bool {
	if s, ok := o.(*Sum); ok {
		return e.Left.Equals(s.Left) && e.Right.Equals(s.Right)
	}
	//
	return false
}

func (e *Sum) visitVars(visit func(Variable)) {
	e.Left.visitVars(visit)
	e.Right.visitVars(visit)
}

func (e *Sum) mapVars(fn func(Variable) Variable) Term {
	return &Sum{e.Left.mapVars(fn), e.Right.mapVars(fn)}
}

func (e *Sum) String() string {
	return fmt.Sprintf("(%s+%s)", e.Left, e.Right)
}

// ============================================================================
// Product
// ============================================================================

// Product represents the multiplication of two terms, written (l*r).
type Product struct {
	Left  Term
	Right Term
}

// NewProduct constructs the product of two terms.
func NewProduct(left Term, right Term) *Product {
	return &Product{left, right}
}

// ContainsVar implementation for Term interface.
func (e *Product) ContainsVar(v Variable) bool {
	return e.Left.ContainsVar(v) || e.Right.ContainsVar(v)
}

// Replace implementation for Term interface.
func (e *Product) Replace(v Variable, t Term) Term {
	return &Product{e.Left.Replace(v, t), e.Right.Replace(v, t)}
}

// Equals implementation for Term interface.
func (e *Product) Equals(o Term) bool {
	if p, ok := o.(*Product); ok {
		return e.Left.Equals(p.Left) && e.Right.Equals(p.Right)
	}
	//
	return false
}

func (e *Product) visitVars(visit func(Variable)) {
	e.Left.visitVars(visit)
	e.Right.visitVars(visit)
}

func (e *Product) mapVars(fn func(Variable) Variable) Term {
	return &Product{e.Left.mapVars(fn), e.Right.mapVars(fn)}
}

func (e *Product) String() string {
	return fmt.Sprintf("(%s*%s)", e.Left, e.Right)
}

// ============================================================================
// Helpers
// ============================================================================

// ReplaceSubterm replaces every occurrence of a given target term within a term
// by another term.  Occurrences are matched structurally, and outermost
// occurrences take precedence.
func ReplaceSubterm(t Term, target Term, with Term) Term {
	if t.Equals(target) {
		return with
	}
	//
	switch e := t.(type) {
	case *Succ:
		return &Succ{ReplaceSubterm(e.Arg, target, with)}
	case *Sum:
		return &Sum{ReplaceSubterm(e.Left, target, with), ReplaceSubterm(e.Right, target, with)}
	case *Product:
		return &Product{ReplaceSubterm(e.Left, target, with), ReplaceSubterm(e.Right, target, with)}
	default:
		return t
	}
}

// ContainsSubterm checks whether a given target term occurs within a term.
func ContainsSubterm(t Term, target Term) bool {
	if t.Equals(target) {
		return true
	}
	//
	switch e := t.(type) {
	case *Succ:
		return ContainsSubterm(e.Arg, target)
	case *Sum:
		return ContainsSubterm(e.Left, target) || ContainsSubterm(e.Right, target)
	case *Product:
		return ContainsSubterm(e.Left, target) || ContainsSubterm(e.Right, target)
	default:
		return false
	}
}
