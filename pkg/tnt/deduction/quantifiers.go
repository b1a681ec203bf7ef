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
	"fmt"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/axiom"
)

// AddAxiom appends a given formula as a theorem, provided it matches one of the
// axioms of this deduction.  Formulas are matched by their axiom key, hence
// (a+0)=a is accepted for the axiom Aa:(a+0)=a, as is any renaming of its bound
// variables.
func (p *Deduction) AddAxiom(f ast.Formula) (ast.Formula, error) {
	index, ok := axiom.Find(f, p.axioms)
	//
	if !ok {
		return nil, failure("axiom", ErrAxiom, fmt.Sprintf("%s is not an axiom", f), f)
	}
	//
	return p.derive("axiom", f, fmt.Sprintf("axiom %d", index+1))
}

// ============================================================================
// Quantifier rules
// ============================================================================

// Specification takes a theorem Av:F and derives F with every free occurrence
// of v replaced by a given term.  This fails if the term contains a variable
// (other than v) which is bound somewhere within F.
func (p *Deduction) Specification(n uint, v ast.Variable, t ast.Term) (ast.Formula, error) {
	const rule = "specification"
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	q, ok := ast.AsForAll(f)
	if !ok || q.Var != v {
		msg := fmt.Sprintf("theorem %d is not of the form A%s:...", n, v)
		return nil, variableFailure(rule, ErrScope, v, msg, f)
	}
	//
	bound := ast.BoundVars(q.Body)
	//
	for _, u := range *ast.Vars(t) {
		if u != v && bound.Contains(u) {
			msg := fmt.Sprintf("term %s would be captured by quantifier of %s", t, u)
			return nil, variableFailure(rule, ErrCapture, u, msg, f)
		}
	}
	//
	result := ast.Substitute(q.Body, v, t)
	//
	return p.derive(rule, result, fmt.Sprintf("specification %d, %s:=%s", n, v, t))
}

// Generalization takes a theorem F and derives Av:F.  This fails if v is
// already bound within F or, when inside a supposition, if v is free in the
// premise of that supposition.
func (p *Deduction) Generalization(n uint, v ast.Variable) (ast.Formula, error) {
	const rule = "generalization"
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	if ast.BoundVars(f).Contains(v) {
		msg := fmt.Sprintf("%s is already bound in theorem %d", v, n)
		return nil, variableFailure(rule, ErrGeneralization, v, msg, f)
	} else if !p.scopes.IsEmpty() {
		premise := p.steps[p.scopes.Peek(0)].Formula
		//
		if ast.IsFree(premise, v) {
			msg := fmt.Sprintf("%s is free in premise %s", v, premise)
			return nil, variableFailure(rule, ErrGeneralization, v, msg, f, premise)
		}
	}
	//
	return p.derive(rule, ast.NewForAll(v, f), fmt.Sprintf("generalization %d, %s", n, v))
}

// Existence takes a theorem F and derives Ev:F' where F' is F with every
// occurrence of a given term replaced by v.  This fails if v is already bound
// within F, or if v occurs free within F other than as part of the term being
// replaced (in which case the new quantifier would capture it).
func (p *Deduction) Existence(n uint, t ast.Term, v ast.Variable) (ast.Formula, error) {
	const rule = "existence"
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	if ast.BoundVars(f).Contains(v) {
		msg := fmt.Sprintf("%s is already bound in theorem %d", v, n)
		return nil, variableFailure(rule, ErrGeneralization, v, msg, f)
	}
	// Replace t by a placeholder first, so that any remaining occurrences of v
	// can be identified.
	used := ast.AllVars(f)
	used.InsertSorted(ast.Vars(t))
	used.Insert(v)
	placeholder := ast.Fresh(used)
	body := ast.ReplaceTerm(f, t, ast.NewVar(placeholder))
	//
	if ast.IsFree(body, v) {
		msg := fmt.Sprintf("%s occurs free in theorem %d outside of %s", v, n, t)
		return nil, variableFailure(rule, ErrGeneralization, v, msg, f)
	}
	//
	body = ast.Substitute(body, placeholder, ast.NewVar(v))
	//
	return p.derive(rule, ast.NewExists(v, body), fmt.Sprintf("existence %d, %s:=%s", n, t, v))
}

// InterchangeEA rewrites the kth (counting from 0) occurrence of ~Ev: within a
// theorem into Av:~.
func (p *Deduction) InterchangeEA(n uint, v ast.Variable, k uint) (ast.Formula, error) {
	return p.interchange("interchange_ea", n, v, k, func(f ast.Formula) (ast.Formula, bool) {
		if not, ok := ast.AsNot(f); ok {
			if q, ok := ast.AsExists(not.Body); ok && q.Var == v {
				return ast.NewForAll(v, ast.NewNot(q.Body)), true
			}
		}
		//
		return nil, false
	})
}

// InterchangeAE rewrites the kth (counting from 0) occurrence of Av:~ within a
// theorem into ~Ev:.
func (p *Deduction) InterchangeAE(n uint, v ast.Variable, k uint) (ast.Formula, error) {
	return p.interchange("interchange_ae", n, v, k, func(f ast.Formula) (ast.Formula, bool) {
		if q, ok := ast.AsForAll(f); ok && q.Var == v {
			if not, ok := ast.AsNot(q.Body); ok {
				return ast.NewNot(ast.NewExists(v, not.Body)), true
			}
		}
		//
		return nil, false
	})
}

func (p *Deduction) interchange(rule string, n uint, v ast.Variable, k uint,
	rewrite func(ast.Formula) (ast.Formula, bool)) (ast.Formula, error) {
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	result, ok := ast.RewriteNth(f, k, rewrite)
	//
	if !ok {
		msg := fmt.Sprintf("theorem %d has fewer than %d matching occurrences for %s", n, k+1, v)
		return nil, variableFailure(rule, ErrScope, v, msg, f)
	}
	//
	return p.derive(rule, result, fmt.Sprintf("%s %d, %s, %d", rule, n, v, k))
}
