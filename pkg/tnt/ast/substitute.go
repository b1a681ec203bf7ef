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

// Substitute replaces every free occurrence of a variable v in a formula with a
// given term t.  No capture checking is performed: callers are responsible for
// ensuring that no variable of t is bound at a point where v occurs free.
func Substitute(f Formula, v Variable, t Term) Formula {
	switch e := f.(type) {
	case *Equality:
		return &Equality{e.Left.Replace(v, t), e.Right.Replace(v, t)}
	case *Not:
		return &Not{Substitute(e.Body, v, t)}
	case *Binary:
		return &Binary{e.Op, Substitute(e.Left, v, t), Substitute(e.Right, v, t)}
	case *Quantifier:
		if e.Var == v {
			// v is not free below this point
			return e
		}
		//
		return &Quantifier{e.Kind, e.Var, Substitute(e.Body, v, t)}
	}
	//
	panic(unknownFormula(f))
}

// ReplaceTerm replaces occurrences of a target term within a formula by another
// term.  Occurrences under a quantifier which binds a variable of the target
// are left untouched, since they do not denote the same value.
func ReplaceTerm(f Formula, target Term, with Term) Formula {
	switch e := f.(type) {
	case *Equality:
		return &Equality{ReplaceSubterm(e.Left, target, with), ReplaceSubterm(e.Right, target, with)}
	case *Not:
		return &Not{ReplaceTerm(e.Body, target, with)}
	case *Binary:
		return &Binary{e.Op, ReplaceTerm(e.Left, target, with), ReplaceTerm(e.Right, target, with)}
	case *Quantifier:
		if target.ContainsVar(e.Var) {
			return e
		}
		//
		return &Quantifier{e.Kind, e.Var, ReplaceTerm(e.Body, target, with)}
	}
	//
	panic(unknownFormula(f))
}

// ContainsTerm checks whether a target term occurs within a formula, other than
// underneath a quantifier binding one of its variables.
func ContainsTerm(f Formula, target Term) bool {
	switch e := f.(type) {
	case *Equality:
		return ContainsSubterm(e.Left, target) || ContainsSubterm(e.Right, target)
	case *Not:
		return ContainsTerm(e.Body, target)
	case *Binary:
		return ContainsTerm(e.Left, target) || ContainsTerm(e.Right, target)
	case *Quantifier:
		return !target.ContainsVar(e.Var) && ContainsTerm(e.Body, target)
	}
	//
	panic(unknownFormula(f))
}

// RewriteNth rewrites the nth (counting from 0) subformula matched by a given
// rewrite function.  Subformulas are visited in pre-order (i.e. in the order
// in which they begin in the canonical text), and the rewritten subformula is
// not itself searched any further.  This returns false if fewer than n+1
// subformulas match.
func RewriteNth(f Formula, n uint, rewrite func(Formula) (Formula, bool)) (Formula, bool) {
	var count uint
	//
	var visit func(Formula) (Formula, bool)
	//
	visit = func(f Formula) (Formula, bool) {
		if nf, ok := rewrite(f); ok {
			if count == n {
				return nf, true
			}
			//
			count++
		}
		//
		switch e := f.(type) {
		case *Equality:
			return f, false
		case *Not:
			if body, ok := visit(e.Body); ok {
				return &Not{body}, true
			}
		case *Binary:
			if left, ok := visit(e.Left); ok {
				return &Binary{e.Op, left, e.Right}, true
			} else if right, ok := visit(e.Right); ok {
				return &Binary{e.Op, e.Left, right}, true
			}
		case *Quantifier:
			if body, ok := visit(e.Body); ok {
				return &Quantifier{e.Kind, e.Var, body}, true
			}
		default:
			panic(unknownFormula(f))
		}
		//
		return f, false
	}
	//
	return visit(f)
}

// CountMatches counts the subformulas of a formula accepted by a given
// predicate.
func CountMatches(f Formula, pred func(Formula) bool) uint {
	var count uint
	//
	if pred(f) {
		count++
	}
	//
	switch e := f.(type) {
	case *Equality:
		return count
	case *Not:
		return count + CountMatches(e.Body, pred)
	case *Binary:
		return count + CountMatches(e.Left, pred) + CountMatches(e.Right, pred)
	case *Quantifier:
		return count + CountMatches(e.Body, pred)
	}
	//
	panic(unknownFormula(f))
}
