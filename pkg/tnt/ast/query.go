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

// FreeVars returns the set of variables which occur free in a given formula.
func FreeVars(f Formula) *set.SortedSet[Variable] {
	free := set.NewSortedSet[Variable]()
	collectFree(f, set.NewSortedSet[Variable](), free)
	//
	return free
}

// BoundVars returns the set of variables quantified anywhere within a given
// formula.
func BoundVars(f Formula) *set.SortedSet[Variable] {
	bound := set.NewSortedSet[Variable]()
	collectBound(f, bound)
	//
	return bound
}

// AllVars returns the set of all variables occurring in a given formula,
// whether free or bound.
func AllVars(f Formula) *set.SortedSet[Variable] {
	vars := FreeVars(f)
	vars.InsertSorted(BoundVars(f))
	//
	return vars
}

// ContainsVar checks whether a given variable occurs anywhere within a formula
// (either free, bound or as the variable of a quantifier).
func ContainsVar(f Formula, v Variable) bool {
	switch e := f.(type) {
	case *Equality:
		return e.Left.ContainsVar(v) || e.Right.ContainsVar(v)
	case *Not:
		return ContainsVar(e.Body, v)
	case *Binary:
		return ContainsVar(e.Left, v) || ContainsVar(e.Right, v)
	case *Quantifier:
		return e.Var == v || ContainsVar(e.Body, v)
	}
	//
	panic(unknownFormula(f))
}

// IsFree checks whether a given variable occurs free in a formula.
func IsFree(f Formula, v Variable) bool {
	return FreeVars(f).Contains(v)
}

// FreeVarsInOrder returns the free variables of a formula in order of their
// first occurrence in its canonical text.
func FreeVarsInOrder(f Formula) []Variable {
	var (
		seen  = set.NewSortedSet[Variable]()
		order []Variable
	)
	//
	visitFree(f, set.NewSortedSet[Variable](), func(v Variable) {
		if !seen.Contains(v) {
			seen.Insert(v)
			order = append(order, v)
		}
	})
	//
	return order
}

func collectFree(f Formula, bound *set.SortedSet[Variable], free *set.SortedSet[Variable]) {
	visitFree(f, bound, free.Insert)
}

// Visit every free variable occurrence in a formula in textual order.
func visitFree(f Formula, bound *set.SortedSet[Variable], visit func(Variable)) {
	switch e := f.(type) {
	case *Equality:
		for _, t := range []Term{e.Left, e.Right} {
			t.visitVars(func(v Variable) {
				if !bound.Contains(v) {
					visit(v)
				}
			})
		}
	case *Not:
		visitFree(e.Body, bound, visit)
	case *Binary:
		visitFree(e.Left, bound, visit)
		visitFree(e.Right, bound, visit)
	case *Quantifier:
		if bound.Contains(e.Var) {
			visitFree(e.Body, bound, visit)
		} else {
			nbound := set.Of(*bound...)
			nbound.Insert(e.Var)
			visitFree(e.Body, nbound, visit)
		}
	default:
		panic(unknownFormula(f))
	}
}

func collectBound(f Formula, bound *set.SortedSet[Variable]) {
	switch e := f.(type) {
	case *Equality:
		return
	case *Not:
		collectBound(e.Body, bound)
	case *Binary:
		collectBound(e.Left, bound)
		collectBound(e.Right, bound)
	case *Quantifier:
		bound.Insert(e.Var)
		collectBound(e.Body, bound)
	default:
		panic(unknownFormula(f))
	}
}

func unknownFormula(f Formula) string {
	return fmt.Sprintf("unknown formula encountered (%T)", f)
}
