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
	"github.com/consensys/go-tnt/pkg/util/collection/set"
)

// Fresh returns the first variable in the austere sequence a, a', a'', ...
// which is not contained in a given set of used variables.
func Fresh(used *set.SortedSet[Variable]) Variable {
	v := Variable("a")
	//
	for used.Contains(v) {
		v = v.Prime()
	}
	//
	return v
}

// Austere returns the austere form of a formula.  This renames every bound
// variable, in the order in which its quantifier appears, to the next name in
// the sequence a, a', a'', ... which is neither free in the formula nor already
// assigned.  Two formulas which differ only in the naming of their bound
// variables share the same austere form.  Free variables are left unchanged.
func Austere(f Formula) Formula {
	used := FreeVars(f)
	//
	return austere(f, used, map[Variable]Variable{})
}

// AustereEquals checks whether two formulas are equal up to the naming of their
// bound variables.
func AustereEquals(f Formula, g Formula) bool {
	return Austere(f).Equals(Austere(g))
}

func austere(f Formula, used *set.SortedSet[Variable], env map[Variable]Variable) Formula {
	switch e := f.(type) {
	case *Equality:
		rename := func(v Variable) Variable {
			if n, ok := env[v]; ok {
				return n
			}
			//
			return v
		}
		//
		return &Equality{e.Left.mapVars(rename), e.Right.mapVars(rename)}
	case *Not:
		return &Not{austere(e.Body, used, env)}
	case *Binary:
		left := austere(e.Left, used, env)
		right := austere(e.Right, used, env)
		//
		return &Binary{e.Op, left, right}
	case *Quantifier:
		name := Fresh(used)
		used.Insert(name)
		// Scope the renaming to the body of this quantifier
		nenv := make(map[Variable]Variable, len(env)+1)
		for k, v := range env {
			nenv[k] = v
		}
		//
		nenv[e.Var] = name
		//
		return &Quantifier{e.Kind, name, austere(e.Body, used, nenv)}
	}
	//
	panic(unknownFormula(f))
}

// Closure returns the universal closure of a formula, obtained by universally
// quantifying its free variables in the order of their first occurrence.  For
// example, the closure of (a+Sb)=S(a+b) is Aa:Ab:(a+Sb)=S(a+b).
func Closure(f Formula) Formula {
	vars := FreeVarsInOrder(f)
	//
	for i := len(vars) - 1; i >= 0; i-- {
		f = NewForAll(vars[i], f)
	}
	//
	return f
}

// StripForAll removes all outermost universal quantifiers from a formula.
func StripForAll(f Formula) Formula {
	for {
		q, ok := AsForAll(f)
		if !ok {
			return f
		}
		//
		f = q.Body
	}
}
