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
)

// Joining takes theorems x and y, and derives [x&y].
func (p *Deduction) Joining(n1 uint, n2 uint) (ast.Formula, error) {
	const rule = "joining"
	//
	f1, err := p.use(rule, n1)
	if err != nil {
		return nil, err
	}
	//
	f2, err := p.use(rule, n2)
	if err != nil {
		return nil, err
	}
	//
	return p.derive(rule, ast.NewAnd(f1, f2), fmt.Sprintf("joining %d, %d", n1, n2))
}

// Separation takes a theorem [x&y] and derives either x or y (when right holds).
func (p *Deduction) Separation(n uint, right bool) (ast.Formula, error) {
	const rule = "separation"
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	and, ok := ast.AsBinary(f, ast.AND)
	if !ok {
		return nil, failure(rule, ErrStructure, fmt.Sprintf("theorem %d is not a conjunction", n), f)
	} else if right {
		return p.derive(rule, and.Right, fmt.Sprintf("separation %d, right", n))
	}
	//
	return p.derive(rule, and.Left, fmt.Sprintf("separation %d, left", n))
}

// Detachment takes theorems x and [x>y], and derives y.
func (p *Deduction) Detachment(n1 uint, n2 uint) (ast.Formula, error) {
	const rule = "detachment"
	//
	f1, err := p.use(rule, n1)
	if err != nil {
		return nil, err
	}
	//
	f2, err := p.use(rule, n2)
	if err != nil {
		return nil, err
	}
	//
	imp, ok := ast.AsBinary(f2, ast.IMPLIES)
	if !ok {
		return nil, failure(rule, ErrStructure, fmt.Sprintf("theorem %d is not an implication", n2), f2)
	} else if !imp.Left.Equals(f1) {
		msg := fmt.Sprintf("theorem %d does not match antecedent %s", n1, imp.Left)
		return nil, failure(rule, ErrMismatch, msg, f1, f2)
	}
	//
	return p.derive(rule, imp.Right, fmt.Sprintf("detachment %d, %d", n1, n2))
}

// Contrapositive takes a theorem [~x>~y] and derives [y>x] or, otherwise, takes
// a theorem [x>y] and derives [~y>~x].
func (p *Deduction) Contrapositive(n uint) (ast.Formula, error) {
	const rule = "contrapositive"
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	imp, ok := ast.AsBinary(f, ast.IMPLIES)
	if !ok {
		return nil, failure(rule, ErrStructure, fmt.Sprintf("theorem %d is not an implication", n), f)
	}
	//
	var result ast.Formula
	//
	left, lok := ast.AsNot(imp.Left)
	right, rok := ast.AsNot(imp.Right)
	//
	if lok && rok {
		result = ast.NewImplies(right.Body, left.Body)
	} else {
		result = ast.NewImplies(ast.NewNot(imp.Right), ast.NewNot(imp.Left))
	}
	//
	return p.derive(rule, result, fmt.Sprintf("contrapositive %d", n))
}

// DeMorgan takes a theorem [~x&~y] and derives ~[x|y], or vice versa.
func (p *Deduction) DeMorgan(n uint) (ast.Formula, error) {
	const rule = "de_morgan"
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	if and, ok := ast.AsBinary(f, ast.AND); ok {
		left, lok := ast.AsNot(and.Left)
		right, rok := ast.AsNot(and.Right)
		//
		if lok && rok {
			result := ast.NewNot(ast.NewOr(left.Body, right.Body))
			return p.derive(rule, result, fmt.Sprintf("de morgan %d", n))
		}
	} else if not, ok := ast.AsNot(f); ok {
		if or, ok := ast.AsBinary(not.Body, ast.OR); ok {
			result := ast.NewAnd(ast.NewNot(or.Left), ast.NewNot(or.Right))
			return p.derive(rule, result, fmt.Sprintf("de morgan %d", n))
		}
	}
	//
	msg := fmt.Sprintf("theorem %d is not of the form [~x&~y] or ~[x|y]", n)
	//
	return nil, failure(rule, ErrStructure, msg, f)
}

// Switcheroo takes a theorem [x|y] and derives [~x>y], or vice versa.
func (p *Deduction) Switcheroo(n uint) (ast.Formula, error) {
	const rule = "switcheroo"
	//
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	if or, ok := ast.AsBinary(f, ast.OR); ok {
		result := ast.NewImplies(ast.NewNot(or.Left), or.Right)
		return p.derive(rule, result, fmt.Sprintf("switcheroo %d", n))
	} else if imp, ok := ast.AsBinary(f, ast.IMPLIES); ok {
		if not, ok := ast.AsNot(imp.Left); ok {
			result := ast.NewOr(not.Body, imp.Right)
			return p.derive(rule, result, fmt.Sprintf("switcheroo %d", n))
		}
	}
	//
	msg := fmt.Sprintf("theorem %d is not of the form [x|y] or [~x>y]", n)
	//
	return nil, failure(rule, ErrStructure, msg, f)
}

// AddDoubleTilde inserts ~~ in front of the kth (counting from 0) subformula of
// a theorem, where subformulas are counted in pre-order.
func (p *Deduction) AddDoubleTilde(n uint, k uint) (ast.Formula, error) {
	return p.tilde("add_double_tilde", n, k, func(f ast.Formula) (ast.Formula, bool) {
		return ast.NewNot(ast.NewNot(f)), true
	})
}

// RemoveDoubleTilde removes the kth (counting from 0) occurrence of ~~ within a
// theorem.
func (p *Deduction) RemoveDoubleTilde(n uint, k uint) (ast.Formula, error) {
	return p.tilde("remove_double_tilde", n, k, func(f ast.Formula) (ast.Formula, bool) {
		if outer, ok := ast.AsNot(f); ok {
			if inner, ok := ast.AsNot(outer.Body); ok {
				return inner.Body, true
			}
		}
		//
		return nil, false
	})
}

func (p *Deduction) tilde(rule string, n uint, k uint, rewrite func(ast.Formula) (ast.Formula, bool)) (ast.Formula, error) {
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	result, ok := ast.RewriteNth(f, k, rewrite)
	if !ok {
		msg := fmt.Sprintf("theorem %d has fewer than %d matching occurrences", n, k+1)
		return nil, failure(rule, ErrScope, msg, f)
	}
	//
	return p.derive(rule, result, fmt.Sprintf("%s %d, %d", rule, n, k))
}
