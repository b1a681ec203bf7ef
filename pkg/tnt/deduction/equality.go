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

// Successor takes a theorem r=s and derives Sr=Ss.
func (p *Deduction) Successor(n uint) (ast.Formula, error) {
	const rule = "successor"
	//
	eq, err := p.useEquality(rule, n)
	if err != nil {
		return nil, err
	}
	//
	result := ast.NewEquality(ast.NewSucc(eq.Left), ast.NewSucc(eq.Right))
	//
	return p.derive(rule, result, fmt.Sprintf("successor %d", n))
}

// Predecessor takes a theorem Sr=Ss and derives r=s.
func (p *Deduction) Predecessor(n uint) (ast.Formula, error) {
	const rule = "predecessor"
	//
	eq, err := p.useEquality(rule, n)
	if err != nil {
		return nil, err
	}
	//
	left, lok := eq.Left.(*ast.Succ)
	right, rok := eq.Right.(*ast.Succ)
	//
	if !lok || !rok {
		msg := fmt.Sprintf("theorem %d is not of the form Sr=Ss", n)
		return nil, failure(rule, ErrStructure, msg, eq)
	}
	//
	result := ast.NewEquality(left.Arg, right.Arg)
	//
	return p.derive(rule, result, fmt.Sprintf("predecessor %d", n))
}

// Symmetry takes a theorem r=s and derives s=r.
func (p *Deduction) Symmetry(n uint) (ast.Formula, error) {
	const rule = "symmetry"
	//
	eq, err := p.useEquality(rule, n)
	if err != nil {
		return nil, err
	}
	//
	return p.derive(rule, ast.NewEquality(eq.Right, eq.Left), fmt.Sprintf("symmetry %d", n))
}

// Transitivity takes theorems r=s and s=t, and derives r=t.
func (p *Deduction) Transitivity(n1 uint, n2 uint) (ast.Formula, error) {
	const rule = "transitivity"
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
	e1, ok1 := ast.AsEquality(f1)
	e2, ok2 := ast.AsEquality(f2)
	//
	if !ok1 || !ok2 {
		msg := fmt.Sprintf("theorems %d and %d are not both equalities", n1, n2)
		return nil, failure(rule, ErrMismatch, msg, f1, f2)
	} else if !e1.Right.Equals(e2.Left) {
		msg := fmt.Sprintf("%s does not match %s", e1.Right, e2.Left)
		return nil, failure(rule, ErrMismatch, msg, f1, f2)
	}
	//
	result := ast.NewEquality(e1.Left, e2.Right)
	//
	return p.derive(rule, result, fmt.Sprintf("transitivity %d, %d", n1, n2))
}

func (p *Deduction) useEquality(rule string, n uint) (*ast.Equality, error) {
	f, err := p.use(rule, n)
	if err != nil {
		return nil, err
	}
	//
	eq, ok := ast.AsEquality(f)
	if !ok {
		msg := fmt.Sprintf("theorem %d is not an equality", n)
		return nil, failure(rule, ErrStructure, msg, f)
	}
	//
	return eq, nil
}
