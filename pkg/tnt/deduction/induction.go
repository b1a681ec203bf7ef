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

// Induction derives Av:P from a base case P(0) and a general case
// Av:[P>P(Sv)], where P(t) denotes P with every free occurrence of v replaced
// by t.  Here P is extracted from the general case, and the base case must be
// exactly P(0).  Since P(0) cannot mention v, a base case containing v is
// rejected.
func (p *Deduction) Induction(v ast.Variable, base uint, general uint) (ast.Formula, error) {
	const rule = "induction"
	//
	b, err := p.use(rule, base)
	if err != nil {
		return nil, err
	}
	//
	g, err := p.use(rule, general)
	if err != nil {
		return nil, err
	}
	//
	q, ok := ast.AsForAll(g)
	if !ok || q.Var != v {
		msg := fmt.Sprintf("theorem %d is not of the form A%s:[P>P']", general, v)
		return nil, variableFailure(rule, ErrInduction, v, msg, g)
	}
	//
	step, ok := ast.AsBinary(q.Body, ast.IMPLIES)
	if !ok {
		msg := fmt.Sprintf("theorem %d is not of the form A%s:[P>P']", general, v)
		return nil, variableFailure(rule, ErrInduction, v, msg, g)
	}
	//
	body := step.Left
	//
	if ast.BoundVars(body).Contains(v) {
		msg := fmt.Sprintf("%s is bound within %s", v, body)
		return nil, variableFailure(rule, ErrInduction, v, msg, g)
	} else if expected := ast.Substitute(body, v, ast.NewSucc(ast.NewVar(v))); !step.Right.Equals(expected) {
		msg := fmt.Sprintf("expected %s as consequent of theorem %d", expected, general)
		return nil, variableFailure(rule, ErrInduction, v, msg, g)
	} else if ast.ContainsVar(b, v) {
		msg := fmt.Sprintf("%s occurs in base case", v)
		return nil, variableFailure(rule, ErrInduction, v, msg, b)
	} else if expected := ast.Substitute(body, v, ast.ZERO); !b.Equals(expected) {
		msg := fmt.Sprintf("base case %s does not match %s", b, expected)
		return nil, variableFailure(rule, ErrInduction, v, msg, b, g)
	}
	//
	result := ast.NewForAll(v, body)
	//
	return p.derive(rule, result, fmt.Sprintf("induction %s, %d, %d", v, base, general))
}
