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

// Supposition opens a supposition with a given premise, which is appended as a
// theorem at depth 1.  Suppositions cannot be nested.
func (p *Deduction) Supposition(premise ast.Formula) (ast.Formula, error) {
	const rule = "supposition"
	//
	if p.scopes.IsFull() {
		start := p.scopes.Peek(0)
		msg := fmt.Sprintf("supposition already open at theorem %d", start)
		//
		return nil, failure(rule, ErrNestedSupposition, msg, p.steps[start].Formula, premise)
	} else if err := check(rule, premise); err != nil {
		return nil, err
	}
	//
	p.scopes.Push(p.Len())
	p.append(premise, "supposition")
	//
	return premise, nil
}

// Implication closes the active supposition, deriving [P>Q] where P is its
// premise and Q is the most recent theorem.  The result is appended at depth
// 0, and theorems derived within the supposition are no longer accessible.
func (p *Deduction) Implication() (ast.Formula, error) {
	const rule = "implication"
	//
	if p.scopes.IsEmpty() {
		return nil, failure(rule, ErrNoSupposition, "no supposition is open")
	}
	//
	start := p.scopes.Peek(0)
	premise := p.steps[start].Formula
	conclusion := p.steps[len(p.steps)-1].Formula
	result := ast.NewImplies(premise, conclusion)
	//
	if err := check(rule, result); err != nil {
		return nil, err
	}
	//
	p.scopes.Pop()
	p.append(result, fmt.Sprintf("implication %d-%d", start, len(p.steps)-1))
	//
	return result, nil
}
