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
	"slices"
	"strings"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/util/collection/stack"
)

// MAX_DEPTH determines how deeply suppositions may be nested.  Only a single
// level of supposition is supported.
const MAX_DEPTH = 1

// Step records a single theorem of a deduction, along with a note explaining
// how it was derived.
type Step struct {
	// Formula established by this step.
	Formula ast.Formula
	// Annotation describing the rule (and arguments) which produced this step.
	Annotation string
	// Depth of supposition at which this step was derived (either 0 or 1).
	Depth uint
	// ScopeStart identifies the step which opened the supposition this step
	// belongs to.  This is only meaningful when Depth is 1.
	ScopeStart uint
}

// Deduction is an append-only sequence of theorems, each derived from the
// axioms, from earlier theorems or from an active supposition by one of the
// inference rules.  Every rule application is atomic: either it succeeds and
// exactly one theorem is appended, or it fails and the deduction is unchanged.
// A deduction is not safe for concurrent use.
type Deduction struct {
	title  string
	axioms []ast.Formula
	steps  []Step
	// Index of the opening step for each active supposition.
	scopes *stack.Stack[uint]
}

// New constructs an empty deduction with the given title over the given
// axioms.  The axioms are copied, so subsequent changes to the slice have no
// effect.
func New(title string, axioms []ast.Formula) *Deduction {
	return &Deduction{
		title:  title,
		axioms: slices.Clone(axioms),
		scopes: stack.NewBoundedStack[uint](MAX_DEPTH),
	}
}

// Title returns the title of this deduction.
func (p *Deduction) Title() string {
	return p.title
}

// Axioms returns the axioms of this deduction.
func (p *Deduction) Axioms() []ast.Formula {
	return slices.Clone(p.axioms)
}

// Len returns the number of theorems in this deduction.
func (p *Deduction) Len() uint {
	return uint(len(p.steps))
}

// Depth returns the current depth of supposition (either 0 or 1).
func (p *Deduction) Depth() uint {
	return p.scopes.Len()
}

// Theorem returns the nth theorem of this deduction.
func (p *Deduction) Theorem(n uint) (ast.Formula, error) {
	if n >= p.Len() {
		return nil, p.outOfRange("theorem", n)
	}
	//
	return p.steps[n].Formula, nil
}

// LastTheorem returns the most recently derived theorem.
func (p *Deduction) LastTheorem() (ast.Formula, error) {
	if len(p.steps) == 0 {
		return nil, failure("theorem", ErrIndex, "deduction has no theorems")
	}
	//
	return p.steps[len(p.steps)-1].Formula, nil
}

// AllTheorems returns every theorem of this deduction in order.
func (p *Deduction) AllTheorems() []ast.Formula {
	theorems := make([]ast.Formula, len(p.steps))
	//
	for i, step := range p.steps {
		theorems[i] = step.Formula
	}
	//
	return theorems
}

// Steps returns every step of this deduction in order.
func (p *Deduction) Steps() []Step {
	return slices.Clone(p.steps)
}

// String renders this deduction as a numbered list of theorems, indented
// according to their depth of supposition.
func (p *Deduction) String() string {
	var builder strings.Builder
	//
	if p.title != "" {
		builder.WriteString(p.title)
		builder.WriteString("\n")
	}
	//
	for i, step := range p.steps {
		indent := strings.Repeat("  ", int(step.Depth))
		builder.WriteString(fmt.Sprintf("%3d %s%s\t(%s)\n", i, indent, step.Formula, step.Annotation))
	}
	//
	return builder.String()
}

// ============================================================================
// Helpers
// ============================================================================

// use returns the nth theorem on behalf of a given rule, checking that it exists
// and that it is visible from the current scope.  Theorems derived within a
// supposition are not visible once that supposition has been closed.
func (p *Deduction) use(rule string, n uint) (ast.Formula, error) {
	if n >= p.Len() {
		return nil, p.outOfRange(rule, n)
	}
	//
	step := p.steps[n]
	//
	if step.Depth > 0 && (p.scopes.IsEmpty() || p.scopes.Peek(0) != step.ScopeStart) {
		msg := fmt.Sprintf("theorem %d belongs to a closed supposition", n)
		return nil, failure(rule, ErrScope, msg, step.Formula)
	}
	//
	return step.Formula, nil
}

func (p *Deduction) outOfRange(rule string, n uint) *RuleError {
	msg := fmt.Sprintf("theorem %d does not exist (deduction has %d theorems)", n, len(p.steps))
	return failure(rule, ErrIndex, msg)
}

// check that a formula about to be derived by some rule is well-formed.
func check(rule string, f ast.Formula) error {
	if err := ast.CheckWellFormed(f); err != nil {
		return &RuleError{rule, ast.ErrMalformedFormula, err.Error(), []ast.Formula{f}, nil}
	}
	//
	return nil
}

// derive appends a theorem produced by a given rule, provided it is
// well-formed.
func (p *Deduction) derive(rule string, f ast.Formula, annotation string) (ast.Formula, error) {
	if err := check(rule, f); err != nil {
		return nil, err
	}
	//
	p.append(f, annotation)
	//
	return f, nil
}

// append a theorem at the current depth of supposition.
func (p *Deduction) append(f ast.Formula, annotation string) {
	var scope uint
	//
	if !p.scopes.IsEmpty() {
		scope = p.scopes.Peek(0)
	}
	//
	p.steps = append(p.steps, Step{f, annotation, p.scopes.Len(), scope})
}
