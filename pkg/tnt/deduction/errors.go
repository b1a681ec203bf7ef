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
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
)

// ErrAxiom signals a formula offered as an axiom which is not one.
var ErrAxiom = errors.New("axiom error")

// ErrScope signals that a rule's pattern was not found where required (e.g. no
// outer quantifier to specify, too few occurrences to interchange), or that a
// theorem from a closed supposition was referenced.
var ErrScope = errors.New("scope error")

// ErrCapture signals a substitution which would capture a variable.
var ErrCapture = errors.New("capture error")

// ErrGeneralization signals an attempt to quantify a variable which is already
// bound, or which is free in the active supposition.
var ErrGeneralization = errors.New("generalization error")

// ErrMismatch signals two theorems which do not fit together.
var ErrMismatch = errors.New("mismatch error")

// ErrStructure signals a theorem whose shape does not suit the rule applied.
var ErrStructure = errors.New("structure error")

// ErrNestedSupposition signals a supposition made whilst another is active.
var ErrNestedSupposition = errors.New("nested supposition error")

// ErrNoSupposition signals an implication without an active supposition.
var ErrNoSupposition = errors.New("no supposition error")

// ErrInduction signals a failed application of the induction rule.
var ErrInduction = errors.New("induction error")

// ErrIndex signals a reference to a theorem which does not exist.
var ErrIndex = errors.New("index error")

// kinds maps the names used to identify error kinds (e.g. in proof scripts)
// onto the corresponding sentinel errors.
var kinds = map[string]error{
	"axiom":              ErrAxiom,
	"scope":              ErrScope,
	"capture":            ErrCapture,
	"generalization":     ErrGeneralization,
	"mismatch":           ErrMismatch,
	"structure":          ErrStructure,
	"nested_supposition": ErrNestedSupposition,
	"no_supposition":     ErrNoSupposition,
	"induction":          ErrInduction,
	"index":              ErrIndex,
	"malformed":          ast.ErrMalformedFormula,
}

// KindOf returns the sentinel error for a given kind name, such as "capture" or
// "induction".
func KindOf(name string) (error, bool) {
	kind, ok := kinds[strings.ToLower(name)]
	return kind, ok
}

// RuleError reports the failure of an inference rule.  It identifies the rule,
// the kind of failure, and the offending formulas and/or variables.
type RuleError struct {
	// Rule which failed.
	Rule string
	// Kind of failure (one of the sentinel errors).
	Kind error
	// Message describing the failure.
	Msg string
	// Formulas involved in the failure.
	Formulas []ast.Formula
	// Variables involved in the failure.
	Variables []ast.Variable
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Msg)
}

// Unwrap allows errors.Is(err, ErrCapture), etc.
func (e *RuleError) Unwrap() error {
	return e.Kind
}

func failure(rule string, kind error, msg string, formulas ...ast.Formula) *RuleError {
	return &RuleError{rule, kind, msg, formulas, nil}
}

func variableFailure(rule string, kind error, v ast.Variable, msg string, formulas ...ast.Formula) *RuleError {
	return &RuleError{rule, kind, msg, formulas, []ast.Variable{v}}
}
