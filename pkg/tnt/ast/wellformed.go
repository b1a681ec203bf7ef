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
	"errors"
	"fmt"

	"github.com/consensys/go-tnt/pkg/util/collection/set"
)

// ErrMalformedFormula is returned (wrapped) when a formula is grammatically
// valid but violates the quantification rules.
var ErrMalformedFormula = errors.New("malformed formula")

// MalformedFormulaError describes a violation of the quantification rules,
// identifying the offending subformula and variable.
type MalformedFormulaError struct {
	// Subformula at which the violation was detected.
	Formula Formula
	// Variable responsible for the violation.
	Variable Variable
	// Description of the violation.
	Reason string
}

func (e *MalformedFormulaError) Error() string {
	return fmt.Sprintf("malformed formula %s: %s", e.Formula, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedFormula).
func (e *MalformedFormulaError) Unwrap() error {
	return ErrMalformedFormula
}

// CheckWellFormed checks that a formula is well quantified.  That is: (a) no
// variable is quantified twice along any path from the root; and (b) for each
// binary connective, no variable free on one side is bound on the other.
func CheckWellFormed(f Formula) error {
	_, _, err := checkWellFormed(f, set.NewSortedSet[Variable]())
	return err
}

// Returns the free and bound variables of a formula, whilst checking it is well
// quantified.  The path set holds variables quantified by enclosing formulas.
func checkWellFormed(f Formula, path *set.SortedSet[Variable]) (free, bound *set.SortedSet[Variable], err error) {
	switch e := f.(type) {
	case *Equality:
		free = Vars(e.Left)
		free.InsertSorted(Vars(e.Right))
		//
		return free, set.NewSortedSet[Variable](), nil
	case *Not:
		return checkWellFormed(e.Body, path)
	case *Binary:
		var lfree, lbound, rfree, rbound *set.SortedSet[Variable]
		//
		if lfree, lbound, err = checkWellFormed(e.Left, path); err != nil {
			return nil, nil, err
		} else if rfree, rbound, err = checkWellFormed(e.Right, path); err != nil {
			return nil, nil, err
		} else if clash := lfree.Intersection(rbound); !clash.IsEmpty() {
			return nil, nil, crossCapture(e, (*clash)[0])
		} else if clash := rfree.Intersection(lbound); !clash.IsEmpty() {
			return nil, nil, crossCapture(e, (*clash)[0])
		}
		//
		lfree.InsertSorted(rfree)
		lbound.InsertSorted(rbound)
		//
		return lfree, lbound, nil
	case *Quantifier:
		if path.Contains(e.Var) {
			return nil, nil, &MalformedFormulaError{e, e.Var,
				fmt.Sprintf("variable %s is already quantified", e.Var)}
		}
		//
		npath := set.Of(*path...)
		npath.Insert(e.Var)
		//
		if free, bound, err = checkWellFormed(e.Body, npath); err != nil {
			return nil, nil, err
		}
		//
		free.Remove(e.Var)
		bound.Insert(e.Var)
		//
		return free, bound, nil
	}
	//
	panic(unknownFormula(f))
}

func crossCapture(f *Binary, v Variable) *MalformedFormulaError {
	return &MalformedFormulaError{f, v,
		fmt.Sprintf("variable %s is free on one side of %s but bound on the other", v, f.Op.Symbol())}
}
