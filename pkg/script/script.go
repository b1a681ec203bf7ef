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
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/deduction"
	"github.com/consensys/go-tnt/pkg/tnt/parser"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrExpectation signals a theorem which differs from the one expected.
var ErrExpectation = errors.New("expectation failed")

// ErrUnknownRule signals a step naming a rule which does not exist.
var ErrUnknownRule = errors.New("unknown rule")

// ErrArguments signals a step whose arguments do not suit its rule.
var ErrArguments = errors.New("invalid arguments")

// ErrSyntax signals a formula or term which could not be parsed.
var ErrSyntax = errors.New("syntax error")

// ErrUnexpectedSuccess signals a script which was expected to fail, but did not.
var ErrUnexpectedSuccess = errors.New("unexpected success")

// Script is a proof written as a sequence of rule applications, as read from a
// YAML document.
type Script struct {
	// Title of the deduction.
	Title string `yaml:"title"`
	// Theorem which the last step must establish (optional).
	Theorem string `yaml:"theorem,omitempty"`
	// Kind of error the script is expected to fail with (optional).  Scripts
	// with an expected error are invalid proofs.
	Error string `yaml:"error,omitempty"`
	// Steps of the proof.
	Steps []Step `yaml:"steps"`
}

// Step is a single rule application within a script.  Which fields are required
// depends upon the rule.
type Step struct {
	Rule       string `yaml:"rule"`
	Formula    string `yaml:"formula,omitempty"`
	From       []uint `yaml:"from,omitempty"`
	Var        string `yaml:"var,omitempty"`
	Term       string `yaml:"term,omitempty"`
	Occurrence uint   `yaml:"occurrence,omitempty"`
	Side       string `yaml:"side,omitempty"`
	// Theorem which this step should establish (optional).
	Expect string `yaml:"expect,omitempty"`
}

// StepError reports the failure of a given step of a script.
type StepError struct {
	// Index of the failing step.
	Index int
	// Rule being applied.
	Rule string
	// Underlying cause.
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Index, e.Rule, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Load reads a script from a YAML file.
func Load(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	//
	script, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return script, nil
}

// Parse a script from the contents of a YAML document.  Unknown fields are
// rejected, since they most likely indicate a typo.
func Parse(data []byte) (*Script, error) {
	var script Script
	//
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	//
	return &script, nil
}

// Run applies each step of this script in turn to a fresh deduction over the
// given axioms.  This stops at the first step which fails, or whose expected
// theorem does not match.  The deduction is returned in either case, so that
// the theorems established so far can be reported.
func (s *Script) Run(axioms []ast.Formula) (*deduction.Deduction, error) {
	proof := deduction.New(s.Title, axioms)
	//
	for i := range s.Steps {
		step := &s.Steps[i]
		//
		theorem, err := step.apply(proof)
		if err == nil {
			err = step.check(theorem)
		}
		//
		if err != nil {
			err = &StepError{i, step.Rule, err}
			log.Debugln(err)
			//
			return proof, err
		}
		//
		log.Debugf("step %d: %s (%s)", i, theorem, step.Rule)
	}
	// Check the final theorem (if applicable)
	if s.Theorem != "" {
		if err := s.checkTheorem(proof); err != nil {
			log.Debugln(err)
			return proof, err
		}
	}
	//
	return proof, nil
}

// Check runs this script and determines whether its outcome is as intended.  A
// valid script (i.e. one without an expected error) must run to completion,
// whilst an invalid script must fail with the expected kind of error.
func (s *Script) Check(axioms []ast.Formula) (*deduction.Deduction, error) {
	proof, err := s.Run(axioms)
	//
	return proof, s.Verify(err)
}

// Verify determines whether the outcome of running this script (i.e. the error
// returned from Run) is as intended.
func (s *Script) Verify(outcome error) error {
	var err error
	//
	if s.Error == "" {
		err = outcome
	} else if kind, ok := KindOf(s.Error); !ok {
		err = fmt.Errorf("unknown error kind \"%s\"", s.Error)
	} else if outcome == nil {
		err = fmt.Errorf("%w: expected %s error", ErrUnexpectedSuccess, s.Error)
	} else if !errors.Is(outcome, kind) {
		err = fmt.Errorf("expected %s error, got: %w", s.Error, outcome)
	} else {
		log.Debugf("failed as expected: %s", outcome)
	}
	//
	if err != nil {
		log.Errorln(err)
	}
	//
	return err
}

// KindOf returns the error identified by a given kind name.  This covers the
// kinds of rule failure, along with "syntax" (for unparseable formulas) and
// "expectation" (for theorems which differ from those expected).
func KindOf(name string) (error, bool) {
	switch name {
	case "syntax":
		return ErrSyntax, true
	case "expectation":
		return ErrExpectation, true
	default:
		return deduction.KindOf(name)
	}
}

func (s *Script) checkTheorem(proof *deduction.Deduction) error {
	expected, err := parser.ParseFormula(s.Theorem)
	if err != nil {
		return fmt.Errorf("invalid theorem: %w", err)
	}
	//
	actual, err := proof.LastTheorem()
	if err != nil {
		return err
	} else if !ast.AustereEquals(expected, actual) {
		return fmt.Errorf("%w: proved %s, not %s", ErrExpectation, actual, expected)
	}
	//
	return nil
}

// check the theorem established by this step against its expectation (if any).
func (s *Step) check(theorem ast.Formula) error {
	if s.Expect == "" {
		return nil
	}
	//
	expected, err := parser.ParseFormula(s.Expect)
	if err != nil {
		return fmt.Errorf("invalid expectation: %w", err)
	} else if !ast.AustereEquals(expected, theorem) {
		return fmt.Errorf("%w: derived %s, not %s", ErrExpectation, theorem, expected)
	}
	//
	return nil
}
