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
	"errors"
	"fmt"
	"slices"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/deduction"
	"github.com/consensys/go-tnt/pkg/tnt/parser"
	"github.com/consensys/go-tnt/pkg/util/source"
	"github.com/samber/lo"
)

// Rule applies a step to a deduction, returning the theorem it establishes.
type Rule func(*deduction.Deduction, *Step) (ast.Formula, error)

// RULES maps the name of each inference rule onto its implementation.
var RULES = map[string]Rule{
	"axiom": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		return withFormula(s, p.AddAxiom)
	},
	"specification": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		n, v, t, err := s.fromVarTerm()
		if err != nil {
			return nil, err
		}
		//
		return p.Specification(n, v, t)
	},
	"generalization": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		n, v, err := s.fromVar()
		if err != nil {
			return nil, err
		}
		//
		return p.Generalization(n, v)
	},
	"existence": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		n, v, t, err := s.fromVarTerm()
		if err != nil {
			return nil, err
		}
		//
		return p.Existence(n, t, v)
	},
	"successor":    unary((*deduction.Deduction).Successor),
	"predecessor":  unary((*deduction.Deduction).Predecessor),
	"symmetry":     unary((*deduction.Deduction).Symmetry),
	"transitivity": binary((*deduction.Deduction).Transitivity),
	"interchange_ea": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		n, v, err := s.fromVar()
		if err != nil {
			return nil, err
		}
		//
		return p.InterchangeEA(n, v, s.Occurrence)
	},
	"interchange_ae": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		n, v, err := s.fromVar()
		if err != nil {
			return nil, err
		}
		//
		return p.InterchangeAE(n, v, s.Occurrence)
	},
	"supposition": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		return withFormula(s, p.Supposition)
	},
	"implication": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		if _, err := s.from(0); err != nil {
			return nil, err
		}
		//
		return p.Implication()
	},
	"induction": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		from, err := s.from(2)
		if err != nil {
			return nil, err
		}
		//
		v, err := s.variable()
		if err != nil {
			return nil, err
		}
		//
		return p.Induction(v, from[0], from[1])
	},
	"joining": binary((*deduction.Deduction).Joining),
	"separation": func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		from, err := s.from(1)
		if err != nil {
			return nil, err
		}
		//
		switch s.Side {
		case "", "left":
			return p.Separation(from[0], false)
		case "right":
			return p.Separation(from[0], true)
		default:
			return nil, fmt.Errorf("%w: unknown side \"%s\"", ErrArguments, s.Side)
		}
	},
	"detachment":          binary((*deduction.Deduction).Detachment),
	"contrapositive":      unary((*deduction.Deduction).Contrapositive),
	"de_morgan":           unary((*deduction.Deduction).DeMorgan),
	"switcheroo":          unary((*deduction.Deduction).Switcheroo),
	"add_double_tilde":    occurrence((*deduction.Deduction).AddDoubleTilde),
	"remove_double_tilde": occurrence((*deduction.Deduction).RemoveDoubleTilde),
}

// RuleNames returns the names of all rules in alphabetical order.
func RuleNames() []string {
	names := lo.Keys(RULES)
	slices.Sort(names)
	//
	return names
}

func (s *Step) apply(p *deduction.Deduction) (ast.Formula, error) {
	rule, ok := RULES[s.Rule]
	if !ok {
		return nil, fmt.Errorf("%w \"%s\"", ErrUnknownRule, s.Rule)
	}
	//
	return rule(p, s)
}

// ============================================================================
// Rule shapes
// ============================================================================

func unary(rule func(*deduction.Deduction, uint) (ast.Formula, error)) Rule {
	return func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		from, err := s.from(1)
		if err != nil {
			return nil, err
		}
		//
		return rule(p, from[0])
	}
}

func binary(rule func(*deduction.Deduction, uint, uint) (ast.Formula, error)) Rule {
	return func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		from, err := s.from(2)
		if err != nil {
			return nil, err
		}
		//
		return rule(p, from[0], from[1])
	}
}

func occurrence(rule func(*deduction.Deduction, uint, uint) (ast.Formula, error)) Rule {
	return func(p *deduction.Deduction, s *Step) (ast.Formula, error) {
		from, err := s.from(1)
		if err != nil {
			return nil, err
		}
		//
		return rule(p, from[0], s.Occurrence)
	}
}

func withFormula(s *Step, rule func(ast.Formula) (ast.Formula, error)) (ast.Formula, error) {
	if s.Formula == "" {
		return nil, fmt.Errorf("%w: missing formula", ErrArguments)
	}
	//
	f, err := parser.ParseFormula(s.Formula)
	if err != nil {
		return nil, syntaxError(err)
	}
	//
	return rule(f)
}

// ============================================================================
// Arguments
// ============================================================================

// from returns the theorem references of this step, checking there are exactly
// n of them.
func (s *Step) from(n int) ([]uint, error) {
	if len(s.From) != n {
		return nil, fmt.Errorf("%w: expected %d theorem reference(s), found %d", ErrArguments, n, len(s.From))
	}
	//
	return s.From, nil
}

func (s *Step) variable() (ast.Variable, error) {
	if s.Var == "" {
		return "", fmt.Errorf("%w: missing variable", ErrArguments)
	}
	//
	return ast.NewVariable(s.Var)
}

func (s *Step) term() (ast.Term, error) {
	if s.Term == "" {
		return nil, fmt.Errorf("%w: missing term", ErrArguments)
	}
	//
	t, err := parser.ParseTerm(s.Term)
	if err != nil {
		return nil, syntaxError(err)
	}
	//
	return t, nil
}

// syntaxError marks errors arising from unparseable text, leaving others (e.g.
// malformed formulas) unchanged.
func syntaxError(err error) error {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	//
	return err
}

func (s *Step) fromVar() (uint, ast.Variable, error) {
	from, err := s.from(1)
	if err != nil {
		return 0, "", err
	}
	//
	v, err := s.variable()
	//
	return from[0], v, err
}

func (s *Step) fromVarTerm() (uint, ast.Variable, ast.Term, error) {
	n, v, err := s.fromVar()
	if err != nil {
		return 0, "", nil, err
	}
	//
	t, err := s.term()
	//
	return n, v, t, err
}
