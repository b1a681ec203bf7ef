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
package parser

import (
	"errors"
	"slices"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/util/source"
	"github.com/consensys/go-tnt/pkg/util/source/lex"
)

// ParseFormula parses a given input string into a formula.  A string outside
// the grammar produces a *source.SyntaxError identifying the offending text,
// whilst a grammatical formula which is not well quantified produces an
// *ast.MalformedFormulaError.
func ParseFormula(input string) (ast.Formula, error) {
	f, _, err := Parse(source.NewSourceFile("formula", []byte(input)))
	return f, err
}

// ParseTerm parses a given input string into a term.  A string outside the
// grammar produces a *source.SyntaxError identifying the offending text.
func ParseTerm(input string) (ast.Term, error) {
	var srcfile = source.NewSourceFile("term", []byte(input))
	//
	parser, err := newParser(srcfile)
	if err != nil {
		return nil, err
	}
	//
	term, err := parser.parseTerm()
	if err != nil {
		return nil, err
	} else if !parser.follows(END_OF) {
		return nil, parser.syntaxError(parser.lookahead(), "unexpected text after term")
	}
	//
	return term, nil
}

// MustParseFormula parses a given input string into a formula, and panics if
// this fails.  This is intended for formulas fixed in code, such as axioms.
func MustParseFormula(input string) ast.Formula {
	f, err := ParseFormula(input)
	if err != nil {
		panic(err.Error())
	}
	//
	return f
}

// MustParseTerm parses a given input string into a term, and panics if this
// fails.
func MustParseTerm(input string) ast.Term {
	t, err := ParseTerm(input)
	if err != nil {
		panic(err.Error())
	}
	//
	return t
}

// Parse a source file holding exactly one formula.  Alongside the formula, this
// returns a source map relating each (compound) subformula to its span in the
// file, which is useful for reporting malformed formulas precisely.
func Parse(srcfile *source.File) (ast.Formula, *source.Map[ast.Formula], error) {
	parser, err := newParser(srcfile)
	if err != nil {
		return nil, nil, err
	}
	//
	formula, err := parser.parseFormula()
	//
	if err != nil {
		return nil, parser.srcmap, err
	} else if !parser.follows(END_OF) {
		return nil, parser.srcmap, parser.syntaxError(parser.lookahead(), "unexpected text after formula")
	} else if err := ast.CheckWellFormed(formula); err != nil {
		return nil, parser.srcmap, err
	}
	//
	return formula, parser.srcmap, nil
}

// MalformedSyntaxError converts a malformed formula error into a syntax error
// covering the offending subformula, using the source map produced by Parse.
// This returns nil if err is not a malformed formula error.
func MalformedSyntaxError(srcmap *source.Map[ast.Formula], err error) *source.SyntaxError {
	var merr *ast.MalformedFormulaError
	//
	if srcmap == nil || !errors.As(err, &merr) {
		return nil
	}
	//
	return srcmap.SyntaxError(merr.Formula, merr.Reason)
}

// Parser provides a recursive-descent parser for terms and formulas.
type Parser struct {
	srcfile *source.File
	srcmap  *source.Map[ast.Formula]
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func newParser(srcfile *source.File) (*Parser, error) {
	var (
		lexer = lex.NewLexer[rune](srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := int(lexer.Index())
		//
		return nil, srcfile.SyntaxError(source.NewSpan(start, start+1), "unknown text encountered")
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	return &Parser{srcfile, source.NewSourceMap[ast.Formula](srcfile), tokens, 0}, nil
}

func (p *Parser) parseFormula() (ast.Formula, error) {
	var (
		start   = p.lookahead()
		formula ast.Formula
		err     error
	)
	//
	switch start.Kind {
	case LBRACKET:
		formula, err = p.parseCompoundFormula()
	case NOT:
		p.expect(NOT)
		//
		if formula, err = p.parseFormula(); err == nil {
			formula = ast.NewNot(formula)
		}
	case FORALL, EXISTS:
		formula, err = p.parseQuantifiedFormula()
	default:
		formula, err = p.parseEquality()
	}
	//
	if err == nil {
		p.srcmap.Put(formula, start.Span.Join(p.tokens[p.index-1].Span))
	}
	//
	return formula, err
}

func (p *Parser) parseCompoundFormula() (ast.Formula, error) {
	p.expect(LBRACKET)
	//
	left, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	// Check for connective
	op := p.lookahead()
	if !p.follows(CONNECTIVES...) {
		return nil, p.syntaxError(op, "expected logical connective")
	}
	//
	p.expect(op.Kind)
	//
	right, err := p.parseFormula()
	if err != nil {
		return nil, err
	} else if !p.match(RBRACKET) {
		return nil, p.syntaxError(p.lookahead(), "expected ']'")
	}
	//
	switch op.Kind {
	case AND:
		return ast.NewAnd(left, right), nil
	case OR:
		return ast.NewOr(left, right), nil
	default:
		return ast.NewImplies(left, right), nil
	}
}

func (p *Parser) parseQuantifiedFormula() (ast.Formula, error) {
	quantifier := p.lookahead()
	p.expect(quantifier.Kind)
	//
	name := p.lookahead()
	if !p.match(VARIABLE) {
		return nil, p.syntaxError(name, "expected variable")
	} else if !p.match(COLON) {
		return nil, p.syntaxError(p.lookahead(), "expected ':'")
	}
	//
	variable, err := p.variable(name)
	if err != nil {
		return nil, err
	}
	//
	body, err := p.parseFormula()
	if err != nil {
		return nil, err
	} else if quantifier.Kind == FORALL {
		return ast.NewForAll(variable, body), nil
	}
	//
	return ast.NewExists(variable, body), nil
}

func (p *Parser) parseEquality() (ast.Formula, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	} else if !p.match(EQUALS) {
		return nil, p.syntaxError(p.lookahead(), "expected '='")
	}
	//
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	//
	return ast.NewEquality(left, right), nil
}

func (p *Parser) parseTerm() (ast.Term, error) {
	token := p.lookahead()
	//
	switch token.Kind {
	case ZERO:
		p.expect(ZERO)
		return ast.ZERO, nil
	case SUCC:
		p.expect(SUCC)
		//
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		//
		return ast.NewSucc(arg), nil
	case VARIABLE:
		p.expect(VARIABLE)
		//
		variable, err := p.variable(token)
		if err != nil {
			return nil, err
		}
		//
		return ast.NewVar(variable), nil
	case LBRACE:
		return p.parseBracketedTerm()
	case END_OF:
		return nil, p.syntaxError(token, "unexpected end of input")
	}
	//
	return nil, p.syntaxError(token, "expected term")
}

func (p *Parser) parseBracketedTerm() (ast.Term, error) {
	p.expect(LBRACE)
	//
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	//
	op := p.lookahead()
	if !p.follows(BINOPS...) {
		return nil, p.syntaxError(op, "expected '+' or '*'")
	}
	//
	p.expect(op.Kind)
	//
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	} else if !p.match(RBRACE) {
		return nil, p.syntaxError(p.lookahead(), "expected ')'")
	} else if op.Kind == ADD {
		return ast.NewSum(left, right), nil
	}
	//
	return ast.NewProduct(left, right), nil
}

// Construct a variable from the text of a given token.
func (p *Parser) variable(token lex.Token) (ast.Variable, error) {
	v, err := ast.NewVariable(p.string(token))
	if err != nil {
		return v, p.syntaxError(token, "invalid variable")
	}
	//
	return v, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
