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
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/parser"
	"github.com/consensys/go-tnt/pkg/tnt/render"
	"github.com/consensys/go-tnt/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine how formulas should be displayed, based on the --latex and
// --english flags.
func getStyle(cmd *cobra.Command) func(string) string {
	switch {
	case GetFlag(cmd, "latex"):
		return render.LaTeX
	case GetFlag(cmd, "english"):
		return render.English
	default:
		return func(text string) string { return text }
	}
}

// Parse a formula given on the command-line, reporting any syntax error (with
// highlighting) and exiting on failure.
func readFormula(text string) ast.Formula {
	srcfile := source.NewSourceFile("<input>", []byte(text))
	formula, srcmap, err := parser.Parse(srcfile)
	//
	if err == nil {
		return formula
	}
	// Convert malformed formulas into syntax errors where possible.
	if serr := parser.MalformedSyntaxError(srcmap, err); serr != nil {
		err = serr
	}
	//
	reportError(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Parse a term given on the command-line, exiting on failure.
func readTerm(text string) ast.Term {
	term, err := parser.ParseTerm(text)
	if err != nil {
		reportError(err)
		os.Exit(2)
	}
	//
	return term
}

// Report an error, highlighting syntax errors within their source.
func reportError(err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		// Report any context wrapped around the syntax error
		if prefix := strings.TrimSuffix(err.Error(), serr.Error()); prefix != "" {
			fmt.Println(strings.TrimSuffix(prefix, ": "))
		}
		//
		printSyntaxError(serr)
	} else {
		fmt.Println(err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line, and always highlight
	// something even at the end of input)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}
