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
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/consensys/go-tnt/pkg/script"
	"github.com/consensys/go-tnt/pkg/tnt/axiom"
	"github.com/consensys/go-tnt/pkg/tnt/deduction"
	"github.com/consensys/go-tnt/pkg/util"
	"github.com/consensys/go-tnt/pkg/util/termio"
	"github.com/spf13/cobra"
)

// checkConfig determines how proof scripts are checked and reported.
type checkConfig struct {
	// Renders formulas for display.
	style func(string) string
	// Enables coloured output.
	ansiEscapes bool
	// Maximum width of a line of output.
	width uint
	// Suppresses the proof log for successful scripts.
	quiet bool
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] script_file(s)",
	Short: "Check one or more proof scripts.",
	Long: `Check one or more proof scripts against the Peano axioms.
	A proof script is a YAML document listing the rule applications which make
	up a deduction.  Scripts declaring an expected error are checked to fail
	with exactly that kind of error.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.style = getStyle(cmd)
		cfg.ansiEscapes = !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
		cfg.width = GetUint(cmd, "width")
		cfg.quiet = GetFlag(cmd, "quiet")
		//
		if cfg.width == 0 {
			cfg.width = termio.Width(os.Stdout, 120)
		}
		//
		ok := checkScripts(cfg, args)
		//
		if GetFlag(cmd, "watch") {
			watchScripts(cfg, args)
		} else if !ok {
			os.Exit(1)
		}
	},
}

// checkResult records the outcome of checking a single proof script.
type checkResult struct {
	filename string
	script   *script.Script
	proof    *deduction.Deduction
	// Error (if any) which stopped the proof.
	outcome error
	// Error (if any) arising from loading the script, or from an unexpected
	// outcome.
	err error
}

// Check a set of proof scripts in parallel, reporting the outcome of each in
// turn.  This returns true if every outcome was as expected.
func checkScripts(cfg checkConfig, filenames []string) bool {
	stats := util.NewPerfStats()
	// Scripts are independent, so can be checked concurrently.
	results, _ := util.ParMap(context.Background(), runtime.NumCPU(), filenames,
		func(_ context.Context, filename string) (checkResult, error) {
			return checkScript(filename), nil
		})
	//
	stats.Log(fmt.Sprintf("Checking %d script(s)", len(filenames)))
	//
	ok := true
	//
	for _, result := range results {
		ok = reportScript(cfg, result) && ok
	}
	//
	return ok
}

func checkScript(filename string) checkResult {
	s, err := script.Load(filename)
	if err != nil {
		return checkResult{filename: filename, err: err}
	}
	//
	proof, outcome := s.Run(axiom.Peano())
	//
	return checkResult{filename, s, proof, outcome, s.Verify(outcome)}
}

// Report the outcome of checking a proof script.  This returns true if the
// outcome was as expected.
func reportScript(cfg checkConfig, r checkResult) bool {
	switch {
	case r.script == nil:
		reportError(r.err)
	case r.err != nil:
		printProof(cfg, r.proof, r.outcome)
		printStatus(cfg, false, "%s: failed", r.filename)
	case r.script.Error != "":
		// Show where the script failed, as intended.
		printProof(cfg, r.proof, r.outcome)
		printStatus(cfg, true, "%s: rejected as expected (%s)", r.filename, r.script.Error)
	default:
		if !cfg.quiet {
			printProof(cfg, r.proof, nil)
		}
		//
		printStatus(cfg, true, "%s: ok (%d steps)", r.filename, r.proof.Len())
	}
	//
	return r.err == nil
}

// Print the steps of a deduction as a table, followed by the error (if any)
// which stopped it.
func printProof(cfg checkConfig, proof *deduction.Deduction, err error) {
	var serr *script.StepError
	//
	table := termio.NewTablePrinter(3)
	table.AnsiEscapes(cfg.ansiEscapes)
	table.AlignLeft(1, true)
	table.AlignLeft(2, true)
	table.SetMaxWidth(1, max(20, cfg.width*2/3))
	//
	if proof.Title() != "" {
		fmt.Println(proof.Title())
	}
	//
	for i, step := range proof.Steps() {
		indent := strings.Repeat("  ", int(step.Depth))
		row := table.AddRow(fmt.Sprintf("%d", i), indent+cfg.style(step.Formula.String()), step.Annotation)
		//
		if step.Depth > 0 {
			table.SetEscape(1, row, termio.NewAnsiEscape().FgColour(termio.TERM_CYAN))
		}
	}
	// Identify failing step
	if errors.As(err, &serr) {
		row := table.AddRow(fmt.Sprintf("%d", serr.Index), "", serr.Rule)
		table.SetRowEscape(row, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
	}
	//
	table.Print(os.Stdout)
	//
	if err != nil {
		reportError(err)
	}
}

func printStatus(cfg checkConfig, ok bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	//
	if !cfg.ansiEscapes {
		fmt.Println(msg)
	} else if ok {
		fmt.Println(termio.NewAnsiEscape().FgColour(termio.TERM_GREEN).Wrap(msg))
	} else {
		fmt.Println(termio.NewAnsiEscape().Bold().FgColour(termio.TERM_RED).Wrap(msg))
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("watch", false, "re-check scripts whenever they change")
	checkCmd.Flags().Bool("latex", false, "display formulas in LaTeX")
	checkCmd.Flags().Bool("english", false, "display formulas in English")
	checkCmd.Flags().Bool("no-colour", false, "disable coloured output")
	checkCmd.Flags().BoolP("quiet", "q", false, "only report the outcome of successful scripts")
	checkCmd.Flags().Uint("width", 0, "maximum width of output (defaults to terminal width)")
}
