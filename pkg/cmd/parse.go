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
	"fmt"
	"os"

	"github.com/consensys/go-tnt/pkg/tnt/ast"
	"github.com/consensys/go-tnt/pkg/tnt/godel"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] formula(s)",
	Short: "Parse and display one or more formulas.",
	Long: `Parse one or more formulas (or terms) and display them in canonical form.
	Malformed formulas (e.g. those which quantify a variable twice) are reported
	with the offending subformula highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		style := getStyle(cmd)
		austere := GetFlag(cmd, "austere")
		arithmetise := GetFlag(cmd, "godel")
		//
		for _, arg := range args {
			var text string
			//
			if GetFlag(cmd, "term") {
				term := readTerm(arg)
				text = term.String()
				log.Debugf("variables %s", ast.Vars(term))
			} else {
				formula := readFormula(arg)
				//
				if austere {
					formula = ast.Austere(formula)
				}
				//
				text = formula.String()
				log.Debugf("free variables %s, bound variables %s", ast.FreeVars(formula), ast.BoundVars(formula))
			}
			//
			fmt.Println(style(text))
			//
			if arithmetise {
				fmt.Println(godel.Encode(text))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("austere", false, "display formulas in austere form")
	parseCmd.Flags().Bool("latex", false, "display formulas in LaTeX")
	parseCmd.Flags().Bool("english", false, "display formulas in English")
	parseCmd.Flags().Bool("godel", false, "display the Godel number of each formula")
	parseCmd.Flags().Bool("term", false, "parse terms rather than formulas")
}
