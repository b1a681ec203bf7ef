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
	"github.com/consensys/go-tnt/pkg/tnt/axiom"
	"github.com/consensys/go-tnt/pkg/util/termio"
	"github.com/spf13/cobra"
)

var axiomsCmd = &cobra.Command{
	Use:   "axioms [flags]",
	Short: "List the axioms.",
	Long:  `List the five Peano axioms which every deduction starts from.`,
	Run: func(cmd *cobra.Command, args []string) {
		style := getStyle(cmd)
		table := termio.NewTablePrinter(2)
		table.AlignLeft(1, true)
		//
		for i, f := range axiom.Peano() {
			if GetFlag(cmd, "austere") {
				f = ast.Austere(ast.Closure(f))
			}
			//
			table.AddRow(fmt.Sprintf("%d", i+1), style(f.String()))
		}
		//
		table.Print(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(axiomsCmd)
	axiomsCmd.Flags().Bool("austere", false, "display closed axioms in austere form")
	axiomsCmd.Flags().Bool("latex", false, "display axioms in LaTeX")
	axiomsCmd.Flags().Bool("english", false, "display axioms in English")
}
