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

	"github.com/consensys/go-tnt/pkg/tnt/godel"
	"github.com/spf13/cobra"
)

var godelCmd = &cobra.Command{
	Use:   "godel [flags] formula(s)",
	Short: "Arithmetise formulas as Godel numbers.",
	Long: `Arithmetise one or more formulas as Godel numbers, or (with --decode)
	recover the formulas which given Godel numbers encode.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		for _, arg := range args {
			if !GetFlag(cmd, "decode") {
				fmt.Println(godel.Encode(readFormula(arg).String()))
				continue
			}
			//
			n, err := godel.Parse(arg)
			if err == nil {
				var text string
				//
				if text, err = godel.Decode(n); err == nil {
					fmt.Println(text)
					continue
				}
			}
			//
			fmt.Printf("%s: %s\n", arg, err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(godelCmd)
	godelCmd.Flags().Bool("decode", false, "decode Godel numbers into formulas")
}
