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
package axiom

import (
	"testing"

	"github.com/consensys/go-tnt/pkg/tnt/parser"
	"github.com/consensys/go-tnt/pkg/util/assert"
)

func Test_Axiom_01(t *testing.T) {
	axioms := Peano()
	assert.Equal(t, 5, len(axioms))
	//
	for i, text := range PEANO_TEXT {
		assert.Equal(t, text, axioms[i].String())
	}
}

func Test_Axiom_02(t *testing.T) {
	// Modifying the returned slice does not affect the shared axioms.
	axioms := Peano()
	axioms[0] = parser.MustParseFormula("0=0")
	assert.Equal(t, "~Sa=0", Peano()[0].String())
}

func Test_Axiom_03(t *testing.T) {
	checkAxiom(t, "~Sa=0", 0)
	checkAxiom(t, "Aa:~Sa=0", 0)
	checkAxiom(t, "Aa:(a+0)=a", 1)
	checkAxiom(t, "Ab:(b+0)=b", 1)
	checkAxiom(t, "(c+0)=c", 1)
	checkAxiom(t, "Aa:Ab:(a+Sb)=S(a+b)", 2)
	checkAxiom(t, "Ab:Aa:(a+Sb)=S(a+b)", 2)
	checkAxiom(t, "Aa:(a+Sb)=S(a+b)", 2)
	checkAxiom(t, "Ax:(x*0)=0", 3)
	checkAxiom(t, "Aa:Ab:(a*Sb)=((a*b)+a)", 4)
}

func Test_Axiom_04(t *testing.T) {
	checkNotAxiom(t, "(S0+0)=S0")
	checkNotAxiom(t, "Aa:(a+Sa)=S(a+a)")
	checkNotAxiom(t, "Ab:(a+Sb)=S(b+a)")
	checkNotAxiom(t, "Ea:~Sa=0")
	checkNotAxiom(t, "0=0")
}

func Test_Axiom_05(t *testing.T) {
	assert.Equal(t, "Aa:Aa':(a+Sa')=S(a+a')", Key(parser.MustParseFormula("(a+Sb)=S(a+b)")).String())
}

func checkAxiom(t *testing.T, input string, expected int) {
	index, ok := Find(parser.MustParseFormula(input), Peano())
	assert.True(t, ok, "%s should be an axiom", input)
	assert.Equal(t, expected, index)
}

func checkNotAxiom(t *testing.T, input string) {
	_, ok := Find(parser.MustParseFormula(input), Peano())
	assert.False(t, ok, "%s should not be an axiom", input)
}
