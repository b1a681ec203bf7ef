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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-tnt/pkg/util/assert"
)

const TestDir = "../../testdata/proofs"

func Test_CheckScript_01(t *testing.T) {
	r := checkScript(filepath.Join(TestDir, "valid", "reflexivity.yaml"))
	//
	assert.NoError(t, r.err)
	assert.NoError(t, r.outcome)
	assert.Equal(t, 9, r.proof.Len())
}

func Test_CheckScript_02(t *testing.T) {
	// Expected failures are not errors
	r := checkScript(filepath.Join(TestDir, "invalid", "induction.yaml"))
	//
	assert.NoError(t, r.err)
	assert.True(t, r.outcome != nil, "expected rule failure")
}

func Test_CheckScript_03(t *testing.T) {
	r := checkScript(filepath.Join(TestDir, "missing.yaml"))
	//
	assert.True(t, r.script == nil, "unexpected script")
	assert.True(t, r.err != nil, "expected load failure")
}

func Test_CheckScripts_01(t *testing.T) {
	valid, err := filepath.Glob(filepath.Join(TestDir, "valid", "*.yaml"))
	assert.NoError(t, err)
	invalid, err := filepath.Glob(filepath.Join(TestDir, "invalid", "*.yaml"))
	assert.NoError(t, err)
	//
	quietly(t, func() {
		assert.True(t, checkScripts(checkConfig{style: identity, quiet: true}, append(valid, invalid...)),
			"expected all scripts to check")
	})
}

func Test_CheckScripts_02(t *testing.T) {
	quietly(t, func() {
		assert.False(t, checkScripts(checkConfig{style: identity}, []string{filepath.Join(TestDir, "missing.yaml")}),
			"expected missing script to fail")
	})
}

func identity(text string) string { return text }

// Run a function with standard output discarded.
func quietly(t *testing.T, fn func()) {
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	assert.NoError(t, err)
	//
	stdout := os.Stdout
	os.Stdout = null
	//
	defer func() {
		os.Stdout = stdout
		null.Close()
	}()
	//
	fn()
}
