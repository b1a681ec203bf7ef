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
package ast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVariable is returned (wrapped) whenever a variable name does not
// consist of a single lowercase letter followed by zero or more apostrophes.
var ErrInvalidVariable = errors.New("invalid variable")

// Variable is a named placeholder for a natural number.  Variables have no
// identity beyond their name.  Names consist of one lowercase ASCII letter
// followed by zero or more apostrophes (e.g. a, b', c'').  Variables are
// ordered lexicographically by name, hence a < a' < a'' < b.
type Variable string

// InvalidVariableError reports a malformed variable name.
type InvalidVariableError struct {
	Name string
}

func (e *InvalidVariableError) Error() string {
	return fmt.Sprintf("invalid variable \"%s\"", e.Name)
}

// Unwrap allows errors.Is(err, ErrInvalidVariable).
func (e *InvalidVariableError) Unwrap() error {
	return ErrInvalidVariable
}

// NewVariable constructs a variable with a given name, whilst checking that the
// name is valid.
func NewVariable(name string) (Variable, error) {
	if !IsVariableName(name) {
		return "", &InvalidVariableError{name}
	}
	//
	return Variable(name), nil
}

// MustVariable constructs a variable with a given name, and panics if the name
// is invalid.  This is intended for constants in code and tests.
func MustVariable(name string) Variable {
	v, err := NewVariable(name)
	if err != nil {
		panic(err.Error())
	}
	//
	return v
}

// IsVariableName checks whether a given string is a valid variable name.
func IsVariableName(name string) bool {
	if len(name) == 0 || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	//
	return strings.Trim(name[1:], "'") == ""
}

// Primes returns the number of apostrophes following the letter of this
// variable.
func (v Variable) Primes() uint {
	return uint(len(v) - 1)
}

// Prime returns this variable with one additional apostrophe.
func (v Variable) Prime() Variable {
	return v + "'"
}

func (v Variable) String() string {
	return string(v)
}
