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
package godel

import (
	"errors"
	"math/big"
	"strings"
	"unicode/utf8"
)

// ErrNotGodelNumber signals a number which does not encode any text.
var ErrNotGodelNumber = errors.New("not a godel number")

// Encode arithmetises the canonical text of a term or formula.  The bytes of the
// text are read as a single big-endian integer, hence distinct texts have
// distinct numbers and the encoding can be inverted by Decode.
func Encode(text string) *big.Int {
	return new(big.Int).SetBytes([]byte(text))
}

// EncodeAll arithmetises a sequence of texts (e.g. the theorems of a deduction)
// as a single number, with one text per line.
func EncodeAll(texts ...string) *big.Int {
	return Encode(strings.Join(texts, "\n"))
}

// Decode recovers the text arithmetised by a given number.
func Decode(n *big.Int) (string, error) {
	if n.Sign() <= 0 {
		return "", ErrNotGodelNumber
	}
	//
	bytes := n.Bytes()
	//
	if !utf8.Valid(bytes) {
		return "", ErrNotGodelNumber
	}
	//
	return string(bytes), nil
}

// DecodeAll recovers the sequence of texts arithmetised by EncodeAll.
func DecodeAll(n *big.Int) ([]string, error) {
	text, err := Decode(n)
	if err != nil {
		return nil, err
	}
	//
	return strings.Split(text, "\n"), nil
}

// Parse reads a Godel number written in decimal.
func Parse(digits string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(digits), 10)
	if !ok {
		return nil, ErrNotGodelNumber
	}
	//
	return n, nil
}
