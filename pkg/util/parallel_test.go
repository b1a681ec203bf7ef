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
package util

import (
	"context"
	"errors"
	"testing"

	"github.com/consensys/go-tnt/pkg/util/assert"
)

func Test_ParMap_01(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	//
	for _, limit := range []int{0, 1, 3} {
		squares, err := ParMap(context.Background(), limit, items, func(_ context.Context, x int) (int, error) {
			return x * x, nil
		})
		//
		assert.NoError(t, err)
		//
		for i, x := range items {
			assert.Equal(t, x*x, squares[i])
		}
	}
}

func Test_ParMap_02(t *testing.T) {
	failure := errors.New("odd")
	//
	_, err := ParMap(context.Background(), 2, []int{2, 4, 5, 6}, func(_ context.Context, x int) (int, error) {
		if x%2 == 1 {
			return 0, failure
		}
		//
		return x, nil
	})
	//
	assert.ErrorIs(t, err, failure)
}

func Test_ParMap_03(t *testing.T) {
	results, err := ParMap(context.Background(), 0, []string{}, func(_ context.Context, x string) (string, error) {
		return x, nil
	})
	//
	assert.NoError(t, err)
	assert.Equal(t, 0, len(results))
}
