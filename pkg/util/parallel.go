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

	"golang.org/x/sync/errgroup"
)

// ParMap applies a given function to every item of a slice using go-routines,
// returning the results in the order of the items.  At most limit items are
// processed at once (or any number, when limit is 0).  The first error
// encountered cancels the context passed to remaining calls, and is returned.
func ParMap[T any, R any](ctx context.Context, limit int, items []T,
	fn func(context.Context, T) (R, error)) ([]R, error) {
	//
	results := make([]R, len(items))
	group, gctx := errgroup.WithContext(ctx)
	//
	if limit > 0 {
		group.SetLimit(limit)
	}
	//
	for i, item := range items {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			//
			r, err := fn(gctx, item)
			results[i] = r
			//
			return err
		})
	}
	//
	return results, group.Wait()
}
