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
package set

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// SortedSet is an array of unique sorted values (i.e. no duplicates).  Sorted
// sets give deterministic iteration order, which matters whenever variable
// sets are rendered or used to pick fresh names.
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns an empty sorted set.
func NewSortedSet[T cmp.Ordered]() *SortedSet[T] {
	return &SortedSet[T]{}
}

// Of constructs a sorted set from zero or more (not necessarily sorted or
// unique) elements.
func Of[T cmp.Ordered](elements ...T) *SortedSet[T] {
	set := NewSortedSet[T]()
	//
	for _, e := range elements {
		set.Insert(e)
	}
	//
	return set
}

// Len returns the number of elements in this set.
func (p *SortedSet[T]) Len() int {
	return len(*p)
}

// IsEmpty checks whether this set contains no elements.
func (p *SortedSet[T]) IsEmpty() bool {
	return len(*p) == 0
}

// Contains returns true if a given element is in the set.
//
//nolint:revive
func (p *SortedSet[T]) Contains(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(*p), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	return i < len(data) && data[i] == element
}

// Insert an element into this sorted set.
//
//nolint:revive
func (p *SortedSet[T]) Insert(element T) {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(*p), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	if i >= len(data) || data[i] != element {
		// No, item was not found
		ndata := make([]T, len(data)+1)
		copy(ndata, data[0:i])
		ndata[i] = element
		copy(ndata[i+1:], data[i:])
		*p = ndata
	}
}

// Remove an element from this sorted set (if it is present).
func (p *SortedSet[T]) Remove(element T) {
	data := *p
	//
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	//
	if i < len(data) && data[i] == element {
		*p = slices.Delete(slices.Clone(data), i, i+1)
	}
}

// InsertSorted inserts all elements in a given sorted set into this set.
//
//nolint:revive
func (p *SortedSet[T]) InsertSorted(q *SortedSet[T]) {
	left := *p
	right := *q
	// Check containment
	n := countDuplicates(left, right)
	// Check for total inclusion
	if n == len(right) {
		// Right set completedly included in left, so actually there is nothing
		// to do.
		return
	}
	// Allocate space
	ndata := make([]T, len(left)+len(right)-n)
	// Merge
	mergeSorted(ndata, left, right)
	// Finally copy over new data
	*p = ndata
}

// Intersects checks whether this set shares at least one element with another.
func (p *SortedSet[T]) Intersects(q *SortedSet[T]) bool {
	return countDuplicates(*p, *q) > 0
}

// Intersection returns the elements common to both this set and another, in
// sorted order.
func (p *SortedSet[T]) Intersection(q *SortedSet[T]) *SortedSet[T] {
	var (
		left, right = *p, *q
		result      = NewSortedSet[T]()
		i, j        = 0, 0
	)
	//
	for i < len(left) && j < len(right) {
		switch {
		case left[i] < right[j]:
			i++
		case left[i] > right[j]:
			j++
		default:
			*result = append(*result, left[i])
			i++
			j++
		}
	}
	//
	return result
}

// String returns a human-readable representation of this set, such as "{a,b}".
func (p *SortedSet[T]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, e := range *p {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprint(e))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// UnionSortedSets unions together a number of things which can be turn into a
// sorted set using a given mapping function.  At some level, this is a
// map/reduce function.
func UnionSortedSets[S any, T cmp.Ordered](elems []S, fn func(S) *SortedSet[T]) *SortedSet[T] {
	var set = NewSortedSet[T]()
	//
	for _, elem := range elems {
		set.InsertSorted(fn(elem))
	}
	//
	return set
}

// Determine number of duplicate elements
func countDuplicates[T cmp.Ordered](left []T, right []T) int {
	// Check containment
	i := 0
	j := 0
	n := 0

	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			i++
		} else if left[i] > right[j] {
			j++
		} else {
			i++
			j++
			n++ // duplicate detected
		}
	}

	return n
}

// Merge two sets of sorted arrays (left and right) into a target array.  This
// assumes the target array is big enough.
func mergeSorted[T cmp.Ordered](target []T, left []T, right []T) {
	i := 0
	j := 0
	k := 0
	// Merge overlap of both sets
	for ; i < len(left) && j < len(right); k++ {
		if left[i] < right[j] {
			target[k] = left[i]
			i++
		} else if left[i] > right[j] {
			target[k] = right[j]
			j++
		} else {
			target[k] = left[i]
			i++
			j++
		}
	}
	// Handle anything left
	if i < len(left) {
		copy(target[k:], left[i:])
	} else if j < len(right) {
		copy(target[k:], right[j:])
	}
}
