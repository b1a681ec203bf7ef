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
package stack

import "math"

// Stack represents a reusable LIFO stack which is implemented using an array.
// A stack may optionally be bounded, in which case pushing onto a full stack is
// considered a programming error.
type Stack[T any] struct {
	items []T
	limit uint
}

// NewStack returns an empty (unbounded) stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{nil, math.MaxUint}
}

// NewBoundedStack returns an empty stack which can hold at most limit items.
func NewBoundedStack[T any](limit uint) *Stack[T] {
	return &Stack[T]{nil, limit}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return p.Len() == 0
}

// IsFull checks whether or not this stack has reached its bound.
func (p *Stack[T]) IsFull() bool {
	return p.Len() >= p.limit
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Peek at nth item from top of stack.
func (p *Stack[T]) Peek(offset uint) T {
	var n = len(p.items) - int(offset) - 1
	//
	if n < 0 {
		panic("peek out-of-bounds")
	}
	// Get last item
	return p.items[n]
}

// Push a new item onto the stack
func (p *Stack[T]) Push(item T) {
	if p.IsFull() {
		panic("cannot push onto full stack")
	}
	//
	p.items = append(p.items, item)
}

// Pop the last item off the stack
func (p *Stack[T]) Pop() T {
	var n = len(p.items)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	// Get last item
	item := p.items[n-1]
	// Remove last item
	p.items = p.items[:n-1]
	// Done
	return item
}

// Clone returns a copy of this stack which can be modified independently.
func (p *Stack[T]) Clone() *Stack[T] {
	items := make([]T, len(p.items))
	copy(items, p.items)
	//
	return &Stack[T]{items, p.limit}
}
