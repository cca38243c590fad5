/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package scope

// OrderedSet keeps the first occurrence of each id, in insertion order.
// The zero value is ready to use.
type OrderedSet[T any] struct {
	index map[string]int
	items []T
}

// NewOrderedSet returns an empty set sized for n items.
func NewOrderedSet[T any](n int) *OrderedSet[T] {
	return &OrderedSet[T]{index: make(map[string]int, n), items: make([]T, 0, n)}
}

// Add inserts v under id unless id is already present, and reports whether
// it was inserted.
func (s *OrderedSet[T]) Add(id string, v T) bool {
	if s.index == nil {
		s.index = map[string]int{}
	}
	if _, exists := s.index[id]; exists {
		return false
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Contains reports whether id was added.
func (s *OrderedSet[T]) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of distinct ids.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Values returns the items in first-seen order; never nil.
func (s *OrderedSet[T]) Values() []T {
	if s.items == nil {
		return []T{}
	}
	return s.items
}
