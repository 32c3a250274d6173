// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cdesc

import (
	"sort"
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sequence is a half-open range of elements walked by an Iterator.
// Desc and Ptr are sequences over their first dimension.
type Sequence[T any] interface {
	Begin() Iterator[T]
	End() Iterator[T]
}

// strided adapts a sequence to sort.Interface without copying it.
type strided[T any] struct {
	first Iterator[T]
	n     int
	less  func(a, b T) bool
}

func (s strided[T]) Len() int           { return s.n }
func (s strided[T]) Less(i, j int) bool { return s.less(*s.first.Add(i).Ptr(), *s.first.Add(j).Ptr()) }
func (s strided[T]) Swap(i, j int) {
	a, b := s.first.Add(i).Ptr(), s.first.Add(j).Ptr()
	*a, *b = *b, *a
}

// flat returns the n elements from first as a slice when they are
// adjacent in memory in iteration order.
func flat[T any](first Iterator[T], n int) ([]T, bool) {
	var zero T
	if n == 0 || first.sm != int(unsafe.Sizeof(zero)) {
		return nil, false
	}
	return unsafe.Slice(first.Ptr(), n), true
}

func bounds[T any](seq Sequence[T]) (Iterator[T], int) {
	first := seq.Begin()
	return first, first.Distance(seq.End())
}

func cmpOf[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Sort sorts the elements of seq in increasing order, in place.
func Sort[T constraints.Ordered](seq Sequence[T]) {
	first, n := bounds(seq)
	if s, ok := flat(first, n); ok {
		slices.Sort(s)
		return
	}
	sort.Sort(strided[T]{first: first, n: n, less: func(a, b T) bool { return a < b }})
}

// SortFunc sorts the elements of seq in place, ordered by less.
func SortFunc[T any](seq Sequence[T], less func(a, b T) bool) {
	first, n := bounds(seq)
	if s, ok := flat(first, n); ok {
		slices.SortFunc(s, cmpOf(less))
		return
	}
	sort.Sort(strided[T]{first: first, n: n, less: less})
}

// SortStableFunc is SortFunc keeping equal elements in their original
// order.
func SortStableFunc[T any](seq Sequence[T], less func(a, b T) bool) {
	first, n := bounds(seq)
	if s, ok := flat(first, n); ok {
		slices.SortStableFunc(s, cmpOf(less))
		return
	}
	sort.Stable(strided[T]{first: first, n: n, less: less})
}

// IsSorted reports whether the elements of seq are in increasing order.
func IsSorted[T constraints.Ordered](seq Sequence[T]) bool {
	first, n := bounds(seq)
	return sort.IsSorted(strided[T]{first: first, n: n, less: func(a, b T) bool { return a < b }})
}

// Search returns the first position in the sorted seq whose element is
// not less than v, or End if there is none.
func Search[T constraints.Ordered](seq Sequence[T], v T) Iterator[T] {
	first, n := bounds(seq)
	i := sort.Search(n, func(i int) bool { return first.Add(i).Value() >= v })
	return first.Add(i)
}

// MinElement returns the position of the first smallest element, or End
// if seq is empty.
func MinElement[T constraints.Ordered](seq Sequence[T]) Iterator[T] {
	return extreme(seq, func(a, b T) bool { return a < b })
}

// MaxElement returns the position of the first largest element, or End
// if seq is empty.
func MaxElement[T constraints.Ordered](seq Sequence[T]) Iterator[T] {
	return extreme(seq, func(a, b T) bool { return a > b })
}

func extreme[T any](seq Sequence[T], better func(a, b T) bool) Iterator[T] {
	first, n := bounds(seq)
	if n == 0 {
		return seq.End()
	}
	best := first
	for i := 1; i < n; i++ {
		if it := first.Add(i); better(it.Value(), best.Value()) {
			best = it
		}
	}
	return best
}

// Iota assigns start, start+1, ... to the elements of seq.
func Iota[T constraints.Integer | constraints.Float](seq Sequence[T], start T) {
	first, n := bounds(seq)
	for i := range n {
		first.Add(i).Set(start)
		start++
	}
}

// Fill assigns v to every element of seq.
func Fill[T any](seq Sequence[T], v T) {
	first, n := bounds(seq)
	for i := range n {
		first.Add(i).Set(v)
	}
}

// ForEach calls fn with the address of every element of seq, in order.
func ForEach[T any](seq Sequence[T], fn func(*T)) {
	first, n := bounds(seq)
	for i := range n {
		fn(first.Add(i).Ptr())
	}
}

// Count returns the number of elements of seq satisfying pred.
func Count[T any](seq Sequence[T], pred func(T) bool) int {
	first, n := bounds(seq)
	c := 0
	for i := range n {
		if pred(first.Add(i).Value()) {
			c++
		}
	}
	return c
}
