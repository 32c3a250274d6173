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
	"iter"
	"unsafe"

	"github.com/ivan-pi/Fcpp/cfi"
)

// Ptr borrows a descriptor established elsewhere, usually by the foreign
// caller of an exported procedure. It must not be used after the
// descriptor it points to goes out of scope.
type Ptr[T any, D cfi.Dims] struct {
	c *cfi.CDesc
}

// Borrow returns a view of c after checking that it describes elements
// of type T, has rank len(D) and the attribute attr. A mismatch means the
// caller passed an array of the wrong shape: Borrow panics.
func Borrow[T any, D cfi.Dims](c *cfi.CDesc, attr cfi.Attribute) Ptr[T, D] {
	if c == nil {
		fail(summary{}, "borrowing a nil descriptor")
	}
	if want := cfi.TypeOf[T](); c.Type != want {
		fail(summarize(c), "borrowed descriptor has type %s, want %s", c.Type, want)
	}
	if want := rankOf[D](); int(c.Rank) != want {
		fail(summarize(c), "borrowed descriptor has rank %d, want %d", c.Rank, want)
	}
	if c.Attribute != attr {
		fail(summarize(c), "borrowed descriptor has attribute %s, want %s", c.Attribute, attr)
	}
	return Ptr[T, D]{c: c}
}

// BorrowPtr is Borrow for a descriptor address received from cgo.
func BorrowPtr[T any, D cfi.Dims](ptr uintptr, attr cfi.Attribute) Ptr[T, D] {
	return Borrow[T, D](cfi.FromPtr(ptr), attr)
}

// CDesc returns the borrowed descriptor.
func (p Ptr[T, D]) CDesc() *cfi.CDesc { return p.c }

// Rank returns the number of dimensions.
func (p Ptr[T, D]) Rank() int { return int(p.c.Rank) }

// Type returns the type code of the elements.
func (p Ptr[T, D]) Type() cfi.Type { return p.c.Type }

// Version returns the descriptor version.
func (p Ptr[T, D]) Version() int { return int(p.c.Version) }

// ElemLen returns the size in bytes of one element.
func (p Ptr[T, D]) ElemLen() int { return int(p.c.ElemLen) }

// Attribute returns the attribute of the descriptor.
func (p Ptr[T, D]) Attribute() cfi.Attribute { return p.c.Attribute }

// Base returns the base address of the descriptor.
func (p Ptr[T, D]) Base() unsafe.Pointer { return p.c.BaseAddr }

// Extent returns the number of elements along dimension i.
func (p Ptr[T, D]) Extent(i int) int { return int(dim(p.c, i).Extent) }

// LowerBound returns the lower bound of dimension i.
func (p Ptr[T, D]) LowerBound(i int) int { return int(dim(p.c, i).LowerBound) }

// Stride returns the distance in bytes between consecutive elements of
// dimension i.
func (p Ptr[T, D]) Stride(i int) int { return int(dim(p.c, i).SM) }

// Len returns the total number of elements, or -1 for an assumed-size
// array.
func (p Ptr[T, D]) Len() int { return p.c.Len() }

// IsContiguous reports whether the elements are adjacent in memory.
func (p Ptr[T, D]) IsContiguous() bool { return cfi.IsContiguous(p.c) }

// At returns the address of element i of a rank-1 descriptor, honoring
// its stride.
func (p Ptr[T, D]) At(i int) *T { return at[T](p.c, i) }

// Get returns element i of a rank-1 descriptor.
func (p Ptr[T, D]) Get(i int) T { return *at[T](p.c, i) }

// Set stores v as element i of a rank-1 descriptor.
func (p Ptr[T, D]) Set(i int, v T) { *at[T](p.c, i) = v }

// Data returns all elements as a flat slice. It panics unless the
// descriptor is contiguous; use Begin and End to walk strided data.
func (p Ptr[T, D]) Data() []T { return flatten[T](p.c) }

// Begin returns an iterator at the first element of a rank-1 descriptor.
func (p Ptr[T, D]) Begin() Iterator[T] { return begin[T](p.c) }

// End returns an iterator one step past the last element.
func (p Ptr[T, D]) End() Iterator[T] { return end[T](p.c) }

// All iterates over the elements of a rank-1 descriptor, yielding their
// index and address.
func (p Ptr[T, D]) All() iter.Seq2[int, *T] { return all[T](p.c) }
