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
	"golang.org/x/xerrors"
)

// Desc owns a descriptor of rank len(D) describing memory owned by the
// caller. The descriptor storage is part of the Desc value itself and is
// exactly as large as the C descriptor of that rank, so a Desc lives
// wherever the caller declares it. Copies are independent, complete
// descriptors.
//
// The memory described must outlive every use of the descriptor,
// including any retained by foreign code.
type Desc[T any, D cfi.Dims] struct {
	s cfi.Storage[D]
}

func newDesc[T any, D cfi.Dims](attr cfi.Attribute, p *T, extents []int) (d Desc[T, D]) {
	var ext [cfi.MaxRank]cfi.Index
	if len(extents) > cfi.MaxRank {
		fail(summary{}, "%d extents exceed the maximum rank", len(extents))
	}
	for i, e := range extents {
		ext[i] = cfi.Index(e)
	}

	var zero T
	err := cfi.Establish(d.s.Get(), unsafe.Pointer(p), attr, cfi.TypeOf[T](), unsafe.Sizeof(zero),
		cfi.Rank(d.s.Rank()), ext[:len(extents)])
	if err != nil {
		fail(summarize(d.s.Get()), "%w", xerrors.Errorf("establish %T rank %d: %w", zero, d.s.Rank(), err))
	}
	return d
}

// New returns a descriptor for the column-major array at p with the
// given extents, one per dimension. It panics if the extents do not
// match the rank or the descriptor cannot be established.
func New[T any, D cfi.Dims](p *T, extents ...int) Desc[T, D] {
	return newDesc[T, D](cfi.AttributeOther, p, extents)
}

// NewPointer is like New but the descriptor has the pointer attribute,
// as expected by a foreign procedure whose dummy argument is a pointer
// array. The memory is still owned by the caller.
func NewPointer[T any, D cfi.Dims](p *T, extents ...int) Desc[T, D] {
	return newDesc[T, D](cfi.AttributePointer, p, extents)
}

// FromPointer returns a rank-1 descriptor for the n elements at p.
func FromPointer[T any](p *T, n int) Desc[T, Rank1] {
	return New[T, Rank1](p, n)
}

// FromSlice returns a rank-1 descriptor for the elements of s. Fixed
// size arrays are passed as a[:].
func FromSlice[T any](s []T) Desc[T, Rank1] {
	return New[T, Rank1](unsafe.SliceData(s), len(s))
}

// CDesc returns the descriptor for passing across the language boundary.
func (d *Desc[T, D]) CDesc() *cfi.CDesc { return d.s.Get() }

// Rank returns the number of dimensions.
func (d *Desc[T, D]) Rank() int { return d.s.Rank() }

// Type returns the type code of T.
func (d *Desc[T, D]) Type() cfi.Type { return d.s.Get().Type }

// Version returns the descriptor version.
func (d *Desc[T, D]) Version() int { return int(d.s.Get().Version) }

// ElemLen returns the size in bytes of one element.
func (d *Desc[T, D]) ElemLen() int { return int(d.s.Get().ElemLen) }

// Attribute returns the attribute of the descriptor.
func (d *Desc[T, D]) Attribute() cfi.Attribute { return d.s.Get().Attribute }

// Base returns the address of the first element.
func (d *Desc[T, D]) Base() unsafe.Pointer { return d.s.Get().BaseAddr }

// Extent returns the number of elements along dimension i.
func (d *Desc[T, D]) Extent(i int) int { return int(dim(d.s.Get(), i).Extent) }

// LowerBound returns the lower bound of dimension i.
func (d *Desc[T, D]) LowerBound(i int) int { return int(dim(d.s.Get(), i).LowerBound) }

// Stride returns the distance in bytes between consecutive elements of
// dimension i.
func (d *Desc[T, D]) Stride(i int) int { return int(dim(d.s.Get(), i).SM) }

// Len returns the total number of elements.
func (d *Desc[T, D]) Len() int { return d.s.Get().Len() }

// IsContiguous reports whether the elements are adjacent in memory.
func (d *Desc[T, D]) IsContiguous() bool { return cfi.IsContiguous(d.s.Get()) }

// At returns the address of element i of a rank-1 descriptor.
func (d *Desc[T, D]) At(i int) *T { return at[T](d.s.Get(), i) }

// Get returns element i of a rank-1 descriptor.
func (d *Desc[T, D]) Get(i int) T { return *at[T](d.s.Get(), i) }

// Set stores v as element i of a rank-1 descriptor.
func (d *Desc[T, D]) Set(i int, v T) { *at[T](d.s.Get(), i) = v }

// Slice returns the elements of a contiguous rank-1 descriptor as a
// slice sharing its memory.
func (d *Desc[T, D]) Slice() []T {
	requireRank1(d.s.Get(), "slice conversion")
	return flatten[T](d.s.Get())
}

// Flatten returns all elements of a contiguous descriptor, in column-major
// order, as a slice sharing its memory.
func (d *Desc[T, D]) Flatten() []T { return flatten[T](d.s.Get()) }

// Begin returns an iterator at the first element of a rank-1 descriptor.
func (d *Desc[T, D]) Begin() Iterator[T] { return begin[T](d.s.Get()) }

// End returns an iterator one step past the last element.
func (d *Desc[T, D]) End() Iterator[T] { return end[T](d.s.Get()) }

// All iterates over the elements of a rank-1 descriptor, yielding their
// index and address.
func (d *Desc[T, D]) All() iter.Seq2[int, *T] { return all[T](d.s.Get()) }

// Section returns a rank-1 descriptor over elements lower, lower+step,
// ... up to upper inclusive. step may be negative; it must not be zero.
func (d *Desc[T, D]) Section(lower, upper, step int) (out Desc[T, Rank1]) {
	src := d.s.Get()
	requireRank1(src, "section")
	if step == 0 {
		fail(summarize(src), "section with zero step")
	}

	if err := cfi.Establish(out.s.Get(), nil, cfi.AttributeOther, src.Type, src.ElemLen, 1, nil); err != nil {
		fail(summarize(src), "%w", err)
	}
	lb := src.Dims()[0].LowerBound
	lo, hi, st := [1]cfi.Index{lb + cfi.Index(lower)}, [1]cfi.Index{lb + cfi.Index(upper)}, [1]cfi.Index{cfi.Index(step)}
	if err := cfi.Section(out.s.Get(), src, lo[:], hi[:], st[:]); err != nil {
		fail(summarize(src), "%w", err)
	}
	return out
}
