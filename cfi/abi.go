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

package cfi

import "unsafe"

// Version is the value stored in CDesc.Version by Establish.
const Version = 1

// MaxRank is the largest rank a descriptor may have.
const MaxRank = 15

type (
	// Index is CFI_index_t, a signed integer as wide as ptrdiff_t.
	Index int
	// Rank is CFI_rank_t.
	Rank int8
	// Attribute is CFI_attribute_t.
	Attribute int8
)

// Attribute values.
const (
	AttributePointer     Attribute = 0
	AttributeAllocatable Attribute = 1
	AttributeOther       Attribute = 2
)

func (a Attribute) String() string {
	switch a {
	case AttributePointer:
		return "pointer"
	case AttributeAllocatable:
		return "allocatable"
	case AttributeOther:
		return "other"
	default:
		return "invalid"
	}
}

func (a Attribute) valid() bool {
	return a == AttributePointer || a == AttributeAllocatable || a == AttributeOther
}

// Dim is CFI_dim_t: the lower bound, the number of elements and the
// distance in bytes between consecutive elements of one dimension.
type Dim struct {
	LowerBound Index
	Extent     Index
	SM         Index
}

// CDesc is the fixed header of CFI_cdesc_t. The Rank dimension records
// follow it in the same allocation, so a CDesc must never be copied by
// value once established.
type CDesc struct {
	BaseAddr  unsafe.Pointer
	ElemLen   uintptr
	Version   int32
	Rank      Rank
	Attribute Attribute
	Type      Type
}

const (
	headerSize = unsafe.Sizeof(CDesc{})
	dimSize    = unsafe.Sizeof(Dim{})
)

// Dims returns the dimension records of c. The slice aliases the
// descriptor.
func (c *CDesc) Dims() []Dim {
	if c.Rank <= 0 {
		return nil
	}
	return unsafe.Slice((*Dim)(unsafe.Add(unsafe.Pointer(c), headerSize)), int(c.Rank))
}

// Dim returns the record of dimension i.
func (c *CDesc) Dim(i int) *Dim {
	if i < 0 || i >= int(c.Rank) {
		panic("cfi: dimension index out of range")
	}
	return &c.Dims()[i]
}

// Len returns the number of elements described by c. Assumed-size
// descriptors report -1.
func (c *CDesc) Len() int {
	n := 1
	for _, d := range c.Dims() {
		if d.Extent < 0 {
			return -1
		}
		n *= int(d.Extent)
	}
	return n
}

// Dims is satisfied by the dimension arrays of every legal rank.
type Dims interface {
	[0]Dim | [1]Dim | [2]Dim | [3]Dim | [4]Dim | [5]Dim | [6]Dim | [7]Dim |
		[8]Dim | [9]Dim | [10]Dim | [11]Dim | [12]Dim | [13]Dim | [14]Dim | [15]Dim
}

// Storage is CFI_CDESC_T(rank): a descriptor header followed by exactly
// as many dimension records as the array type D holds.
type Storage[D Dims] struct {
	hdr CDesc
	dim D
}

// Get returns the descriptor held by s.
func (s *Storage[D]) Get() *CDesc { return &s.hdr }

// Rank returns the number of dimension records s has room for.
func (s *Storage[D]) Rank() int { return len(s.dim) }

// SizeOf returns the size in bytes of a descriptor of the given rank.
func SizeOf(rank int) uintptr {
	return headerSize + uintptr(rank)*dimSize
}

// FromPtr is a simple helper to cast the address of a foreign descriptor.
func FromPtr(ptr uintptr) *CDesc { return (*CDesc)(unsafe.Pointer(ptr)) }
