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

import (
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"golang.org/x/xerrors"
)

// Establish fills in the descriptor c, which must have room for rank
// dimension records.
//
// For intrinsic types the element length is implied by typ and elemLen is
// ignored; character, struct and other types need a positive elemLen.
// When base is not nil, extents must hold one non-negative extent per
// dimension; the lower bounds are set to zero and the memory strides to
// those of a contiguous column-major array. When base is nil the
// dimension records are left untouched, which describes an unallocated
// allocatable or a disassociated pointer.
func Establish(c *CDesc, base unsafe.Pointer, attr Attribute, typ Type, elemLen uintptr, rank Rank, extents []Index) error {
	if c == nil {
		return xerrors.Errorf("cfi: establish: nil descriptor: %w", ErrInvalidDescriptor)
	}
	if rank < 0 || rank > MaxRank {
		return xerrors.Errorf("cfi: establish: rank %d: %w", rank, ErrInvalidRank)
	}
	if !attr.valid() {
		return xerrors.Errorf("cfi: establish: attribute %d: %w", attr, ErrInvalidAttribute)
	}
	if attr == AttributeAllocatable && base != nil {
		return xerrors.Errorf("cfi: establish: allocatable: %w", ErrBaseAddrNotNull)
	}
	if !typ.valid() {
		return xerrors.Errorf("cfi: establish: type %d: %w", int16(typ), ErrInvalidType)
	}

	if n, ok := typ.ElemLen(); ok {
		elemLen = n
	} else if elemLen == 0 {
		return xerrors.Errorf("cfi: establish: %s needs an element length: %w", typ, ErrInvalidElemLen)
	}

	var sms [MaxRank]Index
	if base != nil && rank > 0 {
		if len(extents) != int(rank) {
			return xerrors.Errorf("cfi: establish: got %d extents for rank %d: %w", len(extents), rank, ErrInvalidExtent)
		}
		sm := int(elemLen)
		for i, ext := range extents {
			if ext < 0 {
				return xerrors.Errorf("cfi: establish: extent %d of dimension %d: %w", ext, i, ErrInvalidExtent)
			}
			sms[i] = Index(sm)
			next, ok := overflow.Mul(sm, int(ext))
			if !ok {
				return xerrors.Errorf("cfi: establish: array size overflows: %w", ErrInvalidExtent)
			}
			sm = next
		}
	}

	c.BaseAddr = base
	c.ElemLen = elemLen
	c.Version = Version
	c.Rank = rank
	c.Attribute = attr
	c.Type = typ

	if base != nil {
		dims := c.Dims()
		for i := range dims {
			dims[i] = Dim{LowerBound: 0, Extent: extents[i], SM: sms[i]}
		}
	}
	return nil
}

// IsContiguous reports whether the elements described by c occupy
// consecutive memory in array element order. Scalars, allocatables,
// zero-sized arrays and the last dimension of an assumed-size array are
// contiguous; a descriptor with a nil base address is not.
func IsContiguous(c *CDesc) bool {
	if c == nil || c.BaseAddr == nil {
		return false
	}
	dims := c.Dims()
	if len(dims) == 0 || c.Attribute == AttributeAllocatable || dims[len(dims)-1].Extent == -1 {
		return true
	}
	for _, d := range dims {
		if d.Extent == 0 {
			return true
		}
	}

	for i, d := range dims {
		switch {
		case i == 0 && d.SM == Index(c.ElemLen):
		case i > 0 && d.SM == dims[i-1].SM*dims[i-1].Extent:
		default:
			return false
		}
	}
	return true
}
