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
	"github.com/ivan-pi/Fcpp/internal/debug"
	"golang.org/x/xerrors"
)

// Section updates result to describe the array section of source given by
// the lower and upper bounds and strides, one entry per dimension of
// source. A nil lower or upper defaults to the bounds of source and a nil
// strides to 1. A dimension with stride 0 is a subscript rather than a
// range: its lower and upper bounds must be equal and it does not appear
// in result, whose rank must equal the number of non-zero strides.
//
// result must have been established with the type and element length of
// source and must not be allocatable. Lower bounds of an other result are
// zero; those of a pointer result are taken from lower.
func Section(result, source *CDesc, lower, upper, strides []Index) error {
	if result == nil || source == nil {
		return xerrors.Errorf("cfi: section: nil descriptor: %w", ErrInvalidDescriptor)
	}
	if source.BaseAddr == nil {
		return xerrors.Errorf("cfi: section: source: %w", ErrBaseAddrNull)
	}
	if result.Attribute == AttributeAllocatable {
		return xerrors.Errorf("cfi: section: allocatable result: %w", ErrInvalidAttribute)
	}
	if result.Type != source.Type {
		return xerrors.Errorf("cfi: section: result type %s, source type %s: %w", result.Type, source.Type, ErrInvalidType)
	}
	if result.ElemLen != source.ElemLen {
		return xerrors.Errorf("cfi: section: result element length %d, source %d: %w", result.ElemLen, source.ElemLen, ErrInvalidElemLen)
	}

	src := source.Dims()
	for _, s := range [...][]Index{lower, upper, strides} {
		if s != nil && len(s) != len(src) {
			return xerrors.Errorf("cfi: section: %d bounds for rank %d: %w", len(s), len(src), ErrInvalidRank)
		}
	}

	nonzero := 0
	for i := range src {
		if strides != nil && strides[i] == 0 {
			continue
		}
		nonzero++
	}
	if int(result.Rank) != nonzero {
		return xerrors.Errorf("cfi: section: result rank %d, section rank %d: %w", result.Rank, nonzero, ErrInvalidRank)
	}

	var (
		out    [MaxRank]Dim
		offset = 0
		r      = 0
	)
	for i, d := range src {
		lb, ub, st := d.LowerBound, d.LowerBound+d.Extent-1, Index(1)
		if lower != nil {
			lb = lower[i]
		}
		if upper != nil {
			ub = upper[i]
		} else if d.Extent < 0 {
			return xerrors.Errorf("cfi: section: upper bound of assumed-size dimension %d: %w", i, ErrInvalidDescriptor)
		}
		if strides != nil {
			st = strides[i]
		}

		var ext Index
		switch {
		case st == 0:
			if lb != ub {
				return xerrors.Errorf("cfi: section: dimension %d has stride 0 but bounds %d:%d: %w", i, lb, ub, ErrOutOfBounds)
			}
			ext = 1
		case st > 0 && ub >= lb:
			ext = (ub-lb)/st + 1
		case st < 0 && lb >= ub:
			ext = (lb-ub)/(-st) + 1
		}

		if ext > 0 {
			last := lb + (ext-1)*st
			if !inBounds(d, lb) || !inBounds(d, last) {
				return xerrors.Errorf("cfi: section: dimension %d bounds %d:%d outside %d:%d: %w",
					i, lb, last, d.LowerBound, d.LowerBound+d.Extent-1, ErrOutOfBounds)
			}
		}

		step, ok := overflow.Mul(int(lb-d.LowerBound), int(d.SM))
		if !ok {
			return xerrors.Errorf("cfi: section: offset overflows: %w", ErrOutOfBounds)
		}
		if offset, ok = overflow.Add(offset, step); !ok {
			return xerrors.Errorf("cfi: section: offset overflows: %w", ErrOutOfBounds)
		}

		if st == 0 {
			continue
		}
		out[r] = Dim{Extent: ext, SM: d.SM * st}
		if result.Attribute == AttributePointer {
			out[r].LowerBound = lb
		}
		r++
	}

	result.BaseAddr = unsafe.Add(source.BaseAddr, offset)
	copy(result.Dims(), out[:r])
	return nil
}

func inBounds(d Dim, sub Index) bool {
	if sub < d.LowerBound {
		return false
	}
	// the last dimension of an assumed-size array has no upper bound
	return d.Extent < 0 || sub < d.LowerBound+d.Extent
}

// Address returns the address of the element of c selected by
// subscripts, one per dimension. Subscripts are not checked against the
// bounds unless built with the assert tag.
func Address(c *CDesc, subscripts []Index) unsafe.Pointer {
	dims := c.Dims()
	if debug.Enabled {
		debug.Assert(len(subscripts) == len(dims), "cfi: address: wrong number of subscripts")
		for i, d := range dims {
			debug.Assert(inBounds(d, subscripts[i]), "cfi: address: subscript out of bounds")
		}
	}
	offset := 0
	for i, d := range dims {
		offset += int(subscripts[i]-d.LowerBound) * int(d.SM)
	}
	return unsafe.Add(c.BaseAddr, offset)
}

// SetPointer associates the pointer descriptor result with the array
// described by source, or disassociates it when source is nil. Lower
// bounds default to those of source.
func SetPointer(result, source *CDesc, lower []Index) error {
	if result == nil {
		return xerrors.Errorf("cfi: setpointer: nil result: %w", ErrInvalidDescriptor)
	}
	if result.Attribute != AttributePointer {
		return xerrors.Errorf("cfi: setpointer: result is %s: %w", result.Attribute, ErrInvalidAttribute)
	}
	if source == nil {
		result.BaseAddr = nil
		return nil
	}

	switch {
	case source.ElemLen != result.ElemLen:
		return xerrors.Errorf("cfi: setpointer: element length %d, want %d: %w", source.ElemLen, result.ElemLen, ErrInvalidElemLen)
	case source.Rank != result.Rank:
		return xerrors.Errorf("cfi: setpointer: rank %d, want %d: %w", source.Rank, result.Rank, ErrInvalidRank)
	case source.Type != result.Type:
		return xerrors.Errorf("cfi: setpointer: type %s, want %s: %w", source.Type, result.Type, ErrInvalidType)
	case source.Attribute == AttributeAllocatable && source.BaseAddr == nil:
		return xerrors.Errorf("cfi: setpointer: unallocated source: %w", ErrBaseAddrNull)
	case lower != nil && len(lower) != int(source.Rank):
		return xerrors.Errorf("cfi: setpointer: %d lower bounds for rank %d: %w", len(lower), source.Rank, ErrInvalidRank)
	}

	result.BaseAddr = source.BaseAddr
	dst := result.Dims()
	for i, d := range source.Dims() {
		dst[i] = d
		if lower != nil {
			dst[i].LowerBound = lower[i]
		}
	}
	return nil
}
