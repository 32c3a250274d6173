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

// Package densemat exposes rank-2 real(8) descriptors as gonum matrices
// and describes gonum matrices for foreign code, without copying.
package densemat

import (
	"unsafe"

	"github.com/ivan-pi/Fcpp/cfi"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const elemSize = 8

// FromCDesc returns a matrix sharing memory with the array described by
// c. Element (i, j) of the result is element (i, j) of the array, counted
// from its lower bounds.
//
// One of the two dimensions must have unit stride. The other may be
// padded but must not overlap.
func FromCDesc(c *cfi.CDesc) (mat.Matrix, error) {
	switch {
	case c == nil:
		return nil, xerrors.Errorf("densemat: nil descriptor: %w", cfi.ErrInvalidDescriptor)
	case c.Type != cfi.TypeDouble:
		return nil, xerrors.Errorf("densemat: element type %s: %w", c.Type, cfi.ErrInvalidType)
	case c.Rank != 2:
		return nil, xerrors.Errorf("densemat: rank %d: %w", c.Rank, cfi.ErrInvalidRank)
	case c.BaseAddr == nil:
		return nil, xerrors.Errorf("densemat: %w", cfi.ErrBaseAddrNull)
	}

	dims := c.Dims()
	rows, cols := int(dims[0].Extent), int(dims[1].Extent)
	if rows <= 0 || cols <= 0 {
		return nil, xerrors.Errorf("densemat: extents (%d, %d): %w", rows, cols, cfi.ErrInvalidExtent)
	}

	switch {
	case leading(dims[0].SM, dims[1].SM, rows) > 0:
		// column-major: the array's columns are the rows of a gonum Dense.
		d := dense(c.BaseAddr, cols, rows, leading(dims[0].SM, dims[1].SM, rows))
		return d.T(), nil
	case leading(dims[1].SM, dims[0].SM, cols) > 0:
		return dense(c.BaseAddr, rows, cols, leading(dims[1].SM, dims[0].SM, cols)), nil
	}
	return nil, xerrors.Errorf("densemat: strides (%d, %d) for extents (%d, %d): %w",
		dims[0].SM, dims[1].SM, rows, cols, cfi.ErrInvalidDescriptor)
}

// leading returns the leading dimension in elements when unit is the
// element size and outer strides past n elements, or 0.
func leading(unit, outer cfi.Index, n int) int {
	if unit != elemSize || outer%elemSize != 0 || int(outer) < n*elemSize {
		return 0
	}
	return int(outer) / elemSize
}

func dense(base unsafe.Pointer, rows, cols, stride int) *mat.Dense {
	var d mat.Dense
	d.SetRawMatrix(blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: stride,
		Data:   unsafe.Slice((*float64)(base), (rows-1)*stride+cols),
	})
	return &d
}

// Describe establishes out as a rank-2 real(8) descriptor of m, with
// element (i, j) of m at subscripts (i, j). gonum stores rows
// contiguously, so the first dimension is strided by the row stride.
// out must have room for two dimensions, as a cfi.Storage[[2]cfi.Dim].
func Describe(out *cfi.CDesc, m *mat.Dense) error {
	raw := m.RawMatrix()
	if raw.Rows == 0 || raw.Cols == 0 {
		return xerrors.Errorf("densemat: empty matrix: %w", cfi.ErrInvalidExtent)
	}
	if err := cfi.Establish(out, nil, cfi.AttributeOther, cfi.TypeDouble, elemSize, 2, nil); err != nil {
		return xerrors.Errorf("densemat: %w", err)
	}

	out.BaseAddr = unsafe.Pointer(unsafe.SliceData(raw.Data))
	dims := out.Dims()
	dims[0] = cfi.Dim{Extent: cfi.Index(raw.Rows), SM: cfi.Index(raw.Stride * elemSize)}
	dims[1] = cfi.Dim{Extent: cfi.Index(raw.Cols), SM: elemSize}
	return nil
}
