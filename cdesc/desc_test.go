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

package cdesc_test

import (
	"testing"
	"unsafe"

	"github.com/ivan-pi/Fcpp/cdesc"
	"github.com/ivan-pi/Fcpp/cfi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPointer(t *testing.T) {
	a := make([]float32, 3)
	fa := cdesc.FromPointer(&a[0], 3)

	assert.Equal(t, 1, fa.Rank())
	assert.Equal(t, 3, fa.Extent(0))
	assert.Equal(t, int(unsafe.Sizeof(float32(0))), fa.ElemLen())
	assert.Equal(t, unsafe.Pointer(&a[0]), fa.CDesc().BaseAddr)
	assert.Equal(t, cfi.TypeFloat, fa.Type())
	assert.Equal(t, cfi.Version, fa.Version())
	assert.Equal(t, cfi.AttributeOther, fa.Attribute())
	assert.True(t, fa.IsContiguous())
}

func TestFromBuffers(t *testing.T) {
	var arr [7]float32
	vec := make([]float32, 5)
	parent := make([]float64, 10)
	bounded := parent[2:8]
	dv, da := cdesc.FromSlice(vec), cdesc.FromSlice(arr[:])

	for _, tc := range []struct {
		name    string
		desc    cdesc.View[float32]
		base    unsafe.Pointer
		n       int
		elemLen uintptr
	}{
		{"slice", &dv, unsafe.Pointer(&vec[0]), 5, 4},
		{"array", &da, unsafe.Pointer(&arr), 7, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, 1, tc.desc.Rank())
			assert.Equal(t, tc.n, tc.desc.Extent(0))
			assert.EqualValues(t, tc.elemLen, tc.desc.CDesc().ElemLen)
			assert.Equal(t, tc.base, tc.desc.CDesc().BaseAddr)
			assert.True(t, tc.desc.IsContiguous())
		})
	}

	fb := cdesc.FromSlice(bounded)
	assert.Equal(t, 6, fb.Extent(0))
	assert.Equal(t, 8, fb.ElemLen())
	assert.Equal(t, unsafe.Pointer(&parent[2]), fb.Base())
	assert.True(t, fb.IsContiguous())
}

func TestEmptySlice(t *testing.T) {
	fe := cdesc.FromSlice[int32](nil)
	assert.Equal(t, 0, fe.Len())
	assert.Nil(t, fe.Slice())
	assert.True(t, fe.Begin().Equal(fe.End()))
	assert.Equal(t, fe.End(), cdesc.MinElement[int32](&fe))
}

func TestSliceRoundTrip(t *testing.T) {
	b := make([]int32, 10)
	fb := cdesc.FromSlice(b)

	sb := fb.Slice()
	assert.Equal(t, fb.Extent(0), len(sb))
	assert.Equal(t, fb.CDesc().BaseAddr, unsafe.Pointer(unsafe.SliceData(sb)))
	assert.Equal(t, len(b), len(sb))
	assert.Same(t, &b[0], &sb[0])
}

func TestSubscript(t *testing.T) {
	a := [7]int32{0, 1, 2, 3, 4, 5, 6}
	fa := cdesc.FromSlice(a[:])
	p := cdesc.Borrow[int32, cdesc.Rank1](fa.CDesc(), cfi.AttributeOther)

	for i := 0; i < p.Extent(0); i++ {
		assert.EqualValues(t, i, p.Get(i))
		*p.At(i) += 1
	}
	for i, v := range a {
		assert.EqualValues(t, i+1, v)
	}

	fa.Set(3, 42)
	assert.EqualValues(t, 42, a[3])
	assert.EqualValues(t, 42, fa.Get(3))

	assert.Panics(t, func() { fa.At(7) })
	assert.Panics(t, func() { fa.At(-1) })
}

func TestRangeOverAll(t *testing.T) {
	a := [7]int32{0, 1, 2, 3, 4, 5, 6}
	fa := cdesc.FromSlice(a[:])

	n := 0
	for i, item := range fa.All() {
		assert.EqualValues(t, i, *item)
		*item++
		assert.EqualValues(t, *item, a[i])
		n++
	}
	assert.Equal(t, 7, n)

	for i := range fa.All() {
		if i == 2 {
			break
		}
	}
}

func TestRankN(t *testing.T) {
	buf := make([]float64, 12)
	d := cdesc.New[float64, cdesc.Rank2](&buf[0], 3, 4)

	assert.Equal(t, 2, d.Rank())
	assert.Equal(t, 3, d.Extent(0))
	assert.Equal(t, 4, d.Extent(1))
	assert.Equal(t, 8, d.Stride(0))
	assert.Equal(t, 24, d.Stride(1))
	assert.Equal(t, 0, d.LowerBound(1))
	assert.Equal(t, 12, d.Len())
	assert.True(t, d.IsContiguous())

	flat := d.Flatten()
	require.Len(t, flat, 12)
	assert.Same(t, &buf[0], &flat[0])

	assert.Panics(t, func() { d.At(0) })
	assert.Panics(t, func() { d.Slice() })
	assert.Panics(t, func() { d.Begin() })
	assert.Panics(t, func() { d.Extent(2) })
	assert.Panics(t, func() { d.Extent(-1) })

	assert.Equal(t, cfi.SizeOf(2), unsafe.Sizeof(d))
}

func TestNewPanics(t *testing.T) {
	buf := make([]float64, 12)
	assert.Panics(t, func() { cdesc.New[float64, cdesc.Rank2](&buf[0], 12) })
	assert.Panics(t, func() { cdesc.New[float64, cdesc.Rank1](&buf[0], -1) })
	assert.NotPanics(t, func() { cdesc.New[float64, cdesc.Rank0](&buf[0]) })
}

func TestNewPointer(t *testing.T) {
	buf := make([]int16, 4)
	d := cdesc.NewPointer[int16, cdesc.Rank1](&buf[0], 4)
	assert.Equal(t, cfi.AttributePointer, d.Attribute())
	assert.Equal(t, cfi.TypeInt16, d.Type())

	p := cdesc.Borrow[int16, cdesc.Rank1](d.CDesc(), cfi.AttributePointer)
	assert.Equal(t, 4, p.Len())
	assert.Panics(t, func() { cdesc.Borrow[int16, cdesc.Rank1](d.CDesc(), cfi.AttributeOther) })
}

type pair struct{ a, b int32 }

func TestNonInteroperableType(t *testing.T) {
	buf := make([]pair, 3)
	d := cdesc.FromSlice(buf)
	assert.Equal(t, cfi.TypeOther, d.Type())
	assert.Equal(t, 8, d.ElemLen())

	d.Set(1, pair{1, 2})
	assert.Equal(t, pair{1, 2}, buf[1])
}

func TestDescCopy(t *testing.T) {
	buf := []int32{1, 2, 3, 4}
	d := cdesc.FromSlice(buf)
	c := d
	assert.NotSame(t, d.CDesc(), c.CDesc())
	assert.Equal(t, d.CDesc().Dims(), c.CDesc().Dims())

	c.Set(0, 10)
	assert.EqualValues(t, 10, d.Get(0))

	sec := d.Section(1, 3, 2)
	assert.Equal(t, 2, sec.Len())
	assert.Equal(t, 4, d.Len())
}

func TestOwningViewStaysOnStack(t *testing.T) {
	v := make([]float64, 8)
	m := make([]float64, 6)
	var n int

	allocs := testing.AllocsPerRun(100, func() {
		d := cdesc.FromSlice(v)
		md := cdesc.New[float64, cdesc.Rank2](&m[0], 3, 2)
		p := cdesc.Borrow[float64, cdesc.Rank1](d.CDesc(), cfi.AttributeOther)
		sec := d.Section(0, 7, 2)
		n = d.Len() + md.Len() + p.Len() + sec.Extent(0)
	})
	assert.Zero(t, allocs)
	assert.Equal(t, 8+6+8+4, n)
}
