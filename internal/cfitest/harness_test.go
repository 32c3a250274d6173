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

//go:build cgo && test

package cfitest

import (
	"testing"

	"github.com/ivan-pi/Fcpp/cdesc"
	"github.com/ivan-pi/Fcpp/cfi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutMatchesC(t *testing.T) {
	off := Offsets()
	fields := cfi.Layout(1)
	require.Len(t, fields, 9)
	for i, f := range fields {
		assert.Equal(t, off[i], f.Offset, f.Name)
	}
	assert.Equal(t, off[9], cfi.SizeOf(1)-cfi.SizeOf(0))
}

func TestImplicitCast(t *testing.T) {
	b := make([]int32, 10)
	for i := range b {
		b[i] = 2
	}
	fb := cdesc.FromSlice(b)
	assert.True(t, AllTwo(fb.CDesc()))

	b[7] = 3
	assert.False(t, AllTwo(fb.CDesc()))
}

func TestAllTwoRankN(t *testing.T) {
	b := []int32{2, 2, 2, 2, 2, 2}
	cube := cdesc.New[int32, cdesc.Rank3](&b[0], 1, 2, 3)
	assert.True(t, AllTwo(cube.CDesc()))

	// elements outside a section are not visited
	b[1] = 0
	whole := cdesc.FromSlice(b)
	even := whole.Section(0, 5, 2)
	assert.True(t, AllTwo(even.CDesc()))
	assert.False(t, AllTwo(whole.CDesc()))
}

func TestForeignIota(t *testing.T) {
	v := make([]int32, 5)
	d := cdesc.FromSlice(v)
	Iota(d.CDesc(), nil)
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, v)

	start := int32(10)
	Iota(d.CDesc(), &start)
	assert.Equal(t, []int32{10, 11, 12, 13, 14}, v)
}

func TestForeignIotaStrided(t *testing.T) {
	buf := make([]int32, 10)
	start := int32(1)
	whole := cdesc.FromSlice(buf)

	even := whole.Section(0, 9, 2)
	Iota(even.CDesc(), &start)
	assert.Equal(t, []int32{1, 0, 2, 0, 3, 0, 4, 0, 5, 0}, buf)

	odd := whole.Section(9, 1, -2)
	Iota(odd.CDesc(), &start)
	assert.Equal(t, []int32{1, 5, 2, 4, 3, 3, 4, 2, 5, 1}, buf)
}

func TestSumDouble(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	m := cdesc.New[float64, cdesc.Rank2](&x[0], 3, 2)
	assert.Equal(t, 21.0, SumDouble(m.CDesc()))

	whole := cdesc.FromSlice(x)
	even := whole.Section(0, 5, 2)
	assert.Equal(t, 9.0, SumDouble(even.CDesc()))

	empty := cdesc.FromSlice(x[:0])
	assert.Equal(t, 0.0, SumDouble(empty.CDesc()))
}

func TestForeignOwnedDescriptor(t *testing.T) {
	ptr := NewCountdown(5)
	defer FreeForeign(ptr)

	p := cdesc.BorrowPtr[int32, cdesc.Rank1](ptr, cfi.AttributeOther)
	assert.Equal(t, []int32{5, 4, 3, 2, 1}, p.Data())

	cdesc.Sort[int32](p)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, p.Data())
	assert.Equal(t, 1, int(cdesc.MinElement[int32](p).Value()))
}
