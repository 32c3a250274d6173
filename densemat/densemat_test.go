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

package densemat_test

import (
	"testing"
	"unsafe"

	"github.com/ivan-pi/Fcpp/cdesc"
	"github.com/ivan-pi/Fcpp/cfi"
	"github.com/ivan-pi/Fcpp/densemat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromCDescColumnMajor(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6}
	d := cdesc.New[float64, cdesc.Rank2](&buf[0], 3, 2)

	m, err := densemat.FromCDesc(d.CDesc())
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.True(t, mat.Equal(mat.NewDense(3, 2, []float64{1, 4, 2, 5, 3, 6}), m))

	buf[4] = 50
	assert.Equal(t, 50.0, m.At(1, 1))
}

func TestFromCDescPaddedSection(t *testing.T) {
	buf := make([]float64, 8)
	for i := range buf {
		buf[i] = float64(i)
	}
	src := cdesc.New[float64, cdesc.Rank2](&buf[0], 4, 2)

	var sec cfi.Storage[cdesc.Rank2]
	require.NoError(t, cfi.Establish(sec.Get(), nil, cfi.AttributeOther, cfi.TypeDouble, 8, 2, nil))
	require.NoError(t, cfi.Section(sec.Get(), src.CDesc(), []cfi.Index{1, 0}, []cfi.Index{3, 1}, nil))
	assert.False(t, cfi.IsContiguous(sec.Get()))

	m, err := densemat.FromCDesc(sec.Get())
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(3, 2, []float64{1, 5, 2, 6, 3, 7}), m))
}

func TestDescribeRoundTrip(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	var s cfi.Storage[cdesc.Rank2]
	require.NoError(t, densemat.Describe(s.Get(), m))

	c := s.Get()
	assert.Equal(t, cfi.TypeDouble, c.Type)
	assert.Equal(t, []cfi.Dim{{Extent: 2, SM: 24}, {Extent: 3, SM: 8}}, c.Dims())
	assert.False(t, cfi.IsContiguous(c))
	assert.Equal(t, 6.0, *(*float64)(cfi.Address(c, []cfi.Index{1, 2})))

	back, err := densemat.FromCDesc(c)
	require.NoError(t, err)
	assert.Same(t, &m.RawMatrix().Data[0], &back.(*mat.Dense).RawMatrix().Data[0])
	assert.True(t, mat.Equal(m, back))

	assert.ErrorIs(t, densemat.Describe(s.Get(), &mat.Dense{}), cfi.ErrInvalidExtent)
}

func TestProductOfDescriptors(t *testing.T) {
	a := []float64{1, 3, 2, 4} // [[1 2] [3 4]] column-major
	b := []float64{5, 7, 6, 8} // [[5 6] [7 8]]

	da := cdesc.New[float64, cdesc.Rank2](&a[0], 2, 2)
	db := cdesc.New[float64, cdesc.Rank2](&b[0], 2, 2)

	ma, err := densemat.FromCDesc(da.CDesc())
	require.NoError(t, err)
	mb, err := densemat.FromCDesc(db.CDesc())
	require.NoError(t, err)

	var out mat.Dense
	out.Mul(ma, mb)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{19, 22, 43, 50}), &out))
}

func TestFromCDescErrors(t *testing.T) {
	f32 := make([]float32, 4)
	f64 := make([]float64, 8)

	whole := cdesc.FromSlice(f64)
	strided := whole.Section(0, 7, 2)
	single := cdesc.New[float32, cdesc.Rank2](&f32[0], 2, 2)
	var twoD cfi.Storage[cdesc.Rank2]
	require.NoError(t, cfi.Establish(twoD.Get(), unsafe.Pointer(&f64[0]), cfi.AttributeOther, cfi.TypeDouble, 8, 2, []cfi.Index{2, 2}))
	twoD.Get().Dims()[0].SM = 16

	var unset cfi.Storage[cdesc.Rank2]
	require.NoError(t, cfi.Establish(unset.Get(), nil, cfi.AttributeOther, cfi.TypeDouble, 8, 2, nil))

	var empty cfi.Storage[cdesc.Rank2]
	require.NoError(t, cfi.Establish(empty.Get(), unsafe.Pointer(&f64[0]), cfi.AttributeOther, cfi.TypeDouble, 8, 2, []cfi.Index{0, 3}))

	for _, tc := range []struct {
		name string
		c    *cfi.CDesc
		want cfi.Status
	}{
		{"nil", nil, cfi.ErrInvalidDescriptor},
		{"float32", single.CDesc(), cfi.ErrInvalidType},
		{"rank1", strided.CDesc(), cfi.ErrInvalidRank},
		{"no unit stride", twoD.Get(), cfi.ErrInvalidDescriptor},
		{"unassociated", unset.Get(), cfi.ErrBaseAddrNull},
		{"empty", empty.Get(), cfi.ErrInvalidExtent},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := densemat.FromCDesc(tc.c)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
