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

//go:build linux || darwin || freebsd || netbsd || openbsd

package memory_test

import (
	"testing"

	"github.com/ivan-pi/Fcpp/cdesc"
	"github.com/ivan-pi/Fcpp/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapAllocator(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewMmapAllocator())
	defer mem.AssertSize(t, 0)

	b := mem.Allocate(100)
	require.Len(t, b, 100)
	assert.Zero(t, addr(b)%64)
	for i := range b {
		b[i] = byte(i)
	}

	b = mem.Reallocate(200, b)
	require.Len(t, b, 200)
	assert.EqualValues(t, 99, b[99])
	assert.Zero(t, b[150])

	mem.Free(b)
	assert.Nil(t, mem.Allocate(0))
}

func TestMmapBackedDescriptor(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewMmapAllocator())
	defer mem.AssertSize(t, 0)

	buf := memory.MakeSlice[float64](mem, 6)
	defer memory.FreeSlice(mem, buf)

	d := cdesc.New[float64, cdesc.Rank2](&buf[0], 2, 3)
	assert.True(t, d.IsContiguous())
	assert.Equal(t, 6, d.Len())

	flat := cdesc.FromSlice(d.Flatten())
	cdesc.Fill[float64](&flat, 1.5)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 1.5, 1.5, 1.5}, buf)
}
