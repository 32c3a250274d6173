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
	"strconv"
	"unsafe"
)

// Field describes the placement of one member of the descriptor.
type Field struct {
	Name   string  `json:"name"`
	CType  string  `json:"c_type"`
	Offset uintptr `json:"offset"`
	Size   uintptr `json:"size"`
}

// Layout returns the members of a descriptor of the given rank in memory
// order, dimension records included.
func Layout(rank int) []Field {
	var (
		c CDesc
		d Dim
	)
	out := []Field{
		{"base_addr", "void *", unsafe.Offsetof(c.BaseAddr), unsafe.Sizeof(c.BaseAddr)},
		{"elem_len", "size_t", unsafe.Offsetof(c.ElemLen), unsafe.Sizeof(c.ElemLen)},
		{"version", "int", unsafe.Offsetof(c.Version), unsafe.Sizeof(c.Version)},
		{"rank", "CFI_rank_t", unsafe.Offsetof(c.Rank), unsafe.Sizeof(c.Rank)},
		{"attribute", "CFI_attribute_t", unsafe.Offsetof(c.Attribute), unsafe.Sizeof(c.Attribute)},
		{"type", "CFI_type_t", unsafe.Offsetof(c.Type), unsafe.Sizeof(c.Type)},
	}
	for i := 0; i < rank; i++ {
		base := headerSize + uintptr(i)*dimSize
		out = append(out,
			Field{dimName(i, "lower_bound"), "CFI_index_t", base + unsafe.Offsetof(d.LowerBound), unsafe.Sizeof(d.LowerBound)},
			Field{dimName(i, "extent"), "CFI_index_t", base + unsafe.Offsetof(d.Extent), unsafe.Sizeof(d.Extent)},
			Field{dimName(i, "sm"), "CFI_index_t", base + unsafe.Offsetof(d.SM), unsafe.Sizeof(d.SM)},
		)
	}
	return out
}

func dimName(i int, member string) string {
	return "dim[" + strconv.Itoa(i) + "]." + member
}
