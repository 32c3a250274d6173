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
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// View is the read side shared by Desc and Ptr.
type View[T any] interface {
	Sequence[T]

	CDesc() *cfi.CDesc
	Rank() int
	Type() cfi.Type
	Extent(dim int) int
	Stride(dim int) int
	Len() int
	IsContiguous() bool
}

// summary holds the header fields logged with a contract violation.
type summary struct {
	ok      bool
	rank    cfi.Rank
	typ     cfi.Type
	attr    cfi.Attribute
	elemLen uintptr
}

func summarize(c *cfi.CDesc) summary {
	if c == nil {
		return summary{}
	}
	return summary{ok: true, rank: c.Rank, typ: c.Type, attr: c.Attribute, elemLen: c.ElemLen}
}

// fail reports a contract violation and panics.
func fail(s summary, format string, args ...any) {
	err := xerrors.Errorf("cdesc: "+format, args...)
	fields := []zap.Field{zap.Error(err)}
	if s.ok {
		fields = append(fields,
			zap.Int("rank", int(s.rank)),
			zap.Stringer("type", s.typ),
			zap.Stringer("attribute", s.attr),
			zap.Uintptr("elem_len", s.elemLen),
		)
	}
	Logger().Error("descriptor contract violation", fields...)
	panic(err)
}

func dim(c *cfi.CDesc, i int) cfi.Dim {
	if i < 0 || i >= int(c.Rank) {
		fail(summarize(c), "dimension %d out of range for rank %d", i, c.Rank)
	}
	return c.Dims()[i]
}

func requireRank1(c *cfi.CDesc, op string) {
	if c.Rank != 1 {
		fail(summarize(c), "%s needs a rank-1 descriptor, got rank %d", op, c.Rank)
	}
}

// at returns the address of element i of dimension 0, stepping by the
// memory stride.
func at[T any](c *cfi.CDesc, i int) *T {
	requireRank1(c, "element access")
	d := c.Dims()[0]
	if d.Extent >= 0 && uint(i) >= uint(d.Extent) {
		fail(summarize(c), "index %d out of range [0:%d]", i, d.Extent)
	}
	return (*T)(unsafe.Add(c.BaseAddr, i*int(d.SM)))
}

func flatten[T any](c *cfi.CDesc) []T {
	if c.BaseAddr == nil && c.Len() == 0 {
		return nil
	}
	if !cfi.IsContiguous(c) {
		fail(summarize(c), "flat access to a non-contiguous descriptor")
	}
	n := c.Len()
	if n < 0 {
		fail(summarize(c), "flat access to an assumed-size descriptor")
	}
	return unsafe.Slice((*T)(c.BaseAddr), n)
}

func begin[T any](c *cfi.CDesc) Iterator[T] {
	requireRank1(c, "iteration")
	return Iterator[T]{base: c.BaseAddr, sm: int(c.Dims()[0].SM)}
}

func end[T any](c *cfi.CDesc) Iterator[T] {
	it := begin[T](c)
	n := c.Dims()[0].Extent
	if n < 0 {
		fail(summarize(c), "iteration over an assumed-size descriptor")
	}
	it.pos = int(n)
	return it
}

func all[T any](c *cfi.CDesc) iter.Seq2[int, *T] {
	first, last := begin[T](c), end[T](c)
	return func(yield func(int, *T) bool) {
		it := first
		for i := range last.pos {
			if !yield(i, it.Ptr()) {
				return
			}
			it = it.Next()
		}
	}
}
