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
	"unsafe"

	"github.com/ivan-pi/Fcpp/internal/debug"
)

// Iterator is a random-access position in the first dimension of a
// descriptor. Moving it steps by the memory stride of that dimension, so
// it visits every element of a strided array section exactly once.
//
// An Iterator holds the base address and a position rather than a raw
// element pointer: the address is only formed when the element is
// accessed, which keeps end and before-begin positions legal for the
// garbage collector.
type Iterator[T any] struct {
	base unsafe.Pointer
	pos  int
	sm   int
}

func (it Iterator[T]) addr() uintptr {
	return uintptr(it.base) + uintptr(it.pos*it.sm)
}

// Ptr returns the address of the current element.
func (it Iterator[T]) Ptr() *T { return (*T)(unsafe.Add(it.base, it.pos*it.sm)) }

// Value returns the current element.
func (it Iterator[T]) Value() T { return *it.Ptr() }

// Set stores v in the current element.
func (it Iterator[T]) Set(v T) { *it.Ptr() = v }

// Next returns the iterator one element forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator one element back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator n elements away.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Stride returns the distance in bytes between consecutive elements.
func (it Iterator[T]) Stride() int { return it.sm }

// Distance returns the number of steps from it to other. Both must walk
// the same dimension.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	debug.Assert(it.sm == other.sm, "cdesc: iterators over different dimensions")
	if it.sm == 0 {
		return other.pos - it.pos
	}
	diff := int(other.addr() - it.addr())
	debug.Assert(diff%it.sm == 0, "cdesc: iterator distance is not a multiple of the stride")
	return diff / it.sm
}

// Equal reports whether both iterators point at the same address.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.addr() == other.addr() }

// Less reports whether it comes before other in iteration order.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.Distance(other) > 0 }
