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

package memory

import "unsafe"

// Element is the set of pointer-free element types that may live in an
// allocator's buffers.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~bool
}

// MakeSlice allocates n zeroed elements of T from mem.
func MakeSlice[T Element](mem Allocator, n int) []T {
	if n < 0 {
		panic("memory: negative slice length")
	}
	var zero T
	b := mem.Allocate(n * int(unsafe.Sizeof(zero)))
	if len(b) == 0 {
		return []T{}
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// FreeSlice returns a slice obtained from MakeSlice to mem. The slice
// must not have been resliced from the front.
func FreeSlice[T Element](mem Allocator, s []T) {
	if cap(s) == 0 {
		return
	}
	var zero T
	n := cap(s) * int(unsafe.Sizeof(zero))
	mem.Free(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), n))
}
