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

// #include <stdlib.h>
// #include "abi.h"
//
// static CFI_index_t fcpp_size(const CFI_cdesc_t* a) {
//   CFI_index_t n = 1;
//   for (int i = 0; i < a->rank; ++i) n *= a->dim[i].extent;
//   return n;
// }
//
// static int fcpp_next(const CFI_cdesc_t* a, CFI_index_t* sub) {
//   for (int i = 0; i < a->rank; ++i) {
//     if (++sub[i] < a->dim[i].extent) return 1;
//     sub[i] = 0;
//   }
//   return 0;
// }
//
// static char* fcpp_addr(const CFI_cdesc_t* a, const CFI_index_t* sub) {
//   char* p = (char*)a->base_addr;
//   for (int i = 0; i < a->rank; ++i) p += sub[i] * a->dim[i].sm;
//   return p;
// }
//
// // Returns 1 if all elements of b are equal to 2, or 0 otherwise.
// static int alltwo(const CFI_cdesc_t* b) {
//   CFI_index_t sub[CFI_MAX_RANK] = {0};
//   if (b->type != CFI_type_int) return 0;
//   if (fcpp_size(b) == 0) return 1;
//   do {
//     if (*(int*)fcpp_addr(b, sub) != 2) return 0;
//   } while (fcpp_next(b, sub));
//   return 1;
// }
//
// static void iota_int(CFI_cdesc_t* x, const int* lw) {
//   int v = lw ? *lw : 0;
//   char* p = (char*)x->base_addr;
//   for (CFI_index_t i = 0; i < x->dim[0].extent; ++i, p += x->dim[0].sm) *(int*)p = v++;
// }
//
// static double sum_double(const CFI_cdesc_t* x) {
//   CFI_index_t sub[CFI_MAX_RANK] = {0};
//   double s = 0;
//   if (fcpp_size(x) == 0) return 0;
//   do {
//     s += *(double*)fcpp_addr(x, sub);
//   } while (fcpp_next(x, sub));
//   return s;
// }
//
// static void cfi_offsets(size_t* out) {
//   out[0] = offsetof(CFI_cdesc_t, base_addr);
//   out[1] = offsetof(CFI_cdesc_t, elem_len);
//   out[2] = offsetof(CFI_cdesc_t, version);
//   out[3] = offsetof(CFI_cdesc_t, rank);
//   out[4] = offsetof(CFI_cdesc_t, attribute);
//   out[5] = offsetof(CFI_cdesc_t, type);
//   out[6] = offsetof(CFI_cdesc_t, dim) + offsetof(CFI_dim_t, lower_bound);
//   out[7] = offsetof(CFI_cdesc_t, dim) + offsetof(CFI_dim_t, extent);
//   out[8] = offsetof(CFI_cdesc_t, dim) + offsetof(CFI_dim_t, sm);
//   out[9] = sizeof(CFI_dim_t);
// }
//
// // A rank-1 int descriptor owned by C, holding n, n-1, ..., 1.
// static CFI_cdesc_t* new_countdown(int n) {
//   CFI_cdesc_t* a = malloc(sizeof(CFI_cdesc_t) + sizeof(CFI_dim_t));
//   int* data = malloc(sizeof(int) * (n > 0 ? n : 1));
//   for (int i = 0; i < n; ++i) data[i] = n - i;
//   a->base_addr = data;
//   a->elem_len = sizeof(int);
//   a->version = CFI_VERSION;
//   a->rank = 1;
//   a->attribute = CFI_attribute_other;
//   a->type = CFI_type_int;
//   a->dim[0].lower_bound = 0;
//   a->dim[0].extent = n;
//   a->dim[0].sm = sizeof(int);
//   return a;
// }
//
// static void free_foreign(CFI_cdesc_t* a) {
//   free(a->base_addr);
//   free(a);
// }
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/ivan-pi/Fcpp/cfi"
)

const numOffsets = 10

func cptr(c *cfi.CDesc) *C.CFI_cdesc_t { return (*C.CFI_cdesc_t)(unsafe.Pointer(c)) }

// pin keeps the data described by c in place for the duration of a
// foreign call. The descriptor itself is passed as an argument and is
// pinned by cgo.
func pin(c *cfi.CDesc) *runtime.Pinner {
	var p runtime.Pinner
	if c.BaseAddr != nil {
		p.Pin(c.BaseAddr)
	}
	return &p
}

// AllTwo reports whether every element of the int descriptor c is 2.
func AllTwo(c *cfi.CDesc) bool {
	defer pin(c).Unpin()
	return C.alltwo(cptr(c)) == 1
}

// Iota fills the rank-1 int descriptor c with start, start+1, ... . A nil
// start counts from 0.
func Iota(c *cfi.CDesc, start *int32) {
	defer pin(c).Unpin()
	if start == nil {
		C.iota_int(cptr(c), nil)
		return
	}
	v := C.int(*start)
	C.iota_int(cptr(c), &v)
}

// SumDouble sums the real(8) elements of c, of any rank.
func SumDouble(c *cfi.CDesc) float64 {
	defer pin(c).Unpin()
	return float64(C.sum_double(cptr(c)))
}

// SumDoubleOffHeap is SumDouble for data outside the Go heap, such as
// buffers from memory.MmapAllocator. Nothing is pinned.
func SumDoubleOffHeap(c *cfi.CDesc) float64 {
	return float64(C.sum_double(cptr(c)))
}

// Offsets returns the C offsets of the header members, of the members of
// dim[0], and the size of one dimension record.
func Offsets() [numOffsets]uintptr {
	var raw [numOffsets]C.size_t
	C.cfi_offsets(&raw[0])

	var out [numOffsets]uintptr
	for i, v := range raw {
		out[i] = uintptr(v)
	}
	return out
}

// NewCountdown returns the address of a rank-1 int descriptor allocated
// by C and holding n, n-1, ..., 1. It must be released with FreeForeign.
func NewCountdown(n int) uintptr {
	return uintptr(unsafe.Pointer(C.new_countdown(C.int(n))))
}

// FreeForeign releases a descriptor from NewCountdown and its data.
func FreeForeign(ptr uintptr) {
	C.free_foreign((*C.CFI_cdesc_t)(unsafe.Pointer(ptr)))
}
