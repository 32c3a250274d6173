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

/*
Package cdesc provides typed views over Fortran C descriptors.

Desc owns a descriptor whose rank is fixed at compile time and describes
memory the caller already owns: a slice, an array or a pointer and a
length. It is how Go code hands an array to a foreign procedure:

	v := []float64{3, 2, 1}
	d := cdesc.FromSlice(v)
	C.sort_values((*C.CFI_cdesc_t)(unsafe.Pointer(d.CDesc())))

Ptr borrows a descriptor that somebody else established, typically the
argument of a procedure exported to a foreign caller, after checking that
its type, rank and attribute are the expected ones:

	//export scale
	func scale(x *C.CFI_cdesc_t, f C.double) {
		p := cdesc.Borrow[float64, cdesc.Rank1](cfi.FromPtr(uintptr(unsafe.Pointer(x))), cfi.AttributeOther)
		cdesc.ForEach[float64](p, func(v *float64) { *v *= float64(f) })
	}

Both views expose an Iterator over the first dimension that advances by
the memory stride of the descriptor rather than by the element size, so
arrays that are not contiguous, such as array sections, can be sorted and
searched in place with the algorithms in this package.

A mismatch between a borrowed descriptor and the expected shape, an
index out of range, or asking for a flat slice over non-contiguous memory
are programming errors on one side of the language boundary: they panic.
Neither view ever allocates or frees the data it describes.
*/
package cdesc
