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
Package cfi describes the C descriptor of the Fortran 2018 interoperability
standard (ISO_Fortran_binding.h) in Go.

The layout of CDesc and Dim is bit-exact with the descriptor used by
gfortran, so a *CDesc can be handed to, or received from, a foreign
procedure declared with an assumed-shape or assumed-rank dummy argument.
The functions in this package follow the semantics of their C counterparts:

	CFI_establish     Establish
	CFI_is_contiguous IsContiguous
	CFI_section       Section
	CFI_address       Address
	CFI_setpointer    SetPointer

CFI_allocate and CFI_deallocate are deliberately absent: this package never
owns the memory a descriptor points to.

A descriptor of rank r occupies SizeOf(r) bytes: the CDesc header followed
by r Dim records. Storage[D] provides exactly that much space for a rank
known at compile time.
*/
package cfi
