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
Package memory provides allocators for the buffers that descriptors
describe.

Descriptors never own their data: whoever allocates a buffer frees it.
GoAllocator hands out 64-byte aligned buffers from the Go heap; a
descriptor over them may only be passed to C while the buffer is pinned.
MmapAllocator maps anonymous memory outside the Go heap, which foreign
code may retain freely until the buffer is freed. CheckedAllocator wraps
either one and reports leaks in tests.
*/
package memory
