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

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// CheckedAllocator records every live allocation of the wrapped
// allocator, together with the caller that made it.
type CheckedAllocator struct {
	mem Allocator
	sz  atomic.Int64

	mu     sync.Mutex
	allocs map[uintptr]allocSite
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem, allocs: make(map[uintptr]allocSite)}
}

// CurrentAlloc is the number of bytes allocated and not yet freed.
func (a *CheckedAllocator) CurrentAlloc() int { return int(a.sz.Load()) }

// Live is the number of outstanding buffers.
func (a *CheckedAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.allocs)
}

func (a *CheckedAllocator) Allocate(size int) []byte {
	a.sz.Add(int64(size))
	out := a.mem.Allocate(size)
	if size == 0 {
		return out
	}
	a.track(addressOf(out), size, allocFrames)
	return out
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	a.sz.Add(int64(size - len(b)))
	if len(b) > 0 {
		a.untrack(addressOf(b))
	}
	out := a.mem.Reallocate(size, b)
	if size > 0 {
		a.track(addressOf(out), size, reallocFrames)
	}
	return out
}

func (a *CheckedAllocator) Free(b []byte) {
	a.sz.Add(-int64(len(b)))
	if len(b) > 0 {
		a.untrack(addressOf(b))
	}
	a.mem.Free(b)
}

func (a *CheckedAllocator) track(addr uintptr, size, skip int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return
	}
	a.mu.Lock()
	a.allocs[addr] = allocSite{pc: pc, line: line, sz: size}
	a.mu.Unlock()
}

func (a *CheckedAllocator) untrack(addr uintptr) {
	a.mu.Lock()
	delete(a.allocs, addr)
	a.mu.Unlock()
}

// Allocations normally come through MakeSlice, so the recorded caller
// skips one extra frame by default.
const (
	defAllocFrames   = 3
	defReallocFrames = 2
)

// FCPP_CHECKED_ALLOC_FRAMES and FCPP_CHECKED_REALLOC_FRAMES override how
// many frames are skipped when recording the allocating caller.
var allocFrames, reallocFrames = defAllocFrames, defReallocFrames

func init() {
	if val, ok := os.LookupEnv("FCPP_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}
	if val, ok := os.LookupEnv("FCPP_CHECKED_REALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			reallocFrames = f
		}
	}
}

type allocSite struct {
	pc   uintptr
	line int
	sz   int
}

type TestingT interface {
	Errorf(format string, args ...any)
	Helper()
}

// AssertSize reports every outstanding buffer as a leak when the
// allocator does not hold exactly sz bytes.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()
	got := a.CurrentAlloc()
	if got == sz {
		return
	}

	a.mu.Lock()
	for _, site := range a.allocs {
		name := "unknown"
		if f := runtime.FuncForPC(site.pc); f != nil {
			name = f.Name()
		}
		t.Errorf("LEAK of %d bytes FROM %s line %d", site.sz, name, site.line)
	}
	a.mu.Unlock()
	t.Errorf("invalid memory size exp=%d, got=%d", sz, got)
}

var _ Allocator = (*CheckedAllocator)(nil)
