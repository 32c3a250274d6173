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
Package debug provides conditional runtime assertions for the descriptor
packages.

# Using Assert

Build with the assert tag to enable the checks:

	go test -tags assert ./...

When the tag is omitted, Assert compiles to nothing and Enabled is false,
so callers can also guard checks that are expensive to compute:

	if debug.Enabled {
		debug.Assert(inBounds(c, subscripts), "cfi: subscript out of bounds")
	}

Assertions cover internal invariants only. Contract violations at the
package boundary (a borrowed descriptor of the wrong shape, indexing a
non rank-1 view) always panic, whatever the build tags.
*/
package debug
