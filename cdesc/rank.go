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

import "github.com/ivan-pi/Fcpp/cfi"

// Ranks select the compile-time rank of a view, and for Desc the exact
// size of its descriptor storage.
type (
	Rank0  = [0]cfi.Dim
	Rank1  = [1]cfi.Dim
	Rank2  = [2]cfi.Dim
	Rank3  = [3]cfi.Dim
	Rank4  = [4]cfi.Dim
	Rank5  = [5]cfi.Dim
	Rank6  = [6]cfi.Dim
	Rank7  = [7]cfi.Dim
	Rank8  = [8]cfi.Dim
	Rank9  = [9]cfi.Dim
	Rank10 = [10]cfi.Dim
	Rank11 = [11]cfi.Dim
	Rank12 = [12]cfi.Dim
	Rank13 = [13]cfi.Dim
	Rank14 = [14]cfi.Dim
	Rank15 = [15]cfi.Dim
)

func rankOf[D cfi.Dims]() int {
	var d D
	return len(d)
}
