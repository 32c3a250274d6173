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

package cfi

import "strconv"

// Status is an error code returned by the functions of this package. The
// values are those of the CFI_* error macros; Code converts back to the
// integer a foreign caller expects.
type Status int

const (
	Success Status = iota
	ErrFailure
	ErrBaseAddrNull
	ErrBaseAddrNotNull
	ErrInvalidElemLen
	ErrInvalidRank
	ErrInvalidType
	ErrInvalidAttribute
	ErrInvalidExtent
	ErrInvalidDescriptor
	ErrMemAllocation
	ErrOutOfBounds
)

var statusText = [...]string{
	Success:              "success",
	ErrFailure:           "failure",
	ErrBaseAddrNull:      "base address is null",
	ErrBaseAddrNotNull:   "base address is not null",
	ErrInvalidElemLen:    "invalid element length",
	ErrInvalidRank:       "invalid rank",
	ErrInvalidType:       "invalid type",
	ErrInvalidAttribute:  "invalid attribute",
	ErrInvalidExtent:     "invalid extent",
	ErrInvalidDescriptor: "invalid descriptor",
	ErrMemAllocation:     "memory allocation failed",
	ErrOutOfBounds:       "subscript out of bounds",
}

func (s Status) Error() string {
	if s >= 0 && int(s) < len(statusText) {
		return "cfi: " + statusText[s]
	}
	return "cfi: unknown status " + strconv.Itoa(int(s))
}

// Code returns the integer value of s.
func (s Status) Code() int { return int(s) }

// StatusFromCode converts a status returned by foreign code to an error,
// nil for success.
func StatusFromCode(code int) error {
	if code == int(Success) {
		return nil
	}
	return Status(code)
}
