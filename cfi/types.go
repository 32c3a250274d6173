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

import (
	"fmt"
	"unsafe"
)

// Type is CFI_type_t. Intrinsic type codes combine a base type in the low
// byte with the kind (the size in bytes of the type, or of each component
// for complex types) shifted left by 8, as gfortran does.
type Type int16

const typeKindShift = 8

// Base types.
const (
	BaseInteger   Type = 1
	BaseLogical   Type = 2
	BaseReal      Type = 3
	BaseComplex   Type = 4
	BaseCharacter Type = 5
	BaseStruct    Type = 6
	BaseCptr      Type = 7
	BaseCfunptr   Type = 8
)

const (
	intSize = Type(unsafe.Sizeof(int(0)))
	ptrSize = Type(unsafe.Sizeof(uintptr(0)))

	// x87 extended precision has kind 10 but is padded to 16 bytes on
	// 64-bit targets and 12 on 32-bit ones.
	extendedKind = 10
	extendedSize = 8 + uintptr(ptrSize)
)

// Type codes.
const (
	TypeInt8  = BaseInteger + 1<<typeKindShift
	TypeInt16 = BaseInteger + 2<<typeKindShift
	TypeInt32 = BaseInteger + 4<<typeKindShift
	TypeInt64 = BaseInteger + 8<<typeKindShift

	TypeSignedChar = TypeInt8
	TypeShort      = TypeInt16
	TypeInt        = TypeInt32
	TypeLong       = TypeInt64
	TypeLongLong   = TypeInt64
	TypeSize       = BaseInteger + ptrSize<<typeKindShift
	TypePtrdiff    = BaseInteger + intSize<<typeKindShift
	TypeIntptr     = BaseInteger + ptrSize<<typeKindShift

	TypeBool = BaseLogical + 1<<typeKindShift

	TypeFloat  = BaseReal + 4<<typeKindShift
	TypeDouble = BaseReal + 8<<typeKindShift

	TypeLongDouble = BaseReal + extendedKind<<typeKindShift

	TypeFloatComplex      = BaseComplex + 4<<typeKindShift
	TypeDoubleComplex     = BaseComplex + 8<<typeKindShift
	TypeLongDoubleComplex = BaseComplex + extendedKind<<typeKindShift

	TypeChar = BaseCharacter + 1<<typeKindShift

	TypeStruct  = BaseStruct
	TypeCptr    = BaseCptr + ptrSize<<typeKindShift
	TypeCfunptr = BaseCfunptr + ptrSize<<typeKindShift

	// TypeOther marks a type with no interoperable counterpart.
	TypeOther Type = -1
)

// Base returns the base type of t.
func (t Type) Base() Type {
	if t < 0 {
		return TypeOther
	}
	return t & 0xff
}

// Kind returns the kind encoded in t, or 0 if t carries none.
func (t Type) Kind() int {
	if t < 0 {
		return 0
	}
	return int(t >> typeKindShift)
}

// ElemLen returns the element size implied by t. Character, struct and
// other types have no implied size; the caller supplies it to Establish.
func (t Type) ElemLen() (uintptr, bool) {
	if !t.valid() {
		return 0, false
	}
	k := uintptr(t.Kind())
	if k == extendedKind {
		k = extendedSize
	}
	switch t.Base() {
	case BaseInteger, BaseLogical, BaseReal, BaseCptr, BaseCfunptr:
		return k, true
	case BaseComplex:
		return 2 * k, true
	default:
		return 0, false
	}
}

func (t Type) valid() bool {
	if t == TypeOther || t == TypeStruct {
		return true
	}
	k := t.Kind()
	switch t.Base() {
	case BaseInteger:
		return k == 1 || k == 2 || k == 4 || k == 8 || k == 16
	case BaseLogical:
		return k == 1 || k == 2 || k == 4 || k == 8
	case BaseReal, BaseComplex:
		return k == 2 || k == 4 || k == 8 || k == extendedKind || k == 16
	case BaseCharacter:
		return k == 1 || k == 4
	case BaseCptr, BaseCfunptr:
		return k == int(ptrSize)
	}
	return false
}

var baseNames = map[Type]string{
	BaseInteger:   "integer",
	BaseLogical:   "logical",
	BaseReal:      "real",
	BaseComplex:   "complex",
	BaseCharacter: "character",
	BaseStruct:    "struct",
	BaseCptr:      "c_ptr",
	BaseCfunptr:   "c_funptr",
}

func (t Type) String() string {
	switch {
	case t == TypeOther:
		return "other"
	case t == TypeStruct:
		return "struct"
	case !t.valid():
		return fmt.Sprintf("invalid(%d)", int16(t))
	}
	return fmt.Sprintf("%s(%d)", baseNames[t.Base()], t.Kind())
}

// TypeOf returns the type code of T. Types with no interoperable
// counterpart map to TypeOther; passing them across the boundary is a
// contract violation this package cannot detect.
func TypeOf[T any]() Type {
	switch any((*T)(nil)).(type) {
	case *int8:
		return TypeInt8
	case *int16:
		return TypeInt16
	case *int32:
		return TypeInt32
	case *int64:
		return TypeInt64
	case *int:
		return TypePtrdiff
	case *uintptr:
		return TypeSize
	case *float32:
		return TypeFloat
	case *float64:
		return TypeDouble
	case *complex64:
		return TypeFloatComplex
	case *complex128:
		return TypeDoubleComplex
	case *bool:
		return TypeBool
	case *byte:
		return TypeChar
	case *unsafe.Pointer:
		return TypeCptr
	default:
		return TypeOther
	}
}

// TypeInfo describes one interoperable Go type.
type TypeInfo struct {
	GoType  string  `json:"go_type"`
	CType   string  `json:"c_type"`
	Code    Type    `json:"code"`
	ElemLen uintptr `json:"elem_len"`
}

// Types lists the Go types TypeOf maps to an interoperable type code.
func Types() []TypeInfo {
	return []TypeInfo{
		typeInfo[int8]("int8", "int8_t"),
		typeInfo[int16]("int16", "int16_t"),
		typeInfo[int32]("int32", "int32_t"),
		typeInfo[int64]("int64", "int64_t"),
		typeInfo[int]("int", "ptrdiff_t"),
		typeInfo[uintptr]("uintptr", "size_t"),
		typeInfo[float32]("float32", "float"),
		typeInfo[float64]("float64", "double"),
		typeInfo[complex64]("complex64", "float _Complex"),
		typeInfo[complex128]("complex128", "double _Complex"),
		typeInfo[bool]("bool", "_Bool"),
		typeInfo[byte]("byte", "char"),
		typeInfo[unsafe.Pointer]("unsafe.Pointer", "void *"),
	}
}

func typeInfo[T any](goType, cType string) TypeInfo {
	var v T
	return TypeInfo{GoType: goType, CType: cType, Code: TypeOf[T](), ElemLen: unsafe.Sizeof(v)}
}
