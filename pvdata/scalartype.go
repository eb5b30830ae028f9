// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pvdata implements a generic structured-data model: typed field
// descriptions (scalars, scalar arrays, structures, structure arrays and
// unions) and the value trees instantiated from them.
package pvdata

// ScalarType identifies the element type of a scalar or scalar array field.
type ScalarType int

// Scalar types, in canonical order.
const (
	Boolean ScalarType = iota
	Byte
	Short
	Int
	Long
	UByte
	UShort
	UInt
	ULong
	Float
	Double
	String
)

var scalarTypeNames = [...]string{
	Boolean: "boolean",
	Byte:    "byte",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	UByte:   "ubyte",
	UShort:  "ushort",
	UInt:    "uint",
	ULong:   "ulong",
	Float:   "float",
	Double:  "double",
	String:  "string",
}

// String returns the canonical name of the scalar type ("boolean" … "string").
func (t ScalarType) String() string {
	if t < Boolean || t > String {
		return "invalid"
	}
	return scalarTypeNames[t]
}

// ScalarTypeFromName resolves a canonical name back to its ScalarType.
func ScalarTypeFromName(name string) (ScalarType, bool) {
	for t, n := range scalarTypeNames {
		if n == name {
			return ScalarType(t), true
		}
	}
	return 0, false
}

// IsNumeric reports whether the type is a numeric type (everything except
// boolean and string).
func (t ScalarType) IsNumeric() bool {
	return t >= Byte && t <= Double
}

// zero returns the zero value of the Go representation of the scalar type.
func (t ScalarType) zero() any {
	switch t {
	case Boolean:
		return false
	case Byte:
		return int8(0)
	case Short:
		return int16(0)
	case Int:
		return int32(0)
	case Long:
		return int64(0)
	case UByte:
		return uint8(0)
	case UShort:
		return uint16(0)
	case UInt:
		return uint32(0)
	case ULong:
		return uint64(0)
	case Float:
		return float32(0)
	case Double:
		return float64(0)
	case String:
		return ""
	}
	return nil
}

// zeroSlice returns an empty slice of the Go representation of the type.
func (t ScalarType) zeroSlice() any {
	switch t {
	case Boolean:
		return []bool(nil)
	case Byte:
		return []int8(nil)
	case Short:
		return []int16(nil)
	case Int:
		return []int32(nil)
	case Long:
		return []int64(nil)
	case UByte:
		return []uint8(nil)
	case UShort:
		return []uint16(nil)
	case UInt:
		return []uint32(nil)
	case ULong:
		return []uint64(nil)
	case Float:
		return []float32(nil)
	case Double:
		return []float64(nil)
	case String:
		return []string(nil)
	}
	return nil
}

// ScalarValue constrains the Go types a scalar leaf may hold.
type ScalarValue interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}
