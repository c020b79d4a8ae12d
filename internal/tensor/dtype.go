// Package tensor provides dense, fixed-order numeric tensors and the elementwise
// arithmetic defined over them.
package tensor

import (
	"reflect"
	"strconv"
)

// Number is the constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Int, Uint:
		return strconv.IntSize / 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsSigned reports whether the data type can hold negative values.
func (dt DataType) IsSigned() bool {
	switch dt {
	case Int8, Int16, Int32, Int64, Int, Float32, Float64:
		return true
	default:
		return false
	}
}

// platformDependent reports whether the width of dt depends on the target.
func (dt DataType) platformDependent() bool {
	return dt == Int || dt == Uint
}

// DTypeOf returns the DataType of the element type T.
// Named types resolve to their underlying kind.
func DTypeOf[T Number]() DataType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		panic("unsupported type")
	}
}

// Promote returns the element type produced by combining a and b.
//
// Rules:
//  1. Identical types are preserved.
//  2. If either side is floating point the result is floating point:
//     float64 when either side is float64, float32 otherwise.
//  3. Integers of the same signedness widen to the larger width.
//  4. Mixed signedness picks the unsigned type when its width is at least the
//     signed width, and the signed type otherwise.
//
// Examples:
//
//	Promote(Int32, Float32)  → Float32
//	Promote(Uint8, Int16)    → Int16
//	Promote(Int32, Uint32)   → Uint32
//	Promote(Int64, Float64)  → Float64
func Promote(a, b DataType) DataType {
	if a == b {
		return a
	}

	if a.IsFloat() || b.IsFloat() {
		if a == Float64 || b == Float64 {
			return Float64
		}
		return Float32
	}

	if a.IsSigned() == b.IsSigned() {
		return wider(a, b)
	}

	signed, unsigned := a, b
	if !signed.IsSigned() {
		signed, unsigned = unsigned, signed
	}
	if unsigned.Size() >= signed.Size() {
		return unsigned
	}
	return signed
}

// wider picks the larger of two integer types of the same signedness.
// On equal widths the fixed-width type wins over int/uint.
func wider(a, b DataType) DataType {
	switch {
	case a.Size() > b.Size():
		return a
	case b.Size() > a.Size():
		return b
	case a.platformDependent():
		return b
	default:
		return a
	}
}
