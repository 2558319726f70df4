// Package types holds the scalar type system shared by every tuple of the
// library and the registry of stable identifiers used to tag storage types,
// file formats, camera matrices, material channels and light kinds.
package types

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Index is the integer type used for array indices.
type Index = int32

// Enum is the integer type carrying a registry id.
type Enum = int32

// Integer is the closed set of integer component types.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Float is the set of floating point component types.
type Float interface {
	constraints.Float
}

// Scalar is the closed set of component types a vector, matrix or colour can be
// built from. The 128-bit float and the pointer kind have registry ids but no
// arithmetic representation, so they are not part of it.
type Scalar interface {
	Integer | Float
}

// IsFloat reports whether T is a floating point kind.
func IsFloat[T Scalar]() bool {
	one, two := T(1), T(2)
	return one/two != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

// KindOf returns the storage kind of T. Named types report the kind of their
// underlying type.
func KindOf[T Scalar]() Kind {
	var zero T
	size := unsafe.Sizeof(zero)

	if IsFloat[T]() {
		if size == 4 {
			return KindIEEE32
		}
		return KindIEEE64
	}

	signed := IsSigned[T]()
	switch size {
	case 1:
		if signed {
			return KindInt8
		}
		return KindUint8
	case 2:
		if signed {
			return KindInt16
		}
		return KindUint16
	case 4:
		if signed {
			return KindInt32
		}
		return KindUint32
	default:
		if signed {
			return KindInt64
		}
		return KindUint64
	}
}
