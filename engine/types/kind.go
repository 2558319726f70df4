package types

import (
	"fmt"
	"unsafe"
)

// Kind identifies a storage type: one of the scalar kinds or one of the
// colour tuples stored as a single grid element.
type Kind int32

const (
	KindInvalid Kind = iota
	KindUint8
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
	KindUint64
	KindInt64
	KindIEEE32
	KindIEEE64
	KindIEEE128
	KindVoidP
	KindRGBA8
	KindRGBAf
	kindMax
)

var kindNames = [kindMax]string{
	"invalid",
	"uint8", "int8", "uint16", "int16", "uint32", "int32", "uint64", "int64",
	"ieee32", "ieee64", "ieee128", "voidp", "rgba8", "rgbaf",
}

var kindSizes = [kindMax]int{
	0,
	1, 1, 2, 2, 4, 4, 8, 8,
	4, 8, 16, int(unsafe.Sizeof(uintptr(0))), 4, 16,
}

func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindMax
}

func (k Kind) Partition() Partition { return PartitionType }

// ID returns the stable registry id of k.
func (k Kind) ID() int32 {
	return PartitionType.Base() + int32(k)
}

func (k Kind) String() string {
	if k < KindInvalid || k >= kindMax {
		return fmt.Sprintf("kind(%d)", int32(k))
	}
	return kindNames[k]
}

// Size returns the number of bytes a single element of kind k occupies.
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}
	return kindSizes[k]
}

func (k Kind) IsFloat() bool {
	return k == KindIEEE32 || k == KindIEEE64 || k == KindIEEE128
}

func (k Kind) IsInteger() bool {
	return k >= KindUint8 && k <= KindInt64
}

func (k Kind) IsSigned() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return k.IsFloat()
}

// KindFromID decodes a storage type id.
func KindFromID(id int32) (Kind, error) {
	n, ok := ordinal(id, PartitionType.Base(), PartitionType.Base()+int32(kindMax))
	if !ok {
		return KindInvalid, unsupported("kind", id)
	}
	return Kind(n), nil
}
