package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius float32

type pixel uint8

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUint8, KindOf[uint8]())
	assert.Equal(t, KindInt8, KindOf[int8]())
	assert.Equal(t, KindUint16, KindOf[uint16]())
	assert.Equal(t, KindInt16, KindOf[int16]())
	assert.Equal(t, KindUint32, KindOf[uint32]())
	assert.Equal(t, KindInt32, KindOf[int32]())
	assert.Equal(t, KindUint64, KindOf[uint64]())
	assert.Equal(t, KindInt64, KindOf[int64]())
	assert.Equal(t, KindIEEE32, KindOf[float32]())
	assert.Equal(t, KindIEEE64, KindOf[float64]())

	t.Run("named types use their representation", func(t *testing.T) {
		assert.Equal(t, KindIEEE32, KindOf[celsius]())
		assert.Equal(t, KindUint8, KindOf[pixel]())
	})
}

func TestScalarClass(t *testing.T) {
	assert.True(t, IsFloat[float32]())
	assert.True(t, IsFloat[float64]())
	assert.False(t, IsFloat[int64]())
	assert.False(t, IsFloat[uint8]())

	assert.True(t, IsSigned[int8]())
	assert.True(t, IsSigned[float64]())
	assert.False(t, IsSigned[uint32]())
	assert.False(t, IsSigned[uint64]())
}

func TestKindProperties(t *testing.T) {
	for k := KindUint8; k < kindMax; k++ {
		assert.True(t, k.Valid())
		assert.Positive(t, k.Size(), k.String())
	}
	assert.Equal(t, 16, KindIEEE128.Size())
	assert.Equal(t, 4, KindRGBA8.Size())
	assert.Equal(t, 16, KindRGBAf.Size())
	assert.Equal(t, 0, KindInvalid.Size())

	assert.True(t, KindIEEE128.IsFloat())
	assert.False(t, KindIEEE128.IsInteger())
	assert.True(t, KindInt32.IsSigned())
	assert.False(t, KindUint32.IsSigned())
	assert.False(t, KindRGBA8.IsInteger())
	assert.False(t, KindVoidP.IsFloat())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
