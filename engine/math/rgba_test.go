package math

import (
	"image/color"
	m "math"
	"testing"

	"github.com/spaghettifunk/spl/engine/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBAKind(t *testing.T) {
	assert.Equal(t, types.KindRGBA8, RGBA8{}.Kind())
	assert.Equal(t, types.KindRGBAf, RGBAf{}.Kind())
	assert.Equal(t, types.KindInvalid, RGBA[float64]{}.Kind())
	assert.Equal(t, types.KindInvalid, RGBA[int8]{}.Kind())
	assert.Equal(t, 4, RGBA8{}.Kind().Size())
	assert.Equal(t, 16, RGBAf{}.Kind().Size())
}

func TestRGBAChannels(t *testing.T) {
	c := NewRGBA[uint8](10, 20, 30, 255)
	assert.Equal(t, uint8(10), c.R())
	assert.Equal(t, uint8(20), c.G())
	assert.Equal(t, uint8(30), c.B())
	assert.Equal(t, uint8(255), c.A())
	c.SetR(1)
	c.SetG(2)
	c.SetB(3)
	c.SetA(4)
	assert.Equal(t, RGBA8{1, 2, 3, 4}, c)
	assert.Equal(t, Vector4[uint8]{1, 2, 3, 4}, c.Vector4())

	assert.Equal(t, RGBA8{2, 4, 6, 8}, c.Add(c))
	assert.Equal(t, RGBA8{}, c.Sub(c))
	assert.Equal(t, RGBA8{2, 4, 6, 8}, c.MulScalar(2))
	assert.Equal(t, RGBA8{1, 4, 9, 16}, c.Mul(c))
	assert.Equal(t, RGBA8{0, 1, 1, 2}, c.DivScalar(2))
	assert.Panics(t, func() { c.DivScalar(0) })

	f := RGBAf{1, 0.5, 0.25, 1}
	assert.Equal(t, RGBAf{0.5, 0.25, 0.125, 0.5}, f.DivScalar(2))
	assert.Equal(t, RGBAf{0.5, 0.25, 0.0625, 1}, f.Mul(RGBAf{0.5, 0.5, 0.25, 1}))
	assert.True(t, f.Compare(RGBAf{1, 0.5, 0.25, 0.9999999}, 1e-6))
}

func TestRGBAConversion(t *testing.T) {
	assert.Equal(t, RGBAf{0, 1, 0, 1}, RGBA8ToRGBAf(RGBA8{0, 255, 0, 255}))
	assert.Equal(t, RGBA8{0, 255, 128, 255}, RGBAfToRGBA8(RGBAf{-1, 2, 0.5, 1}))
	assert.Equal(t, RGBA8{0, 0, 0, 255}, RGBAfToRGBA8(RGBAf{float32(m.NaN()), 0, 0, 1}))

	for i := 0; i < 256; i++ {
		c := RGBA8{uint8(i), uint8(255 - i), uint8(i / 2), 255}
		assert.Equal(t, c, RGBAfToRGBA8(RGBA8ToRGBAf(c)))
	}

	nrgba := RGBA8ToColor(RGBA8{255, 128, 0, 64})
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 64}, nrgba)
	assert.Equal(t, RGBA8{255, 128, 0, 64}, RGBA8FromColor(nrgba))
	assert.Equal(t, RGBA8{0, 0, 0, 0}, RGBA8FromColor(color.Transparent))
	assert.Equal(t, RGBA8{255, 255, 255, 255}, RGBA8FromColor(color.White))
}

func TestRGBAText(t *testing.T) {
	c := RGBAf{1, 0.5, 0, 1}
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1 0.5 0 1", string(text))
	assert.Equal(t, "RGBA(1, 0.5, 0, 1)", c.String())

	var back RGBAf
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, c, back)
	assert.Error(t, back.UnmarshalText([]byte("1 0.5 0")))

	var c8 RGBA8
	assert.Error(t, c8.UnmarshalText([]byte("1 2 3 300")))
	assert.NotPanics(t, func() { c.Print() })
}

func TestClamp(t *testing.T) {
	assert.Equal(t, int32(0), Clamp[int32](-3, 0, 10))
	assert.Equal(t, int32(10), Clamp[int32](12, 0, 10))
	assert.Equal(t, float32(0.5), Clamp[float32](0.5, 0, 1))
	assert.Equal(t, uint8(7), Clamp[uint8](7, 1, 9))
}
