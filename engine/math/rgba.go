package math

import (
	"image/color"
	m "math"

	"github.com/spaghettifunk/spl/engine/types"
)

// RGBA is a colour with red, green, blue and alpha channels. It shares the
// tuple layout of the vectors but is not a geometric quantity: there is no
// cross product and no normalization.
type RGBA[T types.Scalar] [4]T

// RGBA8 stores each channel in 8 bits, 0..255.
type RGBA8 = RGBA[uint8]

// RGBAf stores each channel as a float, nominally 0..1.
type RGBAf = RGBA[float32]

func NewRGBA[T types.Scalar](r, g, b, a T) RGBA[T] {
	return RGBA[T]{r, g, b, a}
}

func (c RGBA[T]) R() T { return c[0] }
func (c RGBA[T]) G() T { return c[1] }
func (c RGBA[T]) B() T { return c[2] }
func (c RGBA[T]) A() T { return c[3] }

func (c *RGBA[T]) SetR(r T) { c[0] = r }
func (c *RGBA[T]) SetG(g T) { c[1] = g }
func (c *RGBA[T]) SetB(b T) { c[2] = b }
func (c *RGBA[T]) SetA(a T) { c[3] = a }

// Kind returns the registry kind of the colour, KindRGBA8 for 8 bit channels
// and KindRGBAf for float32 channels. Any other channel type has no storage
// kind of its own and yields KindInvalid.
func (c RGBA[T]) Kind() types.Kind {
	switch types.KindOf[T]() {
	case types.KindUint8:
		return types.KindRGBA8
	case types.KindIEEE32:
		return types.KindRGBAf
	}
	return types.KindInvalid
}

// Vector4 reinterprets the channels as a vector.
func (c RGBA[T]) Vector4() Vector4[T] {
	return Vector4[T](c)
}

func (c RGBA[T]) Add(other RGBA[T]) RGBA[T] {
	return RGBA[T](c.Vector4().Add(other.Vector4()))
}

func (c RGBA[T]) Sub(other RGBA[T]) RGBA[T] {
	return RGBA[T](c.Vector4().Sub(other.Vector4()))
}

// Mul modulates c by other channel by channel.
func (c RGBA[T]) Mul(other RGBA[T]) RGBA[T] {
	return RGBA[T](c.Vector4().Mul(other.Vector4()))
}

func (c RGBA[T]) MulScalar(s T) RGBA[T] {
	return RGBA[T](c.Vector4().MulScalar(s))
}

func (c RGBA[T]) DivScalar(s T) RGBA[T] {
	checkDivisor(s, "RGBA.DivScalar")
	return RGBA[T](c.Vector4().DivScalar(s))
}

func (c RGBA[T]) Compare(other RGBA[T], tolerance float64) bool {
	return c.Vector4().Compare(other.Vector4(), tolerance)
}

func (c RGBA[T]) String() string {
	return formatComponents("RGBA", c[:])
}

func (c RGBA[T]) Print() {
	debugPrint("RGBA", c[:])
}

func (c RGBA[T]) MarshalText() ([]byte, error) {
	return marshalComponents(c[:]), nil
}

func (c *RGBA[T]) UnmarshalText(text []byte) error {
	return unmarshalComponents("RGBA", text, c[:])
}

// RGBA8ToRGBAf maps 0..255 channels onto 0..1.
func RGBA8ToRGBAf(c RGBA8) RGBAf {
	return RGBAf{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255, float32(c[3]) / 255}
}

// RGBAfToRGBA8 clamps every channel to 0..1 before rounding it to 0..255.
// NaN channels become 0.
func RGBAfToRGBA8(c RGBAf) RGBA8 {
	var out RGBA8
	for i, ch := range c {
		if m.IsNaN(float64(ch)) {
			continue
		}
		out[i] = uint8(m.Round(float64(Clamp(ch, 0, 1)) * 255))
	}
	return out
}

// RGBA8ToColor returns c as a non alpha-premultiplied image/color value.
func RGBA8ToColor(c RGBA8) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func RGBA8FromColor(c color.Color) RGBA8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8{n.R, n.G, n.B, n.A}
}
