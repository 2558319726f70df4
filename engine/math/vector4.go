package math

import (
	m "math"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/types"
)

// Vector4 is a 4 component vector stored as an array, see Vector3. It is also
// the column type of Matrix4.
type Vector4[T types.Scalar] [4]T

func NewVector4[T types.Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// NewVector4FromVector3 copies x, y and z and sets w to zero.
func NewVector4FromVector3[T types.Scalar](v Vector3[T]) Vector4[T] {
	return Vector4[T]{v[0], v[1], v[2], 0}
}

// NewVector4FromVector2 copies x and y and sets z and w to zero.
func NewVector4FromVector2[T types.Scalar](v Vector2[T]) Vector4[T] {
	return Vector4[T]{v[0], v[1], 0, 0}
}

func ConvertVector4[U, T types.Scalar](v Vector4[T]) Vector4[U] {
	return Vector4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}

func ScaleVector4[T types.Scalar](s T, v Vector4[T]) Vector4[T] {
	return Vector4[T]{s * v[0], s * v[1], s * v[2], s * v[3]}
}

func (v Vector4[T]) X() T { return v[0] }
func (v Vector4[T]) Y() T { return v[1] }
func (v Vector4[T]) Z() T { return v[2] }
func (v Vector4[T]) W() T { return v[3] }

func (v *Vector4[T]) SetX(x T) { v[0] = x }
func (v *Vector4[T]) SetY(y T) { v[1] = y }
func (v *Vector4[T]) SetZ(z T) { v[2] = z }
func (v *Vector4[T]) SetW(w T) { v[3] = w }

func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	v.AddAssign(other)
	return v
}

func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	v.SubAssign(other)
	return v
}

func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	if !types.IsFloat[T]() {
		core.Assert(other[0] != 0 && other[1] != 0 && other[2] != 0 && other[3] != 0, "Vector4.Div", "integer division by zero component")
	}
	return Vector4[T]{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

func (v Vector4[T]) MulScalar(s T) Vector4[T] {
	v.MulScalarAssign(s)
	return v
}

func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	v.DivScalarAssign(s)
	return v
}

func (v *Vector4[T]) AddAssign(other Vector4[T]) {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
	v[3] += other[3]
}

func (v *Vector4[T]) SubAssign(other Vector4[T]) {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
	v[3] -= other[3]
}

func (v *Vector4[T]) MulScalarAssign(s T) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	v[3] *= s
}

func (v *Vector4[T]) DivScalarAssign(s T) {
	checkDivisor(s, "Vector4.DivScalar")
	v[0] /= s
	v[1] /= s
	v[2] /= s
	v[3] /= s
}

func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

func (v Vector4[T]) Square() float64 {
	x, y, z, w := float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])
	return x*x + y*y + z*z + w*w
}

func (v Vector4[T]) Length() float64 {
	return sqrtLength(v.Square(), "Vector4.Length")
}

func (v Vector4[T]) Distance(other Vector4[T]) float64 {
	var sum float64
	for i := range v {
		d := float64(v[i]) - float64(other[i])
		sum += d * d
	}
	return m.Sqrt(sum)
}

func (v Vector4[T]) Compare(other Vector4[T], tolerance float64) bool {
	for i := range v {
		if m.Abs(float64(v[i])-float64(other[i])) > tolerance {
			return false
		}
	}
	return true
}

func (v Vector4[T]) RoundInt() Vector4[int32] {
	return Vector4[int32]{roundInt(v[0]), roundInt(v[1]), roundInt(v[2]), roundInt(v[3])}
}

func (v Vector4[T]) FloorInt() Vector4[int32] {
	return Vector4[int32]{floorInt(v[0]), floorInt(v[1]), floorInt(v[2]), floorInt(v[3])}
}

func (v Vector4[T]) CeilInt() Vector4[int32] {
	return Vector4[int32]{ceilInt(v[0]), ceilInt(v[1]), ceilInt(v[2]), ceilInt(v[3])}
}

func (v Vector4[T]) String() string {
	return formatComponents("Vector4", v[:])
}

func (v Vector4[T]) Print() {
	debugPrint("Vector4", v[:])
}

func (v Vector4[T]) MarshalText() ([]byte, error) {
	return marshalComponents(v[:]), nil
}

func (v *Vector4[T]) UnmarshalText(text []byte) error {
	return unmarshalComponents("Vector4", text, v[:])
}

func Normalize4[T types.Float](v *Vector4[T]) {
	Normalize4To(v, 1.0)
}

func Normalize4To[T types.Float](v *Vector4[T], length float64) {
	scaleToLength(v[:], length, "Normalize4")
}

func Normalized4[T types.Float](v Vector4[T]) Vector4[T] {
	Normalize4To(&v, 1.0)
	return v
}

func Normalized4To[T types.Float](v Vector4[T], length float64) Vector4[T] {
	Normalize4To(&v, length)
	return v
}
