package math

import (
	m "math"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/types"
)

// Vector2 is a 2 component vector stored as an array, see Vector3.
type Vector2[T types.Scalar] [2]T

func NewVector2[T types.Scalar](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// NewVector2FromVector3 drops z.
func NewVector2FromVector3[T types.Scalar](v Vector3[T]) Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}

// NewVector2FromVector4 drops z and w.
func NewVector2FromVector4[T types.Scalar](v Vector4[T]) Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}

func ConvertVector2[U, T types.Scalar](v Vector2[T]) Vector2[U] {
	return Vector2[U]{U(v[0]), U(v[1])}
}

func ScaleVector2[T types.Scalar](s T, v Vector2[T]) Vector2[T] {
	return Vector2[T]{s * v[0], s * v[1]}
}

func (v Vector2[T]) X() T { return v[0] }
func (v Vector2[T]) Y() T { return v[1] }

func (v *Vector2[T]) SetX(x T) { v[0] = x }
func (v *Vector2[T]) SetY(y T) { v[1] = y }

func (v Vector2[T]) Extend(z T) Vector3[T] {
	return Vector3[T]{v[0], v[1], z}
}

func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	v.AddAssign(other)
	return v
}

func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	v.SubAssign(other)
	return v
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v[0], -v[1]}
}

func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v[0] * other[0], v[1] * other[1]}
}

func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	if !types.IsFloat[T]() {
		core.Assert(other[0] != 0 && other[1] != 0, "Vector2.Div", "integer division by zero component")
	}
	return Vector2[T]{v[0] / other[0], v[1] / other[1]}
}

func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	v.MulScalarAssign(s)
	return v
}

func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	v.DivScalarAssign(s)
	return v
}

func (v *Vector2[T]) AddAssign(other Vector2[T]) {
	v[0] += other[0]
	v[1] += other[1]
}

func (v *Vector2[T]) SubAssign(other Vector2[T]) {
	v[0] -= other[0]
	v[1] -= other[1]
}

func (v *Vector2[T]) MulScalarAssign(s T) {
	v[0] *= s
	v[1] *= s
}

func (v *Vector2[T]) DivScalarAssign(s T) {
	checkDivisor(s, "Vector2.DivScalar")
	v[0] /= s
	v[1] /= s
}

func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v[0]*other[0] + v[1]*other[1]
}

func (v Vector2[T]) Square() float64 {
	x, y := float64(v[0]), float64(v[1])
	return x*x + y*y
}

func (v Vector2[T]) Length() float64 {
	return sqrtLength(v.Square(), "Vector2.Length")
}

func (v Vector2[T]) Distance(other Vector2[T]) float64 {
	x := float64(v[0]) - float64(other[0])
	y := float64(v[1]) - float64(other[1])
	return m.Sqrt(x*x + y*y)
}

func (v Vector2[T]) Compare(other Vector2[T], tolerance float64) bool {
	for i := range v {
		if m.Abs(float64(v[i])-float64(other[i])) > tolerance {
			return false
		}
	}
	return true
}

func (v Vector2[T]) RoundInt() Vector2[int32] {
	return Vector2[int32]{roundInt(v[0]), roundInt(v[1])}
}

func (v Vector2[T]) FloorInt() Vector2[int32] {
	return Vector2[int32]{floorInt(v[0]), floorInt(v[1])}
}

func (v Vector2[T]) CeilInt() Vector2[int32] {
	return Vector2[int32]{ceilInt(v[0]), ceilInt(v[1])}
}

func (v Vector2[T]) String() string {
	return formatComponents("Vector2", v[:])
}

func (v Vector2[T]) Print() {
	debugPrint("Vector2", v[:])
}

func (v Vector2[T]) MarshalText() ([]byte, error) {
	return marshalComponents(v[:]), nil
}

func (v *Vector2[T]) UnmarshalText(text []byte) error {
	return unmarshalComponents("Vector2", text, v[:])
}

func Normalize2[T types.Float](v *Vector2[T]) {
	Normalize2To(v, 1.0)
}

func Normalize2To[T types.Float](v *Vector2[T], length float64) {
	scaleToLength(v[:], length, "Normalize2")
}

func Normalized2[T types.Float](v Vector2[T]) Vector2[T] {
	Normalize2To(&v, 1.0)
	return v
}

func Normalized2To[T types.Float](v Vector2[T], length float64) Vector2[T] {
	Normalize2To(&v, length)
	return v
}
