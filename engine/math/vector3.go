package math

import (
	m "math"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/types"
)

// Vector3 is a 3 component vector. The array is the only storage: v[0], v[1]
// and v[2] are the same slots X, Y and Z read and write, and indexing outside
// 0..2 panics.
type Vector3[T types.Scalar] [3]T

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVector3[T types.Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

/**
 * @brief Returns a new vector containing the x, y and z components of the
 * supplied 4-component vector, essentially dropping the w component.
 */
func NewVector3FromVector4[T types.Scalar](v Vector4[T]) Vector3[T] {
	return Vector3[T]{v[0], v[1], v[2]}
}

/**
 * @brief Returns a new vector with the x and y components of the supplied
 * 2-component vector and z set to zero.
 */
func NewVector3FromVector2[T types.Scalar](v Vector2[T]) Vector3[T] {
	return Vector3[T]{v[0], v[1], 0}
}

// ConvertVector3 converts every component of v to U with Go's conversion rules:
// floats are truncated toward zero when U is an integer kind.
func ConvertVector3[U, T types.Scalar](v Vector3[T]) Vector3[U] {
	return Vector3[U]{U(v[0]), U(v[1]), U(v[2])}
}

// ScaleVector3 returns s*v.
func ScaleVector3[T types.Scalar](s T, v Vector3[T]) Vector3[T] {
	return Vector3[T]{s * v[0], s * v[1], s * v[2]}
}

func (v Vector3[T]) X() T { return v[0] }
func (v Vector3[T]) Y() T { return v[1] }
func (v Vector3[T]) Z() T { return v[2] }

func (v *Vector3[T]) SetX(x T) { v[0] = x }
func (v *Vector3[T]) SetY(y T) { v[1] = y }
func (v *Vector3[T]) SetZ(z T) { v[2] = z }

// Extend returns a 4-component vector using v as x, y and z and w for w.
func (v Vector3[T]) Extend(w T) Vector4[T] {
	return Vector4[T]{v[0], v[1], v[2], w}
}

func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	v.AddAssign(other)
	return v
}

func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	v.SubAssign(other)
	return v
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v[0], -v[1], -v[2]}
}

// Mul multiplies component by component.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Div divides component by component. Integer kinds panic on a zero component.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	if !types.IsFloat[T]() {
		core.Assert(other[0] != 0 && other[1] != 0 && other[2] != 0, "Vector3.Div", "integer division by zero component")
	}
	return Vector3[T]{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	v.MulScalarAssign(s)
	return v
}

func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	v.DivScalarAssign(s)
	return v
}

func (v *Vector3[T]) AddAssign(other Vector3[T]) {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
}

func (v *Vector3[T]) SubAssign(other Vector3[T]) {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
}

func (v *Vector3[T]) MulScalarAssign(s T) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// DivScalarAssign divides every component by s. Float kinds follow IEEE rules
// for s == 0, integer kinds violate a precondition and v is left untouched.
func (v *Vector3[T]) DivScalarAssign(s T) {
	checkDivisor(s, "Vector3.DivScalar")
	v[0] /= s
	v[1] /= s
	v[2] /= s
}

// Dot returns the scalar product in T. Callers needing more precision than T
// offers have to convert the vectors first.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthogonal to both.
 */
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0]}
}

// Square returns the squared length, always computed in float64.
func (v Vector3[T]) Square() float64 {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	return x*x + y*y + z*z
}

func (v Vector3[T]) Length() float64 {
	return sqrtLength(v.Square(), "Vector3.Length")
}

func (v Vector3[T]) Distance(other Vector3[T]) float64 {
	x := float64(v[0]) - float64(other[0])
	y := float64(v[1]) - float64(other[1])
	z := float64(v[2]) - float64(other[2])
	return m.Sqrt(x*x + y*y + z*z)
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is not greater than tolerance.
 */
func (v Vector3[T]) Compare(other Vector3[T], tolerance float64) bool {
	for i := range v {
		if m.Abs(float64(v[i])-float64(other[i])) > tolerance {
			return false
		}
	}
	return true
}

// RoundInt rounds every component to the nearest integer, halves to even.
func (v Vector3[T]) RoundInt() Vector3[int32] {
	return Vector3[int32]{roundInt(v[0]), roundInt(v[1]), roundInt(v[2])}
}

func (v Vector3[T]) FloorInt() Vector3[int32] {
	return Vector3[int32]{floorInt(v[0]), floorInt(v[1]), floorInt(v[2])}
}

func (v Vector3[T]) CeilInt() Vector3[int32] {
	return Vector3[int32]{ceilInt(v[0]), ceilInt(v[1]), ceilInt(v[2])}
}

func (v Vector3[T]) String() string {
	return formatComponents("Vector3", v[:])
}

// Print dumps v to the debug log. It does nothing unless built with -tags spldebug.
func (v Vector3[T]) Print() {
	debugPrint("Vector3", v[:])
}

func (v Vector3[T]) MarshalText() ([]byte, error) {
	return marshalComponents(v[:]), nil
}

func (v *Vector3[T]) UnmarshalText(text []byte) error {
	return unmarshalComponents("Vector3", text, v[:])
}

// Normalize3 rescales v in place to unit length. A zero vector is left as is.
func Normalize3[T types.Float](v *Vector3[T]) {
	Normalize3To(v, 1.0)
}

// Normalize3To rescales v in place to the given length, which must be positive.
// A zero vector has no direction and is left unchanged.
func Normalize3To[T types.Float](v *Vector3[T], length float64) {
	scaleToLength(v[:], length, "Normalize3")
}

// Normalized3 returns a unit length copy of v, or v itself when it is zero.
func Normalized3[T types.Float](v Vector3[T]) Vector3[T] {
	Normalize3To(&v, 1.0)
	return v
}

func Normalized3To[T types.Float](v Vector3[T], length float64) Vector3[T] {
	Normalize3To(&v, length)
	return v
}
