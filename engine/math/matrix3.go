package math

import (
	"strings"

	"github.com/spaghettifunk/spl/engine/types"
)

// Matrix3 is a column-major 3x3 matrix: m[c] is column c and m[c][r] the
// element in row r of that column. Every operator of the package follows this
// convention.
type Matrix3[T types.Scalar] [3]Vector3[T]

func NewMatrix3[T types.Scalar](c0, c1, c2 Vector3[T]) Matrix3[T] {
	return Matrix3[T]{c0, c1, c2}
}

// NewMatrix3FromMatrix4 keeps the upper-left 3x3 block of m.
func NewMatrix3FromMatrix4[T types.Scalar](m Matrix4[T]) Matrix3[T] {
	return Matrix3[T]{
		NewVector3FromVector4(m[0]),
		NewVector3FromVector4(m[1]),
		NewVector3FromVector4(m[2])}
}

func Identity3[T types.Scalar]() Matrix3[T] {
	return Matrix3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (m Matrix3[T]) Column(c int) Vector3[T] {
	return m[c]
}

// Row assembles row r across the three columns.
func (m Matrix3[T]) Row(r int) Vector3[T] {
	return Vector3[T]{m[0][r], m[1][r], m[2][r]}
}

func (m Matrix3[T]) Add(other Matrix3[T]) Matrix3[T] {
	for c := range m {
		m[c].AddAssign(other[c])
	}
	return m
}

func (m Matrix3[T]) Sub(other Matrix3[T]) Matrix3[T] {
	for c := range m {
		m[c].SubAssign(other[c])
	}
	return m
}

func (m Matrix3[T]) MulScalar(s T) Matrix3[T] {
	for c := range m {
		m[c].MulScalarAssign(s)
	}
	return m
}

// MulVector returns m*v, i.e. x = m0.x*v.x + m1.x*v.y + m2.x*v.z and so on.
func (m Matrix3[T]) MulVector(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2]}
}

// Mul returns m*other: column c of the result is m times column c of other.
func (m Matrix3[T]) Mul(other Matrix3[T]) Matrix3[T] {
	return Matrix3[T]{
		m.MulVector(other[0]),
		m.MulVector(other[1]),
		m.MulVector(other[2])}
}

func (m Matrix3[T]) Transpose() Matrix3[T] {
	return Matrix3[T]{m.Row(0), m.Row(1), m.Row(2)}
}

func (m Matrix3[T]) Determinant() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

func (m Matrix3[T]) Compare(other Matrix3[T], tolerance float64) bool {
	for c := range m {
		if !m[c].Compare(other[c], tolerance) {
			return false
		}
	}
	return true
}

func (m Matrix3[T]) String() string {
	return formatColumns("Matrix3", m[0][:], m[1][:], m[2][:])
}

func (m Matrix3[T]) Print() {
	for c := range m {
		debugPrint("Matrix3 column", m[c][:])
	}
}

func formatColumns[T types.Scalar](name string, columns ...[]T) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = formatComponents("", c)
	}
	return name + "[" + strings.Join(parts, " ") + "]"
}
