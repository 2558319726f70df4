package math

import (
	m "math"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/types"
)

// Matrix4 is a column-major 4x4 matrix, see Matrix3. Translation lives in
// column 3. Which role a matrix plays in a camera (model-view, projection,
// viewport) is tracked outside of it with types.CameraMatrix.
type Matrix4[T types.Scalar] [4]Vector4[T]

func NewMatrix4[T types.Scalar](c0, c1, c2, c3 Vector4[T]) Matrix4[T] {
	return Matrix4[T]{c0, c1, c2, c3}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func Identity4[T types.Scalar]() Matrix4[T] {
	return Matrix4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

func (mt Matrix4[T]) Column(c int) Vector4[T] {
	return mt[c]
}

func (mt Matrix4[T]) Row(r int) Vector4[T] {
	return Vector4[T]{mt[0][r], mt[1][r], mt[2][r], mt[3][r]}
}

// Matrix3 returns the upper-left 3x3 block.
func (mt Matrix4[T]) Matrix3() Matrix3[T] {
	return NewMatrix3FromMatrix4(mt)
}

func (mt Matrix4[T]) Add(other Matrix4[T]) Matrix4[T] {
	for c := range mt {
		mt[c].AddAssign(other[c])
	}
	return mt
}

func (mt Matrix4[T]) Sub(other Matrix4[T]) Matrix4[T] {
	for c := range mt {
		mt[c].SubAssign(other[c])
	}
	return mt
}

func (mt Matrix4[T]) MulScalar(s T) Matrix4[T] {
	for c := range mt {
		mt[c].MulScalarAssign(s)
	}
	return mt
}

func (mt Matrix4[T]) MulVector(v Vector4[T]) Vector4[T] {
	var out Vector4[T]
	for r := range out {
		out[r] = mt[0][r]*v[0] + mt[1][r]*v[1] + mt[2][r]*v[2] + mt[3][r]*v[3]
	}
	return out
}

// MulVector3 applies the upper-left 3x3 block only, so translation is ignored:
// x = m0.x*v.x + m1.x*v.y + m2.x*v.z.
func (mt Matrix4[T]) MulVector3(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		mt[0][0]*v[0] + mt[1][0]*v[1] + mt[2][0]*v[2],
		mt[0][1]*v[0] + mt[1][1]*v[1] + mt[2][1]*v[2],
		mt[0][2]*v[0] + mt[1][2]*v[1] + mt[2][2]*v[2]}
}

/**
 * @brief Transform v by mt. NOTE: v is treated as a point, not a direction,
 * as if a w component of 1 was there. No perspective divide is applied.
 */
func (mt Matrix4[T]) TransformPoint(v Vector3[T]) Vector3[T] {
	out := mt.MulVector3(v)
	out[0] += mt[3][0]
	out[1] += mt[3][1]
	out[2] += mt[3][2]
	return out
}

func (mt Matrix4[T]) Mul(other Matrix4[T]) Matrix4[T] {
	return Matrix4[T]{
		mt.MulVector(other[0]),
		mt.MulVector(other[1]),
		mt.MulVector(other[2]),
		mt.MulVector(other[3])}
}

func (mt Matrix4[T]) Transpose() Matrix4[T] {
	return Matrix4[T]{mt.Row(0), mt.Row(1), mt.Row(2), mt.Row(3)}
}

func (mt Matrix4[T]) Compare(other Matrix4[T], tolerance float64) bool {
	for c := range mt {
		if !mt[c].Compare(other[c], tolerance) {
			return false
		}
	}
	return true
}

func (mt Matrix4[T]) IsIdentity() bool {
	return mt == Identity4[T]()
}

func (mt Matrix4[T]) String() string {
	return formatColumns("Matrix4", mt[0][:], mt[1][:], mt[2][:], mt[3][:])
}

func (mt Matrix4[T]) Print() {
	for c := range mt {
		debugPrint("Matrix4 column", mt[c][:])
	}
}

// flatten lays the matrix out as 16 values, column after column.
func (mt Matrix4[T]) flatten() (f [16]T) {
	for c := range mt {
		for r := range mt[c] {
			f[4*c+r] = mt[c][r]
		}
	}
	return f
}

func unflatten[T types.Scalar](f [16]T) (mt Matrix4[T]) {
	for c := range mt {
		for r := range mt[c] {
			mt[c][r] = f[4*c+r]
		}
	}
	return mt
}

/**
 * @brief Creates and returns an inverse of the provided matrix. ok is false,
 * and the zero matrix returned, when the matrix is singular.
 */
func Inverse4[T types.Float](mt Matrix4[T]) (inv Matrix4[T], ok bool) {
	m := mt.flatten()

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	var o [16]T
	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	det := m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3]
	if det == 0 {
		return Matrix4[T]{}, false
	}
	d := 1.0 / det

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return unflatten(o), true
}

// Translation4 returns a matrix moving points by v.
func Translation4[T types.Scalar](v Vector3[T]) Matrix4[T] {
	out := Identity4[T]()
	out[3] = v.Extend(1)
	return out
}

func Scale4[T types.Scalar](v Vector3[T]) Matrix4[T] {
	return Matrix4[T]{{v[0], 0, 0, 0}, {0, v[1], 0, 0}, {0, 0, v[2], 0}, {0, 0, 0, 1}}
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func Orthographic[T types.Float](left, right, bottom, top, near, far T) Matrix4[T] {
	core.Assert(left != right && bottom != top && near != far, "Orthographic", "empty view volume")

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (near - far)

	out := Identity4[T]()
	out[0][0] = -2.0 * lr
	out[1][1] = -2.0 * bt
	out[2][2] = 2.0 * nf
	out[3][0] = (left + right) * lr
	out[3][1] = (top + bottom) * bt
	out[3][2] = (far + near) * nf
	return out
}

/**
 * @brief Creates and returns a perspective projection for the view frustum
 * bounded by left, right, bottom and top on the near plane.
 */
func Frustum[T types.Float](left, right, bottom, top, near, far T) Matrix4[T] {
	core.Assert(left != right && bottom != top && near != far, "Frustum", "empty view volume")
	core.Assert(near > 0 && far > 0, "Frustum", "clipping planes must be positive")

	var out Matrix4[T]
	out[0][0] = 2 * near / (right - left)
	out[1][1] = 2 * near / (top - bottom)
	out[2][0] = (right + left) / (right - left)
	out[2][1] = (top + bottom) / (top - bottom)
	out[2][2] = -(far + near) / (far - near)
	out[2][3] = -1
	out[3][2] = -(2 * far * near) / (far - near)
	return out
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov The vertical field of view in radians.
 * @param aspect The aspect ratio.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new perspective matrix.
 */
func Perspective[T types.Float](fov, aspect, near, far T) Matrix4[T] {
	top := near * T(m.Tan(float64(fov)*0.5))
	right := top * aspect
	return Frustum(-right, right, -top, top, near, far)
}

/**
 * @brief Creates and returns a model-view matrix looking at target from the
 * perspective of eye. When eye and target coincide the view direction has no
 * length and the rotation part degenerates instead of failing.
 */
func LookAt[T types.Float](eye, target, up Vector3[T]) Matrix4[T] {
	f := Normalized3(target.Sub(eye))
	s := Normalized3(f.Cross(up))
	u := s.Cross(f)

	return Matrix4[T]{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1}}
}

// Viewport maps normalized device coordinates to the window rectangle starting
// at x, y with the given size. Depth is mapped from [-1, 1] to [0, 1].
func Viewport[T types.Float](x, y, width, height T) Matrix4[T] {
	core.Assert(width > 0 && height > 0, "Viewport", "size %vx%v is not positive", width, height)

	out := Identity4[T]()
	out[0][0] = width / 2
	out[1][1] = height / 2
	out[2][2] = 0.5
	out[3][0] = x + width/2
	out[3][1] = y + height/2
	out[3][2] = 0.5
	return out
}
