package math

type Vector2i = Vector2[int32]
type Vector2f = Vector2[float32]
type Vector2d = Vector2[float64]

type Vector3i = Vector3[int32]
type Vector3f = Vector3[float32]
type Vector3d = Vector3[float64]

type Vector4i = Vector4[int32]
type Vector4f = Vector4[float32]
type Vector4d = Vector4[float64]

type Matrix3i = Matrix3[int32]
type Matrix3f = Matrix3[float32]
type Matrix3d = Matrix3[float64]

type Matrix4i = Matrix4[int32]
type Matrix4f = Matrix4[float32]
type Matrix4d = Matrix4[float64]
