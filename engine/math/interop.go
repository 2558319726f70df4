package math

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// The x/image vectors share the array layout, only their matrices differ:
// they are flat and row major, element m[n*r+c].

func Vector2fToF32(v Vector2f) f32.Vec2 { return f32.Vec2(v) }
func Vector3fToF32(v Vector3f) f32.Vec3 { return f32.Vec3(v) }
func Vector4fToF32(v Vector4f) f32.Vec4 { return f32.Vec4(v) }

func F32ToVector2f(v f32.Vec2) Vector2f { return Vector2f(v) }
func F32ToVector3f(v f32.Vec3) Vector3f { return Vector3f(v) }
func F32ToVector4f(v f32.Vec4) Vector4f { return Vector4f(v) }

func Vector3dToF64(v Vector3d) f64.Vec3 { return f64.Vec3(v) }
func F64ToVector3d(v f64.Vec3) Vector3d { return Vector3d(v) }

func Matrix3fToF32(mt Matrix3f) (out f32.Mat3) {
	for c := range mt {
		for r := range mt[c] {
			out[3*r+c] = mt[c][r]
		}
	}
	return out
}

func F32ToMatrix3f(in f32.Mat3) (mt Matrix3f) {
	for c := range mt {
		for r := range mt[c] {
			mt[c][r] = in[3*r+c]
		}
	}
	return mt
}

func Matrix4fToF32(mt Matrix4f) (out f32.Mat4) {
	for c := range mt {
		for r := range mt[c] {
			out[4*r+c] = mt[c][r]
		}
	}
	return out
}

func F32ToMatrix4f(in f32.Mat4) (mt Matrix4f) {
	for c := range mt {
		for r := range mt[c] {
			mt[c][r] = in[4*r+c]
		}
	}
	return mt
}

func Matrix4dToF64(mt Matrix4d) (out f64.Mat4) {
	for c := range mt {
		for r := range mt[c] {
			out[4*r+c] = mt[c][r]
		}
	}
	return out
}

func F64ToMatrix4d(in f64.Mat4) (mt Matrix4d) {
	for c := range mt {
		for r := range mt[c] {
			mt[c][r] = in[4*r+c]
		}
	}
	return mt
}
