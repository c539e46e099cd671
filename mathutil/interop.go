package mathutil

import "golang.org/x/image/math/f32"

// The f32 package stores matrices row-major, so matrix conversions transpose.
// Vectors share their layout and convert directly.

func (v Vec2) F32() f32.Vec2 { return f32.Vec2(v) }
func (v Vec3) F32() f32.Vec3 { return f32.Vec3(v) }
func (v Vec4) F32() f32.Vec4 { return f32.Vec4(v) }

// F32 returns m in f32's row-major order.
func (m Mat3) F32() f32.Mat3 {
	return f32.Mat3(m.Transpose())
}

// F32 returns m in f32's row-major order.
func (m Mat4) F32() f32.Mat4 {
	return f32.Mat4(m.Transpose())
}

// Mat3FromF32 converts a row-major f32.Mat3.
func Mat3FromF32(m f32.Mat3) Mat3 {
	return Mat3(m).Transpose()
}

// Mat4FromF32 converts a row-major f32.Mat4.
func Mat4FromF32(m f32.Mat4) Mat4 {
	return Mat4(m).Transpose()
}

// Aff3 returns the 2D affine part of m (third column used as translation)
// as an f32.Aff3, the form golang.org/x/image/vector and friends accept.
func (m Mat3) Aff3() f32.Aff3 {
	return f32.Aff3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
	}
}
