package mathutil

import "github.com/chewxy/math32"

// Mat4 is a 4×4 homogeneous transform stored column-major.
//
// m[4*c + r] is the r'th component of column c. Columns 0–2 are the X, Y and
// Z axes, column 3 (m30..m33) is the translation T.
type Mat4 [16]float32

// NewMat4 builds a matrix from its columns: X axis, Y axis, Z axis, translation.
func NewMat4(
	xx, xy, xz, xw,
	yx, yy, yz, yw,
	zx, zy, zz, zw,
	tx, ty, tz, tw float32,
) Mat4 {
	return Mat4{
		xx, xy, xz, xw,
		yx, yy, yz, yw,
		zx, zy, zz, zw,
		tx, ty, tz, tw,
	}
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4Identity returns the identity when identity is true and the zero
// matrix otherwise.
func NewMat4Identity(identity bool) Mat4 {
	if identity {
		return Mat4Identity()
	}
	return Mat4{}
}

// Mat4Scale returns diag(s, s, s, s).
func Mat4Scale(s float32) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, s,
	}
}

// Mat4FromAxes uses x, y and z as the first three columns. The w row and the
// translation column stay zero.
func Mat4FromAxes(x, y, z Vec3) Mat4 {
	return Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 0,
	}
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		t[0], t[1], t[2], 1,
	}
}

// Set overwrites every component, column order.
func (m *Mat4) Set(
	xx, xy, xz, xw,
	yx, yy, yz, yw,
	zx, zy, zz, zw,
	tx, ty, tz, tw float32,
) {
	*m = NewMat4(xx, xy, xz, xw, yx, yy, yz, yw, zx, zy, zz, zw, tx, ty, tz, tw)
}

// At returns component r of column c (m<c><r>).
func (m Mat4) At(c, r int) float32 {
	return m[4*c+r]
}

func (m *Mat4) SetAt(c, r int, v float32) {
	m[4*c+r] = v
}

func (m Mat4) Column(c int) Vec4 {
	return Vec4{m[4*c], m[4*c+1], m[4*c+2], m[4*c+3]}
}

// SetTranslation sets the T column to (tx, ty, tz, 1).
func (m *Mat4) SetTranslation(tx, ty, tz float32) {
	m[12] = tx
	m[13] = ty
	m[14] = tz
	m[15] = 1
}

func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Upper3 returns the 3×3 axis block without translation.
func (m Mat4) Upper3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// MulVec4 returns M × v. The translation column is scaled by v.w, so points
// (w = 1) move and directions (w = 0) do not.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(v.Vec4(1)).XYZ()
}

// MulDir transforms a direction (w=0); translation is ignored.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.MulVec4(v.Vec4(0)).XYZ()
}

// Mul returns m × b: b is applied first, then m.
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*c+r] = m[0*4+r]*b[4*c+0] + m[1*4+r]*b[4*c+1] +
				m[2*4+r]*b[4*c+2] + m[3*4+r]*b[4*c+3]
		}
	}
	return out
}

// Equal reports whether all sixteen components differ by at most DefaultTolerance.
func (m Mat4) Equal(b Mat4) bool {
	return m.EqualTol(b, DefaultTolerance)
}

func (m Mat4) EqualTol(b Mat4, tol float32) bool {
	for i := range m {
		if !Near(m[i], b[i], tol) {
			return false
		}
	}
	return true
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.Equal(Mat4Identity())
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

func (m *Mat4) SetRotateX(rad float32) { *m = Mat4RotX(rad) }
func (m *Mat4) SetRotateY(rad float32) { *m = Mat4RotY(rad) }
func (m *Mat4) SetRotateZ(rad float32) { *m = Mat4RotZ(rad) }

// Mat4RotX returns a rotation of a radians about the X axis with no
// translation. Trig values are not rounded.
func Mat4RotX(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotY(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotZ(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
