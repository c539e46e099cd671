package mathutil

import "github.com/chewxy/math32"

// Mat3 is a 3×3 matrix stored column-major: each column is one axis.
//
// m[3*c + r] is the r'th component of column c, so m00..m02 is the X axis,
// m10..m12 the Y axis and m20..m22 the Z axis (or the translation column
// when the matrix is used as a 2D affine transform).
type Mat3 [9]float32

// NewMat3 builds a matrix from its columns, X axis first.
func NewMat3(xx, xy, xz, yx, yy, yz, zx, zy, zz float32) Mat3 {
	return Mat3{xx, xy, xz, yx, yy, yz, zx, zy, zz}
}

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// NewMat3Identity returns the identity when identity is true and the zero
// matrix otherwise.
func NewMat3Identity(identity bool) Mat3 {
	if identity {
		return Mat3Identity()
	}
	return Mat3{}
}

// Mat3Scale returns a uniform scale matrix.
func Mat3Scale(s float32) Mat3 {
	return Mat3Diag(s, s, s)
}

func Mat3Diag(x, y, z float32) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Mat3FromAxes uses x, y and z as the matrix columns.
func Mat3FromAxes(x, y, z Vec3) Mat3 {
	return Mat3{x[0], x[1], x[2], y[0], y[1], y[2], z[0], z[1], z[2]}
}

// Set overwrites every component, column order.
func (m *Mat3) Set(xx, xy, xz, yx, yy, yz, zx, zy, zz float32) {
	*m = Mat3{xx, xy, xz, yx, yy, yz, zx, zy, zz}
}

// At returns component r of column c (m<c><r>).
func (m Mat3) At(c, r int) float32 {
	return m[3*c+r]
}

func (m *Mat3) SetAt(c, r int, v float32) {
	m[3*c+r] = v
}

func (m Mat3) Column(c int) Vec3 {
	return Vec3{m[3*c], m[3*c+1], m[3*c+2]}
}

// SetTranslation sets the third column to (tx, ty, 1) for 2D affine use.
func (m *Mat3) SetTranslation(tx, ty float32) {
	m[6] = tx
	m[7] = ty
	m[8] = 1
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// Mul returns m × b: b is applied first, then m.
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*c+r] = m[0*3+r]*b[3*c+0] + m[1*3+r]*b[3*c+1] + m[2*3+r]*b[3*c+2]
		}
	}
	return out
}

// Equal reports whether all nine components differ by at most DefaultTolerance.
func (m Mat3) Equal(b Mat3) bool {
	return m.EqualTol(b, DefaultTolerance)
}

func (m Mat3) EqualTol(b Mat3, tol float32) bool {
	for i := range m {
		if !Near(m[i], b[i], tol) {
			return false
		}
	}
	return true
}

// SetRotateX overwrites m with a rotation of rad radians about the X axis.
func (m *Mat3) SetRotateX(rad float32) { *m = RotX(rad) }

// SetRotateY overwrites m with a rotation of rad radians about the Y axis.
func (m *Mat3) SetRotateY(rad float32) { *m = RotY(rad) }

// SetRotateZ overwrites m with a rotation of rad radians about the Z axis.
func (m *Mat3) SetRotateZ(rad float32) { *m = RotZ(rad) }

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
// Trig values are not rounded.
func RotX(a float32) Mat3 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float32) Mat3 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float32) Mat3 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

func (m Mat3) Det() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of m. ok is false when m is singular, in
// which case the identity is returned.
func (m Mat3) Inverse() (inv Mat3, ok bool) {
	d := m.Det()
	if d == 0 {
		return Mat3Identity(), false
	}
	invD := 1.0 / d
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * invD,
		(m[2]*m[7] - m[1]*m[8]) * invD,
		(m[1]*m[5] - m[2]*m[4]) * invD,
		(m[5]*m[6] - m[3]*m[8]) * invD,
		(m[0]*m[8] - m[2]*m[6]) * invD,
		(m[2]*m[3] - m[0]*m[5]) * invD,
		(m[3]*m[7] - m[4]*m[6]) * invD,
		(m[1]*m[6] - m[0]*m[7]) * invD,
		(m[0]*m[4] - m[1]*m[3]) * invD,
	}, true
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
