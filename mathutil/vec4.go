package mathutil

import "github.com/chewxy/math32"

// Vec4 is a 4-component homogeneous vector. w = 1 marks a point, w = 0 a direction.
type Vec4 [4]float32

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }

// XYZ drops w.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Equal reports whether every component, w included, differs by at most
// DefaultTolerance.
func (a Vec4) Equal(b Vec4) bool {
	return a.EqualTol(b, DefaultTolerance)
}

func (a Vec4) EqualTol(b Vec4, tol float32) bool {
	return Near(a[0], b[0], tol) &&
		Near(a[1], b[1], tol) &&
		Near(a[2], b[2], tol) &&
		Near(a[3], b[3], tol)
}

func (a Vec4) Dot(b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Cross returns the cross product of the xyz parts with w = 0.
func (a Vec4) Cross(b Vec4) Vec4 {
	return Vec4{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

func (v Vec4) Magnitude() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// Normalize scales all four components to unit length in place. A zero
// vector becomes NaN.
func (v *Vec4) Normalize() {
	mag := v.Magnitude()
	v[0] /= mag
	v[1] /= mag
	v[2] /= mag
	v[3] /= mag
}

func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}
