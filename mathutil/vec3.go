package mathutil

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float32

// Zero3 is the zero vector.
var Zero3 = Vec3{}

// Vec3FromVec2 extends v with z = 0.
func Vec3FromVec2(v Vec2) Vec3 {
	return Vec3{v[0], v[1], 0}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

// Vec4 lifts v into homogeneous coordinates: w = 1 for points, 0 for directions.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Equal reports whether every component differs by at most DefaultTolerance.
func (a Vec3) Equal(b Vec3) bool {
	return a.EqualTol(b, DefaultTolerance)
}

func (a Vec3) EqualTol(b Vec3, tol float32) bool {
	return Near(a[0], b[0], tol) &&
		Near(a[1], b[1], tol) &&
		Near(a[2], b[2], tol)
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize scales v to unit length in place. A zero vector becomes NaN.
func (v *Vec3) Normalize() {
	mag := v.Magnitude()
	v[0] /= mag
	v[1] /= mag
	v[2] /= mag
}

// Normalized returns a unit-length copy of v.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// SourceToDest returns the vector pointing from v to dest.
func (v Vec3) SourceToDest(dest Vec3) Vec3 {
	return dest.Sub(v)
}

// AngleDegrees returns the unsigned angle between v and other in degrees (0–180).
func (v Vec3) AngleDegrees(other Vec3) float32 {
	d := v.Normalized().Dot(other.Normalized())
	// Rounding can push |d| just past 1 for parallel inputs.
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return RadToDeg(math32.Acos(d))
}
