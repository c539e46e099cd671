package mathutil

import "github.com/chewxy/math32"

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 [2]float32

func (v Vec2) X() float32 { return v[0] }
func (v Vec2) Y() float32 { return v[1] }

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Equal compares components exactly. Unlike the other vector and matrix
// types, Vec2 has no tolerance; use ApproxEqual for that.
func (a Vec2) Equal(b Vec2) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// ApproxEqual compares components within DefaultTolerance.
func (a Vec2) ApproxEqual(b Vec2) bool {
	return Near(a[0], b[0], DefaultTolerance) && Near(a[1], b[1], DefaultTolerance)
}

func (v Vec2) Magnitude() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1])
}

// Normalize scales v to unit length in place. A zero vector becomes NaN.
func (v *Vec2) Normalize() {
	mag := v.Magnitude()
	v[0] /= mag
	v[1] /= mag
}

// Normalized returns a unit-length copy of v.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}
