package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seqMat4() Mat4 {
	return NewMat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
}

func TestMat4Constructors(t *testing.T) {
	assert.Equal(t, Mat4{}, NewMat4Identity(false))
	assert.Equal(t, Mat4Identity(), NewMat4Identity(true))
	assert.Equal(t, Mat4Identity(), Mat4Scale(1))

	m := Mat4FromAxes(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9})
	assert.Equal(t, Vec4{4, 5, 6, 0}, m.Column(1))
	assert.Equal(t, Vec4{}, m.Column(3), "translation column stays zero")
	assert.Equal(t, NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9), m.Upper3())

	s := seqMat4()
	assert.Equal(t, float32(15), s.At(3, 2))
	var c Mat4
	c.Set(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	assert.Equal(t, s, c)
	c.SetAt(1, 3, -1)
	assert.Equal(t, float32(-1), c[7])
}

func TestMat4IdentityTransform(t *testing.T) {
	v := Vec4{3, 4, 5, 1}
	assertVec4(t, v, NewMat4Identity(true).MulVec4(v))
	assert.True(t, Mat4Identity().IsIdentity())
	assert.False(t, Mat4Scale(2).IsIdentity())
}

func TestMat4Translation(t *testing.T) {
	m := Mat4Identity()
	m.SetTranslation(1, 2, 3)

	assert.Equal(t, Vec3{1, 2, 3}, m.Translation())
	assert.Equal(t, Vec4{2, 3, 4, 1}, m.MulVec4(Vec4{1, 1, 1, 1}))
	assert.Equal(t, Vec4{1, 1, 1, 0}, m.MulVec4(Vec4{1, 1, 1, 0}), "directions ignore translation")
	assert.Equal(t, Vec3{2, 3, 4}, m.MulPoint(Vec3{1, 1, 1}))
	assert.Equal(t, Vec3{1, 1, 1}, m.MulDir(Vec3{1, 1, 1}))
}

func TestMat4MulVec4(t *testing.T) {
	m := seqMat4()
	// Sum of the columns.
	assert.Equal(t, Vec4{28, 32, 36, 40}, m.MulVec4(Vec4{1, 1, 1, 1}))
	assert.Equal(t, Vec4{13, 14, 15, 16}, m.MulVec4(Vec4{0, 0, 0, 1}))
}

func TestMat4Mul(t *testing.T) {
	a := seqMat4()

	assert.Equal(t, a, a.Mul(Mat4Identity()))
	assert.Equal(t, a, Mat4Identity().Mul(a))

	var doubled Mat4
	for i := range a {
		doubled[i] = 2 * a[i]
	}
	assert.Equal(t, doubled, a.Mul(Mat4Scale(2)))

	// Column 0 of a×a is a × (1, 2, 3, 4).
	sq := a.Mul(a)
	assert.Equal(t, a.MulVec4(Vec4{1, 2, 3, 4}), sq.Column(0))
	assert.Equal(t, a.MulVec4(Vec4{13, 14, 15, 16}), sq.Column(3))
}

func TestMat4MulAppliesRightOperandFirst(t *testing.T) {
	tr := Mat4Identity()
	tr.SetTranslation(5, 0, 0)
	rot := Mat4RotZ(math.Pi / 2)
	p := Vec4{1, 0, 0, 1}

	assertVec4(t, Vec4{5, 1, 0, 1}, tr.Mul(rot).MulVec4(p))
	assertVec4(t, Vec4{0, 6, 0, 1}, rot.Mul(tr).MulVec4(p))
}

func TestMat4Rotations(t *testing.T) {
	var m Mat4
	m.SetRotateZ(0)
	assertMat4(t, Mat4Identity(), m)

	m.SetRotateX(0)
	assertMat4(t, Mat4Identity(), m)

	m.SetRotateZ(math.Pi / 2)
	assertVec4(t, Vec4{0, 1, 0, 0}, m.MulVec4(Vec4{1, 0, 0, 0}))
	m.SetRotateX(math.Pi / 2)
	assertVec4(t, Vec4{0, 0, 1, 1}, m.MulVec4(Vec4{0, 1, 0, 1}))
	m.SetRotateY(math.Pi / 2)
	assertVec4(t, Vec4{1, 0, 0, 1}, m.MulVec4(Vec4{0, 0, 1, 1}))

	// The 3×3 block matches the Mat3 rotations.
	for _, a := range []float32{-2, 0.25, 1, 3} {
		assert.Equal(t, RotX(a), Mat4RotX(a).Upper3())
		assert.Equal(t, RotY(a), Mat4RotY(a).Upper3())
		assert.Equal(t, RotZ(a), Mat4RotZ(a).Upper3())
	}
}

func TestMat4EqualityComparesW(t *testing.T) {
	id := Mat4Identity()
	assert.True(t, id.Equal(id), "m33 = 1 while m32 = 0")

	for _, i := range []int{3, 7, 11, 15} {
		b := id
		b[i] += 0.5
		assert.False(t, id.Equal(b), "w component %d", i)
	}

	s := seqMat4()
	b := s
	b[12] += 0.00009
	assert.True(t, s.Equal(b))
	assert.True(t, s.EqualTol(Mat4{}, 16))
}

func TestFromMat3Translation(t *testing.T) {
	r := RotZ(0.5)
	m := FromMat3Translation(r, Vec3{1, 2, 3})

	assert.Equal(t, r, m.Upper3())
	assert.Equal(t, Vec3{1, 2, 3}, m.Translation())
	assert.Equal(t, float32(1), m[15])

	p := Vec3{4, -1, 2}
	assertVec3(t, r.MulVec3(p).Add(Vec3{1, 2, 3}), m.MulPoint(p))
	assert.Equal(t, seqMat4(), seqMat4().Transpose().Transpose())
}
