package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestF32Vectors(t *testing.T) {
	assert.Equal(t, f32.Vec2{1, 2}, Vec2{1, 2}.F32())
	assert.Equal(t, f32.Vec3{1, 2, 3}, Vec3{1, 2, 3}.F32())
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, Vec4{1, 2, 3, 4}.F32())
}

func TestF32MatricesAreRowMajor(t *testing.T) {
	m := NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	rm := m.F32()

	// f32 stores m[3*r + c]; row 0, column 1 is the x component of the Y axis.
	assert.Equal(t, m.At(1, 0), rm[0*3+1])
	assert.Equal(t, f32.Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}, rm)
	assert.Equal(t, m, Mat3FromF32(rm))

	m4 := seqMat4()
	assert.Equal(t, m4.At(3, 0), m4.F32()[3])
	assert.Equal(t, m4, Mat4FromF32(m4.F32()))
}

func TestAff3(t *testing.T) {
	m := Mat3Identity()
	m.SetTranslation(5, 6)
	assert.Equal(t, f32.Aff3{1, 0, 5, 0, 1, 6}, m.Aff3())
}
