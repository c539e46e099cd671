package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %v, got %v", want, got)
}

func assertVec4(t *testing.T, want, got Vec4) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %v, got %v", want, got)
}

func assertMat3(t *testing.T, want, got Mat3) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %v, got %v", want, got)
}

func assertMat4(t *testing.T, want, got Mat4) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %v, got %v", want, got)
}
