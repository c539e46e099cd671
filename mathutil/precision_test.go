package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrigRounding(t *testing.T) {
	assert.Equal(t, float32(1), Cos(0))
	assert.Equal(t, float32(0), Sin(0))

	// cos(π/2) is ~3e-7 in float32 and rounds away entirely.
	right := DegToRad(90)
	assert.Equal(t, float32(0), Cos(right))
	assert.Equal(t, float32(1), Sin(right))
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, 1.570796, DegToRad(90), 1e-6)
	assert.InDelta(t, 3.141593, DegToRad(180), 1e-6)
	assert.Equal(t, float32(0), DegToRad(0))
}

func TestRadToDegIsNotRounded(t *testing.T) {
	assert.Equal(t, float32(180/math.Pi), RadToDeg(1))
	assert.InDelta(t, 180, RadToDeg(math.Pi), 1e-4)
}

func TestPrecisionRoundHalfEven(t *testing.T) {
	p := Precision{Digits: 0}
	assert.Equal(t, float32(2), p.Round(2.5))
	assert.Equal(t, float32(4), p.Round(3.5))
	assert.Equal(t, float32(-2), p.Round(-2.5))

	p.Digits = 2
	assert.InDelta(t, 1.23, p.Round(1.2345), 1e-6)
}

func TestDefaultPrecision(t *testing.T) {
	p := DefaultPrecision()
	require.Equal(t, DefaultTolerance, p.Tolerance)
	require.Equal(t, DefaultDigits, p.Digits)
	assert.Equal(t, Cos(0.7), p.Cos(0.7))
	assert.Equal(t, Sin(0.7), p.Sin(0.7))
}

func TestNearBoundary(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		tol  float32
		want bool
	}{
		{"identical", 1, 1, 0.5, true},
		{"exactly at tolerance", 0, 0.5, 0.5, true},
		{"past tolerance", 0, 0.75, 0.5, false},
		{"negative difference", 0.75, 0, 0.5, false},
		{"zero tolerance", 1, 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Near(tt.a, tt.b, tt.tol))
		})
	}

	p := Precision{Tolerance: 0.25}
	assert.True(t, p.Near(1, 1.25))
	assert.False(t, p.Near(1, 1.5))
}
