// Package mathutil provides float32 vectors, column-major transform matrices
// and rounded trig helpers for a rendering or game-logic layer.
//
// All matrices follow the column-vector convention: result = M * v, and
// A.Mul(B) applies B first, then A.
package mathutil

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// DefaultTolerance is the largest per-component absolute difference at
	// which two values still compare equal.
	DefaultTolerance float32 = 0.0001

	// DefaultDigits is the number of decimal digits Cos, Sin and DegToRad
	// round their results to.
	DefaultDigits = 6
)

// Precision bundles the tolerance and rounding settings used by equality and
// trig helpers. The package-level functions use DefaultPrecision.
type Precision struct {
	Tolerance float32
	Digits    int
}

// DefaultPrecision returns the settings the package-level helpers use.
func DefaultPrecision() Precision {
	return Precision{Tolerance: DefaultTolerance, Digits: DefaultDigits}
}

// Round rounds x half-to-even to p.Digits decimal places.
func (p Precision) Round(x float64) float32 {
	scale := math.Pow(10, float64(p.Digits))
	return float32(math.RoundToEven(x*scale) / scale)
}

func (p Precision) Cos(rad float32) float32 {
	return p.Round(math.Cos(float64(rad)))
}

func (p Precision) Sin(rad float32) float32 {
	return p.Round(math.Sin(float64(rad)))
}

// DegToRad converts degrees to radians, rounded.
func (p Precision) DegToRad(deg float32) float32 {
	return p.Round(float64(deg) / (180.0 / math.Pi))
}

// RadToDeg converts radians to degrees. The result is not rounded.
func (p Precision) RadToDeg(rad float32) float32 {
	return float32(180.0/math.Pi) * rad
}

// Near reports whether a and b differ by no more than p.Tolerance.
func (p Precision) Near(a, b float32) bool {
	return Near(a, b, p.Tolerance)
}

// Cos returns cos(rad) rounded to DefaultDigits.
func Cos(rad float32) float32 { return DefaultPrecision().Cos(rad) }

// Sin returns sin(rad) rounded to DefaultDigits.
func Sin(rad float32) float32 { return DefaultPrecision().Sin(rad) }

// DegToRad converts degrees to radians, rounded to DefaultDigits.
func DegToRad(deg float32) float32 { return DefaultPrecision().DegToRad(deg) }

// RadToDeg converts radians to degrees without rounding.
func RadToDeg(rad float32) float32 { return DefaultPrecision().RadToDeg(rad) }

// Near reports whether |a-b| <= tol. A difference of exactly tol is equal;
// only a strictly larger one fails.
func Near(a, b, tol float32) bool {
	return !(math32.Abs(a-b) > tol)
}
