package raster

import (
	"github.com/chewxy/math32"

	"mathlibrary/mathutil"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir mathutil.Vec3
	ViewDir  mathutil.Vec3
	HalfMain mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient  float32
	Hemi     float32
	Direct   float32
	SpecInt  float32
	SpecPow  float32
}

// DefaultLightConfig returns a key light from the upper right front.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{180, 260, 140}.Normalized()
	viewDir := mathutil.Vec3{0, 0, -1}

	return LightConfig{
		LightDir: lightDir,
		ViewDir:  viewDir,
		HalfMain: lightDir.Sub(viewDir).Normalized(),
		Ambient:  0.35,
		Hemi:     0.15,
		Direct:   0.55,
		SpecInt:  0.25,
		SpecPow:  12,
	}
}

// Shade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) Shade(normal mathutil.Vec3) float32 {
	// Lambertian (abs for double-sided)
	ndl := math32.Abs(normal.Dot(lc.LightDir))

	// Hemisphere fill
	hemi := (1-math32.Abs(normal[1]))*0.5 + 0.5

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math32.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi*lc.Hemi + ndl*lc.Direct + spec
}
