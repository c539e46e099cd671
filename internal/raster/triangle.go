package raster

import (
	"github.com/chewxy/math32"

	"mathlibrary/colour"
	"mathlibrary/mathutil"
)

// FillTriangle rasterizes a screen-space triangle with a flat colour and a
// z-buffer test. x and y are pixel coordinates, z is depth (larger is nearer).
//
// This is the hot path and allocates nothing.
func FillTriangle(fb *FrameBuffer, p0, p1, p2 mathutil.Vec3, c colour.Colour) {
	x0, y0, z0 := p0[0], p0[1], p0[2]
	x1, y1, z1 := p1[0], p1[1], p1[2]
	x2, y2, z2 := p2[0], p2[1], p2[2]

	// Bounding box
	minX := int(math32.Min(math32.Min(x0, x1), x2))
	maxX := int(math32.Max(math32.Max(x0, x1), x2)) + 1
	minY := int(math32.Min(math32.Min(y0, y1), y2))
	maxY := int(math32.Max(math32.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-6 && det < 1e-6 {
		return
	}
	invDet := 1 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			i := rowOff + sx
			if z <= fb.ZBuf[i] {
				continue
			}
			fb.ZBuf[i] = z
			fb.Pix[i] = c
		}
	}
}
