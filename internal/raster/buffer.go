package raster

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/cespare/xxhash/v2"

	"mathlibrary/colour"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []colour.Colour // packed RGBA, len = W*H
	ZBuf   []float32       // depth per pixel, len = W*H, larger is nearer
}

// NewFrameBuffer allocates a transparent colour buffer and a -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]colour.Colour, n),
		ZBuf:   make([]float32, n),
	}
	fb.Clear(0)
	return fb
}

// Clear fills every pixel with c and resets depth.
func (fb *FrameBuffer) Clear(c colour.Colour) {
	inf := float32(math.Inf(-1))
	for i := range fb.Pix {
		fb.Pix[i] = c
		fb.ZBuf[i] = inf
	}
}

func (fb *FrameBuffer) At(x, y int) colour.Colour {
	return fb.Pix[y*fb.Width+x]
}

// Image unpacks the buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Pix {
		binary.BigEndian.PutUint32(img.Pix[i*4:], c.Uint32())
	}
	return img
}

// Digest hashes the packed pixels. Equal frames have equal digests.
func (fb *FrameBuffer) Digest() uint64 {
	buf := make([]byte, 4*len(fb.Pix))
	for i, c := range fb.Pix {
		binary.BigEndian.PutUint32(buf[i*4:], c.Uint32())
	}
	return xxhash.Sum64(buf)
}
