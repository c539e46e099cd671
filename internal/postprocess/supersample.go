package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces img to size×size. Filtering happens on premultiplied
// alpha, which prevents dark halos at transparent edges.
func Downsample(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}

	// RGBA is premultiplied; the scaler reads NRGBA through RGBA().
	premul := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(premul, premul.Bounds(), img, b, draw.Src, nil)

	// Unpremultiply
	out := image.NewNRGBA(premul.Bounds())
	draw.Draw(out, out.Bounds(), premul, image.Point{}, draw.Src)
	return out
}
