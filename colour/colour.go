// Package colour packs four 8-bit RGBA channels into one 32-bit word.
package colour

import (
	"fmt"
	"image/color"
)

// Colour holds red, green, blue and alpha from most to least significant
// byte. Channels are not alpha-premultiplied.
type Colour uint32

const (
	redShift   = 24
	greenShift = 16
	blueShift  = 8
	alphaShift = 0
)

// New packs r, g, b and a into a Colour.
func New(r, g, b, a uint8) Colour {
	var c Colour
	c.SetRed(r)
	c.SetGreen(g)
	c.SetBlue(b)
	c.SetAlpha(a)
	return c
}

func (c Colour) Uint32() uint32 { return uint32(c) }

func (c Colour) Red() uint8   { return uint8(c >> redShift) }
func (c Colour) Green() uint8 { return uint8(c >> greenShift) }
func (c Colour) Blue() uint8  { return uint8(c >> blueShift) }
func (c Colour) Alpha() uint8 { return uint8(c >> alphaShift) }

// SetRed replaces the red byte and leaves the others untouched. The same
// clear-then-or pattern is used for every channel.
func (c *Colour) SetRed(v uint8) {
	*c = *c&0x00ffffff | Colour(v)<<redShift
}

func (c *Colour) SetGreen(v uint8) {
	*c = *c&0xff00ffff | Colour(v)<<greenShift
}

func (c *Colour) SetBlue(v uint8) {
	*c = *c&0xffff00ff | Colour(v)<<blueShift
}

func (c *Colour) SetAlpha(v uint8) {
	*c = *c&0xffffff00 | Colour(v)<<alphaShift
}

// NRGBA returns c as the equivalent image/color value.
func (c Colour) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// RGBA implements color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Scale multiplies red, green and blue by f, clamping to 0–255. Alpha is kept.
func (c Colour) Scale(f float32) Colour {
	return New(scale8(c.Red(), f), scale8(c.Green(), f), scale8(c.Blue(), f), c.Alpha())
}

func scale8(v uint8, f float32) uint8 {
	x := float32(v)*f + 0.5
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// String formats c as #rrggbbaa.
func (c Colour) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// Model converts any color.Color to a Colour.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if cc, ok := c.(Colour); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return New(n.R, n.G, n.B, n.A)
})
