package fb

import (
	"image"
	"image/color"
	"image/draw"

	"monolcd/mono"
)

// Palette maps White to index 0 and Black to index 1.
var Palette = color.Palette{color.White, color.Black}

var _ draw.Image = (*Framebuffer)(nil)

func (f *Framebuffer) ColorModel() color.Model { return Palette }

func (f *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, f.width, f.height) }

func (f *Framebuffer) At(x, y int) color.Color {
	if f.GetPixel(x, y) == mono.Black {
		return color.Black
	}
	return color.White
}

// Set thresholds c at half luminance.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	f.DrawPixel(x, y, FromColor(c))
}

// FromColor maps dark colours to Black and light ones to White. Fully
// transparent colours are White.
func FromColor(c color.Color) mono.Color {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return mono.White
	}
	g := color.Gray16Model.Convert(c).(color.Gray16)
	if g.Y < 0x8000 {
		return mono.Black
	}
	return mono.White
}
