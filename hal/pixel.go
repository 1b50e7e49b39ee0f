package hal

import (
	"image"
	"image/color"

	"monolcd/mono"
	"monolcd/mono/fb"
)

// Palette is how the emulated panel shows its pixels.
type Palette struct {
	Lit   color.RGBA
	Unlit color.RGBA
	Grid  color.RGBA
}

// DefaultPalette draws lit pixels white on black with a light grey grid.
var DefaultPalette = Palette{
	Lit:   color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	Unlit: color.RGBA{0x00, 0x00, 0x00, 0xFF},
	Grid:  color.RGBA{0xC8, 0xC8, 0xC8, 0xFF},
}

// expandMono paints f into dst with each pixel as a scale x scale cell. When
// scale > 1 the last row and column of every cell are the grid colour.
func expandMono(dst *image.RGBA, f *fb.Framebuffer, scale int, p Palette) {
	if scale < 1 {
		scale = 1
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := p.Unlit
			if f.GetPixel(x, y) == mono.Black {
				c = p.Lit
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					px := c
					if scale > 1 && (dx == scale-1 || dy == scale-1) {
						px = p.Grid
					}
					dst.SetRGBA(x*scale+dx, y*scale+dy, px)
				}
			}
		}
	}
}
