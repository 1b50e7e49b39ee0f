package widget

import (
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"monolcd/mono"
	"monolcd/mono/coord"
)

// Picture is a dithered bitmap placed at a box origin.
type Picture struct {
	Origin coord.Vec2
	img    *image.Paletted
}

// NewPicture scales src to fit b (keeping its aspect ratio) and dithers it to
// black and white. A nil or empty source gives an empty picture.
func NewPicture(src image.Image, b coord.BBox) Picture {
	p := Picture{Origin: b.Start}
	if src == nil || src.Bounds().Empty() || b.Empty() {
		return p
	}

	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	bw, bh := b.Width()+1, b.Height()+1
	w, h := bw, sh*bw/sw
	if h > bh {
		w, h = sw*bh/sh, bh
	}
	w, h = max(w, 1), max(h, 1)

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(scaled, scaled.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Over, nil)

	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	p.img = d.DitherPaletted(scaled)
	return p
}

// Size returns the dithered bitmap dimensions.
func (p Picture) Size() (w, h int) {
	if p.img == nil {
		return 0, 0
	}
	return p.img.Rect.Dx(), p.img.Rect.Dy()
}

// Draw writes every pixel of the bitmap, white ones included.
func (p Picture) Draw(s mono.PixelSink) {
	if p.img == nil {
		return
	}
	r := p.img.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := mono.White
			if p.img.ColorIndexAt(x, y) == 0 {
				c = mono.Black
			}
			s.DrawPixel(p.Origin.X+x-r.Min.X, p.Origin.Y+y-r.Min.Y, c)
		}
	}
}
