package fb

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Framebuffer to drivers.Displayer so tinyfont and the
// panel terminal can render onto it. Colours are thresholded at half luminance.
type Displayer struct {
	FB *Framebuffer
	// Present, if set, is called by Display.
	Present func() error
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(f *Framebuffer) *Displayer {
	return &Displayer{FB: f}
}

func (d *Displayer) Size() (x, y int16) {
	if d.FB == nil {
		return 0, 0
	}
	return clampInt16(d.FB.Width()), clampInt16(d.FB.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.FB == nil {
		return
	}
	d.FB.DrawPixel(int(x), int(y), FromColor(c))
}

func (d *Displayer) Display() error {
	if d.Present == nil {
		return nil
	}
	return d.Present()
}

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.FB == nil {
		return nil
	}
	w := d.FB.Width()
	h := d.FB.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	m := FromColor(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.FB.DrawPixel(px, py, m)
		}
	}
	return nil
}

// ScrollUp moves the content up by lines pixels and clears the exposed rows.
// Whole-page scrolls move bytes.
func (d *Displayer) ScrollUp(lines int16, bg color.RGBA) error {
	if d.FB == nil || lines <= 0 {
		return nil
	}
	w := d.FB.Width()
	h := d.FB.Height()
	n := int(lines)
	if n >= h {
		return d.FillRectangle(0, 0, int16(w), int16(h), bg)
	}
	if rh := d.FB.RowHeight(); n%rh == 0 {
		buf := d.FB.Bytes()
		copy(buf, buf[n/rh*w:])
		return d.FillRectangle(0, int16(h-n), int16(w), int16(n), bg)
	}
	for y := 0; y < h-n; y++ {
		for x := 0; x < w; x++ {
			d.FB.DrawPixel(x, y, d.FB.GetPixel(x, y+n))
		}
	}
	return d.FillRectangle(0, int16(h-n), int16(w), int16(n), bg)
}

// SetScroll is a no-op: page-addressed panels scroll in software.
func (d *Displayer) SetScroll(line int16) {
	_ = line
}

func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampInt16 saturates v so panels beyond the drivers coordinate range report
// the largest size it can address.
func clampInt16(v int) int16 {
	return int16(clampInt(v, 0, math.MaxInt16))
}
