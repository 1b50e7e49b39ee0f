// Package mono is the shared vocabulary of the monochrome rendering core.
//
// The core renders onto 1 bit per pixel buffers laid out the way small graphic
// LCD controllers expect them: each byte holds a column of vertically stacked
// pixels of one page (see package fb). Shapes and widgets never depend on the
// concrete framebuffer; they draw onto any PixelSink.
//
// Pipeline (fixed):
//
//	descriptor → Draw(sink) → DrawPixel calls → framebuffer bytes.
//
// Every descriptor is a plain value. Nothing is cached between render passes and
// no call retains the sink.
package mono

// Color is a 1bpp pixel value.
type Color uint8

const (
	// White is an unlit pixel (bit clear).
	White Color = iota
	// Black is a lit pixel (bit set).
	Black
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "invalid"
	}
}

// Orientation selects the scroll axis of a widget.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// PixelSink is a destination for single pixel writes.
//
// DrawPixel reports whether the write landed in bounds. Out-of-bounds writes are
// silently dropped.
type PixelSink interface {
	DrawPixel(x, y int, c Color) bool
}

// PixelSinkFunc adapts a function to a PixelSink.
type PixelSinkFunc func(x, y int, c Color) bool

func (f PixelSinkFunc) DrawPixel(x, y int, c Color) bool { return f(x, y, c) }

// Drawable renders itself onto a sink.
type Drawable interface {
	Draw(s PixelSink)
}

// DrawAll renders each drawable in order.
func DrawAll(s PixelSink, ds ...Drawable) {
	for _, d := range ds {
		if d == nil {
			continue
		}
		d.Draw(s)
	}
}
