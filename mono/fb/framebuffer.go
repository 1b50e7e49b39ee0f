// Package fb implements a page-packed 1bpp framebuffer.
//
// Pixel (x, y) lives in byte (y/RowHeight)*Width + x, bit y%RowHeight, bit 0 at
// the top of the page. A set bit is Black. This is the memory layout of page
// addressed LCD/OLED controllers; a driver that streams Bytes() to such a
// controller needs no conversion.
//
// The framebuffer borrows its buffer from the caller for one render pass and
// never allocates.
package fb

import (
	"errors"
	"fmt"
	"math"

	"monolcd/mono"
)

// DefaultRowHeight is the number of vertically stacked pixels per byte.
const DefaultRowHeight = 8

var (
	ErrInvalidSize    = errors.New("fb: invalid framebuffer size")
	ErrBufferTooSmall = errors.New("fb: buffer too small")
)

// Config describes framebuffer geometry.
type Config struct {
	Width     int
	Height    int
	RowHeight int // 0 means DefaultRowHeight
}

// Framebuffer is a bounds-checked view over a caller-owned byte slice.
type Framebuffer struct {
	width     int
	height    int
	rowHeight int
	buf       []byte
}

var _ mono.PixelSink = (*Framebuffer)(nil)

// New borrows buf as a width x height framebuffer with DefaultRowHeight.
func New(width, height int, buf []byte) (*Framebuffer, error) {
	return NewWithConfig(buf, Config{Width: width, Height: height})
}

// NewWithConfig borrows buf for the geometry in cfg.
func NewWithConfig(buf []byte, cfg Config) (*Framebuffer, error) {
	rh := cfg.RowHeight
	if rh == 0 {
		rh = DefaultRowHeight
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || rh < 1 || rh > 8 {
		return nil, fmt.Errorf("%w: %dx%d row height %d", ErrInvalidSize, cfg.Width, cfg.Height, rh)
	}
	need := BufferLen(cfg.Width, cfg.Height, rh)
	if need == 0 {
		return nil, fmt.Errorf("%w: %dx%d overflows the buffer size", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if len(buf) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, need, len(buf))
	}
	return &Framebuffer{
		width:     cfg.Width,
		height:    cfg.Height,
		rowHeight: rh,
		buf:       buf[:need],
	}, nil
}

// BufferLen returns the bytes needed for a width x height framebuffer:
// one byte per column for every (possibly partial) page. It returns 0 for an
// invalid geometry or one whose size does not fit in an int.
func BufferLen(width, height, rowHeight int) int {
	if width <= 0 || height <= 0 || rowHeight <= 0 {
		return 0
	}
	pages := height / rowHeight
	if height%rowHeight != 0 {
		pages++
	}
	if width > math.MaxInt/pages {
		return 0
	}
	return width * pages
}

func (f *Framebuffer) Width() int     { return f.width }
func (f *Framebuffer) Height() int    { return f.height }
func (f *Framebuffer) RowHeight() int { return f.rowHeight }

// Bytes returns the packed pixel data. It aliases the borrowed buffer.
func (f *Framebuffer) Bytes() []byte { return f.buf }

// InBounds reports whether (x, y) addresses a pixel.
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// DrawPixel writes one pixel. It returns false, writing nothing, when (x, y)
// is out of bounds.
func (f *Framebuffer) DrawPixel(x, y int, c mono.Color) bool {
	if !f.InBounds(x, y) {
		return false
	}
	i := (y/f.rowHeight)*f.width + x
	mask := byte(1) << uint(y%f.rowHeight)
	if c == mono.Black {
		f.buf[i] |= mask
	} else {
		f.buf[i] &^= mask
	}
	return true
}

// GetPixel reads one pixel. Out-of-bounds reads return White.
func (f *Framebuffer) GetPixel(x, y int) mono.Color {
	if !f.InBounds(x, y) {
		return mono.White
	}
	i := (y/f.rowHeight)*f.width + x
	if f.buf[i]&(1<<uint(y%f.rowHeight)) != 0 {
		return mono.Black
	}
	return mono.White
}

// Clear sets every pixel to c.
func (f *Framebuffer) Clear(c mono.Color) {
	var v byte
	if c == mono.Black {
		// Only the low rowHeight bits address pixels.
		v = byte(0xFF >> uint(8-f.rowHeight))
	}
	for i := range f.buf {
		f.buf[i] = v
	}
}

func (f *Framebuffer) String() string {
	return fmt.Sprintf("Framebuffer(%d,%d/%d)", f.width, f.height, f.rowHeight)
}
