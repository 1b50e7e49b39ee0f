//go:build !tinygo

package hal

import (
	"sync"

	"monolcd/mono/fb"
)

// hostFramebuffer keeps a back buffer for the renderer and a front copy for
// the host output. Present moves a frame from back to front.
type hostFramebuffer struct {
	mu        sync.Mutex
	width     int
	height    int
	rowHeight int
	back      []byte
	front     []byte
	frames    uint64
}

func newHostFramebuffer(width, height, rowHeight int) *hostFramebuffer {
	n := fb.BufferLen(width, height, rowHeight)
	return &hostFramebuffer{
		width:     width,
		height:    height,
		rowHeight: rowHeight,
		back:      make([]byte, n),
		front:     make([]byte, n),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) RowHeight() int      { return f.rowHeight }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatMonoPage }
func (f *hostFramebuffer) Buffer() []byte      { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.frames++
	return nil
}

// snapshot copies the last presented frame into dst and returns the number of
// frames presented so far.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.frames
}

// view wraps a snapshot buffer for pixel reads.
func (f *hostFramebuffer) view(buf []byte) (*fb.Framebuffer, error) {
	return fb.NewWithConfig(buf, fb.Config{Width: f.width, Height: f.height, RowHeight: f.rowHeight})
}
