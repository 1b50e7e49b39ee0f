package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMonoPage is 1bpp, one byte per column of a page, bit 0 on top.
	PixelFormatMonoPage PixelFormat = iota + 1
)

// Default panel geometry of the emulated LCD.
const (
	DefaultWidth     = 160
	DefaultHeight    = 32
	DefaultRowHeight = 8
	DefaultScale     = 4
)

// Framebuffer is a page-packed pixel buffer plus a "present" hook.
//
// Buffer returns the back buffer. Renderers draw into it and call Present to
// publish a finished frame to the host output.
type Framebuffer interface {
	Width() int
	Height() int
	RowHeight() int
	Format() PixelFormat
	Buffer() []byte
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
