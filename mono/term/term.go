// Package term is a line terminal for monochrome page-addressed panels.
//
// Text is laid out on a fixed grid of FontHeight pixel lines. With a line
// pitch that is a multiple of the panel row height every line starts on a page
// boundary, so scrolling moves whole pages. A small subset of ANSI escape
// sequences is understood: cursor moves (CUF, CUB, CHA, CUP), erase in line and
// display (EL, ED), reset (RIS) and the SGR reset and reverse video attributes.
// Colour attributes have no meaning on a 1bpp panel and are ignored.
package term

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer is the panel surface the terminal draws on.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	ScrollUp(lines int16, bg color.RGBA) error
}

var (
	ink   = color.RGBA{A: 0xFF}
	paper = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// SGR parameters with a monochrome meaning.
const (
	SGRReset     = 0
	SGRReverse   = 7
	SGRNoReverse = 27
)

type Config struct {
	Font tinyfont.Fonter
	// FontHeight is the line pitch in pixels.
	FontHeight int16
	// FontOffset is the baseline offset from the top of a line.
	FontOffset int16
}

type state uint8

const (
	stateInput state = iota
	stateEscape
	stateCSI
)

// Terminal writes text onto a Displayer.
type Terminal struct {
	d Displayer

	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16

	width, height int16
	rows, cols    int16
	row, col      int16
	reverse       bool

	state  state
	params []byte
	pend   []byte
}

// New clears d and returns a terminal with the cursor at the top left.
func New(d Displayer, cfg Config) *Terminal {
	t := &Terminal{d: d, font: cfg.Font, fontHeight: cfg.FontHeight, fontOffset: cfg.FontOffset}
	_, w := tinyfont.LineWidth(cfg.Font, "0")
	t.fontWidth = int16(max(w, 1))
	if t.fontHeight <= 0 {
		t.fontHeight = int16(max(cfg.Font.GetYAdvance(), 1))
	}
	t.width, t.height = d.Size()
	t.rows = max(t.height/t.fontHeight, 1)
	t.cols = max(t.width/t.fontWidth, 1)
	t.Reset()
	return t
}

// Reset clears the panel, the cursor and the attributes.
func (t *Terminal) Reset() {
	t.row, t.col = 0, 0
	t.reverse = false
	t.state = stateInput
	t.params = t.params[:0]
	t.pend = t.pend[:0]
	_ = t.d.FillRectangle(0, 0, t.width, t.height, paper)
}

// Size returns the grid in text cells.
func (t *Terminal) Size() (cols, rows int) { return int(t.cols), int(t.rows) }

// Cursor returns the cell the next rune is drawn into.
func (t *Terminal) Cursor() (col, row int) { return int(t.col), int(t.row) }

func (t *Terminal) Write(buf []byte) (int, error) {
	for _, b := range buf {
		t.putByte(b)
	}
	return len(buf), nil
}

func (t *Terminal) WriteByte(b byte) error {
	t.putByte(b)
	return nil
}

func (t *Terminal) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(t, format, args...)
}

// Display pushes the drawn text to the panel.
func (t *Terminal) Display() error {
	return t.d.Display()
}

func (t *Terminal) putByte(b byte) {
	switch t.state {
	case stateEscape:
		t.escape(b)
		return
	case stateCSI:
		t.csi(b)
		return
	}

	if len(t.pend) > 0 || b >= utf8.RuneSelf {
		t.pend = append(t.pend, b)
		if !utf8.FullRune(t.pend) {
			return
		}
		r, _ := utf8.DecodeRune(t.pend)
		t.pend = t.pend[:0]
		t.drawRune(r)
		return
	}

	switch b {
	case 0x1b:
		t.state = stateEscape
	case '\r':
		t.col = 0
	case '\n':
		t.lineFeed()
	case '\b':
		t.col = max(t.col-1, 0)
	case '\t':
		t.col = min((t.col/8+1)*8, t.cols-1)
	default:
		if b >= 0x20 {
			t.drawRune(rune(b))
		}
	}
}

func (t *Terminal) escape(b byte) {
	switch b {
	case '[':
		t.params = t.params[:0]
		t.state = stateCSI
		return
	case 'c':
		t.Reset()
	}
	t.state = stateInput
}

func (t *Terminal) csi(b byte) {
	if b >= 0x20 && b <= 0x3f {
		t.params = append(t.params, b)
		return
	}
	t.state = stateInput

	p := t.paramList()
	switch b {
	case 'C':
		t.col = min(t.col+int16(param(p, 0, 1)), t.cols-1)
	case 'D':
		t.col = max(t.col-int16(param(p, 0, 1)), 0)
	case 'G':
		t.col = clamp16(param(p, 0, 1)-1, t.cols-1)
	case 'H', 'f':
		t.row = clamp16(param(p, 0, 1)-1, t.rows-1)
		t.col = clamp16(param(p, 1, 1)-1, t.cols-1)
	case 'K':
		t.eraseInLine(param(p, 0, 0))
	case 'J':
		t.eraseInDisplay(param(p, 0, 0))
	case 'm':
		t.selectGraphicRendition(p)
	}
}

func (t *Terminal) paramList() []string {
	s := strings.TrimSpace(string(t.params))
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}

// param returns the i-th numeric parameter, or def when missing or zero width.
func param(p []string, i, def int) int {
	if i >= len(p) || p[i] == "" {
		return def
	}
	n, err := strconv.Atoi(p[i])
	if err != nil || n < 0 {
		return def
	}
	return n
}

func clamp16(v int, hi int16) int16 {
	return int16(min(max(v, 0), int(hi)))
}

func (t *Terminal) selectGraphicRendition(p []string) {
	if len(p) == 0 {
		t.reverse = false
		return
	}
	for i := range p {
		switch param(p, i, SGRReset) {
		case SGRReset:
			t.reverse = false
		case SGRReverse:
			t.reverse = true
		case SGRNoReverse:
			t.reverse = false
		}
	}
}

func (t *Terminal) colors() (fg, bg color.RGBA) {
	if t.reverse {
		return paper, ink
	}
	return ink, paper
}

func (t *Terminal) drawRune(r rune) {
	if t.col >= t.cols {
		t.col = 0
		t.lineFeed()
	}
	fg, bg := t.colors()
	x := t.col * t.fontWidth
	y := t.row * t.fontHeight
	_ = t.d.FillRectangle(x, y, t.fontWidth, t.fontHeight, bg)
	cell := clipDisplayer{Displayer: t.d, x0: x, y0: y, x1: x + t.fontWidth, y1: y + t.fontHeight}
	tinyfont.DrawChar(cell, t.font, x, y+t.fontOffset, r, fg)
	t.col++
}

func (t *Terminal) lineFeed() {
	if t.row < t.rows-1 {
		t.row++
		return
	}
	_ = t.d.ScrollUp(t.fontHeight, paper)
}

func (t *Terminal) eraseInLine(mode int) {
	y := t.row * t.fontHeight
	x := min(t.col, t.cols) * t.fontWidth
	switch mode {
	case 1:
		_ = t.d.FillRectangle(0, y, x+t.fontWidth, t.fontHeight, paper)
	case 2:
		_ = t.d.FillRectangle(0, y, t.width, t.fontHeight, paper)
	default:
		_ = t.d.FillRectangle(x, y, t.width-x, t.fontHeight, paper)
	}
}

func (t *Terminal) eraseInDisplay(mode int) {
	y := t.row * t.fontHeight
	switch mode {
	case 1:
		_ = t.d.FillRectangle(0, 0, t.width, y, paper)
		t.eraseInLine(1)
	case 2, 3:
		_ = t.d.FillRectangle(0, 0, t.width, t.height, paper)
	default:
		t.eraseInLine(0)
		_ = t.d.FillRectangle(0, y+t.fontHeight, t.width, t.height-y-t.fontHeight, paper)
	}
}

// clipDisplayer keeps glyph pixels inside one text cell.
type clipDisplayer struct {
	Displayer
	x0, y0, x1, y1 int16
}

func (d clipDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < d.x0 || x >= d.x1 || y < d.y0 || y >= d.y1 {
		return
	}
	d.Displayer.SetPixel(x, y, c)
}
