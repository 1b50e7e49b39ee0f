package widget

import (
	"image/color"
	"math"

	"tinygo.org/x/tinyfont"

	"monolcd/mono"
	"monolcd/mono/coord"
	"monolcd/mono/font/font6x8"
)

// Label is a single line of text. Origin is the left end of the baseline.
type Label struct {
	Origin coord.Vec2
	Text   string
	Color  mono.Color
	Font   tinyfont.Fonter // nil selects font6x8
}

func NewLabel(origin coord.Vec2, text string, c mono.Color) Label {
	return Label{Origin: origin, Text: text, Color: c}
}

func (l Label) font() tinyfont.Fonter {
	if l.Font == nil {
		return font6x8.Font
	}
	return l.Font
}

// Width returns the advance of the text in pixels.
func (l Label) Width() int {
	_, outbox := tinyfont.LineWidth(l.font(), l.Text)
	return int(outbox)
}

func (l Label) Draw(s mono.PixelSink) {
	d := sinkDisplayer{sink: s, color: l.Color}
	tinyfont.WriteLine(d, l.font(), int16(l.Origin.X), int16(l.Origin.Y), l.Text, color.RGBA{A: 0xFF})
}

// sinkDisplayer lets tinyfont draw onto a PixelSink. Every pixel tinyfont sets
// is written in the label colour.
type sinkDisplayer struct {
	sink  mono.PixelSink
	color mono.Color
}

func (d sinkDisplayer) Size() (x, y int16) { return math.MaxInt16, math.MaxInt16 }

func (d sinkDisplayer) SetPixel(x, y int16, _ color.RGBA) {
	d.sink.DrawPixel(int(x), int(y), d.color)
}

func (d sinkDisplayer) Display() error { return nil }
