// Package widget builds composite drawables out of shape primitives.
package widget

import (
	"monolcd/mono"
	"monolcd/mono/coord"
	"monolcd/mono/shape"
)

// DefaultInset is the gap between a progress bar outline and its fill.
const DefaultInset = 1

// ProgressBar is an outlined horizontal bar filled from the left.
type ProgressBar struct {
	BBox     coord.BBox
	Progress int // percent, clamped to [0, 100]
	Color    mono.Color
	Inset    int
}

func NewProgressBar(b coord.BBox, progress int, c mono.Color) ProgressBar {
	return ProgressBar{BBox: b, Progress: progress, Color: c, Inset: DefaultInset}
}

// Inner returns the fill area.
func (p ProgressBar) Inner() coord.BBox {
	return p.BBox.TransformBoth(-max(p.Inset, 0))
}

// SplitX returns the first column of the unfilled part.
func (p ProgressBar) SplitX() int {
	inner := p.Inner()
	progress := min(max(p.Progress, 0), 100)
	cols := max(inner.Width()+1, 0)
	return inner.Start.X + cols*progress/100
}

func (p ProgressBar) Draw(s mono.PixelSink) {
	shape.NewRect(p.BBox, p.Color).Draw(s)

	filled, empty := p.Inner().Split(coord.AxisX, p.SplitX())
	shape.NewFilledRect(filled, p.Color).Draw(s)
	shape.NewFilledRect(empty, mono.White).Draw(s)
}
