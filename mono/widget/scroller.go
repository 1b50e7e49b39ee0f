package widget

import (
	"monolcd/mono"
	"monolcd/mono/coord"
	"monolcd/mono/shape"
)

// Scroller is a scroll track with a guide line and a thumb.
//
// Thumb is the thumb extent along the scroll axis in pixels. Only Vertical is
// rendered; a Horizontal scroller draws nothing.
type Scroller struct {
	BBox        coord.BBox
	Position    int // percent, clamped to [0, 100]
	Thumb       int
	Orientation mono.Orientation
	Color       mono.Color
}

func NewScroller(b coord.BBox, position, thumb int, o mono.Orientation, c mono.Color) Scroller {
	return Scroller{BBox: b, Position: position, Thumb: thumb, Orientation: o, Color: c}
}

// ThumbBox returns the thumb outline for a vertical scroller.
func (s Scroller) ThumbBox() coord.BBox {
	b := s.BBox
	thumb := max(s.Thumb, 0)
	pos := min(max(s.Position, 0), 100)
	top := b.Start.Y + (b.End.Y-thumb-b.Start.Y)*pos/100
	return coord.NewBBox(coord.V(b.Start.X, top), coord.V(b.End.X, top+thumb))
}

func (s Scroller) Draw(sink mono.PixelSink) {
	if s.Orientation != mono.Vertical {
		return
	}
	b := s.BBox
	shape.NewFilledRect(b, mono.White).Draw(sink)

	midX := b.Start.X + b.Width()/2
	shape.VerticalLine(coord.NewBBox(coord.V(midX, b.Start.Y), b.End), s.Color).Draw(sink)
	shape.NewRect(s.ThumbBox(), s.Color).Draw(sink)
}
