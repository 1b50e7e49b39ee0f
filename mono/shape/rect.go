package shape

import (
	"monolcd/mono"
	"monolcd/mono/coord"
)

// Rect is an axis-aligned rectangle, outlined or filled.
type Rect struct {
	bbox   coord.BBox
	color  mono.Color
	filled bool
}

// NewRect returns the outline of b.
func NewRect(b coord.BBox, c mono.Color) Rect {
	return Rect{bbox: b, color: c}
}

// NewFilledRect returns b filled with c.
func NewFilledRect(b coord.BBox, c mono.Color) Rect {
	return Rect{bbox: b, color: c, filled: true}
}

func (r Rect) BBox() coord.BBox { return r.bbox }

func (r Rect) Draw(s mono.PixelSink) {
	b := r.bbox
	if r.filled {
		for x := range b.IterX() {
			VerticalLine(coord.NewBBox(coord.V(x, b.Start.Y), b.End), r.color).Draw(s)
		}
		return
	}

	leftBottom := coord.V(b.Start.X, b.End.Y)
	rightTop := coord.V(b.End.X, b.Start.Y)

	LineFromBBox(coord.NewBBox(b.Start, leftBottom), r.color).Draw(s)
	LineFromBBox(coord.NewBBox(leftBottom, b.End), r.color).Draw(s)
	LineFromBBox(coord.NewBBox(rightTop, b.End), r.color).Draw(s)
	LineFromBBox(coord.NewBBox(b.Start, rightTop), r.color).Draw(s)
}
