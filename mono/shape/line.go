// Package shape holds the geometric primitives of the rendering core.
//
// Every primitive is a comparable value implementing mono.Drawable. Primitives
// render through mono.PixelSink only and rely on the sink for clipping.
package shape

import (
	"monolcd/mono"
	"monolcd/mono/coord"
)

type lineMode uint8

const (
	lineFromBBox lineMode = iota
	lineVertical
	lineByPoints
)

// Line is a one pixel wide line.
//
// A bbox line runs from BBox.Start, stepping X across the box and advancing Y
// towards End.Y with an integer error term. A by-points line connects two
// arbitrary points in any octant.
type Line struct {
	mode  lineMode
	bbox  coord.BBox
	color mono.Color
}

// LineFromBBox draws a line across b from Start to End. A zero width box
// degenerates to a vertical run.
func LineFromBBox(b coord.BBox, c mono.Color) Line {
	return Line{mode: lineFromBBox, bbox: b, color: c}
}

// VerticalLine draws every Y of b at X = b.Start.X.
func VerticalLine(b coord.BBox, c mono.Color) Line {
	return Line{mode: lineVertical, bbox: b, color: c}
}

// LineByPoints draws from p1 to p2, both ends included.
func LineByPoints(p1, p2 coord.Vec2, c mono.Color) Line {
	return Line{mode: lineByPoints, bbox: coord.NewBBox(p1, p2), color: c}
}

func (l Line) Draw(s mono.PixelSink) {
	switch l.mode {
	case lineVertical:
		drawVertical(s, l.bbox, l.color)
	case lineByPoints:
		drawBresenham(s, l.bbox.Start, l.bbox.End, l.color)
	default:
		drawBBoxLine(s, l.bbox, l.color)
	}
}

func drawVertical(s mono.PixelSink, b coord.BBox, c mono.Color) {
	for y := range b.IterY() {
		s.DrawPixel(b.Start.X, y, c)
	}
}

// drawBBoxLine is a width/height driven DDA. Y only ever advances, so the line
// is drawn for the octant where End is right of and below Start.
func drawBBoxLine(s mono.PixelSink, b coord.BBox, c mono.Color) {
	w, h := b.Width(), b.Height()
	if w == 0 {
		drawVertical(s, b, c)
		return
	}

	delta := 2*h - w
	y := b.Start.Y
	for x := range b.IterX() {
		s.DrawPixel(x, y, c)
		if delta > 0 {
			y++
			delta -= 2 * w
		}
		delta += 2 * h
	}
}

func drawBresenham(s mono.PixelSink, p1, p2 coord.Vec2, c mono.Color) {
	x, y := p1.X, p1.Y
	dx := absInt(p2.X - x)
	dy := -absInt(p2.Y - y)
	sx, sy := 1, 1
	if x > p2.X {
		sx = -1
	}
	if y > p2.Y {
		sy = -1
	}

	err := dx + dy
	for {
		s.DrawPixel(x, y, c)
		if x == p2.X && y == p2.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
