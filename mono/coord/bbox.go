package coord

import (
	"fmt"
	"iter"
)

// Axis selects X or Y.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// BBox is an axis-aligned box, inclusive on both ends.
//
// A box with Start > End on an axis is not rejected; it iterates as empty on that
// axis. Split produces such boxes at the edges (e.g. a progress bar at 0%).
type BBox struct {
	Start, End Vec2
}

func NewBBox(start, end Vec2) BBox { return BBox{Start: start, End: end} }

// FromRelative returns the box from start to start+delta.
func FromRelative(start, delta Vec2) BBox {
	return BBox{Start: start, End: start.Add(delta)}
}

// Transform moves both edges on one axis: Start-delta and End+delta.
// A negative delta shrinks the box, a positive one grows it.
func (b BBox) Transform(axis Axis, delta int) BBox {
	switch axis {
	case AxisX:
		return BBox{V(b.Start.X-delta, b.Start.Y), V(b.End.X+delta, b.End.Y)}
	default:
		return BBox{V(b.Start.X, b.Start.Y-delta), V(b.End.X, b.End.Y+delta)}
	}
}

// TransformBoth applies Transform on both axes.
func (b BBox) TransformBoth(delta int) BBox {
	return BBox{
		Start: V(b.Start.X-delta, b.Start.Y-delta),
		End:   V(b.End.X+delta, b.End.Y+delta),
	}
}

// Split cuts the box on axis: the first part ends at at-1, the second starts at at.
func (b BBox) Split(axis Axis, at int) (BBox, BBox) {
	switch axis {
	case AxisX:
		return BBox{b.Start, V(at-1, b.End.Y)}, BBox{V(at, b.Start.Y), b.End}
	default:
		return BBox{b.Start, V(b.End.X, at-1)}, BBox{V(b.Start.X, at), b.End}
	}
}

// Width is End.X-Start.X. A one pixel wide box has width 0.
func (b BBox) Width() int { return b.End.X - b.Start.X }

// Height is End.Y-Start.Y. A one pixel tall box has height 0.
func (b BBox) Height() int { return b.End.Y - b.Start.Y }

// Empty reports whether the box covers no pixel.
func (b BBox) Empty() bool { return b.Start.X > b.End.X || b.Start.Y > b.End.Y }

// Contains reports whether p lies inside the box.
func (b BBox) Contains(p Vec2) bool {
	return p.X >= b.Start.X && p.X <= b.End.X && p.Y >= b.Start.Y && p.Y <= b.End.Y
}

// Center returns the midpoint, truncated toward Start.
func (b BBox) Center() Vec2 {
	return V(b.Start.X+b.Width()/2, b.Start.Y+b.Height()/2)
}

// IterX yields Start.X..End.X inclusive.
func (b BBox) IterX() iter.Seq[int] { return span(b.Start.X, b.End.X) }

// IterY yields Start.Y..End.Y inclusive.
func (b BBox) IterY() iter.Seq[int] { return span(b.Start.Y, b.End.Y) }

func (b BBox) String() string { return fmt.Sprintf("[%v-%v]", b.Start, b.End) }

// span yields from..to inclusive, or nothing when from > to.
func span(from, to int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if from > to {
			return
		}
		// Stop on v == to so that to == math.MaxInt cannot wrap.
		for v := from; ; v++ {
			if !yield(v) || v == to {
				return
			}
		}
	}
}
