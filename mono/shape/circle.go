package shape

import (
	"monolcd/mono"
	"monolcd/mono/coord"
)

// Circle is a ring of the given thickness around Center.
//
// Rendering is a ring test over the square [-r, r) x [-r, r): a pixel is drawn
// when its squared distance d satisfies (r-t)^2-1 < d < r^2-1. Radii up to 4
// come out close to a square; that is a property of the test and is kept.
type Circle struct {
	center    coord.Vec2
	r         int
	thickness int
	color     mono.Color
}

// NewCircle returns a one pixel thick circle. Negative radii are treated as 0.
func NewCircle(center coord.Vec2, r int, c mono.Color) Circle {
	if r < 0 {
		r = 0
	}
	return Circle{center: center, r: r, thickness: 1, color: c}
}

// CircleFromBBox inscribes a circle in b, using the smaller side.
func CircleFromBBox(b coord.BBox, c mono.Color) Circle {
	r := min(b.Width(), b.Height()) / 2
	return NewCircle(coord.V(b.Start.X+r, b.Start.Y+r), r, c)
}

// Filled sets the thickness to the radius, or back to 1.
func (c Circle) Filled(filled bool) Circle {
	if filled {
		c.thickness = c.r
	} else {
		c.thickness = 1
	}
	return c
}

// Thickness sets the ring thickness, clamped to [1, r]. Values below 1 keep
// the current thickness.
func (c Circle) Thickness(t int) Circle {
	if t >= 1 {
		c.thickness = t
	}
	if t >= c.r {
		c.thickness = c.r
	}
	return c
}

func (c Circle) Center() coord.Vec2 { return c.center }
func (c Circle) Radius() int        { return c.r }

func (c Circle) Draw(s mono.PixelSink) {
	r := c.r
	x, y := c.center.X, c.center.Y
	if r == 1 {
		s.DrawPixel(x, y, c.color)
		return
	}

	t := c.thickness
	outer := r*r - 1
	inner := (r-t)*(r-t) - 1
	for dx := -r; dx < r; dx++ {
		for dy := -r; dy < r; dy++ {
			d := dx*dx + dy*dy
			if d < outer && d > inner {
				s.DrawPixel(x+dx, y+dy, c.color)
			}
		}
	}
}
