package shape

import (
	"monolcd/mono"
	"monolcd/mono/coord"
)

// Ellipse is an axis-aligned elliptic ring with semi-axes width and height.
type Ellipse struct {
	center    coord.Vec2
	width     int
	height    int
	thickness int
	color     mono.Color
}

// NewEllipse returns a one pixel thick ellipse. Negative semi-axes are treated
// as 0.
func NewEllipse(width, height int, center coord.Vec2, c mono.Color) Ellipse {
	return Ellipse{
		center:    center,
		width:     max(width, 0),
		height:    max(height, 0),
		thickness: 1,
		color:     c,
	}
}

// EllipseFromBBox inscribes an ellipse in b.
func EllipseFromBBox(b coord.BBox, c mono.Color) Ellipse {
	w := b.Width() / 2
	h := b.Height() / 2
	return NewEllipse(w, h, coord.V(b.Start.X+w, b.Start.Y+h), c)
}

// MaxThickness is the thickness of a fully filled ellipse.
func (e Ellipse) MaxThickness() int { return min(e.width, e.height) }

// Filled sets the thickness to MaxThickness, or back to 1.
func (e Ellipse) Filled(filled bool) Ellipse {
	if filled {
		e.thickness = e.MaxThickness()
	} else {
		e.thickness = 1
	}
	return e
}

// Thickness sets the ring thickness, clamped to [0, MaxThickness].
func (e Ellipse) Thickness(t int) Ellipse {
	e.thickness = min(max(t, 0), e.MaxThickness())
	return e
}

func (e Ellipse) Draw(s mono.PixelSink) {
	w, h := e.width, e.height
	wSq, hSq := w*w, h*h
	iw, ih := w-e.thickness, h-e.thickness
	iwSq, ihSq := iw*iw, ih*ih
	solid := e.thickness >= e.MaxThickness()

	x, y := e.center.X, e.center.Y
	for dx := -w; dx <= w; dx++ {
		for dy := -h; dy <= h; dy++ {
			if dx*dx*hSq+dy*dy*wSq >= hSq*wSq {
				continue
			}
			if !solid && dx*dx*ihSq+dy*dy*iwSq <= iwSq*ihSq-1 {
				continue
			}
			s.DrawPixel(x+dx, y+dy, e.color)
		}
	}
}
