package shape

import (
	"sort"
	"testing"

	"monolcd/mono"
	"monolcd/mono/coord"
)

// recorder is a pixel sink that keeps the last colour written per pixel and
// the raw write count.
type recorder struct {
	px     map[coord.Vec2]mono.Color
	writes int
}

func newRecorder() *recorder { return &recorder{px: make(map[coord.Vec2]mono.Color)} }

func (r *recorder) DrawPixel(x, y int, c mono.Color) bool {
	r.px[coord.V(x, y)] = c
	r.writes++
	return true
}

func (r *recorder) has(x, y int) bool {
	_, ok := r.px[coord.V(x, y)]
	return ok
}

func (r *recorder) sorted() []coord.Vec2 {
	out := make([]coord.Vec2, 0, len(r.px))
	for p := range r.px {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestVerticalLine(t *testing.T) {
	r := newRecorder()
	VerticalLine(coord.NewBBox(coord.V(3, 2), coord.V(99, 6)), mono.Black).Draw(r)
	if len(r.px) != 5 {
		t.Fatalf("pixels = %d, want 5", len(r.px))
	}
	for y := 2; y <= 6; y++ {
		if !r.has(3, y) {
			t.Fatalf("missing (3,%d)", y)
		}
	}
}

func TestBBoxLineHorizontal(t *testing.T) {
	r := newRecorder()
	LineFromBBox(coord.NewBBox(coord.V(0, 4), coord.V(9, 4)), mono.Black).Draw(r)
	if len(r.px) != 10 {
		t.Fatalf("pixels = %d, want 10", len(r.px))
	}
	for x := 0; x <= 9; x++ {
		if !r.has(x, 4) {
			t.Fatalf("missing (%d,4)", x)
		}
	}
}

func TestBBoxLineZeroWidthIsVertical(t *testing.T) {
	r := newRecorder()
	LineFromBBox(coord.NewBBox(coord.V(7, 0), coord.V(7, 3)), mono.Black).Draw(r)
	want := []coord.Vec2{{X: 7, Y: 0}, {X: 7, Y: 1}, {X: 7, Y: 2}, {X: 7, Y: 3}}
	got := r.sorted()
	if len(got) != len(want) {
		t.Fatalf("pixels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixels = %v, want %v", got, want)
		}
	}
}

func TestBBoxLineDiagonal(t *testing.T) {
	r := newRecorder()
	LineFromBBox(coord.NewBBox(coord.V(0, 0), coord.V(4, 4)), mono.Black).Draw(r)
	for i := 0; i <= 4; i++ {
		if !r.has(i, i) {
			t.Fatalf("missing (%d,%d); got %v", i, i, r.sorted())
		}
	}
	if len(r.px) != 5 {
		t.Fatalf("pixels = %d, want 5", len(r.px))
	}
}

func TestBBoxLineShallow(t *testing.T) {
	r := newRecorder()
	LineFromBBox(coord.NewBBox(coord.V(0, 0), coord.V(8, 2)), mono.Black).Draw(r)
	if len(r.px) != 9 {
		t.Fatalf("pixels = %d, want one per column (9)", len(r.px))
	}
	if !r.has(0, 0) || !r.has(8, 2) {
		t.Fatalf("endpoints missing: %v", r.sorted())
	}
	prev := -1
	for x := 0; x <= 8; x++ {
		found := -1
		for y := 0; y <= 2; y++ {
			if r.has(x, y) {
				found = y
			}
		}
		if found < prev {
			t.Fatalf("y went backwards at x=%d: %v", x, r.sorted())
		}
		prev = found
	}
}

func TestLineByPointsAllOctants(t *testing.T) {
	ends := []coord.Vec2{
		{X: 10, Y: 3}, {X: 3, Y: 10}, {X: -3, Y: 10}, {X: -10, Y: 3},
		{X: -10, Y: -3}, {X: -3, Y: -10}, {X: 3, Y: -10}, {X: 10, Y: -3},
		{X: 0, Y: 5}, {X: 5, Y: 0}, {X: 0, Y: -5}, {X: -5, Y: 0}, {X: 0, Y: 0},
	}
	for _, e := range ends {
		r := newRecorder()
		LineByPoints(coord.V(0, 0), e, mono.Black).Draw(r)
		if !r.has(0, 0) || !r.has(e.X, e.Y) {
			t.Fatalf("line to %v misses an endpoint: %v", e, r.sorted())
		}
		want := max(absInt(e.X), absInt(e.Y)) + 1
		if len(r.px) != want {
			t.Fatalf("line to %v has %d pixels, want %d", e, len(r.px), want)
		}
	}
}

func TestLineByPointsSymmetric(t *testing.T) {
	a, b := coord.V(2, 1), coord.V(11, 5)
	fwd, back := newRecorder(), newRecorder()
	LineByPoints(a, b, mono.Black).Draw(fwd)
	LineByPoints(b, a, mono.Black).Draw(back)
	if len(fwd.px) != len(back.px) {
		t.Fatalf("pixel counts differ: %d vs %d", len(fwd.px), len(back.px))
	}
}

func TestRectOutline(t *testing.T) {
	r := newRecorder()
	NewRect(coord.NewBBox(coord.V(1, 1), coord.V(5, 4)), mono.Black).Draw(r)
	// 5x4 box perimeter.
	if len(r.px) != 2*5+2*4-4 {
		t.Fatalf("pixels = %d, want 14", len(r.px))
	}
	if r.has(3, 2) {
		t.Fatalf("outline painted the interior")
	}
	for _, p := range []coord.Vec2{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 1, Y: 4}, {X: 5, Y: 4}} {
		if !r.has(p.X, p.Y) {
			t.Fatalf("missing corner %v", p)
		}
	}
}

func TestRectFilled(t *testing.T) {
	r := newRecorder()
	b := coord.NewBBox(coord.V(2, 3), coord.V(6, 5))
	NewFilledRect(b, mono.White).Draw(r)
	if len(r.px) != 5*3 {
		t.Fatalf("pixels = %d, want 15", len(r.px))
	}
	for p, c := range r.px {
		if !b.Contains(p) || c != mono.White {
			t.Fatalf("unexpected pixel %v %v", p, c)
		}
	}
}

func TestRectInvertedDrawsNothingFilled(t *testing.T) {
	r := newRecorder()
	NewFilledRect(coord.NewBBox(coord.V(5, 0), coord.V(4, 3)), mono.Black).Draw(r)
	if r.writes != 0 {
		t.Fatalf("writes = %d, want 0", r.writes)
	}
}

func TestCircleFromBBox(t *testing.T) {
	got := CircleFromBBox(coord.NewBBox(coord.V(0, 10), coord.V(10, 20)), mono.Black)
	want := NewCircle(coord.V(5, 15), 5, mono.Black)
	if got != want {
		t.Fatalf("CircleFromBBox() = %+v, want %+v", got, want)
	}

	got = CircleFromBBox(coord.NewBBox(coord.V(0, 0), coord.V(30, 8)), mono.Black)
	if got.Radius() != 4 || got.Center() != coord.V(4, 4) {
		t.Fatalf("CircleFromBBox(wide) = r%d at %v, want r4 at (4,4)", got.Radius(), got.Center())
	}
}

func TestCircleThicknessClamp(t *testing.T) {
	c := NewCircle(coord.V(0, 0), 5, mono.Black)
	if got := c.Thickness(9); got != c.Filled(true) {
		t.Fatalf("Thickness(9) = %+v, want filled", got)
	}
	if got := c.Thickness(0); got != c {
		t.Fatalf("Thickness(0) changed the circle: %+v", got)
	}
	if got := c.Thickness(3).Filled(false); got != c {
		t.Fatalf("Filled(false) = %+v, want thickness 1", got)
	}
}

func TestCircleRadiusOne(t *testing.T) {
	r := newRecorder()
	NewCircle(coord.V(3, 3), 1, mono.Black).Draw(r)
	if len(r.px) != 1 || !r.has(3, 3) {
		t.Fatalf("radius 1 = %v, want single centre pixel", r.sorted())
	}
}

func TestCircleRing(t *testing.T) {
	const rad = 8
	r := newRecorder()
	NewCircle(coord.V(20, 20), rad, mono.Black).Draw(r)
	if r.has(20, 20) {
		t.Fatalf("thin ring painted the centre")
	}
	for p := range r.px {
		dx, dy := p.X-20, p.Y-20
		d := dx*dx + dy*dy
		if d >= rad*rad-1 || d <= (rad-1)*(rad-1)-1 {
			t.Fatalf("pixel %v at d=%d outside ring", p, d)
		}
	}
	if len(r.px) == 0 {
		t.Fatalf("ring drew nothing")
	}
}

func TestCircleFilledCoversCentre(t *testing.T) {
	r := newRecorder()
	NewCircle(coord.V(10, 10), 6, mono.Black).Filled(true).Draw(r)
	if !r.has(10, 10) || !r.has(12, 9) {
		t.Fatalf("filled circle has holes near the centre")
	}
}

func TestEllipseMaxThickness(t *testing.T) {
	if got := NewEllipse(10, 20, coord.V(0, 0), mono.Black).MaxThickness(); got != 10 {
		t.Fatalf("MaxThickness() = %d, want 10", got)
	}
	if got := NewEllipse(123, 100, coord.V(0, 0), mono.Black).MaxThickness(); got != 100 {
		t.Fatalf("MaxThickness() = %d, want 100", got)
	}
	e := NewEllipse(6, 4, coord.V(0, 0), mono.Black)
	if got := e.Thickness(50); got != e.Filled(true) {
		t.Fatalf("Thickness(50) = %+v, want filled", got)
	}
}

func TestEllipseFromBBox(t *testing.T) {
	got := EllipseFromBBox(coord.NewBBox(coord.V(10, 0), coord.V(30, 10)), mono.Black)
	want := NewEllipse(10, 5, coord.V(20, 5), mono.Black)
	if got != want {
		t.Fatalf("EllipseFromBBox() = %+v, want %+v", got, want)
	}
}

func TestEllipseRingAndFill(t *testing.T) {
	e := NewEllipse(12, 6, coord.V(30, 30), mono.Black)

	ring := newRecorder()
	e.Draw(ring)
	if ring.has(30, 30) {
		t.Fatalf("ring painted the centre")
	}
	if !ring.has(30+11, 30) || !ring.has(30, 30+5) {
		t.Fatalf("ring misses the axis extremes: %v", ring.sorted())
	}

	solid := newRecorder()
	e.Filled(true).Draw(solid)
	if !solid.has(30, 30) {
		t.Fatalf("filled ellipse misses the centre")
	}
	for p := range ring.px {
		if !solid.has(p.X, p.Y) {
			t.Fatalf("filled ellipse misses ring pixel %v", p)
		}
	}
	for p := range solid.px {
		dx, dy := p.X-30, p.Y-30
		if dx*dx*36+dy*dy*144 >= 36*144 {
			t.Fatalf("pixel %v outside the outer ellipse", p)
		}
	}
}

func TestTriangle(t *testing.T) {
	a, b, c := coord.V(0, 0), coord.V(10, 0), coord.V(5, 8)
	r := newRecorder()
	NewTriangle(a, b, c, mono.Black).Draw(r)

	for _, p := range []coord.Vec2{a, b, c} {
		if !r.has(p.X, p.Y) {
			t.Fatalf("missing vertex %v", p)
		}
	}
	for _, edge := range [][2]coord.Vec2{{a, b}, {b, c}, {c, a}} {
		lr := newRecorder()
		LineByPoints(edge[0], edge[1], mono.Black).Draw(lr)
		for p := range lr.px {
			if !r.has(p.X, p.Y) {
				t.Fatalf("edge %v-%v pixel %v missing", edge[0], edge[1], p)
			}
		}
	}
}

func TestDrawAllSkipsNil(t *testing.T) {
	r := newRecorder()
	mono.DrawAll(r, nil, NewCircle(coord.V(1, 1), 1, mono.Black))
	if len(r.px) != 1 {
		t.Fatalf("pixels = %d, want 1", len(r.px))
	}
}
