package app

import (
	"image"
	"strconv"

	"monolcd/mono"
	"monolcd/mono/coord"
	"monolcd/mono/shape"
	"monolcd/mono/widget"
)

// State is the user-adjustable part of the demo scene.
type State struct {
	Progress  int
	Radius    int
	Thickness int
	Scroll    int
	Focus     Field
}

// DefaultState is the scene shown on first start.
var DefaultState = State{Progress: 0, Radius: 5, Thickness: 1, Scroll: 50}

// Field is a focusable value of State.
type Field uint8

const (
	FieldProgress Field = iota
	FieldRadius
	FieldThickness
	FieldScroll
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldProgress:
		return "progress"
	case FieldRadius:
		return "radius"
	case FieldThickness:
		return "thickness"
	case FieldScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Value limits.
const (
	MaxRadius   = 16
	ScrollThumb = 3
)

// Clamp brings every value back into its range. Thickness is limited to
// [1, max(Radius, 1)].
func (s State) Clamp() State {
	s.Progress = min(max(s.Progress, 0), 100)
	s.Radius = min(max(s.Radius, 0), MaxRadius)
	s.Thickness = min(max(s.Thickness, 1), max(s.Radius, 1))
	s.Scroll = min(max(s.Scroll, 0), 100)
	if s.Focus >= fieldCount {
		s.Focus = FieldProgress
	}
	return s
}

// Get returns the value of f.
func (s State) Get(f Field) int {
	switch f {
	case FieldProgress:
		return s.Progress
	case FieldRadius:
		return s.Radius
	case FieldThickness:
		return s.Thickness
	case FieldScroll:
		return s.Scroll
	}
	return 0
}

// Set returns s with f set to v, clamped.
func (s State) Set(f Field, v int) State {
	switch f {
	case FieldProgress:
		s.Progress = v
	case FieldRadius:
		s.Radius = v
	case FieldThickness:
		s.Thickness = v
	case FieldScroll:
		s.Scroll = v
	}
	return s.Clamp()
}

func (s State) values() map[string]int {
	return map[string]int{
		FieldProgress.String():  s.Progress,
		FieldRadius.String():    s.Radius,
		FieldThickness.String(): s.Thickness,
		FieldScroll.String():    s.Scroll,
	}
}

func stateFromValues(base State, values map[string]int) State {
	for f := range fieldCount {
		if v, ok := values[f.String()]; ok {
			base = base.Set(f, v)
		}
	}
	return base
}

// Scene layout on the default 160x32 panel.
var (
	scrollerBox = coord.NewBBox(coord.V(0, 0), coord.V(10, 31))
	progressBox = coord.NewBBox(coord.V(15, 5), coord.V(88, 15))
	labelOrigin = coord.V(15, 27)
	rightArea   = coord.NewBBox(coord.V(90, 0), coord.V(159, 31))
	circleAt    = coord.V(115, 16)
	tableBox    = coord.NewBBox(coord.V(138, 0), coord.V(159, 31))
	pictureBox  = coord.NewBBox(coord.V(72, 17), coord.V(88, 31))
)

// Scene is one frame of the demo.
type Scene struct {
	State   State
	Picture image.Image // optional, drawn beside the label
}

// Drawables returns the scene in paint order.
func (sc Scene) Drawables() []mono.Drawable {
	s := sc.State.Clamp()
	ds := []mono.Drawable{
		shape.NewFilledRect(rightArea, mono.White),
		widget.NewScroller(scrollerBox, s.Scroll, ScrollThumb, mono.Vertical, mono.Black),
		widget.NewProgressBar(progressBox, s.Progress, mono.Black),
		shape.NewCircle(circleAt, s.Radius, mono.Black).Thickness(s.Thickness),
		widget.NewTable(tableBox, 4, 2, mono.Black),
		widget.NewLabel(labelOrigin, focusText(s), mono.Black),
	}
	if sc.Picture != nil {
		ds = append(ds, widget.NewPicture(sc.Picture, pictureBox))
	}
	return ds
}

// Draw renders the scene onto s.
func (sc Scene) Draw(s mono.PixelSink) {
	mono.DrawAll(s, sc.Drawables()...)
}

func focusText(s State) string {
	name := s.Focus.String()
	if len(name) > 5 {
		name = name[:5]
	}
	return name + " " + strconv.Itoa(s.Get(s.Focus))
}
