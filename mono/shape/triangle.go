package shape

import (
	"monolcd/mono"
	"monolcd/mono/coord"
)

// Triangle is the outline through three vertices.
type Triangle struct {
	a, b, c coord.Vec2
	color   mono.Color
}

func NewTriangle(a, b, c coord.Vec2, color mono.Color) Triangle {
	return Triangle{a: a, b: b, c: c, color: color}
}

func (t Triangle) Draw(s mono.PixelSink) {
	LineByPoints(t.a, t.b, t.color).Draw(s)
	LineByPoints(t.b, t.c, t.color).Draw(s)
	LineByPoints(t.c, t.a, t.color).Draw(s)
}
