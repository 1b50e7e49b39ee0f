package widget

import (
	"monolcd/mono"
	"monolcd/mono/coord"
	"monolcd/mono/shape"
)

// Table draws grid dividers over BBox.
//
// Dividers are spaced floor(extent/count) pixels apart starting at the box
// edge, so when the extent is not a multiple of the count the last cell is
// wider or an extra divider lands on the far edge. A count of zero or less
// draws no dividers on that axis.
type Table struct {
	BBox    coord.BBox
	Rows    int
	Columns int
	Color   mono.Color
}

func NewTable(b coord.BBox, rows, columns int, c mono.Color) Table {
	return Table{BBox: b, Rows: rows, Columns: columns, Color: c}
}

// ColumnStep returns the horizontal divider spacing, or 0 if none are drawn.
func (t Table) ColumnStep() int { return step(t.BBox.Width(), t.Columns) }

// RowStep returns the vertical divider spacing, or 0 if none are drawn.
func (t Table) RowStep() int { return step(t.BBox.Height(), t.Rows) }

func (t Table) Draw(s mono.PixelSink) {
	b := t.BBox
	if st := t.ColumnStep(); st > 0 {
		for x := b.Start.X; x <= b.End.X; x += st {
			shape.VerticalLine(coord.NewBBox(coord.V(x, b.Start.Y), b.End), t.Color).Draw(s)
		}
	}
	if st := t.RowStep(); st > 0 {
		for y := b.Start.Y; y <= b.End.Y; y += st {
			shape.LineFromBBox(coord.NewBBox(coord.V(b.Start.X, y), coord.V(b.End.X, y)), t.Color).Draw(s)
		}
	}
}

func step(extent, count int) int {
	if count <= 0 || extent < 0 {
		return 0
	}
	return max(extent/count, 1)
}
