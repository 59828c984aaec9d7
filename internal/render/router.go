package render

import (
	"github.com/hyperifyio/mdrender/internal/node"
	"github.com/hyperifyio/mdrender/internal/style"
	"github.com/hyperifyio/mdrender/internal/view"
)

// TableStrategy lays out table cells that were already rendered to views.
// Implementations must keep row-major reading order and per-column
// alignment; they may differ only in layout primitive and border.
type TableStrategy interface {
	Name() string
	Table(alignments []node.Alignment, rows [][]view.View) view.View
}

// GridTable uses the native grid primitive.
type GridTable struct{}

func (GridTable) Name() string { return "grid" }

func (GridTable) Table(alignments []node.Alignment, rows [][]view.View) view.View {
	columns, cells := squareRows(alignments, rows)
	grid := view.Grid{Columns: columns, Rows: make([][]view.View, 0, len(cells)), Border: view.BorderLight}
	for _, row := range cells {
		framed := make([]view.View, len(row))
		for c, cell := range row {
			framed[c] = view.Frame{Alignment: columns[c], Child: cell}
		}
		grid.Rows = append(grid.Rows, framed)
	}
	return grid
}

// StackedTable composes a table from vertical and horizontal stacks of
// bordered boxes, for platforms without a grid primitive.
type StackedTable struct{}

func (StackedTable) Name() string { return "stacked" }

func (StackedTable) Table(alignments []node.Alignment, rows [][]view.View) view.View {
	columns, cells := squareRows(alignments, rows)
	stack := view.VStack{Children: make([]view.View, 0, len(cells))}
	for _, row := range cells {
		h := view.HStack{Children: make([]view.View, len(row))}
		for c, cell := range row {
			h.Children[c] = view.Border{Style: view.BorderPlain, Child: view.Frame{Alignment: columns[c], Child: cell}}
		}
		stack.Children = append(stack.Children, h)
	}
	return stack
}

// squareRows widens the column list to the widest row and pads short rows
// with empty cells, so both strategies show every extracted cell in the
// same positions.
func squareRows(alignments []node.Alignment, rows [][]view.View) ([]node.Alignment, [][]view.View) {
	width := len(alignments)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		width = 1
	}
	columns := make([]node.Alignment, width)
	copy(columns, alignments)

	out := make([][]view.View, len(rows))
	for r, row := range rows {
		padded := make([]view.View, width)
		copy(padded, row)
		for c := len(row); c < width; c++ {
			padded[c] = view.Text{}
		}
		out[r] = padded
	}
	return columns, out
}

// Router picks a rendering strategy from the platform capabilities. The
// choice is made on every call and never remembered.
type Router struct {
	Platform Platform
}

func (r Router) platform() Platform {
	if r.Platform == nil {
		return StaticPlatform{}
	}
	return r.Platform
}

// TableStrategy returns GridTable when the platform has a grid primitive and
// StackedTable otherwise.
func (r Router) TableStrategy() TableStrategy {
	if r.platform().SupportsGrid() {
		return GridTable{}
	}
	return StackedTable{}
}

// Attributes applies s on top of base. Capable platforms take the native
// path; others compose in the compatible representation and convert the
// result.
func (r Router) Attributes(base style.Native, s style.TextStyle) style.Native {
	if r.platform().SupportsNativeAttributes() {
		return style.Apply(base, s)
	}
	compat := style.CompatFrom(base)
	if s != nil {
		s.Collect(&compat)
	}
	return style.FromCompat(compat)
}
