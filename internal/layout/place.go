package layout

import "github.com/five82/tessera/internal/grid"

// Placement is the position of one item on the grid, in tracks.
type Placement struct {
	Index  int // entry index in the definition
	Column int // zero-based first column
	Row    int // zero-based first row
	Span   grid.Span
}

// Plan is the placed grid at one breakpoint.
type Plan struct {
	Breakpoint grid.Breakpoint
	Columns    int
	Rows       int
	Placements []Placement
}

// Place auto-places spans in order, row-major and sparse: the cursor never
// moves back, so an item is never placed before an earlier one. Spans wider
// than the grid are clamped to it.
func Place(spans []grid.Span, columns int) []Placement {
	if columns < 1 {
		columns = 1
	}
	occ := occupancy{columns: columns}
	placements := make([]Placement, 0, len(spans))

	curRow, curCol := 0, 0
	for i, span := range spans {
		w := min(max(span.Columns, 1), columns)
		h := max(span.Rows, 1)

		row, col := curRow, curCol
		for !occ.fits(row, col, w, h) {
			col++
			if col+w > columns {
				col = 0
				row++
			}
		}
		occ.fill(row, col, w, h)
		placements = append(placements, Placement{
			Index:  i,
			Column: col,
			Row:    row,
			Span:   grid.Span{Columns: w, Rows: h},
		})
		curRow, curCol = row, col+w
	}
	return placements
}

// Build resolves def at bp and places it.
func Build(def Definition, r *grid.Resolver, bp grid.Breakpoint) Plan {
	columns := r.Columns(bp)
	placements := Place(def.Resolve(r, bp), columns)
	rows := 0
	for _, p := range placements {
		rows = max(rows, p.Row+p.Span.Rows)
	}
	return Plan{
		Breakpoint: bp,
		Columns:    columns,
		Rows:       rows,
		Placements: placements,
	}
}

type occupancy struct {
	columns int
	cells   [][]bool
}

func (o *occupancy) fits(row, col, w, h int) bool {
	if col+w > o.columns {
		return false
	}
	for r := row; r < row+h && r < len(o.cells); r++ {
		for c := col; c < col+w; c++ {
			if o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) fill(row, col, w, h int) {
	for len(o.cells) < row+h {
		o.cells = append(o.cells, make([]bool, o.columns))
	}
	for r := row; r < row+h; r++ {
		for c := col; c < col+w; c++ {
			o.cells[r][c] = true
		}
	}
}
