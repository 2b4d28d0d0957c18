package layout

import (
	"testing"

	"github.com/five82/tessera/internal/grid"
)

func TestBuild_BuiltinAtFull(t *testing.T) {
	plan := Build(Builtin(), grid.DefaultResolver(), grid.Full)
	if plan.Columns != 6 {
		t.Fatalf("Columns = %d, want 6", plan.Columns)
	}

	want := []struct{ row, col int }{
		{0, 0}, // Overview 6x1
		{1, 0}, // Throughput 5x2
		{1, 5}, // Alerts 1x2
		{3, 0}, // Latency 4x1
		{3, 4}, // Errors 2x1
		{4, 0}, // Regions 3x3
		{4, 3}, // Capacity 3x1
		{5, 3}, // Deploys 2x2
	}
	for i, w := range want {
		p := plan.Placements[i]
		if p.Row != w.row || p.Column != w.col {
			t.Fatalf("placement %d (%s) at (%d,%d), want (%d,%d)",
				i, Builtin().Entries[i].Name, p.Row, p.Column, w.row, w.col)
		}
	}
	if plan.Rows != 7 {
		t.Fatalf("Rows = %d, want 7", plan.Rows)
	}
}

func TestBuild_BuiltinAtMobileStacks(t *testing.T) {
	plan := Build(Builtin(), grid.DefaultResolver(), grid.Mobile)
	row := 0
	for i, p := range plan.Placements {
		if p.Column != 0 || p.Span.Columns != 2 {
			t.Fatalf("placement %d = %+v, want full-width stack", i, p)
		}
		if p.Row != row {
			t.Fatalf("placement %d row = %d, want %d", i, p.Row, row)
		}
		row += p.Span.Rows
	}
	if plan.Rows != row {
		t.Fatalf("Rows = %d, want %d", plan.Rows, row)
	}
}

func TestPlace_NoOverlapAndInBounds(t *testing.T) {
	for _, bp := range grid.Breakpoints() {
		plan := Build(Builtin(), grid.DefaultResolver(), bp)
		taken := map[[2]int]int{}
		for _, p := range plan.Placements {
			if p.Column < 0 || p.Column+p.Span.Columns > plan.Columns {
				t.Fatalf("%s: placement %+v outside %d columns", bp, p, plan.Columns)
			}
			for r := p.Row; r < p.Row+p.Span.Rows; r++ {
				for c := p.Column; c < p.Column+p.Span.Columns; c++ {
					if other, ok := taken[[2]int{r, c}]; ok {
						t.Fatalf("%s: cell (%d,%d) used by %d and %d", bp, r, c, other, p.Index)
					}
					taken[[2]int{r, c}] = p.Index
				}
			}
		}
	}
}

func TestPlace_CursorNeverMovesBack(t *testing.T) {
	spans := []grid.Span{{Columns: 3, Rows: 1}, {Columns: 4, Rows: 1}, {Columns: 1, Rows: 1}}
	got := Place(spans, 4)
	// The 1-wide item fits at (0,3) but must follow the 4-wide item on row 1.
	if got[2].Row != 2 || got[2].Column != 0 {
		t.Fatalf("third placement at (%d,%d), want (2,0)", got[2].Row, got[2].Column)
	}
	if got[1].Row != 1 || got[1].Column != 0 {
		t.Fatalf("second placement at (%d,%d), want (1,0)", got[1].Row, got[1].Column)
	}
}

func TestPlace_ClampsWideSpans(t *testing.T) {
	got := Place([]grid.Span{{Columns: 6, Rows: 1}}, 2)
	if got[0].Span.Columns != 2 {
		t.Fatalf("Span.Columns = %d, want 2", got[0].Span.Columns)
	}
	if empty := Place(nil, 4); len(empty) != 0 {
		t.Fatalf("Place(nil) = %v, want empty", empty)
	}
}
