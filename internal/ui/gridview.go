package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tessera/internal/layout"
)

// gridGeometry maps grid tracks to terminal cells.
type gridGeometry struct {
	colWidth  int
	rowHeight int
}

func newGridGeometry(width, columns, rowHeight int) gridGeometry {
	if columns < 1 {
		columns = 1
	}
	return gridGeometry{
		colWidth:  max(width/columns, 1),
		rowHeight: max(rowHeight, minRowHeight),
	}
}

// paintPlan draws every placed panel of plan onto a new canvas.
func paintPlan(plan layout.Plan, def layout.Definition, theme Theme, width, rowHeight int) *canvas {
	geo := newGridGeometry(width, plan.Columns, rowHeight)
	base := lipgloss.NewStyle().Background(lipgloss.Color(theme.Background))
	cv := newCanvas(width, plan.Rows*geo.rowHeight, base)

	panelBg := lipgloss.Color(theme.Panel)
	body := cv.addStyle(lipgloss.NewStyle().Background(panelBg).Foreground(lipgloss.Color(theme.Text)))
	muted := cv.addStyle(lipgloss.NewStyle().Background(panelBg).Foreground(lipgloss.Color(theme.Muted)))

	for _, p := range plan.Placements {
		if p.Index >= len(def.Entries) {
			continue
		}
		entry := def.Entries[p.Index]
		accent := lipgloss.Color(theme.PanelAccent(p.Index))
		border := cv.addStyle(lipgloss.NewStyle().Background(panelBg).Foreground(accent))
		title := cv.addStyle(lipgloss.NewStyle().Background(panelBg).Foreground(accent).Bold(true))

		x := p.Column * geo.colWidth
		y := p.Row * geo.rowHeight
		w := p.Span.Columns * geo.colWidth
		h := p.Span.Rows * geo.rowHeight

		cv.fill(x, y, w, h, ' ', body)
		cv.box(x, y, w, h, entry.Name, border, title)

		inner := w - 4
		lines := []struct {
			text  string
			style int
		}{
			{fmt.Sprintf("%s → %s", entry.Item, p.Span), body},
			{fmt.Sprintf("col %d row %d", p.Column+1, p.Row+1), muted},
		}
		for i, ln := range lines {
			if i >= h-2 {
				break
			}
			cv.text(x+2, y+1+i, inner, ln.text, ln.style)
		}
	}
	return cv
}
