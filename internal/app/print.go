package app

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/tessera/internal/grid"
	"github.com/five82/tessera/internal/layout"
)

// Print classifies width, resolves def and writes one table row per item.
func Print(w io.Writer, def layout.Definition, cls grid.Classifier, r *grid.Resolver, width float64) error {
	if w == nil {
		w = os.Stdout
	}
	bp := cls.Classify(width)
	plan := layout.Build(def, r, bp)

	rows := make([][]string, 0, len(plan.Placements))
	for _, p := range plan.Placements {
		e := def.Entries[p.Index]
		rows = append(rows, []string{
			e.Name,
			e.Item.String(),
			p.Span.String(),
			strconv.Itoa(p.Column + 1),
			strconv.Itoa(p.Row + 1),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ITEM", "DECLARED", "SPAN", "COL", "ROW").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	title := def.Title
	if title == "" {
		title = "layout"
	}
	if _, err := fmt.Fprintf(w, "%s at %.0fpx: %s, %d columns, %d rows\n",
		title, width, bp.Label(), plan.Columns, plan.Rows); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
