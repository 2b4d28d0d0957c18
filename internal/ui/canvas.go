package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// canvas is a fixed-size grid of single-width cells. Panels are painted onto
// it and the result is flattened into styled lines, one lipgloss render per
// run of equally styled cells.
type canvas struct {
	width, height int
	cells         [][]cell
	styles        []lipgloss.Style
}

type cell struct {
	r     rune
	style int
}

func newCanvas(width, height int, base lipgloss.Style) *canvas {
	width, height = max(width, 0), max(height, 0)
	c := &canvas{width: width, height: height, styles: []lipgloss.Style{base}}
	c.cells = make([][]cell, height)
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// addStyle registers s and returns its handle.
func (c *canvas) addStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, style: style}
}

// text writes s from (x, y), clipped to limit cells. Wide runes are replaced
// so every rune occupies exactly one cell.
func (c *canvas) text(x, y, limit int, s string, style int) {
	s = runewidth.Truncate(s, limit, "…")
	for _, r := range s {
		if limit <= 0 {
			return
		}
		if runewidth.RuneWidth(r) != 1 {
			r = '?'
		}
		c.set(x, y, r, style)
		x++
		limit--
	}
}

// fill paints a w x h rectangle with r.
func (c *canvas) fill(x, y, w, h int, r rune, style int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.set(xx, yy, r, style)
		}
	}
}

// box draws a rounded border around a w x h rectangle, title on the top edge.
func (c *canvas) box(x, y, w, h int, title string, border, titleStyle int) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for xx := x + 1; xx < right; xx++ {
		c.set(xx, y, '─', border)
		c.set(xx, bottom, '─', border)
	}
	for yy := y + 1; yy < bottom; yy++ {
		c.set(x, yy, '│', border)
		c.set(right, yy, '│', border)
	}
	c.set(x, y, '╭', border)
	c.set(right, y, '╮', border)
	c.set(x, bottom, '╰', border)
	c.set(right, bottom, '╯', border)

	if title != "" && w > 4 {
		c.text(x+2, y, w-4, " "+title+" ", titleStyle)
	}
}

// lines returns rows [from, from+n) as rendered strings.
func (c *canvas) lines(from, n int) []string {
	from = max(from, 0)
	to := min(from+n, c.height)
	out := make([]string, 0, max(to-from, 0))
	var b strings.Builder
	for y := from; y < to; y++ {
		b.Reset()
		row := c.cells[y]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				run = append(run, cl.r)
			}
			b.WriteString(c.styles[row[start].style].Render(string(run)))
			start = x
		}
		out = append(out, b.String())
	}
	return out
}

// plain returns the canvas text without styling, for tests and print mode.
func (c *canvas) plain() string {
	rows := make([]string, c.height)
	for y, row := range c.cells {
		runes := make([]rune, len(row))
		for x, cl := range row {
			runes[x] = cl.r
		}
		rows[y] = string(runes)
	}
	return strings.Join(rows, "\n")
}
