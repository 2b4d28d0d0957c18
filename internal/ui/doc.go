// Package ui provides the terminal dashboard for Tessera.
//
// # Overview
//
// The UI is a Bubble Tea program that treats the terminal as a responsive
// viewport. Every resize is converted to pixels (terminal columns times
// config.CellWidthPx), classified into a grid.Breakpoint, and the current
// layout is resolved and placed with layout.Build. Panels are then painted
// onto a cell canvas and flattened into styled lines with Lipgloss.
//
// # Files
//
//   - app.go: Model, Update/View, commands and Run
//   - gridview.go: track geometry and panel painting
//   - canvas.go: the cell canvas panels are drawn on
//   - help.go: help overlay with the breakpoint cutoffs in effect
//   - keys.go: key bindings (bubbles/key) and help.KeyMap
//   - theme.go: color themes and Lipgloss styles
//   - layout.go: screen chrome constants
//
// # Event Flow
//
//  1. tea.WindowSizeMsg stores the size and rebuilds the plan
//  2. A tick pulls state.Store every second; a new generation replaces the
//     layout, a recorded error is shown in the footer
//  3. "b" pins a preview breakpoint so narrower tiers can be inspected on a
//     wide terminal; the pin is saved to prefs
//  4. Context cancellation stops the program
//
// # Geometry
//
// The usable width is split evenly across the active column count; leftover
// cells stay empty on the right. Every row track is config.RowHeight lines
// tall (at least minRowHeight). Content taller than the screen scrolls.
package ui
