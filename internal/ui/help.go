package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tessera/internal/grid"
)

// renderHelp renders the help overlay: key bindings plus the breakpoint
// cutoffs in effect.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.keys))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Breakpoints"))
	b.WriteString("\n")
	th := m.classifier.Thresholds()
	for _, bp := range grid.Breakpoints() {
		bound := "above " + fmt.Sprintf("%.0fpx", th.MidMax)
		if bp != grid.Full {
			bound = fmt.Sprintf("up to %.0fpx", th.UpperBound(bp))
		}
		b.WriteString(styles.TierStyle(bp).Width(10).Render(bp.Label()))
		b.WriteString(styles.Text.Render(fmt.Sprintf(" %-16s %d cols", bound, m.resolver.Columns(bp))))
		b.WriteString("\n")
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
