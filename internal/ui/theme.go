package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tessera/internal/grid"
)

// Theme defines colors for the grid dashboard.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	Panel      string // Panel interiors

	// Border colors
	Border      string // Default panel border
	BorderFocus string // Selected panel border

	// Text colors
	Text    string
	Muted   string
	Accent  string
	Warning string
	Danger  string

	// TierColors tints the breakpoint badge.
	TierColors map[grid.Breakpoint]string

	// PanelAccents cycles across panels by declaration order.
	PanelAccents []string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		tierColors: t.TierColors,
		background: t.Background,
		muted:      t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Header     lipgloss.Style
	Footer     lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	tierColors map[grid.Breakpoint]string
	background string
	muted      string
}

// TierStyle returns the badge style for a breakpoint.
func (s Styles) TierStyle(bp grid.Breakpoint) lipgloss.Style {
	color := s.tierColors[bp]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// PanelAccent returns the accent color of the i-th panel.
func (t Theme) PanelAccent(i int) string {
	if len(t.PanelAccents) == 0 {
		return t.Border
	}
	return t.PanelAccents[i%len(t.PanelAccents)]
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Panel:      "#212e3f", // bg2

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Accent:  "#719cd6", // blue
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red

		TierColors: map[grid.Breakpoint]string{
			grid.Full:   "#81b29a", // green
			grid.Mid:    "#63cdcf", // cyan
			grid.Narrow: "#dbc074", // yellow
			grid.Mobile: "#f4a261", // orange
		},
		PanelAccents: []string{"#719cd6", "#81b29a", "#9d79d6", "#63cdcf", "#dbc074", "#f4a261"},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Panel:      "#2A2A37", // sumiInk4

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed

		TierColors: map[grid.Breakpoint]string{
			grid.Full:   "#98BB6C", // springGreen
			grid.Mid:    "#7FB4CA", // springBlue
			grid.Narrow: "#E6C384", // carpYellow
			grid.Mobile: "#FFA066", // surimiOrange
		},
		PanelAccents: []string{"#7E9CD8", "#98BB6C", "#957FB8", "#7FB4CA", "#E6C384", "#FFA066"},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Panel:      "#1e293b", // slate-800

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Accent:  "#38bdf8", // sky-400
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		TierColors: map[grid.Breakpoint]string{
			grid.Full:   "#22c55e", // green-500
			grid.Mid:    "#06b6d4", // cyan-500
			grid.Narrow: "#f59e0b", // amber-500
			grid.Mobile: "#f97316", // orange-500
		},
		PanelAccents: []string{"#38bdf8", "#22c55e", "#a78bfa", "#06b6d4", "#f59e0b", "#f97316"},
	}
}
