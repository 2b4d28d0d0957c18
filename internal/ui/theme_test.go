package ui

import (
	"testing"

	"github.com/five82/tessera/internal/grid"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, th.Name)
		}
		for _, bp := range grid.Breakpoints() {
			if th.TierColors[bp] == "" {
				t.Fatalf("theme %q has no color for %s", name, bp)
			}
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestPanelAccentCycles(t *testing.T) {
	th := GetTheme("Nightfox")
	n := len(th.PanelAccents)
	if th.PanelAccent(0) != th.PanelAccent(n) {
		t.Fatalf("PanelAccent does not cycle after %d panels", n)
	}
	if got := (Theme{Border: "#000"}).PanelAccent(3); got != "#000" {
		t.Fatalf("PanelAccent without accents = %q, want border", got)
	}
}
