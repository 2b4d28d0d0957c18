package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/tessera/internal/grid"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Thresholds != grid.DefaultThresholds() {
		t.Fatalf("Thresholds = %+v, want %+v", cfg.Thresholds, grid.DefaultThresholds())
	}
	if cfg.CellWidthPx != defaultCellWidthPx {
		t.Fatalf("CellWidthPx = %v, want %v", cfg.CellWidthPx, defaultCellWidthPx)
	}
	if cfg.RowHeight != defaultRowHeight {
		t.Fatalf("RowHeight = %d, want %d", cfg.RowHeight, defaultRowHeight)
	}
	if cfg.LayoutPath != "" {
		t.Fatalf("LayoutPath = %q, want empty", cfg.LayoutPath)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
layout = "  ~/layouts/ops.toml  "
cell_width_px = 10
row_height = 6
log_file = "~/tessera.log"

[breakpoints]
mobile_max = 480
narrow_max = 768
mid_max = 1024
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LayoutPath != filepath.Join(home, "layouts/ops.toml") {
		t.Fatalf("LayoutPath = %q, want it under HOME %q", cfg.LayoutPath, home)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.CellWidthPx != 10 || cfg.RowHeight != 6 {
		t.Fatalf("CellWidthPx/RowHeight = %v/%d, want 10/6", cfg.CellWidthPx, cfg.RowHeight)
	}
	want := grid.Thresholds{MobileMax: 480, NarrowMax: 768, MidMax: 1024}
	if cfg.Thresholds != want {
		t.Fatalf("Thresholds = %+v, want %+v", cfg.Thresholds, want)
	}
}

func TestLoad_PartialBreakpointsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[breakpoints]\nmobile_max = 500\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Thresholds.MobileMax != 500 || cfg.Thresholds.NarrowMax != grid.DefaultNarrowMax || cfg.Thresholds.MidMax != grid.DefaultMidMax {
		t.Fatalf("Thresholds = %+v, want mobile 500 with default narrow/mid", cfg.Thresholds)
	}
}

func TestLoad_UnorderedBreakpointsFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[breakpoints]\nmobile_max = 900\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, grid.ErrInvalidBreakpointConfig) {
		t.Fatalf("Load error = %v, want ErrInvalidBreakpointConfig", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`layout = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestViewportWidth(t *testing.T) {
	cfg := Default()
	if got := cfg.ViewportWidth(100); got != 800 {
		t.Fatalf("ViewportWidth(100) = %v, want 800", got)
	}
	var zero Config
	if got := zero.ViewportWidth(10); got != 80 {
		t.Fatalf("zero Config ViewportWidth(10) = %v, want 80", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
