package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/tessera/internal/grid"
)

// Config captures the settings Tessera reads at startup.
type Config struct {
	LayoutPath  string
	CellWidthPx float64
	RowHeight   int
	LogFile     string
	Thresholds  grid.Thresholds
}

const (
	defaultConfigPath  = "~/.config/tessera/config.toml"
	defaultCellWidthPx = 8
	defaultRowHeight   = 4
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		CellWidthPx: defaultCellWidthPx,
		RowHeight:   defaultRowHeight,
		Thresholds:  grid.DefaultThresholds(),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// Breakpoint thresholds are validated before returning.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Layout      string  `toml:"layout"`
		CellWidthPx float64 `toml:"cell_width_px"`
		RowHeight   int     `toml:"row_height"`
		LogFile     string  `toml:"log_file"`
		Breakpoints struct {
			MobileMax float64 `toml:"mobile_max"`
			NarrowMax float64 `toml:"narrow_max"`
			MidMax    float64 `toml:"mid_max"`
		} `toml:"breakpoints"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if layout := strings.TrimSpace(raw.Layout); layout != "" {
		cfg.LayoutPath = mustExpand(layout)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.CellWidthPx > 0 {
		cfg.CellWidthPx = raw.CellWidthPx
	}
	if raw.RowHeight > 0 {
		cfg.RowHeight = raw.RowHeight
	}

	bp := raw.Breakpoints
	if bp.MobileMax != 0 {
		cfg.Thresholds.MobileMax = bp.MobileMax
	}
	if bp.NarrowMax != 0 {
		cfg.Thresholds.NarrowMax = bp.NarrowMax
	}
	if bp.MidMax != 0 {
		cfg.Thresholds.MidMax = bp.MidMax
	}
	if _, err := cfg.Classifier(); err != nil {
		return Config{}, fmt.Errorf("breakpoints: %w", err)
	}

	return cfg, nil
}

// Classifier builds the breakpoint classifier for the configured thresholds.
func (c Config) Classifier() (grid.Classifier, error) {
	return grid.NewClassifier(c.Thresholds)
}

// ViewportWidth converts a terminal width in cells to pixels.
func (c Config) ViewportWidth(cells int) float64 {
	px := c.CellWidthPx
	if px <= 0 {
		px = defaultCellWidthPx
	}
	return float64(cells) * px
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
