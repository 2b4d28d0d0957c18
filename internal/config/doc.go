// Package config loads Tessera's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tessera/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or zero, use defaults
//
// # TOML Format
//
//	layout = "~/.config/tessera/layout.toml"
//	cell_width_px = 8
//	row_height = 4
//	log_file = "~/.local/state/tessera/tessera.log"
//
//	[breakpoints]
//	mobile_max = 600
//	narrow_max = 800
//	mid_max = 1000
//
// All fields are optional. Tilde expansion is performed on paths.
//
// # Viewport Width
//
// Breakpoints are expressed in pixels, a terminal is measured in cells.
// ViewportWidth multiplies the terminal width by cell_width_px, so with the
// default of 8 a 100-column terminal is an 800px viewport (Narrow).
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Breakpoints that are not strictly ordered (grid.ErrInvalidBreakpointConfig)
//
// Missing config files are NOT an error.
package config
