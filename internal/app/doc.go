// Package app provides the orchestration layer for Tessera.
//
// # Overview
//
// This package wires configuration, layout loading, the layout store, the
// file watcher and the UI. It is the composition root: domain logic lives in
// grid and layout, presentation in ui.
//
// # Startup
//
//  1. Load config (thresholds validated here, fail fast)
//  2. Load the layout definition (bucket errors fail fast)
//  3. In print mode, resolve at the requested width, print and return
//  4. Route log output to config.LogFile, or discard it
//  5. Seed state.Store with the layout
//  6. Start the watcher and the UI under one errgroup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()    thresholds, cell width, layout path
//	       ├─────> layout.Load()    declared grid items
//	       ├─────> state.Store{}    shared layout
//	       ├─────> watcher.Watch()  reload on change (goroutine)
//	       └─────> ui.Run()         blocks until quit
//
// # Error Handling
//
// Fatal (returned from Run):
//   - config parse errors and unordered breakpoints
//   - layout parse errors and invalid buckets
//   - watcher setup failures
//
// Recoverable (logged, recorded in the store):
//   - layout reload failures after startup; the last good layout stays on
//     screen
//
// # Usage Example
//
//	if err := app.Run(ctx, app.Options{LayoutPath: "board.toml"}); err != nil {
//		log.Fatalf("tessera failed: %v", err)
//	}
package app
