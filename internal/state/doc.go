// Package state provides thread-safe sharing of the active layout definition.
//
// # Overview
//
// The layout watcher reloads the definition file in its own goroutine while
// the UI renders on the Bubble Tea loop. Store is the hand-off point between
// them:
//
//	Producer (watcher):            Consumer (UI):
//	┌────────────────┐            ┌──────────────────┐
//	│ layout.Load()  │            │                  │
//	│      ↓         │            │                  │
//	│ store.Update() │───────────→│ store.Snapshot() │
//	│                │  (mutex)   │      ↓           │
//	│                │            │ resolve + render │
//	└────────────────┘            └──────────────────┘
//
// # Failure Handling
//
// A failed reload never replaces a good layout. Update records the error and
// bumps ConsecutiveFailures; the UI keeps rendering the last good definition
// and shows the error in its footer until the next successful reload.
//
// # Generations
//
// Generation increases on every successful update. The UI compares it with
// the generation it last rendered to decide whether the resolved plan must be
// rebuilt; breakpoint changes rebuild independently.
package state
