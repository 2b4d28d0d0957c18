package ui

import "time"

// Screen chrome.
const (
	// headerLines and footerLines are reserved above and below the grid.
	headerLines = 1
	footerLines = 1

	// minRowHeight is the smallest track height that still fits a border
	// and one line of content.
	minRowHeight = 3
)

// DefaultPollTick is how often the UI pulls the layout store.
const DefaultPollTick = time.Second
