package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// Lunar date and the theme name.
	LayoutCompactWidth = 64

	// LayoutSpanWidth is the minimum width to show the Gregorian and Lunar
	// span of the month under the grid.
	LayoutSpanWidth = 48
)

// Grid geometry.
const (
	// CellWidth is the width of one day cell, enough for "30" plus padding.
	CellWidth = 5

	// GridWidth is seven cells.
	GridWidth = 7 * CellWidth
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads today from the store.
	DefaultUIInterval = time.Minute
)
