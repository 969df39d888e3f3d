// Package ui provides constants for layout calculations.
package ui

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// PagerHeight is the line holding the page indicator dots
	PagerHeight = 1

	// ArrowGutter is the width reserved on each side of the grid for the
	// previous/next page arrows
	ArrowGutter = 3

	// CellGapX and CellGapY separate neighbouring cells
	CellGapX = 2
	CellGapY = 1

	// MinTerminalWidth and MinTerminalHeight clamp degenerate sizes
	MinTerminalWidth  = 20
	MinTerminalHeight = 8
)

// Overlay dimensions
const (
	// OverlayWidth is the default width of the detail and confirm overlays
	OverlayWidth = 60
)

// Glyphs used by the grid
const (
	ArrowPrevious = "‹"
	ArrowNext     = "›"
	DotActive     = "●"
	DotInactive   = "○"
)
