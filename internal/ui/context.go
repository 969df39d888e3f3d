package ui

import (
	"sync"

	"github.com/zhubert/launchpad/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight int
	FooterHeight int
	PagerHeight  int
	GridWidth    int // Page width, excluding the arrow gutters
	GridHeight   int

	mu sync.Mutex
}

// NewViewContext returns a context with the fixed bar heights filled in.
func NewViewContext() *ViewContext {
	return &ViewContext{
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
		PagerHeight:  PagerHeight,
	}
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.GridWidth = width - 2*ArrowGutter
	v.GridHeight = height - v.HeaderHeight - v.FooterHeight - v.PagerHeight

	logger.WithComponent("ui").Debug("terminal size updated",
		"width", width,
		"height", height,
		"gridWidth", v.GridWidth,
		"gridHeight", v.GridHeight,
	)
}

// GridOrigin returns the terminal position of the grid's top-left corner.
func (v *ViewContext) GridOrigin() (x, y int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ArrowGutter, v.HeaderHeight
}

// PagerRow returns the terminal row of the page indicator.
func (v *ViewContext) PagerRow() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.HeaderHeight + v.GridHeight
}
