package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/launchpad/internal/grid"
	"github.com/zhubert/launchpad/internal/ui"
)

// handleMouseClick maps a left click to a page arrow or a cell activation.
// Clicks are ignored while an overlay is open.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft || m.overlayOpen() {
		return nil
	}

	// Grid band coordinates: the header is above, the gutters are included
	bandX, bandY := msg.X, msg.Y-m.ctx.HeaderHeight

	if d, ok := m.grid.ArrowAt(bandX, bandY); ok {
		m.controller.Navigate(d)
		return nil
	}

	index, ok := m.grid.HitTest(bandX-ui.ArrowGutter, bandY)
	if !ok {
		return nil
	}
	launched, err := m.controller.Activate(index)
	if err != nil {
		return m.flashErr(err)
	}
	if launched {
		m.log.Debug("activated twice", "index", index)
	}
	return nil
}

// handleMouseWheel pages the grid. Wheel up and left page back, down and
// right page forward.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) {
	if m.overlayOpen() {
		return
	}
	switch msg.Button {
	case tea.MouseWheelUp, tea.MouseWheelLeft:
		m.controller.Navigate(grid.PagePrevious)
	case tea.MouseWheelDown, tea.MouseWheelRight:
		m.controller.Navigate(grid.PageNext)
	}
}

// CellPosition returns the terminal position of the middle of the cell drawn
// for index. It reports false when the cell is not on screen.
func (m *Model) CellPosition(index int) (x, y int, ok bool) {
	cellW, cellH := m.config.GetCellSize()
	for _, c := range m.grid.Cells() {
		if c.Index != index || !c.Visible || c.Placeholder {
			continue
		}
		return c.X + ui.ArrowGutter + cellW/2, c.Y + m.ctx.HeaderHeight + cellH/2, true
	}
	return 0, 0, false
}

func (m *Model) overlayOpen() bool {
	return m.confirm != nil || m.detail.Visible()
}
