package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/launchpad/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for the list command and for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay replaces the grid while open
	if overlay := m.overlayView(); overlay != "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			overlay,
		)
	}

	band := lipgloss.PlaceVertical(m.ctx.GridHeight, lipgloss.Top, m.grid.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		band,
		m.pager.View(),
		m.footer.View(),
	)
}

func (m *Model) overlayView() string {
	switch {
	case m.confirm != nil:
		return m.confirm.View()
	case m.detail.Visible():
		return m.detail.View(min(ui.OverlayWidth, m.width))
	}
	return ""
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.ctx.FooterHeight = m.footer.Height()
	m.ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(m.ctx.TerminalWidth)
	m.footer.SetWidth(m.ctx.TerminalWidth)
	m.pager.SetWidth(m.ctx.TerminalWidth)

	// SetViewport snaps the scroll, so only call it on a real change
	if m.ctx.GridWidth != m.gridWidth || m.ctx.GridHeight != m.gridHeight {
		m.gridWidth, m.gridHeight = m.ctx.GridWidth, m.ctx.GridHeight
		m.grid.SetSize(m.gridWidth, m.gridHeight)
		m.controller.SetViewport(m.gridWidth, m.gridHeight)
	}
}
