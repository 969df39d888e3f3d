package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/launchpad/internal/clipboard"
	"github.com/zhubert/launchpad/internal/grid"
	"github.com/zhubert/launchpad/internal/keys"
	"github.com/zhubert/launchpad/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case FrameMsg:
		m.ticking = false
		m.controller.Tick()

	case ui.FlashTickMsg:
		if m.footer.ClearExpiredFlash() {
			m.updateSizes()
		}

	case LaunchFinishedMsg:
		cmds = append(cmds, m.handleLaunchFinished(msg))

	case DetachedStartedMsg:
		cmds = append(cmds, m.handleDetachedStarted(msg))

	case NotifiedMsg:
		if msg.Err != nil {
			m.log.Warn("notification failed", "error", msg.Err)
		}

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseClickMsg:
		cmds = append(cmds, m.handleMouseClick(msg))

	case tea.MouseWheelMsg:
		m.handleMouseWheel(msg)
	}

	cmds = append(cmds, m.takeLaunch(), m.scheduleFrame())
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press to the open overlay or to the grid.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.detail.Visible() {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.controller.Navigate(grid.Up)
	case key.Matches(msg, m.keys.Down):
		m.controller.Navigate(grid.Down)
	case key.Matches(msg, m.keys.Left):
		m.controller.Navigate(grid.Left)
	case key.Matches(msg, m.keys.Right):
		m.controller.Navigate(grid.Right)
	case key.Matches(msg, m.keys.PagePrevious):
		m.controller.Navigate(grid.PagePrevious)
	case key.Matches(msg, m.keys.PageNext):
		m.controller.Navigate(grid.PageNext)
	case key.Matches(msg, m.keys.First):
		if m.controller.Size() > 0 {
			if err := m.controller.Select(0); err != nil {
				return m.flashErr(err)
			}
		}
	case key.Matches(msg, m.keys.Last):
		if n := m.controller.Size(); n > 0 {
			if err := m.controller.Select(n - 1); err != nil {
				return m.flashErr(err)
			}
		}
	case key.Matches(msg, m.keys.Launch):
		m.controller.Launch()
	case key.Matches(msg, m.keys.Details):
		if it, ok := m.selectedItem(); ok {
			m.detail.Show(it)
		}
	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()
	case key.Matches(msg, m.keys.Redraw):
		return tea.ClearScreen
	case key.Matches(msg, m.keys.Help):
		m.footer.ToggleHelp()
		m.updateSizes()
	}
	return nil
}

// handleDetailKey handles keys while the detail overlay is open.
func (m *Model) handleDetailKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Details):
		m.detail.Hide()
	case key.Matches(msg, m.keys.Launch):
		m.detail.Hide()
		m.controller.Launch()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()
	case msg.String() == keys.CtrlC:
		return tea.Quit
	}
	return nil
}

// handleConfirmKey handles keys while the launch confirmation is open.
// Enter and Escape close it; other keys drive the form.
func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.CtrlC:
		return tea.Quit
	case keys.Escape:
		m.log.Debug("launch cancelled", "name", m.confirm.Item.Name)
		m.confirm = nil
		return nil
	case keys.Enter:
		return m.resolveConfirm()
	}

	cmd := m.confirm.Update(msg)
	if m.confirm.Done() {
		return m.resolveConfirm()
	}
	return cmd
}

// resolveConfirm closes the confirmation and launches if it was accepted.
func (m *Model) resolveConfirm() tea.Cmd {
	c := m.confirm
	m.confirm = nil
	if !c.Confirmed() {
		m.log.Debug("launch declined", "name", c.Item.Name)
		return nil
	}
	return m.launchItem(c.Item)
}

// copySelected copies the selected entry's command line to the clipboard.
func (m *Model) copySelected() tea.Cmd {
	it, ok := m.selectedItem()
	if !ok {
		return nil
	}
	if err := clipboard.WriteText(it.CommandLine()); err != nil {
		return m.flashErr(err)
	}
	return m.ShowFlashSuccess("Copied: " + it.CommandLine())
}
