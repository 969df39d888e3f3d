package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/notification"
	"github.com/zhubert/launchpad/internal/ui"
)

// takeLaunch converts a launch reported by the controller into a command.
// With confirm_launch set it opens the confirmation overlay instead.
func (m *Model) takeLaunch() tea.Cmd {
	index := m.pendingLaunch
	if index < 0 {
		return nil
	}
	m.pendingLaunch = -1

	item, ok := m.catalog.At(index)
	if !ok {
		return nil
	}

	if m.config.GetConfirmLaunch() && m.confirm == nil {
		m.detail.Hide()
		m.confirm = ui.NewConfirm(index, item)
		return nil
	}
	return m.launchItem(item)
}

// launchItem starts item in the foreground or, for detached entries, in the
// background.
func (m *Model) launchItem(item catalog.Item) tea.Cmd {
	m.log.Info("launching entry", "name", item.Name, "command", item.CommandLine(), "detach", item.Detach)

	var cmds []tea.Cmd
	if item.Detach {
		// Start returns once the child is forked, so this does not block
		pid, err := m.launcher.Detached(context.Background(), item)
		started := DetachedStartedMsg{Name: item.Name, PID: pid, Err: err}
		cmds = append(cmds, func() tea.Msg { return started })
	} else {
		cmd, err := m.launcher.Foreground(context.Background(), item)
		if err != nil {
			return m.flashErr(err)
		}
		name := item.Name
		cmds = append(cmds, tea.ExecProcess(cmd, func(err error) tea.Msg {
			return LaunchFinishedMsg{Name: name, Err: err}
		}))
	}

	if m.config.GetNotificationsEnabled() {
		name := item.Name
		cmds = append(cmds, func() tea.Msg {
			return NotifiedMsg{Err: notification.Launched(name)}
		})
	}
	return tea.Batch(cmds...)
}

// handleLaunchFinished reports how a foreground entry exited.
func (m *Model) handleLaunchFinished(msg LaunchFinishedMsg) tea.Cmd {
	if msg.Err != nil {
		m.log.Warn("entry exited with error", "name", msg.Name, "error", msg.Err)
		return m.ShowFlashError(fmt.Sprintf("%s: %v", msg.Name, msg.Err))
	}
	m.log.Info("entry exited", "name", msg.Name)
	return nil
}

// handleDetachedStarted reports the result of a background start.
func (m *Model) handleDetachedStarted(msg DetachedStartedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.flashErr(msg.Err)
	}
	return m.ShowFlashSuccess(fmt.Sprintf("Started %s (pid %d)", msg.Name, msg.PID))
}
