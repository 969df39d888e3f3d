package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/launchpad/internal/errors"
	"github.com/zhubert/launchpad/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	m.updateSizes()
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// flashErr reports err in the footer. A missing command is a warning since
// the catalog can name tools that are not installed everywhere.
func (m *Model) flashErr(err error) tea.Cmd {
	m.log.Warn("action failed", "error", err)
	if errors.GetKind(err) == errors.KindNotFound {
		return m.ShowFlash(err.Error(), ui.FlashWarning)
	}
	return m.ShowFlashError(err.Error())
}
