package ui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/keys"
)

// Confirm asks before launching an entry. Enter and Escape are left to the
// caller; everything else goes to the embedded huh form.
type Confirm struct {
	Index     int
	Item      catalog.Item
	confirmed bool
	form      *huh.Form
}

// NewConfirm creates a confirmation prompt for the entry at index.
func NewConfirm(index int, item catalog.Item) *Confirm {
	c := &Confirm{Index: index, Item: item, confirmed: true}
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Launch "+item.Name+"?").
				Description(item.CommandLine()).
				Affirmative("Launch").
				Negative("Cancel").
				Value(&c.confirmed),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(OverlayWidth - 6)

	c.form.Init()
	return c
}

// Confirmed reports whether the affirmative button is chosen.
func (c *Confirm) Confirmed() bool {
	return c.confirmed
}

// Done reports whether the form was answered through its own keys (y/n).
func (c *Confirm) Done() bool {
	return c.form.State == huh.StateCompleted
}

// Update forwards msg to the form.
func (c *Confirm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return nil
		}
	}

	m, cmd := c.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		c.form = f
	}
	return cmd
}

// View renders the prompt box.
func (c *Confirm) View() string {
	hint := OverlayHintStyle.Render("enter confirm • esc cancel")
	return OverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, c.form.View(), hint))
}

// ModalTheme returns a huh theme that matches the current color palette.
// It is called each time a form is created to pick up theme changes.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextInverse).
			Background(ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextMuted)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().
			PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}
