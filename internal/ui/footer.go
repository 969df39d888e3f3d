package ui

import (
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/launchpad/internal/keys"
)

// FlashType selects the color of a footer flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashDuration is how long a flash message stays in the footer
const FlashDuration = 3 * time.Second

// FlashTickMsg asks the footer to drop an expired flash message
type FlashTickMsg time.Time

// FlashTick returns a command that fires once the flash may be dismissed
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width  int
	help   help.Model
	keyMap keys.KeyMap

	flashText    string
	flashType    FlashType
	flashExpires time.Time
	now          func() time.Time
}

// NewFooter creates a new footer
func NewFooter(km keys.KeyMap) *Footer {
	h := help.New()
	h.Styles.ShortKey = FooterKeyStyle
	h.Styles.ShortDesc = FooterDescStyle
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(ColorBorder)
	h.Styles.FullKey = FooterKeyStyle
	h.Styles.FullDesc = FooterDescStyle
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(ColorBorder)
	h.ShortSeparator = "  │  "

	return &Footer{
		help:   h,
		keyMap: km,
		now:    time.Now,
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.SetWidth(max(0, width-2))
}

// ToggleHelp switches between the short and full key help
func (f *Footer) ToggleHelp() {
	f.help.ShowAll = !f.help.ShowAll
}

// ShowingFullHelp reports whether the expanded help is shown
func (f *Footer) ShowingFullHelp() bool {
	return f.help.ShowAll
}

// SetFlash shows text in place of the key help until FlashDuration elapses
func (f *Footer) SetFlash(text string, t FlashType) {
	f.flashText = text
	f.flashType = t
	f.flashExpires = f.now().Add(FlashDuration)
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashText != ""
}

// ClearExpiredFlash drops the flash message once it has expired.
// It reports whether a message was cleared.
func (f *Footer) ClearExpiredFlash() bool {
	if f.flashText == "" || f.now().Before(f.flashExpires) {
		return false
	}
	f.flashText = ""
	return true
}

// Height returns the number of lines the footer occupies
func (f *Footer) Height() int {
	if f.help.ShowAll && f.flashText == "" {
		return lipgloss.Height(f.help.View(f.keyMap))
	}
	return FooterHeight
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		var style lipgloss.Style
		switch f.flashType {
		case FlashSuccess:
			style = FooterFlashStyle
		case FlashWarning:
			style = FooterWarningStyle
		case FlashError:
			style = FooterErrorStyle
		default:
			style = FooterDescStyle
		}
		text := f.flashText
		if f.width > 2 {
			text = ansi.Truncate(text, f.width-2, "…")
		}
		return FooterStyle.Width(f.width).Render(style.Render(text))
	}

	return FooterStyle.Width(f.width).Render(f.help.View(f.keyMap))
}
