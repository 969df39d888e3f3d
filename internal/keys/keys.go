// Package keys provides string constants for Bubble Tea v2 key press events
// and the launcher's key map.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "h", "y", "?" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter  = tea.KeyPressMsg{Code: tea.KeyEnter}.String()  // "enter"
	Tab    = tea.KeyPressMsg{Code: tea.KeyTab}.String()    // "tab"
	Space  = tea.KeyPressMsg{Code: tea.KeySpace}.String()  // "space"
	Escape = tea.KeyPressMsg{Code: tea.KeyEscape}.String() // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlL = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String() // "ctrl+l"
)

// KeyMap holds every binding the launcher reacts to. It implements
// help.KeyMap so the footer can render it directly.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	PagePrevious key.Binding
	PageNext     key.Binding
	First        key.Binding
	Last         key.Binding
	Launch       key.Binding
	Details      key.Binding
	Copy         key.Binding
	Redraw       key.Binding
	Help         key.Binding
	Close        key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the launcher bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(Up, "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(Down, "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(Left, "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(Right, "l"),
			key.WithHelp("→/l", "right"),
		),
		PagePrevious: key.NewBinding(
			key.WithKeys("[", PgUp),
			key.WithHelp("[/pgup", "prev page"),
		),
		PageNext: key.NewBinding(
			key.WithKeys("]", PgDown),
			key.WithHelp("]/pgdn", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys(Home, "g"),
			key.WithHelp("home/g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys(End, "G"),
			key.WithHelp("end/G", "last"),
		),
		Launch: key.NewBinding(
			key.WithKeys(Enter, Space),
			key.WithHelp("enter", "launch"),
		),
		Details: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "details"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy command"),
		),
		Redraw: key.NewBinding(
			key.WithKeys(CtrlL),
			key.WithHelp("ctrl+l", "redraw"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys(Escape),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", CtrlC),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.PageNext, k.Launch, k.Details, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PagePrevious, k.PageNext, k.First, k.Last},
		{k.Launch, k.Details, k.Copy},
		{k.Redraw, k.Help, k.Close, k.Quit},
	}
}
