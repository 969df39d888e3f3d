package ui

import "charm.land/lipgloss/v2"

// Theme is a complete color palette for the launcher.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (selected cell border, header)
	Primary string
	// Secondary is used for key hints and icons
	Secondary string

	Bg         string // Main background
	BgSelected string // Selected cell background (defaults to Primary if empty)

	Text        string // Primary text
	TextMuted   string // Labels of unselected cells, descriptions
	TextInverse string // Text on colored backgrounds

	Warning string
	Error   string
	Success string

	Border      string // Unselected cell borders
	BorderFocus string // Selected cell border (defaults to Primary if empty)
	Placeholder string // Border of empty slots on the last page

	// Syntax is the chroma style used in the detail overlay
	Syntax string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		BgSelected:  "#2E1065",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Success:     "#10B981",
		Border:      "#374151",
		Placeholder: "#273244",
		Syntax:      "monokai",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		BgSelected:  "#3B4252",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		Placeholder: "#3B4252",
		Syntax:      "nord",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		BgSelected:  "#44475A",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Success:     "#50FA7B",
		Border:      "#44475A",
		Placeholder: "#343746",
		Syntax:      "dracula",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox",
		Primary:     "#FE8019",
		Secondary:   "#83A598",
		Bg:          "#282828",
		BgSelected:  "#3C3836",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Success:     "#B8BB26",
		Border:      "#504945",
		Placeholder: "#3C3836",
		Syntax:      "gruvbox",
	},
	ThemeTokyoNight: {
		Name:        "Tokyo Night",
		Primary:     "#7AA2F7",
		Secondary:   "#BB9AF7",
		Bg:          "#1A1B26",
		BgSelected:  "#283457",
		Text:        "#C0CAF5",
		TextMuted:   "#565F89",
		TextInverse: "#1A1B26",
		Warning:     "#E0AF68",
		Error:       "#F7768E",
		Success:     "#9ECE6A",
		Border:      "#3B4261",
		Placeholder: "#24283B",
		Syntax:      "tokyonight-night",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#E0E7FF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Success:     "#059669",
		Border:      "#D1D5DB",
		BorderFocus: "#6366F1",
		Placeholder: "#F3F4F6",
		Syntax:      "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeTokyoNight,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name. An empty name keeps
// the default.
func SetThemeByName(name string) {
	if name == "" {
		name = string(DefaultTheme)
	}
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgSelected = lipgloss.Color(t.GetBgSelected())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorPlaceholder = lipgloss.Color(t.Placeholder)

	buildStyles()
}
