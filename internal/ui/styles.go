package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, regenerated from the active theme
var (
	ColorPrimary     color.Color = lipgloss.Color("#7C3AED")
	ColorSecondary   color.Color = lipgloss.Color("#06B6D4")
	ColorBorder      color.Color = lipgloss.Color("#374151")
	ColorBorderFocus color.Color = lipgloss.Color("#7C3AED")
	ColorBg          color.Color = lipgloss.Color("#1F2937")
	ColorBgSelected  color.Color = lipgloss.Color("#2E1065")
	ColorText        color.Color = lipgloss.Color("#F9FAFB")
	ColorTextMuted   color.Color = lipgloss.Color("#9CA3AF")
	ColorTextInverse color.Color = lipgloss.Color("#1F2937")
	ColorWarning     color.Color = lipgloss.Color("#F59E0B")
	ColorError       color.Color = lipgloss.Color("#EF4444")
	ColorSuccess     color.Color = lipgloss.Color("#10B981")
	ColorPlaceholder color.Color = lipgloss.Color("#273244")
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	HeaderMutedStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle        lipgloss.Style
	FooterKeyStyle     lipgloss.Style
	FooterDescStyle    lipgloss.Style
	FooterFlashStyle   lipgloss.Style
	FooterErrorStyle   lipgloss.Style
	FooterWarningStyle lipgloss.Style
)

// Grid styles
var (
	CellStyle            lipgloss.Style
	CellSelectedStyle    lipgloss.Style
	CellPlaceholderStyle lipgloss.Style
	CellIconStyle        lipgloss.Style
	CellIconSelected     lipgloss.Style
	CellLabelStyle       lipgloss.Style
	CellLabelSelected    lipgloss.Style
	ArrowStyle           lipgloss.Style
	EmptyStyle           lipgloss.Style
)

// Overlay styles
var (
	OverlayStyle      lipgloss.Style
	OverlayTitleStyle lipgloss.Style
	OverlayHintStyle  lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the color variables.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)
	HeaderMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	FooterFlashStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSuccess)
	FooterErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorError)
	FooterWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	CellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Align(lipgloss.Center)
	CellSelectedStyle = CellStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorBorderFocus).
		Background(ColorBgSelected)
	CellPlaceholderStyle = lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Foreground(ColorPlaceholder)
	CellIconStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	CellIconSelected = CellIconStyle.
		Foreground(ColorPrimary).
		Background(ColorBgSelected)
	CellLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	CellLabelSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorBgSelected)
	ArrowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
	EmptyStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	OverlayTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	OverlayHintStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1)
}
