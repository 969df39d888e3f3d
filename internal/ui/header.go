package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width     int
	entryName string
	page      int
	pages     int
	items     int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSelection sets the selected entry name and the page counters
func (h *Header) SetSelection(name string, page, pages, items int) {
	h.entryName = name
	h.page = page
	h.pages = pages
	h.items = items
}

// View renders the header
func (h *Header) View() string {
	titleText := " launchpad"
	var rightText string
	if h.entryName != "" {
		rightText = h.entryName + "  "
	}
	if h.pages > 0 {
		rightText += fmt.Sprintf("page %d/%d · %d items ", h.page+1, h.pages, h.items)
	}

	if h.width > 0 && ansi.StringWidth(titleText)+ansi.StringWidth(rightText) > h.width {
		rightText = ansi.Truncate(rightText, max(0, h.width-ansi.StringWidth(titleText)), "…")
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(titleText)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content on a background fading from the
// primary color to the main background. The first boldLen runes are bold.
func (h *Header) renderGradient(content string, boldLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < boldLen)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
