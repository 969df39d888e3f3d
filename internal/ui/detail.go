package ui

import (
	"bytes"
	"encoding/json"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/zhubert/launchpad/internal/catalog"
)

// Detail is the overlay showing the selected entry's full definition.
type Detail struct {
	item    catalog.Item
	visible bool
}

// NewDetail creates a hidden detail overlay.
func NewDetail() *Detail {
	return &Detail{}
}

// Show opens the overlay for item.
func (d *Detail) Show(item catalog.Item) {
	d.item = item
	d.visible = true
}

// Hide closes the overlay.
func (d *Detail) Hide() {
	d.visible = false
}

// Visible reports whether the overlay is open.
func (d *Detail) Visible() bool {
	return d.visible
}

// Item returns the entry the overlay was last opened for.
func (d *Detail) Item() catalog.Item {
	return d.item
}

// View renders the overlay box.
func (d *Detail) View(width int) string {
	title := OverlayTitleStyle.Render(d.item.Icon + "  " + d.item.Name)

	var body []string
	if d.item.Description != "" {
		body = append(body, lipgloss.NewStyle().
			Foreground(ColorText).
			Width(max(10, width-8)).
			Render(d.item.Description), "")
	}
	body = append(body, highlightJSON(d.item, CurrentTheme().Syntax))

	hint := OverlayHintStyle.Render("enter launch • y copy command • esc close")

	content := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(body, "\n"), hint)
	return OverlayStyle.Render(content)
}

// highlightJSON renders v as indented JSON, colored with the chroma style
// named by styleName. It falls back to the plain JSON on any error.
func highlightJSON(v any, styleName string) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	code := string(data)

	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}
