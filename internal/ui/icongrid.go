package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/grid"
)

// EntrySource looks up the entry shown in a grid slot.
type EntrySource interface {
	At(i int) (catalog.Item, bool)
}

// IconGrid draws the paginated icon grid. It is the grid controller's
// Layout: every re-layout replaces the placed cells, and View composites the
// visible ones into the page frame.
type IconGrid struct {
	source  EntrySource
	metrics grid.Metrics

	cells       []grid.Cell
	affordances grid.Affordances
	passDone    bool
	selected    int

	width  int
	height int
}

// NewIconGrid creates a grid renderer drawing entries from source.
func NewIconGrid(source EntrySource, m grid.Metrics) *IconGrid {
	return &IconGrid{
		source:   source,
		metrics:  m,
		selected: -1,
	}
}

// PlaceCell records a laid out slot. The first cell after SetAffordances
// starts a new layout pass.
func (g *IconGrid) PlaceCell(c grid.Cell) {
	if g.passDone {
		g.cells = g.cells[:0]
		g.passDone = false
	}
	g.cells = append(g.cells, c)
}

// SetAffordances records which page arrows should be drawn and closes the
// layout pass.
func (g *IconGrid) SetAffordances(a grid.Affordances) {
	g.affordances = a
	g.passDone = true
}

// SetSelected marks the highlighted slot.
func (g *IconGrid) SetSelected(index int) {
	g.selected = index
}

// SetSize sets the size of a page, excluding the arrow gutters.
func (g *IconGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// Cells returns the slots placed by the last layout pass.
func (g *IconGrid) Cells() []grid.Cell {
	return g.cells
}

// Affordances returns the arrows of the last layout pass.
func (g *IconGrid) Affordances() grid.Affordances {
	return g.affordances
}

// HitTest maps a position relative to the page frame to the entry drawn
// there. Placeholders and off-screen slots never match.
func (g *IconGrid) HitTest(x, y int) (int, bool) {
	m := g.metrics
	for _, c := range g.cells {
		if !c.Visible || c.Placeholder {
			continue
		}
		if x >= c.X && x < c.X+m.CellWidth && y >= c.Y && y < c.Y+m.CellHeight {
			return c.Index, true
		}
	}
	return -1, false
}

// ArrowAt maps a position relative to the full grid band, gutters included,
// to the paging direction of the arrow drawn there.
func (g *IconGrid) ArrowAt(x, y int) (grid.Direction, bool) {
	if y < 0 || y >= g.height {
		return 0, false
	}
	switch {
	case x >= 0 && x < ArrowGutter && g.affordances.Previous:
		return grid.PagePrevious, true
	case x >= ArrowGutter+g.width && x < 2*ArrowGutter+g.width && g.affordances.Next:
		return grid.PageNext, true
	}
	return 0, false
}

// View renders the grid band: the page frame flanked by the arrow gutters.
func (g *IconGrid) View() string {
	if g.width <= 0 || g.height <= 0 {
		return ""
	}

	fullWidth := g.width + 2*ArrowGutter
	area := uv.Rect(0, 0, fullWidth, g.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(g.blank(fullWidth)).Draw(scr, area)

	if len(g.cells) == 0 || g.allPlaceholders() {
		msg := EmptyStyle.Render("No entries in catalog")
		x := max(0, (fullWidth-lipgloss.Width(msg))/2)
		uv.NewStyledString(msg).Draw(scr, uv.Rect(x, g.height/2, fullWidth-x, 1))
		return scr.Render()
	}

	for _, c := range g.cells {
		if !c.Visible {
			continue
		}
		g.drawCell(scr, c)
	}

	arrowY := g.height / 2
	if g.affordances.Previous {
		uv.NewStyledString(ArrowStyle.Render(ArrowPrevious)).
			Draw(scr, uv.Rect(ArrowGutter/2, arrowY, 1, 1))
	}
	if g.affordances.Next {
		uv.NewStyledString(ArrowStyle.Render(ArrowNext)).
			Draw(scr, uv.Rect(ArrowGutter+g.width+ArrowGutter/2, arrowY, 1, 1))
	}

	return scr.Render()
}

// drawCell composites one slot, clipped to the page frame.
func (g *IconGrid) drawCell(scr uv.Screen, c grid.Cell) {
	m := g.metrics
	left := max(0, c.X)
	right := min(g.width, c.X+m.CellWidth)
	if right <= left || c.Y >= g.height {
		return
	}

	lines := strings.Split(g.renderCell(c), "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left-c.X, right-c.X)
	}
	h := min(len(lines), g.height-c.Y)
	clipped := strings.Join(lines[:h], "\n")

	uv.NewStyledString(clipped).Draw(scr, uv.Rect(ArrowGutter+left, c.Y, right-left, h))
}

// renderCell renders a slot as a bordered box of exactly CellWidth by
// CellHeight: the icon on the first inner line and the label on the last.
func (g *IconGrid) renderCell(c grid.Cell) string {
	m := g.metrics
	innerW := max(1, m.CellWidth-2)
	innerH := max(1, m.CellHeight-2)

	content := make([]string, innerH)
	for i := range content {
		content[i] = strings.Repeat(" ", innerW)
	}

	if c.Placeholder {
		return CellPlaceholderStyle.Render(strings.Join(content, "\n"))
	}

	item, ok := g.source.At(c.Index)
	if !ok {
		return CellPlaceholderStyle.Render(strings.Join(content, "\n"))
	}

	selected := c.Index == g.selected
	iconStyle, labelStyle, boxStyle := CellIconStyle, CellLabelStyle, CellStyle
	if selected {
		iconStyle, labelStyle, boxStyle = CellIconSelected, CellLabelSelected, CellSelectedStyle
	}

	icon := ansi.Truncate(item.Icon, innerW, "")
	content[0] = iconStyle.Render(center(icon, innerW))
	if innerH > 1 {
		label := runewidth.Truncate(item.Name, innerW, "…")
		content[innerH-1] = labelStyle.Render(center(label, innerW))
	} else {
		content[0] = labelStyle.Render(center(runewidth.Truncate(item.Name, innerW, "…"), innerW))
	}

	return boxStyle.Render(strings.Join(content, "\n"))
}

func (g *IconGrid) allPlaceholders() bool {
	for _, c := range g.cells {
		if !c.Placeholder {
			return false
		}
	}
	return true
}

func (g *IconGrid) blank(width int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, g.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// center pads s on both sides to width display columns.
func center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
