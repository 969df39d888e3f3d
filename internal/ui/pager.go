package ui

import (
	"charm.land/bubbles/v2/paginator"
	"charm.land/lipgloss/v2"
)

// Pager renders the page indicator dots under the grid.
type Pager struct {
	model paginator.Model
	width int
}

// NewPager creates a dot pager.
func NewPager() *Pager {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(ColorPrimary).Render(DotActive)
	p.InactiveDot = lipgloss.NewStyle().Foreground(ColorBorder).Render(DotInactive)
	return &Pager{model: p}
}

// SetWidth sets the width the dots are centered in.
func (p *Pager) SetWidth(width int) {
	p.width = width
}

// SetPage sets the current page and the page count.
func (p *Pager) SetPage(page, pages int) {
	p.model.TotalPages = pages
	p.model.Page = page
}

// Page returns the current page.
func (p *Pager) Page() int {
	return p.model.Page
}

// View renders the dots, or nothing when there is at most one page.
func (p *Pager) View() string {
	if p.model.TotalPages <= 1 {
		return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, "")
	}
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, p.model.View())
}
