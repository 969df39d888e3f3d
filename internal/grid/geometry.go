// Package grid implements the paginated icon grid: index and page arithmetic,
// directional navigation, the animated horizontal page scroll and the
// double-activation launch gesture.
//
// A Controller owns all of that state for one catalog snapshot. It never
// schedules work on its own; the caller drives it with navigation input and
// one Tick per rendered frame, and draws cells wherever the controller's
// Layout callbacks place them.
package grid

import (
	"github.com/zhubert/launchpad/internal/errors"
)

// Geometry is the fixed rows x cols shape of one page.
type Geometry struct {
	Rows int
	Cols int
}

// NewGeometry validates rows and cols.
func NewGeometry(rows, cols int) (Geometry, error) {
	if rows <= 0 || cols <= 0 {
		return Geometry{}, errors.InvalidGeometry(rows, cols)
	}
	return Geometry{Rows: rows, Cols: cols}, nil
}

// Capacity is the number of cells on one page.
func (g Geometry) Capacity() int {
	return g.Rows * g.Cols
}

// PageOf returns the page holding idx.
func (g Geometry) PageOf(idx int) int {
	return idx / g.Capacity()
}

// RowOf returns the row of idx within its page.
func (g Geometry) RowOf(idx int) int {
	return (idx % g.Capacity()) / g.Cols
}

// ColOf returns the column of idx.
func (g Geometry) ColOf(idx int) int {
	return idx % g.Cols
}

// IndexOf is the inverse of PageOf, RowOf and ColOf.
func (g Geometry) IndexOf(page, row, col int) int {
	return page*g.Capacity() + row*g.Cols + col
}

// PageCount returns how many pages n items occupy. An empty catalog has none.
func (g Geometry) PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + g.Capacity() - 1) / g.Capacity()
}

// MaxPage returns the last page index for n items, or 0 for an empty catalog.
func (g Geometry) MaxPage(n int) int {
	if n <= 0 {
		return 0
	}
	return g.PageCount(n) - 1
}

// Slots returns the number of laid out cells for n items: every item plus
// the placeholders that pad the last page to full capacity.
func (g Geometry) Slots(n int) int {
	return g.PageCount(n) * g.Capacity()
}
