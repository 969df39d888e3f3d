package grid

// Cell is one laid out grid slot, in viewport columns and rows. X may be
// negative or beyond the viewport while a page transition is in flight.
type Cell struct {
	Index       int
	Page        int
	Row         int
	Col         int
	X           int
	Y           int
	Visible     bool
	Placeholder bool
}

// Layout receives the results of a re-layout. PlaceCell is called once per
// slot, placeholders included, in index order; SetAffordances follows.
type Layout interface {
	PlaceCell(c Cell)
	SetAffordances(a Affordances)
}

// Metrics describes the size of a cell and the space between cells.
type Metrics struct {
	CellWidth  int
	CellHeight int
	GapX       int
	GapY       int
}

// scroller moves current toward target by a constant step per tick.
type scroller struct {
	current int
	target  int
	step    int
	dirty   bool
}

// retarget points the animation at target without touching current, so an
// in-flight transition continues from where it is.
func (s *scroller) retarget(target, step int) {
	if target == s.target {
		return
	}
	s.target = target
	if step > 0 {
		s.step = step
	}
}

// snap jumps straight to target.
func (s *scroller) snap(target int) {
	s.target = target
	s.current = target
	s.dirty = true
}

// advance moves one step and reports whether current changed.
func (s *scroller) advance() bool {
	step := s.step
	if step <= 0 {
		step = 1
	}
	switch {
	case s.current < s.target:
		s.current += step
		if s.current > s.target {
			s.current = s.target
		}
	case s.current > s.target:
		s.current -= step
		if s.current < s.target {
			s.current = s.target
		}
	default:
		return false
	}
	s.dirty = true
	return true
}

func (s *scroller) moving() bool {
	return s.current != s.target
}

// frame is the viewport the grid is laid out into.
type frame struct {
	width  int
	height int
}

// place computes the position of slot idx at the scroller's current offset.
// Each page is one viewport wide; the grid block is centered inside it.
func place(g Geometry, m Metrics, f frame, offset, idx, size int) Cell {
	page, row, col := g.PageOf(idx), g.RowOf(idx), g.ColOf(idx)

	blockW := g.Cols*m.CellWidth + (g.Cols-1)*m.GapX
	blockH := g.Rows*m.CellHeight + (g.Rows-1)*m.GapY
	marginX := max(0, (f.width-blockW)/2)
	marginY := max(0, (f.height-blockH)/2)

	x := offset + page*f.width + marginX + col*(m.CellWidth+m.GapX)
	y := marginY + row*(m.CellHeight+m.GapY)

	return Cell{
		Index:       idx,
		Page:        page,
		Row:         row,
		Col:         col,
		X:           x,
		Y:           y,
		Visible:     x+m.CellWidth > 0 && x < f.width,
		Placeholder: idx >= size,
	}
}
