package grid

// Affordances reports which paging controls should be shown.
type Affordances struct {
	Previous bool
	Next     bool
}

// pagination is recomputed from the selected index alone, so the page and
// the affordances can never disagree with the selection.
type pagination struct {
	selected int
	page     int
	maxPage  int
}

// paginate derives the pagination state for sel. An empty catalog yields
// selected == -1.
func paginate(g Geometry, size, sel int) pagination {
	if size <= 0 {
		return pagination{selected: -1}
	}
	return pagination{
		selected: sel,
		page:     g.PageOf(sel),
		maxPage:  g.MaxPage(size),
	}
}

func (p pagination) isFirstPage() bool {
	return p.page == 0
}

func (p pagination) isLastPage() bool {
	return p.page >= p.maxPage
}

func (p pagination) affordances() Affordances {
	return Affordances{
		Previous: !p.isFirstPage(),
		Next:     !p.isLastPage(),
	}
}
