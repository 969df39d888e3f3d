package grid

import (
	"log/slog"

	"github.com/zhubert/launchpad/internal/errors"
	"github.com/zhubert/launchpad/internal/logger"
)

// Direction is a navigation intent.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	PagePrevious
	PageNext
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case PagePrevious:
		return "page-previous"
	case PageNext:
		return "page-next"
	default:
		return "unknown"
	}
}

// Default animation speeds, in viewport columns per frame.
const (
	DefaultScrollStep = 6
	DefaultJumpStep   = 24
)

// Options configures a Controller.
type Options struct {
	Rows int
	Cols int

	// ScrollStep is used for paging and for navigation that crosses a page.
	ScrollStep int
	// JumpStep is used for Select, which may cross many pages at once.
	JumpStep int
	// LaunchThreshold is the double-activation window in frames.
	LaunchThreshold int

	Metrics Metrics
}

// Controller owns the selection, page, scroll and activation state for one
// catalog snapshot. It is not safe for concurrent use; a single event loop
// is expected to drive it.
type Controller struct {
	geom    Geometry
	size    int
	metrics Metrics
	view    frame

	scrollStep int
	jumpStep   int

	state  pagination
	scroll scroller
	timer  activation

	layout   Layout
	onSelect notifier[SelectionFunc]
	onLaunch notifier[LaunchFunc]
	log      *slog.Logger
}

// New builds a controller for size items with index 0 selected.
func New(size int, opts Options) (*Controller, error) {
	geom, err := NewGeometry(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		size = 0
	}

	c := &Controller{
		geom:       geom,
		size:       size,
		metrics:    opts.Metrics,
		scrollStep: opts.ScrollStep,
		jumpStep:   opts.JumpStep,
		timer:      newActivation(opts.LaunchThreshold),
		log:        logger.WithComponent("grid"),
	}
	if c.scrollStep <= 0 {
		c.scrollStep = DefaultScrollStep
	}
	if c.jumpStep <= 0 {
		c.jumpStep = DefaultJumpStep
	}
	if c.metrics.CellWidth <= 0 {
		c.metrics.CellWidth = 1
	}
	if c.metrics.CellHeight <= 0 {
		c.metrics.CellHeight = 1
	}
	c.scroll.step = c.scrollStep
	c.state = paginate(geom, size, 0)

	c.log.Debug("grid created", "items", size, "rows", geom.Rows, "cols", geom.Cols,
		"pages", geom.PageCount(size))
	return c, nil
}

// Geometry returns the page shape.
func (c *Controller) Geometry() Geometry { return c.geom }

// Size returns the number of items.
func (c *Controller) Size() int { return c.size }

// Selected returns the selected index, or -1 when the catalog is empty.
func (c *Controller) Selected() int { return c.state.selected }

// Page returns the page holding the selection.
func (c *Controller) Page() int { return c.state.page }

// PageCount returns the number of pages.
func (c *Controller) PageCount() int { return c.geom.PageCount(c.size) }

// Affordances reports which paging controls should currently be shown.
func (c *Controller) Affordances() Affordances {
	if c.size == 0 {
		return Affordances{}
	}
	return c.state.affordances()
}

// Offsets returns the current and target horizontal scroll offsets.
func (c *Controller) Offsets() (current, target int) {
	return c.scroll.current, c.scroll.target
}

// OnSelectionChanged registers fn to be called after every selection change.
func (c *Controller) OnSelectionChanged(fn SelectionFunc) {
	c.onSelect.add(fn)
}

// OnLaunch registers fn to be called on every launch.
func (c *Controller) OnLaunch(fn LaunchFunc) {
	c.onLaunch.add(fn)
}

// SetLayout attaches the rendering collaborator and lays it out at once.
func (c *Controller) SetLayout(l Layout) {
	c.layout = l
	c.scroll.dirty = true
	c.relayout()
}

// SetViewport sets the page width and height. The scroll snaps to the current
// page and every cell is placed again.
func (c *Controller) SetViewport(width, height int) {
	c.view = frame{width: max(0, width), height: max(0, height)}
	c.scroll.snap(c.targetOffset())
	c.relayout()
}

// NeedsTick reports whether a page transition is in flight or the launch
// window is still open.
func (c *Controller) NeedsTick() bool {
	return c.scroll.moving() || c.timer.armed()
}

// Tick advances one frame. It reports whether cells were re-laid out.
func (c *Controller) Tick() bool {
	c.timer.tick()
	c.scroll.advance()
	return c.relayout()
}

// Select moves the selection to index.
func (c *Controller) Select(index int) error {
	if index < 0 || index >= c.size {
		return errors.InvalidIndex("grid.Select", index, c.size)
	}
	c.moveTo(index, c.jumpStep)
	return nil
}

// Navigate applies one directional or paging move. Moves that would leave
// the catalog are clamped; an empty catalog ignores navigation.
func (c *Controller) Navigate(d Direction) {
	if c.size == 0 {
		return
	}

	g, n := c.geom, c.size
	capacity := g.Capacity()
	sel := c.state.selected
	page := c.state.page

	switch d {
	case Left:
		col := g.ColOf(sel)
		if col == 0 && page > 0 {
			sel += g.Cols - 1 - capacity
		} else if col > 0 {
			sel--
		}
	case Right:
		if g.ColOf(sel) == g.Cols-1 {
			if page < c.state.maxPage {
				sel += capacity - g.Cols + 1
				if sel >= n {
					sel = (page + 1) * capacity
				}
			}
		} else {
			sel++
		}
	case Up:
		if g.RowOf(sel) > 0 {
			sel -= g.Cols
		}
	case Down:
		if g.RowOf(sel) < g.Rows-1 {
			sel += g.Cols
		}
	case PagePrevious:
		if page > 0 {
			sel -= capacity
		}
	case PageNext:
		if page < c.state.maxPage {
			sel += capacity
		}
	}

	c.moveTo(clamp(sel, 0, n-1), c.scrollStep)
}

// Activate handles a direct activation of cell index, such as a click.
// Activating a different cell selects it. Activating the selected cell again
// within the launch window launches it. Placeholders and indices outside
// the catalog are rejected.
func (c *Controller) Activate(index int) (launched bool, err error) {
	if index < 0 || index >= c.size {
		return false, errors.InvalidIndex("grid.Activate", index, c.size)
	}

	if index != c.state.selected {
		c.moveTo(index, c.scrollStep)
		return false, nil
	}

	if c.timer.armed() {
		c.launch()
		return true, nil
	}
	c.timer.reset()
	return false, nil
}

// Launch launches the selected item regardless of the activation window.
// It reports false when there is nothing to launch.
func (c *Controller) Launch() bool {
	if c.size == 0 {
		return false
	}
	c.launch()
	return true
}

func (c *Controller) launch() {
	idx := c.state.selected
	// A third quick activation must start a new gesture, not launch again.
	c.timer.expire()
	c.log.Info("launch", "index", idx)
	c.onLaunch.each(func(fn LaunchFunc) { fn(c, idx) })
}

// moveTo is the single path that changes the selection. It derives the page
// again, retargets the scroll and notifies only on a real change.
func (c *Controller) moveTo(index, step int) {
	if index == c.state.selected {
		return
	}
	prevPage := c.state.page
	c.state = paginate(c.geom, c.size, index)
	c.scroll.retarget(c.targetOffset(), step)
	c.timer.reset()

	if c.state.page != prevPage {
		c.log.Debug("page changed", "from", prevPage, "to", c.state.page, "selected", index)
		c.scroll.dirty = true
	}
	c.onSelect.each(func(fn SelectionFunc) { fn(c, index) })
}

func (c *Controller) targetOffset() int {
	return -c.state.page * c.view.width
}

// relayout places every slot when the scroll state is dirty.
func (c *Controller) relayout() bool {
	if !c.scroll.dirty {
		return false
	}
	c.scroll.dirty = false
	if c.layout == nil {
		return true
	}

	slots := c.geom.Slots(c.size)
	for i := 0; i < slots; i++ {
		c.layout.PlaceCell(place(c.geom, c.metrics, c.view, c.scroll.current, i, c.size))
	}
	c.layout.SetAffordances(c.Affordances())
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
