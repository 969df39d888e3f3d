package app

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/config"
	"github.com/zhubert/launchpad/internal/grid"
	"github.com/zhubert/launchpad/internal/keys"
	"github.com/zhubert/launchpad/internal/logger"
	"github.com/zhubert/launchpad/internal/process"
	"github.com/zhubert/launchpad/internal/ui"
)

// Launcher starts catalog entries. The default runs them through the
// process package.
type Launcher interface {
	// Foreground builds the command for an entry that takes over the terminal.
	Foreground(ctx context.Context, it catalog.Item) (*exec.Cmd, error)
	// Detached starts an entry in the background and returns its pid.
	Detached(ctx context.Context, it catalog.Item) (int, error)
}

type processLauncher struct{}

func (processLauncher) Foreground(ctx context.Context, it catalog.Item) (*exec.Cmd, error) {
	return process.Resolve(ctx, it)
}

func (processLauncher) Detached(ctx context.Context, it catalog.Item) (int, error) {
	return process.StartDetached(ctx, it)
}

// FrameMsg advances the grid animation by one frame
type FrameMsg time.Time

// LaunchFinishedMsg is sent when a foreground entry exits and the terminal is
// handed back
type LaunchFinishedMsg struct {
	Name string
	Err  error
}

// DetachedStartedMsg is sent once a detached entry has been started
type DetachedStartedMsg struct {
	Name string
	PID  int
	Err  error
}

// NotifiedMsg reports the result of a desktop notification
type NotifiedMsg struct {
	Err error
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	catalog *catalog.Catalog
	keys    keys.KeyMap

	controller *grid.Controller
	launcher   Launcher

	ctx     *ui.ViewContext
	header  *ui.Header
	footer  *ui.Footer
	pager   *ui.Pager
	grid    *ui.IconGrid
	detail  *ui.Detail
	confirm *ui.Confirm

	width      int
	height     int
	gridWidth  int
	gridHeight int

	// ticking is set while a FrameMsg is scheduled, so at most one is in flight
	ticking bool
	// pendingLaunch is the index reported by the controller's launch
	// notifier, or -1. Update turns it into a command.
	pendingLaunch int

	log *slog.Logger
}

// New creates a new app model for cat.
func New(cfg *config.Config, cat *catalog.Catalog, version string) (*Model, error) {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	rows, cols := cfg.GetGrid()
	scrollStep, jumpStep := cfg.GetScrollSteps()
	cellW, cellH := cfg.GetCellSize()
	metrics := grid.Metrics{
		CellWidth:  cellW,
		CellHeight: cellH,
		GapX:       ui.CellGapX,
		GapY:       ui.CellGapY,
	}

	controller, err := grid.New(cat.Size(), grid.Options{
		Rows:            rows,
		Cols:            cols,
		ScrollStep:      scrollStep,
		JumpStep:        jumpStep,
		LaunchThreshold: cfg.GetLaunchThreshold(),
		Metrics:         metrics,
	})
	if err != nil {
		return nil, err
	}

	km := keys.DefaultKeyMap()
	m := &Model{
		config:        cfg,
		version:       version,
		catalog:       cat,
		keys:          km,
		controller:    controller,
		launcher:      processLauncher{},
		ctx:           ui.NewViewContext(),
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(km),
		pager:         ui.NewPager(),
		grid:          ui.NewIconGrid(cat, metrics),
		detail:        ui.NewDetail(),
		pendingLaunch: -1,
		log:           logger.WithComponent("app"),
	}

	controller.OnSelectionChanged(func(c *grid.Controller, index int) {
		m.grid.SetSelected(index)
		m.syncChrome()
	})
	controller.OnLaunch(func(c *grid.Controller, index int) {
		m.pendingLaunch = index
	})

	m.grid.SetSelected(controller.Selected())
	controller.SetLayout(m.grid)
	m.syncChrome()

	m.log.Info("app created", "version", version, "entries", cat.Size(),
		"rows", rows, "cols", cols)
	return m, nil
}

// SetLauncher replaces how entries are started.
func (m *Model) SetLauncher(l Launcher) {
	m.launcher = l
}

// Controller returns the grid controller.
func (m *Model) Controller() *grid.Controller {
	return m.controller
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// selectedItem returns the entry under the selection.
func (m *Model) selectedItem() (catalog.Item, bool) {
	return m.catalog.At(m.controller.Selected())
}

// syncChrome pushes the selection and page counters to the header and pager.
func (m *Model) syncChrome() {
	name := ""
	if it, ok := m.selectedItem(); ok {
		name = it.Name
	}
	page, pages := m.controller.Page(), m.controller.PageCount()
	m.header.SetSelection(name, page, pages, m.controller.Size())
	m.pager.SetPage(page, pages)
}

// scheduleFrame arms the next animation frame while the controller needs one.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || !m.controller.NeedsTick() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.config.GetFrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
