package demo

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/launchpad/internal/app"
	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/config"
	"github.com/zhubert/launchpad/internal/logger"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // How long this frame stays on screen
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// Launch is an entry the scenario started.
type Launch struct {
	Name     string
	Detached bool
	PID      int
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// KeyDelay is the delay after key presses and clicks (default: 100ms)
	KeyDelay time.Duration

	// FrameDelay is how long each frame of a page animation is shown (default: 33ms)
	FrameDelay time.Duration

	// MaxAnimationFrames bounds a single page animation (default: 1000)
	MaxAnimationFrames int
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep:   false, // Don't capture every step by default for cleaner demos
		KeyDelay:           100 * time.Millisecond,
		FrameDelay:         33 * time.Millisecond,
		MaxAnimationFrames: 1000,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config   ExecutorConfig
	model    *app.Model
	launcher *recordingLauncher
	frames   []Frame

	frameInterval     time.Duration
	currentAnnotation string
}

// recordingLauncher stands in for the process launcher. Nothing is started.
type recordingLauncher struct {
	mu       sync.Mutex
	launches []Launch
	pending  []Launch
}

func (r *recordingLauncher) Foreground(ctx context.Context, it catalog.Item) (*exec.Cmd, error) {
	r.record(Launch{Name: it.Name})
	// Never run: the executor drops the commands Update returns
	return exec.CommandContext(ctx, it.Command, it.Args...), nil
}

func (r *recordingLauncher) Detached(ctx context.Context, it catalog.Item) (int, error) {
	r.mu.Lock()
	pid := 1000 + len(r.launches)
	r.mu.Unlock()
	r.record(Launch{Name: it.Name, Detached: true, PID: pid})
	return pid, nil
}

func (r *recordingLauncher) record(l Launch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.launches = append(r.launches, l)
	r.pending = append(r.pending, l)
}

// drain returns the launches recorded since the last call.
func (r *recordingLauncher) drain() []Launch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	return out
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config:   cfg,
		launcher: &recordingLauncher{},
		frames:   []Frame{},
	}
}

// Launches returns every entry the scenario launched, in order.
func (e *Executor) Launches() []Launch {
	e.launcher.mu.Lock()
	defer e.launcher.mu.Unlock()
	return append([]Launch(nil), e.launcher.launches...)
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i, step.Type, err)
		}
	}

	logger.WithComponent("demo").Info("scenario finished", "name", scenario.Name,
		"frames", len(e.frames), "launches", len(e.launcher.launches))
	return e.frames, nil
}

// setup builds a sized model over the scenario's catalog.
func (e *Executor) setup(scenario *Scenario) error {
	setup := scenario.Setup

	cfg := config.Default()
	cfg.SetGrid(setup.Rows, setup.Cols)
	cfg.SetConfirmLaunch(setup.ConfirmLaunch)
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.frameInterval = cfg.GetFrameInterval()

	cat, err := catalog.New(setup.Entries...)
	if err != nil {
		return err
	}

	m, err := app.New(cfg, cat, "demo")
	if err != nil {
		return err
	}
	m.SetLauncher(e.launcher)
	e.model = m

	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		// Time passes for the double-click window too
		frames := int(step.Duration / e.frameInterval)
		for range frames {
			e.update(app.FrameMsg(time.Now()))
		}
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.update(keyPress(step.Key))
		e.afterInput(index)

	case StepClick:
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.afterInput(index)

	case StepClickEntry:
		x, y, ok := e.model.CellPosition(step.Entry)
		if !ok {
			return fmt.Errorf("entry %d is not on screen", step.Entry)
		}
		e.update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
		e.afterInput(index)

	case StepWheel:
		button := tea.MouseWheelUp
		if step.Down {
			button = tea.MouseWheelDown
		}
		e.update(tea.MouseWheelMsg{Button: button})
		e.afterInput(index)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)
	}

	return nil
}

// afterInput reports recorded launches back to the model and plays out any
// page animation the input started.
func (e *Executor) afterInput(index int) {
	for _, l := range e.launcher.drain() {
		if l.Detached {
			e.update(app.DetachedStartedMsg{Name: l.Name, PID: l.PID})
		} else {
			e.update(app.LaunchFinishedMsg{Name: l.Name})
		}
	}

	animated := false
	for i := 0; i < e.config.MaxAnimationFrames && e.scrolling(); i++ {
		e.update(app.FrameMsg(time.Now()))
		e.captureAnimationFrame(index)
		animated = true
	}

	if e.config.CaptureEveryStep && !animated {
		e.captureFrame(index, e.config.KeyDelay)
	}
}

func (e *Executor) scrolling() bool {
	current, target := e.model.Controller().Offsets()
	return current != target
}

// update feeds msg to the model. Returned commands are dropped: launches are
// recorded by the launcher and frames are driven by the executor.
func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.model.RenderToString()

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// captureAnimationFrame captures one frame of a page animation, folding it
// into the previous frame when nothing visible changed.
func (e *Executor) captureAnimationFrame(stepIndex int) {
	content := e.model.RenderToString()
	if n := len(e.frames); n > 0 && e.frames[n-1].Content == content {
		e.frames[n-1].Delay += e.config.FrameDelay
		return
	}
	e.captureFrame(stepIndex, e.config.FrameDelay)
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+l":
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
