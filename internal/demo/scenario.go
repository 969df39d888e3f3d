// Package demo drives the launcher headlessly through scripted scenarios and
// captures what it draws. Launches are recorded instead of run, so a
// scenario always produces the same frames.
package demo

import (
	"strconv"
	"time"

	"github.com/zhubert/launchpad/internal/catalog"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait lets time pass (for timing/pacing) and captures a frame.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepClick sends a left click at a terminal position.
	StepClick
	// StepClickEntry clicks the middle of the cell drawn for an entry.
	StepClickEntry
	// StepWheel scrolls the mouse wheel.
	StepWheel
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

func (t StepType) String() string {
	switch t {
	case StepWait:
		return "wait"
	case StepKey:
		return "key"
	case StepClick:
		return "click"
	case StepClickEntry:
		return "click-entry"
	case StepWheel:
		return "wheel"
	case StepCapture:
		return "capture"
	case StepAnnotate:
		return "annotate"
	}
	return "unknown"
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepClick
	X, Y int

	// For StepClickEntry
	Entry int

	// For StepWheel: true scrolls down (next page)
	Down bool

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 30)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Entries make up the catalog
	Entries []catalog.Item

	// Grid shape; zero keeps the config default
	Rows, Cols int

	// ConfirmLaunch asks before each launch
	ConfirmLaunch bool
}

// DefaultSetup returns a catalog a little over two pages long on the default
// grid.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Entries: []catalog.Item{
			{Name: "htop", Command: "htop", Icon: "▦", Description: "Interactive process viewer"},
			{Name: "vim", Command: "vim", Icon: "✎", Description: "Text editor"},
			{Name: "lazygit", Command: "lazygit", Icon: "⎇", Description: "Terminal UI for git"},
			{Name: "btop", Command: "btop", Icon: "▤"},
			{Name: "ranger", Command: "ranger", Icon: "▥", Description: "File manager"},
			{Name: "mutt", Command: "mutt", Icon: "✉"},
			{Name: "irssi", Command: "irssi", Icon: "☏"},
			{Name: "ncdu", Command: "ncdu", Args: []string{"/"}, Icon: "◔", Description: "Disk usage analyzer"},
			{Name: "tmux", Command: "tmux", Icon: "▣"},
			{Name: "calc", Command: "bc", Args: []string{"-l"}, Icon: "±"},
			{Name: "weather", Command: "curl", Args: []string{"wttr.in"}, Icon: "☼"},
			{Name: "http-server", Command: "python3", Args: []string{"-m", "http.server"}, Icon: "⇄", Detach: true,
				Description: "Serve the current directory in the background"},
			{Name: "man", Command: "man", Args: []string{"man"}, Icon: "?"},
			{Name: "top", Command: "top", Icon: "▲"},
			{Name: "less", Command: "less", Args: []string{"/etc/hosts"}, Icon: "≡"},
			{Name: "nano", Command: "nano", Icon: "✐"},
			{Name: "watch", Command: "watch", Args: []string{"date"}, Icon: "◷"},
			{Name: "ping", Command: "ping", Args: []string{"-c", "3", "localhost"}, Icon: "↯"},
		},
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Rows < 0 || s.Setup.Cols < 0 {
		return &ValidationError{Field: "Setup", Message: "grid rows and cols cannot be negative"}
	}
	for i, step := range s.Steps {
		if step.Type == StepClickEntry && (step.Entry < 0 || step.Entry >= len(s.Setup.Entries)) {
			return &ValidationError{Field: "Steps", Message: "step " + strconv.Itoa(i) + " clicks an entry outside the catalog"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Click creates a left click step at terminal position x, y.
func Click(x, y int) Step {
	return Step{
		Type: StepClick,
		X:    x,
		Y:    y,
	}
}

// ClickEntry creates a step that clicks the cell drawn for entry index, in
// catalog order (sorted by name). The entry must be on screen when the step
// runs.
func ClickEntry(index int) Step {
	return Step{
		Type:  StepClickEntry,
		Entry: index,
	}
}

// Wheel creates a mouse wheel step. down scrolls toward the next page.
func Wheel(down bool) Step {
	return Step{
		Type: StepWheel,
		Down: down,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
