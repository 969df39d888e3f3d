// Package scenarios contains built-in demo scenarios for launchpad.
package scenarios

import (
	"time"

	"github.com/zhubert/launchpad/internal/demo"
)

// Basic tours the grid from the keyboard:
// - Moving the selection within a page and across its edge
// - Paging with [ and ]
// - Opening the details of an entry
// - Launching the selection
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Navigate, page, inspect and launch from the keyboard",
	Width:       120,
	Height:      30,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("Arrow keys or hjkl move the selection"),
		demo.KeyWithDesc("right", "Select the second entry"),
		demo.Wait(300 * time.Millisecond),
		demo.Key("right"),
		demo.Wait(300 * time.Millisecond),
		demo.Key("down"),
		demo.Wait(600 * time.Millisecond),

		demo.Annotate("Moving past the last column slides to the next page"),
		demo.Key("right"),
		demo.Key("right"),
		demo.Key("right"),
		demo.Wait(1 * time.Second),

		demo.Annotate("[ and ] page back and forward"),
		demo.KeyWithDesc("[", "Back to the first page"),
		demo.Wait(800 * time.Millisecond),
		demo.Key("]"),
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("i shows the details of the selected entry"),
		demo.Key("i"),
		demo.Wait(2 * time.Second),
		demo.Key("esc"),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("Enter launches it"),
		demo.KeyWithDesc("enter", "Launch the selection"),
		demo.Wait(1500 * time.Millisecond),
	},
}

// Mouse shows pointer input:
// - A first click selects, a second click inside the window launches
// - The wheel pages the grid
// - Clicking a page arrow
var Mouse = &demo.Scenario{
	Name:        "mouse",
	Description: "Select and launch with clicks, page with the wheel",
	Width:       120,
	Height:      30,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("One click selects"),
		demo.ClickEntry(3),
		demo.Wait(100 * time.Millisecond),

		demo.Annotate("A second click launches; http-server runs in the background"),
		demo.ClickEntry(3),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("The wheel pages the grid"),
		demo.Wheel(true),
		demo.Wait(1 * time.Second),

		demo.Annotate("Clicks too far apart only select"),
		demo.ClickEntry(16),
		demo.Wait(1 * time.Second),
		demo.ClickEntry(16),
		demo.Wait(1 * time.Second),

		demo.Annotate("The arrow in the left gutter pages back"),
		demo.Click(1, 12),
		demo.Wait(1 * time.Second),
	},
}

// Confirm launches through the confirmation dialog.
var Confirm = &demo.Scenario{
	Name:        "confirm",
	Description: "Launch an entry after confirming it",
	Width:       120,
	Height:      30,
	Setup: func() *demo.ScenarioSetup {
		s := demo.DefaultSetup()
		s.ConfirmLaunch = true
		return s
	}(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Key("right"),
		demo.Key("right"),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("With confirm_launch set, enter asks first"),
		demo.Key("enter"),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Escape cancels"),
		demo.Key("esc"),
		demo.Wait(800 * time.Millisecond),

		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),
		demo.Annotate("Enter accepts"),
		demo.Key("enter"),
		demo.Wait(1500 * time.Millisecond),
	},
}

// All returns all available demo scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Mouse,
		Confirm,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
