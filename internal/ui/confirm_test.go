package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/launchpad/internal/catalog"
)

func TestConfirm_DefaultsToLaunch(t *testing.T) {
	c := NewConfirm(3, catalog.Item{Name: "deploy", Command: "make", Args: []string{"deploy"}})

	if c.Index != 3 {
		t.Errorf("Expected index 3, got %d", c.Index)
	}
	if !c.Confirmed() {
		t.Error("Expected the affirmative button selected by default")
	}
	if c.Done() {
		t.Error("Expected the form to be pending")
	}

	view := ansi.Strip(c.View())
	for _, want := range []string{"Launch deploy?", "make deploy"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in confirm view, got %q", want, view)
		}
	}
}

func TestConfirm_IgnoresEnterAndEscape(t *testing.T) {
	c := NewConfirm(0, catalog.Item{Name: "a", Command: "a"})

	if cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("Enter should be left to the caller")
	}
	if cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("Escape should be left to the caller")
	}
	if c.Done() {
		t.Error("Form should still be pending")
	}
}

func TestSetTheme_RebuildsStyles(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeNord)
	if CurrentThemeName() != ThemeNord {
		t.Errorf("Expected nord, got %q", CurrentThemeName())
	}
	if CurrentTheme().Syntax != "nord" {
		t.Errorf("Expected nord syntax style, got %q", CurrentTheme().Syntax)
	}

	SetThemeByName("")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("Expected empty name to select the default, got %q", CurrentThemeName())
	}

	SetThemeByName("does-not-exist")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("Expected unknown name to fall back, got %q", CurrentThemeName())
	}
}
