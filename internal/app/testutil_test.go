package app

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/config"
	"github.com/zhubert/launchpad/internal/keys"
)

// testConfig creates a config with every default filled in.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	return cfg
}

// testCatalog creates n foreground entries named app00, app01, ...
func testCatalog(t *testing.T, n int) *catalog.Catalog {
	t.Helper()
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{Name: fmt.Sprintf("app%02d", i), Command: "true"}
	}
	cat, err := catalog.New(items...)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}

// fakeLauncher records launches instead of running anything.
type fakeLauncher struct {
	mu         sync.Mutex
	foreground []string
	detached   []string
	err        error
}

func (f *fakeLauncher) Foreground(ctx context.Context, it catalog.Item) (*exec.Cmd, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.foreground = append(f.foreground, it.Name)
	if f.err != nil {
		return nil, f.err
	}
	return exec.Command("true"), nil
}

func (f *fakeLauncher) Detached(ctx context.Context, it catalog.Item) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detached = append(f.detached, it.Name)
	if f.err != nil {
		return 0, f.err
	}
	return 4242, nil
}

func (f *fakeLauncher) launches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.foreground) + len(f.detached)
}

// testModel creates a sized model over cat with a fake launcher.
// At 120x30 the default 3x5 grid of 14x5 cells sits in a 114x27 page with
// margins of 18 columns and 5 rows.
func testModel(t *testing.T, cfg *config.Config, cat *catalog.Catalog) (*Model, *fakeLauncher) {
	t.Helper()
	m, err := New(cfg, cat, "0.0.0-test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	fake := &fakeLauncher{}
	m.SetLauncher(fake)
	m = setSize(m, 120, 30)
	return m, fake
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// click sends a left click at terminal position x, y.
func click(m *Model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	return cmd
}

// settle feeds frames until the controller stops asking for them.
func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; m.controller.NeedsTick(); i++ {
		if i > 1000 {
			t.Fatal("animation never settled")
		}
		m.Update(FrameMsg{})
	}
}
